package cookbook

type Kind string

const (
	KindIngredient Kind = "ingredient"
	KindRecipe     Kind = "recipe"
)

// RequirementLine names another entity and how many units of it are needed
// per single unit of the containing recipe.
type RequirementLine struct {
	Name     string `json:"name" yaml:"name"`
	Quantity int    `json:"quantity" yaml:"quantity"`
}

// Entity is a stored cookbook entry. Exactly one of the variant fields is
// meaningful: CookTime for ingredients, RequiredItems for recipes.
type Entity struct {
	Kind Kind   `json:"type"`
	Name string `json:"name"`

	CookTime      int               `json:"cookTime"`
	RequiredItems []RequirementLine `json:"requiredItems,omitempty"`
}

// ItemQuantity is one aggregated base-ingredient line of a summary.
type ItemQuantity struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

// Summary is the flattened view of a recipe: its total cook time and the
// total quantity of every base ingredient its requirement graph reaches.
type Summary struct {
	Name        string         `json:"name"`
	CookTime    int            `json:"cookTime"`
	Ingredients []ItemQuantity `json:"ingredients"`
}

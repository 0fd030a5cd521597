package cookbook

import "github.com/cockroachdb/errors"

// Candidate is the tagged insertion payload. Fields whose absence matters
// are pointers so a missing field is distinguishable from a zero value.
type Candidate struct {
	Type          string             `json:"type" yaml:"type"`
	Name          string             `json:"name" yaml:"name"`
	CookTime      *int               `json:"cookTime" yaml:"cookTime"`
	RequiredItems *[]RequirementLine `json:"requiredItems" yaml:"requiredItems"`
}

// build checks the candidate rule by rule (first failure wins) and produces
// the entity to store. exists reports whether a name is already taken; the
// repository supplies it under its write lock so the uniqueness check and
// the insertion are one atomic step.
func (c Candidate) build(exists func(string) bool) (Entity, error) {
	kind := Kind(c.Type)
	if kind != KindIngredient && kind != KindRecipe {
		return Entity{}, errors.Wrapf(ErrInvalidEntity, "type must be %q or %q, got %q", KindIngredient, KindRecipe, c.Type)
	}
	if c.Name == "" {
		return Entity{}, errors.Wrap(ErrInvalidEntity, "name is required")
	}
	if exists(c.Name) {
		return Entity{}, errors.Wrapf(ErrInvalidEntity, "name already taken: %s", c.Name)
	}

	if kind == KindIngredient {
		if c.CookTime == nil {
			return Entity{}, errors.Wrapf(ErrInvalidEntity, "cookTime is required for %s", c.Name)
		}
		if *c.CookTime < 0 {
			return Entity{}, errors.Wrapf(ErrInvalidEntity, "cookTime for %s must be >= 0, got %d", c.Name, *c.CookTime)
		}
		return Entity{Kind: KindIngredient, Name: c.Name, CookTime: *c.CookTime}, nil
	}

	if c.RequiredItems == nil {
		return Entity{}, errors.Wrapf(ErrInvalidEntity, "requiredItems is required for %s", c.Name)
	}
	seen := make(map[string]bool, len(*c.RequiredItems))
	for _, line := range *c.RequiredItems {
		if line.Name == "" {
			return Entity{}, errors.Wrapf(ErrInvalidEntity, "requirement of %s is missing a name", c.Name)
		}
		if seen[line.Name] {
			return Entity{}, errors.Wrapf(ErrInvalidEntity, "%s requires %s twice", c.Name, line.Name)
		}
		seen[line.Name] = true
		if line.Quantity < 1 {
			return Entity{}, errors.Wrapf(ErrInvalidEntity, "quantity of %s in %s must be >= 1, got %d", line.Name, c.Name, line.Quantity)
		}
	}

	items := make([]RequirementLine, len(*c.RequiredItems))
	copy(items, *c.RequiredItems)
	return Entity{Kind: KindRecipe, Name: c.Name, RequiredItems: items}, nil
}

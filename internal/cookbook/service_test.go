package cookbook

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seededService(t *testing.T, candidates ...Candidate) *Service {
	t.Helper()
	r := NewMemoryRepo()
	require.NoError(t, r.Seed(context.Background(), candidates))
	return NewService(r)
}

func TestSummarize_SingleIngredient(t *testing.T) {
	svc := seededService(t,
		ingredient("Flour", 2),
		recipe("Bread", RequirementLine{Name: "Flour", Quantity: 2}),
	)

	sum, err := svc.Summarize(context.Background(), "Bread")
	require.NoError(t, err)
	assert.Equal(t, "Bread", sum.Name)
	assert.Equal(t, 4, sum.CookTime)
	assert.Equal(t, []ItemQuantity{{Name: "Flour", Quantity: 2}}, sum.Ingredients)
}

func TestSummarize_SharedIngredientAcrossPaths(t *testing.T) {
	// Flour is reachable both through Dough and directly; the two
	// contributions must add.
	svc := seededService(t,
		ingredient("Flour", 2),
		recipe("Dough", RequirementLine{Name: "Flour", Quantity: 2}),
		recipe("Bread",
			RequirementLine{Name: "Dough", Quantity: 1},
			RequirementLine{Name: "Flour", Quantity: 1},
		),
	)

	sum, err := svc.Summarize(context.Background(), "Bread")
	require.NoError(t, err)
	assert.Equal(t, 6, sum.CookTime)
	assert.Equal(t, []ItemQuantity{{Name: "Flour", Quantity: 3}}, sum.Ingredients)
}

func TestSummarize_MultiplierPropagation(t *testing.T) {
	svc := seededService(t,
		ingredient("Egg", 3),
		ingredient("Milk", 1),
		recipe("Custard",
			RequirementLine{Name: "Egg", Quantity: 4},
			RequirementLine{Name: "Milk", Quantity: 2},
		),
		recipe("Trifle", RequirementLine{Name: "Custard", Quantity: 3}),
	)

	sum, err := svc.Summarize(context.Background(), "Trifle")
	require.NoError(t, err)
	// 3 custards need 12 eggs and 6 milk: 12*3 + 6*1 = 42.
	assert.Equal(t, 42, sum.CookTime)
	assert.Equal(t, []ItemQuantity{
		{Name: "Egg", Quantity: 12},
		{Name: "Milk", Quantity: 6},
	}, sum.Ingredients)
}

func TestSummarize_IngredientOrderIsFirstReached(t *testing.T) {
	svc := seededService(t,
		ingredient("Butter", 1),
		ingredient("Sugar", 1),
		recipe("Base", RequirementLine{Name: "Butter", Quantity: 1}),
		recipe("Cake",
			RequirementLine{Name: "Sugar", Quantity: 1},
			RequirementLine{Name: "Base", Quantity: 1},
			RequirementLine{Name: "Butter", Quantity: 1},
		),
	)

	sum, err := svc.Summarize(context.Background(), "Cake")
	require.NoError(t, err)
	assert.Equal(t, []ItemQuantity{
		{Name: "Sugar", Quantity: 1},
		{Name: "Butter", Quantity: 2},
	}, sum.Ingredients)
}

func TestSummarize_UnknownName(t *testing.T) {
	svc := seededService(t, ingredient("Flour", 2))

	_, err := svc.Summarize(context.Background(), "Bread")
	assert.ErrorIs(t, err, ErrNotRecipe)
}

func TestSummarize_NameIsAnIngredient(t *testing.T) {
	svc := seededService(t, ingredient("Flour", 2))

	_, err := svc.Summarize(context.Background(), "Flour")
	assert.ErrorIs(t, err, ErrNotRecipe)
}

func TestSummarize_MissingRequirementAbortsWhole(t *testing.T) {
	svc := seededService(t,
		ingredient("Flour", 2),
		recipe("Bread",
			RequirementLine{Name: "Flour", Quantity: 2},
			RequirementLine{Name: "Yeast", Quantity: 1},
		),
	)

	sum, err := svc.Summarize(context.Background(), "Bread")
	assert.ErrorIs(t, err, ErrMissingRequirement)
	assert.Zero(t, sum, "no partial summary on failure")
}

func TestSummarize_MissingTransitiveRequirement(t *testing.T) {
	svc := seededService(t,
		recipe("Dough", RequirementLine{Name: "Flour", Quantity: 2}),
		recipe("Bread", RequirementLine{Name: "Dough", Quantity: 1}),
	)

	_, err := svc.Summarize(context.Background(), "Bread")
	assert.ErrorIs(t, err, ErrMissingRequirement)
}

func TestSummarize_SelfCycle(t *testing.T) {
	svc := seededService(t,
		recipe("Sourdough", RequirementLine{Name: "Sourdough", Quantity: 1}),
	)

	_, err := svc.Summarize(context.Background(), "Sourdough")
	assert.ErrorIs(t, err, ErrCyclicRequirement)
}

func TestSummarize_IndirectCycle(t *testing.T) {
	svc := seededService(t,
		recipe("Chicken", RequirementLine{Name: "Egg", Quantity: 1}),
		recipe("Egg", RequirementLine{Name: "Chicken", Quantity: 1}),
	)

	_, err := svc.Summarize(context.Background(), "Chicken")
	assert.ErrorIs(t, err, ErrCyclicRequirement)
}

func TestSummarize_RepeatedRecipeOnDistinctPathsIsNotACycle(t *testing.T) {
	// Dough appears under two siblings; it is only a cycle when it sits
	// on its own expansion path.
	svc := seededService(t,
		ingredient("Flour", 2),
		recipe("Dough", RequirementLine{Name: "Flour", Quantity: 1}),
		recipe("Roll", RequirementLine{Name: "Dough", Quantity: 2}),
		recipe("Platter",
			RequirementLine{Name: "Dough", Quantity: 1},
			RequirementLine{Name: "Roll", Quantity: 1},
		),
	)

	sum, err := svc.Summarize(context.Background(), "Platter")
	require.NoError(t, err)
	assert.Equal(t, []ItemQuantity{{Name: "Flour", Quantity: 3}}, sum.Ingredients)
}

func TestSummarize_MaxDepthFence(t *testing.T) {
	svc := seededService(t,
		ingredient("Flour", 1),
		recipe("A", RequirementLine{Name: "Flour", Quantity: 1}),
		recipe("B", RequirementLine{Name: "A", Quantity: 1}),
		recipe("C", RequirementLine{Name: "B", Quantity: 1}),
	)
	svc.SetMaxDepth(2)

	_, err := svc.Summarize(context.Background(), "C")
	assert.ErrorIs(t, err, ErrCyclicRequirement)

	svc.SetMaxDepth(0)
	_, err = svc.Summarize(context.Background(), "C")
	assert.NoError(t, err)
}

func TestSummarize_Idempotent(t *testing.T) {
	svc := seededService(t,
		ingredient("Flour", 2),
		recipe("Dough", RequirementLine{Name: "Flour", Quantity: 2}),
		recipe("Bread",
			RequirementLine{Name: "Dough", Quantity: 1},
			RequirementLine{Name: "Flour", Quantity: 1},
		),
	)

	first, err := svc.Summarize(context.Background(), "Bread")
	require.NoError(t, err)
	second, err := svc.Summarize(context.Background(), "Bread")
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestSummarize_UnknownStoredKind(t *testing.T) {
	r := NewMemoryRepo()
	require.NoError(t, r.Seed(context.Background(), []Candidate{
		recipe("Bread", RequirementLine{Name: "Mystery", Quantity: 1}),
	}))
	// Bypass validated insertion to plant a corrupt entry.
	r.entities["Mystery"] = Entity{Kind: "gadget", Name: "Mystery"}
	r.order = append(r.order, "Mystery")

	_, err := NewService(r).Summarize(context.Background(), "Bread")
	assert.ErrorIs(t, err, ErrUnknownKind)
}

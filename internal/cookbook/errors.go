package cookbook

import "github.com/cockroachdb/errors"

var (
	// ErrInvalidEntity rejects a malformed or conflicting insertion payload.
	ErrInvalidEntity = errors.New("invalid entity")

	// ErrNotRecipe means a summary was requested for a name that is absent
	// from the cookbook or names an ingredient.
	ErrNotRecipe = errors.New("unknown name or not a recipe")

	// ErrMissingRequirement means a recipe, directly or transitively,
	// requires an item that is not in the cookbook.
	ErrMissingRequirement = errors.New("required item is not in the cookbook")

	// ErrCyclicRequirement means a recipe was reached while it was still
	// being expanded on the same path.
	ErrCyclicRequirement = errors.New("cyclic requirement")

	// ErrUnknownKind guards against a stored entity whose kind tag is
	// unrecognized. Unreachable through validated insertion.
	ErrUnknownKind = errors.New("unknown entity kind")
)

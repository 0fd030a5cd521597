package cookbook

import (
	"context"
	"time"

	"github.com/cockroachdb/errors"
)

// Service resolves recipe summaries against a repository. It only reads;
// the repository is never mutated during resolution.
type Service struct {
	repo     Repository
	maxDepth int
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// SetMaxDepth bounds expansion depth as a second fence behind cycle
// detection. Zero leaves expansion unbounded.
func (s *Service) SetMaxDepth(n int) {
	s.maxDepth = n
}

// Summarize flattens the named recipe's requirement graph into its total
// cook time and the summed quantity of every base ingredient it reaches,
// across all paths. Failures return no partial summary.
func (s *Service) Summarize(ctx context.Context, name string) (Summary, error) {
	start := time.Now()
	sum, err := s.summarize(ctx, name)
	observeSummary(start, err)
	return sum, err
}

func (s *Service) summarize(ctx context.Context, name string) (Summary, error) {
	e, ok, err := s.repo.Get(ctx, name)
	if err != nil {
		return Summary{}, err
	}
	if !ok || e.Kind != KindRecipe {
		return Summary{}, errors.Wrapf(ErrNotRecipe, "%s", name)
	}

	acc := &accumulator{
		totals:    make(map[string]int),
		expanding: make(map[string]bool),
	}
	if err := s.expand(ctx, e, 1, 0, acc); err != nil {
		return Summary{}, err
	}

	ingredients := make([]ItemQuantity, 0, len(acc.order))
	for _, n := range acc.order {
		ingredients = append(ingredients, ItemQuantity{Name: n, Quantity: acc.totals[n]})
	}
	return Summary{Name: name, CookTime: acc.cookTime, Ingredients: ingredients}, nil
}

// accumulator is shared across the whole expansion so contributions from
// every path to the same ingredient add up. order records names as they
// are first reached, which keeps summaries deterministic for a fixed
// cookbook state.
type accumulator struct {
	cookTime  int
	totals    map[string]int
	order     []string
	expanding map[string]bool // recipe names on the current expansion path
}

func (s *Service) expand(ctx context.Context, rec Entity, multiplier, depth int, acc *accumulator) error {
	if acc.expanding[rec.Name] {
		return errors.Wrapf(ErrCyclicRequirement, "%s transitively requires itself", rec.Name)
	}
	if s.maxDepth > 0 && depth >= s.maxDepth {
		return errors.Wrapf(ErrCyclicRequirement, "expansion exceeded depth %d at %s", s.maxDepth, rec.Name)
	}
	acc.expanding[rec.Name] = true
	defer delete(acc.expanding, rec.Name)

	for _, line := range rec.RequiredItems {
		needed := line.Quantity * multiplier

		item, ok, err := s.repo.Get(ctx, line.Name)
		if err != nil {
			return err
		}
		if !ok {
			return errors.Wrapf(ErrMissingRequirement, "%s requires %s", rec.Name, line.Name)
		}

		switch item.Kind {
		case KindIngredient:
			acc.cookTime += item.CookTime * needed
			if _, seen := acc.totals[item.Name]; !seen {
				acc.order = append(acc.order, item.Name)
			}
			acc.totals[item.Name] += needed
		case KindRecipe:
			if err := s.expand(ctx, item, needed, depth+1, acc); err != nil {
				return err
			}
		default:
			return errors.Wrapf(ErrUnknownKind, "%s is stored as %q", item.Name, item.Kind)
		}
	}
	return nil
}

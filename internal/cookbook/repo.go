package cookbook

import "context"

type Repository interface {
	Seed(ctx context.Context, candidates []Candidate) error

	Insert(ctx context.Context, c Candidate) (Entity, error)
	Get(ctx context.Context, name string) (Entity, bool, error)
	List(ctx context.Context) ([]Entity, error)
}

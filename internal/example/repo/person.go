package repo

import (
	"context"

	"github.com/mickamy/ormlatest/internal/example/model"
	"github.com/mickamy/ormlatest/orm"
)

type PersonRepository struct {
	db orm.Querier
}

func NewPersonRepository(db orm.Querier) *PersonRepository {
	return &PersonRepository{db: db}
}

func (r *PersonRepository) Create(ctx context.Context, p *model.Person) error {
	return model.People(r.db).Create(ctx, p)
}

func (r *PersonRepository) FindAll(ctx context.Context) ([]model.Person, error) {
	return model.People(r.db).OrderBy("id").All(ctx)
}

// Find returns the earliest or newest person by field. People declare no
// default ordering, so an empty field yields an *orm.ConfigError.
func (r *PersonRepository) Find(ctx context.Context, b Bound, field string) (model.Person, error) {
	return find(ctx, model.People(r.db), b, field)
}

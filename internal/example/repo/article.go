package repo

import (
	"context"
	"time"

	"github.com/mickamy/ormlatest/internal/example/model"
	"github.com/mickamy/ormlatest/orm"
	"github.com/mickamy/ormlatest/scope"
)

// Bound selects which end of the ordering a lookup returns.
type Bound int

const (
	Earliest Bound = iota
	Newest
)

// ArticleFilter narrows articles by publication date. Zero values are ignored.
type ArticleFilter struct {
	PublishedAfter  time.Time
	PublishedBefore time.Time
}

func (f ArticleFilter) scopes() scope.Scopes {
	var ss scope.Scopes
	if !f.PublishedAfter.IsZero() {
		ss = ss.Append(scope.Gt("pub_date", f.PublishedAfter))
	}
	if !f.PublishedBefore.IsZero() {
		ss = ss.Append(scope.Lt("pub_date", f.PublishedBefore))
	}
	return ss
}

// ArticleRepository wraps generated query functions with a repository pattern.
type ArticleRepository struct {
	db orm.Querier
}

func NewArticleRepository(db orm.Querier) *ArticleRepository {
	return &ArticleRepository{db: db}
}

func (r *ArticleRepository) Create(ctx context.Context, a *model.Article) error {
	return model.Articles(r.db).Create(ctx, a)
}

func (r *ArticleRepository) FindAll(ctx context.Context, f ArticleFilter) ([]model.Article, error) {
	return model.Articles(r.db).Scopes(f.scopes()...).OrderBy("id").All(ctx)
}

// Find returns the earliest or newest article matching f, ordered by field
// or by pub_date when field is empty.
func (r *ArticleRepository) Find(ctx context.Context, b Bound, field string, f ArticleFilter) (model.Article, error) {
	return find(ctx, model.Articles(r.db).Scopes(f.scopes()...), b, field)
}

func find[T any](ctx context.Context, q *orm.Query[T], b Bound, field string) (T, error) {
	switch {
	case b == Earliest && field == "":
		return q.First(ctx)
	case b == Earliest:
		return q.FirstBy(ctx, field)
	case field == "":
		return q.Latest(ctx)
	default:
		return q.LatestBy(ctx, field)
	}
}

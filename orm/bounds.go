package orm

import "context"

type direction string

const (
	ascending  direction = "ASC"
	descending direction = "DESC"
)

// First returns the row with the smallest value of the default ordering
// field (see RegisterLatestBy and LatestByer). Any ORDER BY already on the
// query is ignored.
//
// Errors:
//   - *ConfigError when no default field is declared
//   - *NotFoundError when no rows match
//   - ErrSlicedQuery when Limit or Offset has been applied
func (q *Query[T]) First(ctx context.Context) (T, error) {
	return q.bound(ctx, "", ascending)
}

// FirstBy is First ordered by the given column instead of the default.
func (q *Query[T]) FirstBy(ctx context.Context, field string) (T, error) {
	return q.bound(ctx, field, ascending)
}

// Latest returns the row with the largest value of the default ordering
// field. It fails the same way First does.
func (q *Query[T]) Latest(ctx context.Context) (T, error) {
	return q.bound(ctx, "", descending)
}

// LatestBy is Latest ordered by the given column instead of the default.
func (q *Query[T]) LatestBy(ctx context.Context, field string) (T, error) {
	return q.bound(ctx, field, descending)
}

// bound runs a single ORDER BY ... LIMIT 1 query on a copy of q. Ties on
// field are broken by the primary key in the same direction.
func (q *Query[T]) bound(ctx context.Context, field string, dir direction) (T, error) {
	var zero T

	field, err := q.resolveField(field)
	if err != nil {
		return zero, err
	}
	if q.limit != nil || q.offset != nil {
		return zero, ErrSlicedQuery
	}

	q2 := q.clone()
	q2.orderBys = []string{q.qi(field) + " " + string(dir)}
	if q.pk != "" && q.pk != field {
		q2.orderBys = append(q2.orderBys, q.qi(q.pk)+" "+string(dir))
	}
	return q2.Take(ctx)
}

func (q *Query[T]) resolveField(field string) (string, error) {
	if field == "" {
		field = q.latestBy
	}
	if field == "" {
		return "", &ConfigError{
			Table:  q.table,
			Reason: "First and Latest require a field name or a declared latestBy column",
		}
	}
	if !q.hasColumn(field) {
		return "", &FieldError{Table: q.table, Field: field}
	}
	return field, nil
}

// Package scope provides reusable query fragments: filters, ordering and
// pagination that can be applied to any orm.Query.
//
// Scopes do not know the dialect, so column names are written into the SQL
// as given, like the clause passed to Where. Quote reserved words yourself:
//
//	scope.Gt(`"order"`, 3) // SQLite, PostgreSQL
//	scope.Gt("`order`", 3) // MySQL
package scope

import "strings"

// Applier is implemented by query builders to receive scope fragments.
// This interface lives in the scope package so that orm can import scope
// without creating circular dependencies.
type Applier interface {
	ApplyWhere(clause string, args []any)
	ApplyOrderBy(clause string)
	ApplyLimit(n int)
	ApplyOffset(n int)
	ApplySelect(columns string)
}

type scopeKind int

const (
	kindWhere scopeKind = iota
	kindOrderBy
	kindLimit
	kindOffset
	kindSelect
)

// Scope represents a single query condition fragment.
// Scopes are immutable and safe to reuse across queries.
type Scope struct {
	kind   scopeKind
	clause string
	args   []any
	n      int
}

// Apply dispatches this Scope to the given Applier.
func (s Scope) Apply(a Applier) {
	switch s.kind {
	case kindWhere:
		a.ApplyWhere(s.clause, s.args)
	case kindOrderBy:
		a.ApplyOrderBy(s.clause)
	case kindLimit:
		a.ApplyLimit(s.n)
	case kindOffset:
		a.ApplyOffset(s.n)
	case kindSelect:
		a.ApplySelect(s.clause)
	}
}

// Where returns a Scope that adds a WHERE clause fragment.
//
//	scope.Where("age > ?", 18)
//	scope.Where("name = ? AND role = ?", "alice", "admin")
func Where(clause string, args ...any) Scope {
	return Scope{kind: kindWhere, clause: clause, args: args}
}

// Eq filters rows whose column equals v.
func Eq(column string, v any) Scope { return compare(column, "=", v) }

// Ne filters rows whose column differs from v.
func Ne(column string, v any) Scope { return compare(column, "<>", v) }

// Gt filters rows whose column is strictly greater than v.
//
//	scope.Gt("pub_date", time.Date(2005, 7, 26, 0, 0, 0, 0, time.UTC))
func Gt(column string, v any) Scope { return compare(column, ">", v) }

// Gte filters rows whose column is greater than or equal to v.
func Gte(column string, v any) Scope { return compare(column, ">=", v) }

// Lt filters rows whose column is strictly less than v.
func Lt(column string, v any) Scope { return compare(column, "<", v) }

// Lte filters rows whose column is less than or equal to v.
func Lte(column string, v any) Scope { return compare(column, "<=", v) }

// compare writes column verbatim; see the package doc on quoting.
func compare(column, op string, v any) Scope {
	return Where(column+" "+op+" ?", v)
}

// OrderBy returns a Scope that appends to the ORDER BY clause.
//
//	scope.OrderBy("created_at DESC")
func OrderBy(clause string) Scope {
	return Scope{kind: kindOrderBy, clause: clause}
}

// Limit returns a Scope that sets the LIMIT.
func Limit(n int) Scope {
	return Scope{kind: kindLimit, n: n}
}

// Offset returns a Scope that sets the OFFSET.
func Offset(n int) Scope {
	return Scope{kind: kindOffset, n: n}
}

// Select returns a Scope that overrides the SELECT column list.
//
//	scope.Select("id", "headline")
func Select(columns ...string) Scope {
	return Scope{kind: kindSelect, clause: strings.Join(columns, ", ")}
}

// In returns a WHERE scope with an IN clause, expanding the slice into
// individual placeholders.
//
//	scope.In("id", []int{1, 2, 3})  // → WHERE id IN (?, ?, ?)
func In[T any](column string, values []T) Scope {
	if len(values) == 0 {
		return Where("1 = 0")
	}
	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(values)), ", ")
	args := make([]any, len(values))
	for i, v := range values {
		args[i] = v
	}
	return Where(column+" IN ("+placeholders+")", args...)
}

// Scopes is a named slice of Scope, useful for conditionally building
// up a set of scopes.
//
//	var s scope.Scopes
//	if after != nil {
//	    s = s.Append(scope.Gt("pub_date", *after))
//	}
//	Articles(db).Scopes(s...).Latest(ctx)
type Scopes []Scope

// Append adds scopes and returns a new Scopes. The receiver is not modified.
func (ss Scopes) Append(scopes ...Scope) Scopes {
	return append(append(Scopes(nil), ss...), scopes...)
}

// Combine creates a Scopes from the given scopes.
//
//	scope.Combine(scope.Limit(10), scope.Offset(20))
func Combine(scopes ...Scope) Scopes {
	return Scopes(scopes)
}

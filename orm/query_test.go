package orm_test

import (
	"database/sql"
	"testing"

	"github.com/mickamy/ormlatest/orm"
	"github.com/mickamy/ormlatest/scope"
)

type testArticle struct {
	ID       int
	Headline string
	PubDate  string
}

var testArticleColumns = []string{"id", "headline", "pub_date", "expire_date"}

func scanTestArticle(_ *sql.Rows) (testArticle, error) {
	return testArticle{}, nil
}

func testArticleColValPairs(a *testArticle, includesPK bool) ([]string, []any) {
	if includesPK {
		return []string{"id", "headline", "pub_date"}, []any{a.ID, a.Headline, a.PubDate}
	}
	return []string{"headline", "pub_date"}, []any{a.Headline, a.PubDate}
}

func setTestArticlePK(a *testArticle, id int64) {
	a.ID = int(id)
}

func newTestQuery(tq *orm.TestQuerier) *orm.Query[testArticle] {
	return orm.NewQuery[testArticle](
		tq, "articles", testArticleColumns, "id",
		scanTestArticle, testArticleColValPairs, setTestArticlePK,
	)
}

// --- SELECT ---

func TestBuildSelect(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		dialect orm.Dialect
		build   func(q *orm.Query[testArticle]) *orm.Query[testArticle]
		want    string
	}{
		{
			name:    "all",
			dialect: orm.MySQL,
			build:   func(q *orm.Query[testArticle]) *orm.Query[testArticle] { return q },
			want:    "SELECT `id`, `headline`, `pub_date`, `expire_date` FROM `articles`",
		},
		{
			name:    "where and order",
			dialect: orm.MySQL,
			build: func(q *orm.Query[testArticle]) *orm.Query[testArticle] {
				return q.Where("headline = ?", "a").Where("id > ?", 10).OrderBy("id DESC")
			},
			want: "SELECT `id`, `headline`, `pub_date`, `expire_date` FROM `articles` WHERE (headline = ?) AND (id > ?) ORDER BY id DESC",
		},
		{
			name:    "limit offset",
			dialect: orm.MySQL,
			build: func(q *orm.Query[testArticle]) *orm.Query[testArticle] {
				return q.Limit(10).Offset(20)
			},
			want: "SELECT `id`, `headline`, `pub_date`, `expire_date` FROM `articles` LIMIT 10 OFFSET 20",
		},
		{
			name:    "custom columns",
			dialect: orm.MySQL,
			build:   func(q *orm.Query[testArticle]) *orm.Query[testArticle] { return q.Select("id") },
			want:    "SELECT id FROM `articles`",
		},
		{
			name:    "scopes",
			dialect: orm.MySQL,
			build: func(q *orm.Query[testArticle]) *orm.Query[testArticle] {
				return q.Scopes(scope.Gt("pub_date", "2005-07-26"), scope.OrderBy("id DESC"), scope.Limit(5))
			},
			want: "SELECT `id`, `headline`, `pub_date`, `expire_date` FROM `articles` WHERE pub_date > ? ORDER BY id DESC LIMIT 5",
		},
		{
			name:    "postgres placeholders",
			dialect: orm.PostgreSQL,
			build: func(q *orm.Query[testArticle]) *orm.Query[testArticle] {
				return q.Where("headline = ?", "a").Where("id > ?", 10)
			},
			want: `SELECT "id", "headline", "pub_date", "expire_date" FROM "articles" WHERE (headline = $1) AND (id > $2)`,
		},
		{
			name:    "sqlite quoting",
			dialect: orm.SQLite,
			build: func(q *orm.Query[testArticle]) *orm.Query[testArticle] {
				return q.Where("headline = ?", "a")
			},
			want: `SELECT "id", "headline", "pub_date", "expire_date" FROM "articles" WHERE headline = ?`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			tq := orm.NewTestQuerier(tt.dialect)
			_, _ = tt.build(newTestQuery(tq)).All(t.Context())

			if got := tq.LastQuery().SQL; got != tt.want {
				t.Errorf("SQL = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestQueryImmutability(t *testing.T) {
	t.Parallel()

	tq := orm.NewTestQuerier(orm.MySQL)
	base := newTestQuery(tq)

	_ = base.Where("headline = ?", "a")
	_ = base.OrderBy("id")
	_ = base.Limit(10)
	_ = base.Offset(5)

	_, _ = base.All(t.Context())

	got := tq.LastQuery()
	want := "SELECT `id`, `headline`, `pub_date`, `expire_date` FROM `articles`"
	if got.SQL != want {
		t.Errorf("base query was mutated: SQL = %q", got.SQL)
	}
}

func TestTakeAddsLimit(t *testing.T) {
	t.Parallel()

	tq := orm.NewTestQuerier(orm.MySQL)
	_, _ = newTestQuery(tq).OrderBy("id").Take(t.Context())

	want := "SELECT `id`, `headline`, `pub_date`, `expire_date` FROM `articles` ORDER BY id LIMIT 1"
	if got := tq.LastQuery().SQL; got != want {
		t.Errorf("SQL = %q, want %q", got, want)
	}
}

func TestCount(t *testing.T) {
	t.Parallel()

	tq := orm.NewTestQuerier(orm.PostgreSQL)
	_, _ = newTestQuery(tq).Where("pub_date > ?", "2005-07-26").Count(t.Context())

	want := `SELECT COUNT(*) FROM "articles" WHERE pub_date > $1`
	if got := tq.LastQuery().SQL; got != want {
		t.Errorf("SQL = %q, want %q", got, want)
	}
}

func TestCountGroupsFragments(t *testing.T) {
	t.Parallel()

	tq := orm.NewTestQuerier(orm.MySQL)
	_, _ = newTestQuery(tq).
		Where("id = ? OR id = ?", 1, 2).
		Scopes(scope.Gt("pub_date", "2005-07-26")).
		Count(t.Context())

	want := "SELECT COUNT(*) FROM `articles` WHERE (id = ? OR id = ?) AND (pub_date > ?)"
	if got := tq.LastQuery().SQL; got != want {
		t.Errorf("SQL = %q, want %q", got, want)
	}
}

// --- INSERT / UPDATE / DELETE ---

func TestBuildInsert(t *testing.T) {
	t.Parallel()

	tests := []struct {
		dialect orm.Dialect
		want    string
	}{
		{orm.MySQL, "INSERT INTO `articles` (`headline`, `pub_date`) VALUES (?, ?)"},
		{orm.PostgreSQL, `INSERT INTO "articles" ("headline", "pub_date") VALUES ($1, $2) RETURNING "id"`},
		{orm.SQLite, `INSERT INTO "articles" ("headline", "pub_date") VALUES (?, ?)`},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			t.Parallel()

			tq := orm.NewTestQuerier(tt.dialect)
			a := testArticle{Headline: "Article 1", PubDate: "2005-07-26"}
			_ = newTestQuery(tq).Create(t.Context(), &a)

			got := tq.LastQuery()
			if got.SQL != tt.want {
				t.Errorf("SQL = %q, want %q", got.SQL, tt.want)
			}
			if len(got.Args) != 2 || got.Args[0] != "Article 1" {
				t.Errorf("Args = %v", got.Args)
			}
		})
	}
}

func TestBuildUpdate(t *testing.T) {
	t.Parallel()

	tq := orm.NewTestQuerier(orm.PostgreSQL)
	a := testArticle{ID: 1, Headline: "Article 1", PubDate: "2005-07-26"}
	_ = newTestQuery(tq).Update(t.Context(), &a)

	got := tq.LastQuery()
	want := `UPDATE "articles" SET "headline" = $1, "pub_date" = $2 WHERE "id" = $3`
	if got.SQL != want {
		t.Errorf("SQL = %q, want %q", got.SQL, want)
	}
	if len(got.Args) != 3 || got.Args[2] != 1 {
		t.Errorf("Args = %v, want PK last", got.Args)
	}
}

func TestBuildDelete(t *testing.T) {
	t.Parallel()

	tq := orm.NewTestQuerier(orm.MySQL)
	_ = newTestQuery(tq).Where("id = ?", 1).Delete(t.Context())

	want := "DELETE FROM `articles` WHERE id = ?"
	if got := tq.LastQuery().SQL; got != want {
		t.Errorf("SQL = %q, want %q", got, want)
	}
}

func TestDeleteWithoutWhereReturnsError(t *testing.T) {
	t.Parallel()

	tq := orm.NewTestQuerier(orm.MySQL)
	if err := newTestQuery(tq).Delete(t.Context()); err == nil {
		t.Fatal("expected error for Delete without WHERE")
	}
	if len(tq.Queries) != 0 {
		t.Errorf("expected no queries, got %d", len(tq.Queries))
	}
}

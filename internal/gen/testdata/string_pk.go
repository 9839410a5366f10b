package testdata

type Slug struct {
	Code  string `db:"code,primaryKey"`
	Title string `db:"title"`
}

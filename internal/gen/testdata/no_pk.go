package testdata

type Event struct {
	Kind string `db:"kind"`
}

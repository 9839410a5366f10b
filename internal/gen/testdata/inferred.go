package testdata

import "time"

type Inferred struct {
	ID        int64     `db:",primaryKey"`
	Name      string    // no db tag — column inferred as "name"
	SeenAt    time.Time `db:",latestBy"`
	Secret    string    `db:"-"` // explicitly skipped
	internal  string    // unexported — skipped
}

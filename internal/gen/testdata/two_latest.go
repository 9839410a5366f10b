package testdata

import "time"

type Ambiguous struct {
	ID        int       `db:"id"`
	CreatedAt time.Time `db:"created_at,latestBy"`
	UpdatedAt time.Time `db:"updated_at,latestBy"`
}

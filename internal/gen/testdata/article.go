package testdata

import "time"

type Article struct {
	ID         int       `db:"id,primaryKey"`
	Headline   string    `db:"headline"`
	PubDate    time.Time `db:"pub_date,latestBy"`
	ExpireDate time.Time `db:"expire_date"`
	Tags       []string  `db:"-"`
	internal   string    // unexported, no tag — skipped
}

type Person struct {
	ID       int
	Name     string
	Birthday time.Time
}

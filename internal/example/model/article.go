// Package model holds the example schema used by cmd/bounds: articles that
// declare pub_date as their default ordering field, and people that declare
// none.
package model

import "time"

//go:generate go run github.com/mickamy/ormlatest -type=Article

type Article struct {
	ID         int       `db:"id,primaryKey"`
	Headline   string    `db:"headline"`
	PubDate    time.Time `db:"pub_date,latestBy"`
	ExpireDate time.Time `db:"expire_date"`
}

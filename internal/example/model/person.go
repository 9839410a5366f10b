package model

import "time"

//go:generate go run github.com/mickamy/ormlatest -type=Person

type Person struct {
	ID       int
	Name     string
	Birthday time.Time
}

package repo

import (
	"context"
	"fmt"

	"github.com/mickamy/ormlatest/orm"
)

var schemas = map[orm.Dialect][]string{
	orm.SQLite: {
		`CREATE TABLE IF NOT EXISTS articles (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			headline TEXT NOT NULL,
			pub_date DATETIME NOT NULL,
			expire_date DATETIME NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS people (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL,
			birthday DATETIME NOT NULL
		)`,
	},
	orm.MySQL: {
		`CREATE TABLE IF NOT EXISTS articles (
			id INT AUTO_INCREMENT PRIMARY KEY,
			headline VARCHAR(100) NOT NULL,
			pub_date DATETIME NOT NULL,
			expire_date DATETIME NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS people (
			id INT AUTO_INCREMENT PRIMARY KEY,
			name VARCHAR(30) NOT NULL,
			birthday DATE NOT NULL
		)`,
	},
	orm.PostgreSQL: {
		`CREATE TABLE IF NOT EXISTS articles (
			id SERIAL PRIMARY KEY,
			headline VARCHAR(100) NOT NULL,
			pub_date TIMESTAMP NOT NULL,
			expire_date TIMESTAMP NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS people (
			id SERIAL PRIMARY KEY,
			name VARCHAR(30) NOT NULL,
			birthday DATE NOT NULL
		)`,
	},
}

// Migrate creates the example tables if they do not exist.
func Migrate(ctx context.Context, db *orm.DB) error {
	stmts, ok := schemas[db.Dialect()]
	if !ok {
		return fmt.Errorf("repo: no schema for dialect %T", db.Dialect())
	}
	for _, stmt := range stmts {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("repo: migrate: %w", err)
		}
	}
	return nil
}

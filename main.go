package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/jinzhu/inflection"

	"github.com/mickamy/ormlatest/internal/gen"
	"github.com/mickamy/ormlatest/internal/naming"
)

var version = "dev"

func main() {
	typeName := flag.String("type", "", "struct type name (required)")
	tableName := flag.String("table", "", "table name (optional; inferred from -type if omitted)")
	showVersion := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println("ormlatest", version)
		return
	}

	if *typeName == "" {
		log.Fatal("-type flag is required")
	}

	if *tableName == "" {
		*tableName = inferTableName(*typeName)
	}

	goFile := os.Getenv("GOFILE")
	if goFile == "" {
		log.Fatal("GOFILE environment variable is not set (run via go:generate)")
	}

	infos, err := gen.Parse(goFile)
	if err != nil {
		log.Fatalf("parse: %v", err)
	}

	info := gen.Lookup(infos, *typeName)
	if info == nil {
		log.Fatalf("type %s not found in %s", *typeName, goFile)
	}
	info.TableName = *tableName

	src, err := gen.Render(info)
	if err != nil {
		log.Fatalf("render: %v", err)
	}

	outFile := strings.ToLower(*typeName) + "_gen.go"
	outPath := filepath.Join(filepath.Dir(goFile), outFile)

	if err := os.WriteFile(outPath, src, 0o644); err != nil { //nolint:gosec // generated code should be world-readable
		log.Fatalf("write %s: %v", outPath, err)
	}

	fmt.Printf("ormlatest: wrote %s\n", outPath)
}

// inferTableName converts a CamelCase type name to a snake_case plural table name.
// e.g. "Article" -> "articles", "Person" -> "people"
func inferTableName(typeName string) string {
	return inflection.Plural(naming.CamelToSnake(typeName))
}

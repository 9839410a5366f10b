package gen

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"reflect"
	"strings"

	"github.com/mickamy/ormlatest/internal/naming"
)

// FieldInfo holds parsed metadata for one struct field.
type FieldInfo struct {
	Name       string // Go field name, e.g. "PubDate"
	Column     string // DB column name, e.g. "pub_date"
	GoType     string // Go type as string, e.g. "int", "time.Time"
	PrimaryKey bool   // tag option "primaryKey", or the field is named ID
	LatestBy   bool   // tag option "latestBy"
}

// StructInfo holds parsed metadata for the target struct.
type StructInfo struct {
	Name      string      // Go struct name, e.g. "Article"
	Package   string      // Package name, e.g. "model"
	Fields    []FieldInfo // Non-skipped db fields
	TableName string      // Set by the caller (from CLI flag)
}

// PrimaryKeyField returns the primary key field, or an error if none or
// multiple are defined.
func (s *StructInfo) PrimaryKeyField() (*FieldInfo, error) {
	var pk *FieldInfo
	for i := range s.Fields {
		if s.Fields[i].PrimaryKey {
			if pk != nil {
				return nil, fmt.Errorf("multiple primary keys: %s and %s", pk.Name, s.Fields[i].Name)
			}
			pk = &s.Fields[i]
		}
	}
	if pk == nil {
		return nil, fmt.Errorf("no primary key defined for %s", s.Name)
	}
	return pk, nil
}

// LatestByField returns the field tagged latestBy, nil if there is none,
// or an error if more than one field carries the option.
func (s *StructInfo) LatestByField() (*FieldInfo, error) {
	var lb *FieldInfo
	for i := range s.Fields {
		if s.Fields[i].LatestBy {
			if lb != nil {
				return nil, fmt.Errorf("multiple latestBy fields: %s and %s", lb.Name, s.Fields[i].Name)
			}
			lb = &s.Fields[i]
		}
	}
	return lb, nil
}

// Lookup returns the struct with the given name, or nil.
func Lookup(infos []*StructInfo, name string) *StructInfo {
	for _, info := range infos {
		if info.Name == name {
			return info
		}
	}
	return nil
}

// Parse reads the Go file at path and returns StructInfo for every struct
// that has at least one exported, non-skipped field.
func Parse(filePath string) ([]*StructInfo, error) {
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, filePath, nil, parser.ParseComments)
	if err != nil {
		return nil, fmt.Errorf("parse file: %w", err)
	}

	pkg := file.Name.Name
	var infos []*StructInfo

	ast.Inspect(file, func(n ast.Node) bool {
		ts, ok := n.(*ast.TypeSpec)
		if !ok {
			return true
		}

		st, ok := ts.Type.(*ast.StructType)
		if !ok {
			return true
		}

		fields := parseStructFields(st)
		if len(fields) == 0 {
			return true
		}

		infos = append(infos, &StructInfo{
			Name:    ts.Name.Name,
			Package: pkg,
			Fields:  fields,
		})
		return true
	})

	return infos, nil
}

func parseStructFields(st *ast.StructType) []FieldInfo {
	fields := make([]FieldInfo, 0, len(st.Fields.List))
	for _, field := range st.Fields.List {
		if fi, ok := parseField(field); ok {
			fields = append(fields, fi)
		}
	}
	return fields
}

func parseField(field *ast.Field) (FieldInfo, bool) {
	// embedded or unexported
	if len(field.Names) == 0 || !field.Names[0].IsExported() {
		return FieldInfo{}, false
	}

	name := field.Names[0].Name
	fi := FieldInfo{
		Name:       name,
		Column:     naming.CamelToSnake(name),
		GoType:     typeToString(field.Type),
		PrimaryKey: name == "ID",
	}

	if field.Tag == nil {
		return fi, true
	}
	tag := reflect.StructTag(strings.Trim(field.Tag.Value, "`"))
	dbTag, ok := tag.Lookup("db")
	if !ok {
		return fi, true
	}
	if dbTag == "-" {
		return FieldInfo{}, false
	}

	parts := strings.Split(dbTag, ",")
	if parts[0] != "" {
		fi.Column = parts[0]
	}
	for _, opt := range parts[1:] {
		switch strings.TrimSpace(opt) {
		case "primaryKey":
			fi.PrimaryKey = true
		case "latestBy":
			fi.LatestBy = true
		}
	}
	return fi, true
}

func typeToString(expr ast.Expr) string {
	switch t := expr.(type) {
	case *ast.Ident:
		return t.Name
	case *ast.SelectorExpr:
		return typeToString(t.X) + "." + t.Sel.Name
	case *ast.StarExpr:
		return "*" + typeToString(t.X)
	case *ast.ArrayType:
		if t.Len == nil {
			return "[]" + typeToString(t.Elt)
		}
		return fmt.Sprintf("[%s]%s", typeToString(t.Len), typeToString(t.Elt))
	case *ast.BasicLit:
		return t.Value
	default:
		return fmt.Sprintf("%T", expr)
	}
}

package orm

// TableNamer can be implemented by model structs to override the
// auto-derived table name.
type TableNamer interface {
	TableName() string
}

// LatestByer can be implemented by model structs to declare the column
// that First and Latest order by when no field is given.
type LatestByer interface {
	LatestBy() string
}

// ResolveTableName returns the table name for type T.
// If T implements TableNamer (value or pointer receiver), that name is used;
// otherwise fallback is returned.
func ResolveTableName[T any](fallback string) string {
	var zero T
	if tn, ok := any(&zero).(TableNamer); ok {
		return tn.TableName()
	}
	return fallback
}

// ResolveLatestBy returns the default ordering column for type T.
// If T implements LatestByer that column is used; otherwise fallback is
// returned. An empty result means T declares no default.
func ResolveLatestBy[T any](fallback string) string {
	var zero T
	if lb, ok := any(&zero).(LatestByer); ok {
		return lb.LatestBy()
	}
	return fallback
}

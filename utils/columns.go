package utils

import "reflect"

// ColumnList returns the list of "db" struct tags of T, the canonical
// column list of the dbmodel struct. Prefixes, when given, are joined to
// each column name ("u" -> "u.id").
func ColumnList[T any](prefixes ...string) []string {
	var value T
	t := reflect.TypeOf(value)

	prefix := ""
	for _, p := range prefixes {
		prefix += p + "."
	}

	columns := make([]string, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		tag := t.Field(i).Tag.Get("db")
		if tag == "" || tag == "-" {
			continue
		}
		columns = append(columns, prefix+tag)
	}
	return columns
}

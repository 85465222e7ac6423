package postgres

import (
	"reflect"
	"strings"
	"sync"
)

// typeCache caches per-type column metadata so reflection runs once per type.
var typeCache sync.Map // reflect.Type -> []fieldInfo

type fieldInfo struct {
	index  int
	column string
}

func fieldsOf(t reflect.Type) []fieldInfo {
	if cached, ok := typeCache.Load(t); ok {
		return cached.([]fieldInfo)
	}
	var fields []fieldInfo
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		tag := f.Tag.Get("db")
		if tag == "" || tag == "-" {
			continue
		}
		column := strings.Split(tag, ",")[0]
		fields = append(fields, fieldInfo{index: i, column: column})
	}
	typeCache.Store(t, fields)
	return fields
}

// ExtractDBColumns returns the column names declared via `db` tags on T.
// Fields tagged `db:"-"` are excluded.
func ExtractDBColumns[T any]() []string {
	var zero T
	t := reflect.TypeOf(zero)
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	fields := fieldsOf(t)
	cols := make([]string, len(fields))
	for i, f := range fields {
		cols[i] = f.column
	}
	return cols
}

// StructToMap converts a struct into a column->value map using `db` tags,
// suitable for squirrel SetMap.
func StructToMap(entity any) map[string]any {
	v := reflect.ValueOf(entity)
	if v.Kind() == reflect.Ptr {
		v = v.Elem()
	}
	fields := fieldsOf(v.Type())
	m := make(map[string]any, len(fields))
	for _, f := range fields {
		m[f.column] = v.Field(f.index).Interface()
	}
	return m
}

package shared

import (
	"daily/shared/dto"
	"reflect"
	"slices"
	"strings"
)

const cacheKeySeparator = ":"

// IsBlank reports whether any of the values is empty or whitespace only.
func IsBlank(values ...string) bool {
	for _, value := range values {
		if strings.TrimSpace(value) == "" {
			return true
		}
	}

	return false
}

// TransformFields converts the db-tagged fields of a struct into a column map,
// zero values included. Columns listed in skip are left out.
func TransformFields(data any, skip ...string) map[string]any {
	val := reflect.Indirect(reflect.ValueOf(data))
	typ := val.Type()

	fields := make(map[string]any)

	for index := 0; index < val.NumField(); index++ {
		fieldName := typ.Field(index).Tag.Get("db")
		if fieldName == "" || slices.Contains(skip, fieldName) {
			continue
		}

		fields[fieldName] = val.Field(index).Interface()
	}

	return fields
}

func FilterByID(id int, fieldID, table string) dto.FilterGroup {
	return dto.FilterGroup{
		Filters: []any{
			dto.Filter{
				Field:    fieldID,
				Value:    id,
				Operator: dto.FilterOperatorEq,
				Table:    table,
			},
		},
	}
}

func BuildCacheKey(parts ...string) string {
	return strings.Join(parts, cacheKeySeparator)
}

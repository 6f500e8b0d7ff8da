package dto

import (
	"strings"
)

const (
	SortDirAsc  = "ASC"
	SortDirDesc = "DESC"
)

// QueryParams controls ordering of list queries.
type QueryParams struct {
	SortBy  string `json:"sort_by"  validate:"omitempty"`
	SortDir string `json:"sort_dir" validate:"omitempty,oneof=ASC DESC"`
}

// OrderBy returns params sorted on the given column, ascending unless dir says DESC.
func OrderBy(column, dir string) QueryParams {
	dir = strings.ToUpper(dir)
	if dir != SortDirDesc {
		dir = SortDirAsc
	}

	return QueryParams{SortBy: column, SortDir: dir}
}

package store

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

const (
	defaultPage  = 1
	defaultLimit = 10
)

// ProductFilter shapes list queries. IsActive defaults to active-only:
// soft-deleted products stay out of listings unless a caller asks for them.
type ProductFilter struct {
	Search     string
	CategoryID *uuid.UUID
	IsActive   *bool
	SortBy     string
	SortDir    string
	Page       int
	Limit      int
}

var productSortColumns = map[string]string{
	"name":       "name",
	"price":      "price",
	"stock":      "stock",
	"created_at": "created_at",
}

// Normalize fills defaults and clamps untrusted values.
func (f ProductFilter) Normalize() ProductFilter {
	if f.Page < 1 {
		f.Page = defaultPage
	}
	if f.Limit < 1 {
		f.Limit = defaultLimit
	}
	if f.IsActive == nil {
		active := true
		f.IsActive = &active
	}
	if _, ok := productSortColumns[f.SortBy]; !ok {
		f.SortBy = "created_at"
	}
	if dir := strings.ToLower(f.SortDir); dir == "asc" {
		f.SortDir = "asc"
	} else {
		f.SortDir = "desc"
	}
	return f
}

// OrderClause builds the ORDER BY expression from whitelisted columns only.
func (f ProductFilter) OrderClause() string {
	normalized := f.Normalize()
	return fmt.Sprintf("%s %s", productSortColumns[normalized.SortBy], strings.ToUpper(normalized.SortDir))
}

func (f ProductFilter) Offset() int {
	normalized := f.Normalize()
	return (normalized.Page - 1) * normalized.Limit
}

// CategoryFilter mirrors ProductFilter for category listings.
type CategoryFilter struct {
	Search   string
	IsActive *bool
	Page     int
	Limit    int
}

func (f CategoryFilter) Normalize() CategoryFilter {
	if f.Page < 1 {
		f.Page = defaultPage
	}
	if f.Limit < 1 {
		f.Limit = defaultLimit
	}
	if f.IsActive == nil {
		active := true
		f.IsActive = &active
	}
	return f
}

func (f CategoryFilter) Offset() int {
	normalized := f.Normalize()
	return (normalized.Page - 1) * normalized.Limit
}

// TotalPages computes the page count for a paged response.
func TotalPages(total int64, limit int) int64 {
	if limit < 1 {
		return 0
	}
	pages := total / int64(limit)
	if total%int64(limit) != 0 {
		pages++
	}
	return pages
}

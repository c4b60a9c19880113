package store

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestProductFilter_NormalizeDefaults(t *testing.T) {
	f := ProductFilter{}.Normalize()

	require.Equal(t, 1, f.Page)
	require.Equal(t, 10, f.Limit)
	require.NotNil(t, f.IsActive)
	require.True(t, *f.IsActive)
	require.Equal(t, "created_at", f.SortBy)
	require.Equal(t, "desc", f.SortDir)
}

func TestProductFilter_NormalizeClampsBadValues(t *testing.T) {
	f := ProductFilter{Page: -3, Limit: 0, SortBy: "password_hash", SortDir: "sideways"}.Normalize()

	require.Equal(t, 1, f.Page)
	require.Equal(t, 10, f.Limit)
	require.Equal(t, "created_at", f.SortBy)
	require.Equal(t, "desc", f.SortDir)
}

func TestProductFilter_NormalizeKeepsExplicitValues(t *testing.T) {
	inactive := false
	f := ProductFilter{Page: 3, Limit: 25, IsActive: &inactive, SortBy: "price", SortDir: "ASC"}.Normalize()

	require.Equal(t, 3, f.Page)
	require.Equal(t, 25, f.Limit)
	require.False(t, *f.IsActive)
	require.Equal(t, "price", f.SortBy)
	require.Equal(t, "asc", f.SortDir)
}

func TestProductFilter_OrderClauseUsesWhitelistOnly(t *testing.T) {
	require.Equal(t, "price ASC", ProductFilter{SortBy: "price", SortDir: "asc"}.OrderClause())
	require.Equal(t, "created_at DESC", ProductFilter{}.OrderClause())
	// Unknown columns cannot reach the ORDER BY.
	require.Equal(t, "created_at DESC", ProductFilter{SortBy: "name; DROP TABLE products"}.OrderClause())
}

func TestProductFilter_Offset(t *testing.T) {
	require.Equal(t, 0, ProductFilter{Page: 1, Limit: 10}.Offset())
	require.Equal(t, 10, ProductFilter{Page: 2, Limit: 10}.Offset())
	require.Equal(t, 50, ProductFilter{Page: 3, Limit: 25}.Offset())
	// Unnormalized input falls back to page 1.
	require.Equal(t, 0, ProductFilter{Page: -1, Limit: 10}.Offset())
}

func TestTotalPages(t *testing.T) {
	require.Equal(t, int64(0), TotalPages(0, 10))
	require.Equal(t, int64(1), TotalPages(10, 10))
	require.Equal(t, int64(2), TotalPages(11, 10))
	require.Equal(t, int64(1), TotalPages(1, 10))
	require.Equal(t, int64(0), TotalPages(100, 0))
}

package postgres

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcastell/tienda-api/internal/domain/entity"
)

func strPtr(s string) *string                   { return &s }
func intPtr(n int) *int                         { return &n }
func int64Ptr(n int64) *int64                   { return &n }
func decPtr(d decimal.Decimal) *decimal.Decimal { return &d }

// Patch vacío: ninguna columna en el SET.
func TestBuildProductUpdate_PatchVacio(t *testing.T) {
	updates, args := buildProductUpdate(entity.ProductPatch{})
	assert.Empty(t, updates)
	assert.Empty(t, args)
}

// Solo los campos presentes generan columnas, con placeholders consecutivos.
func TestBuildProductUpdate_Subconjunto(t *testing.T) {
	patch := entity.ProductPatch{
		Discount: decPtr(decimal.NewFromInt(10)),
		Stock:    intPtr(7),
	}
	updates, args := buildProductUpdate(patch)

	require.Equal(t, []string{"discount = $1", "stock = $2"}, updates)
	require.Len(t, args, 2)
	assert.True(t, args[0].(decimal.Decimal).Equal(decimal.NewFromInt(10)))
	assert.Equal(t, 7, args[1])
}

// Los ocho campos permitidos, en el orden fijo del builder.
func TestBuildProductUpdate_TodosLosCampos(t *testing.T) {
	patch := entity.ProductPatch{
		Name:        strPtr("Silla"),
		Article:     strPtr("CH-1"),
		Description: strPtr("de madera"),
		Price:       decPtr(decimal.RequireFromString("49.99")),
		Discount:    decPtr(decimal.NewFromInt(10)),
		ImageURL:    strPtr("https://example.com/ch1.png"),
		CategoryID:  int64Ptr(3),
		Stock:       intPtr(5),
	}
	updates, args := buildProductUpdate(patch)

	assert.Equal(t, []string{
		"name = $1", "article = $2", "description = $3", "price = $4",
		"discount = $5", "image_url = $6", "category_id = $7", "stock = $8",
	}, updates)
	assert.Len(t, args, 8)
}

// Los nombres de columna salen del conjunto cerrado del builder: no hay
// forma de colar un identificador del cliente, solo valores parametrizados.
func TestBuildProductUpdate_SoloColumnasPermitidas(t *testing.T) {
	patch := entity.ProductPatch{Name: strPtr("x'; DROP TABLE products; --")}
	updates, args := buildProductUpdate(patch)

	require.Equal(t, []string{"name = $1"}, updates)
	assert.Equal(t, "x'; DROP TABLE products; --", args[0], "la entrada maliciosa queda como valor, nunca como SQL")
}

package entity

import "github.com/shopspring/decimal"

// ProductPatch describe una actualización parcial de Product.
// Un puntero nil significa "no tocar el campo"; los valores presentes se
// aplican tal cual, sin re-validación (el alta es la que valida precio > 0).
// El conjunto de campos es cerrado: son las únicas columnas actualizables.
type ProductPatch struct {
	Name        *string
	Article     *string
	Description *string
	Price       *decimal.Decimal
	Discount    *decimal.Decimal
	ImageURL    *string
	CategoryID  *int64
	Stock       *int
}

// IsEmpty indica si el patch no trae ningún campo.
func (p ProductPatch) IsEmpty() bool {
	return p.Name == nil && p.Article == nil && p.Description == nil &&
		p.Price == nil && p.Discount == nil && p.ImageURL == nil &&
		p.CategoryID == nil && p.Stock == nil
}

package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del catálogo.
// Price y Discount son decimales exactos (NUMERIC en PostgreSQL); nunca
// pasan por float64 antes de serializarse a JSON.
// CategoryID es nullable: puede apuntar a una categoría inexistente, la
// tabla no tiene FK.
type Product struct {
	ID           int64
	Name         string
	Article      string
	Description  string
	Price        decimal.Decimal
	Discount     decimal.Decimal // NULL en la tabla se normaliza a 0
	ImageURL     string
	CategoryID   *int64
	Stock        int
	CreatedAt    time.Time
	CategoryName *string // nombre de la categoría vía JOIN, solo en lecturas
}

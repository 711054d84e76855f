package dto

import "github.com/shopspring/decimal"

// CreateProductRequest entrada para crear un producto.
// description, discount, image_url, category_id y stock son opcionales y
// quedan en vacío/cero/NULL si no vienen.
type CreateProductRequest struct {
	Name        string          `json:"name" validate:"required,min=1,max=200"`
	Article     string          `json:"article" validate:"required,min=1,max=100"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price" validate:"required"`
	Discount    decimal.Decimal `json:"discount"`
	ImageURL    string          `json:"image_url"`
	CategoryID  *int64          `json:"category_id"`
	Stock       int             `json:"stock" validate:"min=0"`
}

// UpdateProductRequest entrada para actualización parcial: solo los campos
// presentes se aplican, el resto queda intacto. ID es obligatorio.
type UpdateProductRequest struct {
	ID          *int64           `json:"id" validate:"required"`
	Name        *string          `json:"name"`
	Article     *string          `json:"article"`
	Description *string          `json:"description"`
	Price       *decimal.Decimal `json:"price"`
	Discount    *decimal.Decimal `json:"discount"`
	ImageURL    *string          `json:"image_url"`
	CategoryID  *int64           `json:"category_id"`
	Stock       *int             `json:"stock"`
}

// ProductResponse salida de un producto en lecturas (incluye category_name del JOIN).
type ProductResponse struct {
	ID           int64           `json:"id"`
	Name         string          `json:"name"`
	Article      string          `json:"article"`
	Description  string          `json:"description"`
	Price        decimal.Decimal `json:"price"`
	Discount     decimal.Decimal `json:"discount"`
	ImageURL     string          `json:"image_url"`
	CategoryID   *int64          `json:"category_id"`
	Stock        int             `json:"stock"`
	CategoryName *string         `json:"category_name"`
}

// ProductCreatedResponse salida del alta: la fila recién insertada,
// sin description ni category_name.
type ProductCreatedResponse struct {
	ID         int64           `json:"id"`
	Name       string          `json:"name"`
	Article    string          `json:"article"`
	Price      decimal.Decimal `json:"price"`
	Discount   decimal.Decimal `json:"discount"`
	ImageURL   string          `json:"image_url"`
	CategoryID *int64          `json:"category_id"`
	Stock      int             `json:"stock"`
}

// UpdateProductResponse salida de la actualización parcial.
type UpdateProductResponse struct {
	Success bool  `json:"success"`
	ID      int64 `json:"id"`
}

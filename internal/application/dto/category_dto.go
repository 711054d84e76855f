package dto

// CategoryResponse salida de una categoría con ambos conteos:
// product_count es el contador guardado, actual_count el conteo vivo.
type CategoryResponse struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Slug         string `json:"slug"`
	IconName     string `json:"icon_name"`
	ProductCount int64  `json:"product_count"`
	ActualCount  int64  `json:"actual_count"`
}

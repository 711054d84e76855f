package repository

import "github.com/jcastell/tienda-api/internal/domain/entity"

// CategoryRepository define el puerto de persistencia para Category (DIP).
// El catálogo solo lee categorías; altas y bajas son administración externa.
type CategoryRepository interface {
	// ListWithCounts devuelve todas las categorías ordenadas por id,
	// con el contador guardado y el conteo vivo de productos.
	ListWithCounts() ([]*entity.Category, error)
}

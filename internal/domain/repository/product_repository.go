package repository

import "github.com/jcastell/tienda-api/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	// GetByID devuelve (nil, nil) si el producto no existe. Incluye CategoryName.
	GetByID(id int64) (*entity.Product, error)
	// List devuelve todos los productos, más recientes primero.
	List() ([]*entity.Product, error)
	// ListByCategory devuelve los productos de una categoría, más recientes primero.
	ListByCategory(categoryID int64) ([]*entity.Product, error)
	// Create persiste el producto y asigna product.ID y product.CreatedAt.
	Create(product *entity.Product) error
	// UpdatePartial aplica solo los campos presentes del patch.
	// Devuelve domain.ErrNotFound si el id no existe.
	UpdatePartial(id int64, patch entity.ProductPatch) error
}

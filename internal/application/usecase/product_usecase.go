package usecase

import (
	"context"

	"github.com/jcastell/tienda-api/internal/application/dto"
	"github.com/jcastell/tienda-api/internal/domain"
	"github.com/jcastell/tienda-api/internal/domain/entity"
	"github.com/jcastell/tienda-api/internal/domain/repository"
)

// TxRunner ejecuta fn dentro de una transacción, con repositorios atados a ella.
type TxRunner interface {
	Run(ctx context.Context, fn func(users repository.UserRepository, products repository.ProductRepository) error) error
}

// ProductUseCase lecturas y mutaciones del catálogo de productos.
// Las lecturas van directo al pool; las mutaciones pasan por el TxRunner
// para que el commit sea explícito.
type ProductUseCase struct {
	repo repository.ProductRepository
	tx   TxRunner
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository, tx TxRunner) *ProductUseCase {
	return &ProductUseCase{repo: repo, tx: tx}
}

// GetByID devuelve un producto con su category_name, o (nil, nil) si no existe.
func (uc *ProductUseCase) GetByID(id int64) (*dto.ProductResponse, error) {
	p, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, nil
	}
	return toProductResponse(p), nil
}

// List devuelve productos más recientes primero; con categoryID filtra por
// categoría. El slice nunca es nil para que JSON serialice [].
func (uc *ProductUseCase) List(categoryID *int64) ([]dto.ProductResponse, error) {
	var list []*entity.Product
	var err error
	if categoryID != nil {
		list, err = uc.repo.ListByCategory(*categoryID)
	} else {
		list, err = uc.repo.List()
	}
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return items, nil
}

// Create inserta un producto y devuelve la fila creada. La validación de
// name/article/price ya ocurrió en el handler, antes de tocar la base.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest) (*dto.ProductCreatedResponse, error) {
	product := &entity.Product{
		Name:        in.Name,
		Article:     in.Article,
		Description: in.Description,
		Price:       in.Price,
		Discount:    in.Discount,
		ImageURL:    in.ImageURL,
		CategoryID:  in.CategoryID,
		Stock:       in.Stock,
	}
	err := uc.tx.Run(ctx, func(_ repository.UserRepository, products repository.ProductRepository) error {
		return products.Create(product)
	})
	if err != nil {
		return nil, err
	}
	return &dto.ProductCreatedResponse{
		ID:         product.ID,
		Name:       product.Name,
		Article:    product.Article,
		Price:      product.Price,
		Discount:   product.Discount,
		ImageURL:   product.ImageURL,
		CategoryID: product.CategoryID,
		Stock:      product.Stock,
	}, nil
}

// Update aplica una actualización parcial: solo los campos presentes cambian,
// con los valores tal cual vienen. Patch vacío devuelve ErrNoUpdatableFields
// sin tocar la base; id inexistente devuelve ErrNotFound.
func (uc *ProductUseCase) Update(ctx context.Context, id int64, in dto.UpdateProductRequest) error {
	patch := entity.ProductPatch{
		Name:        in.Name,
		Article:     in.Article,
		Description: in.Description,
		Price:       in.Price,
		Discount:    in.Discount,
		ImageURL:    in.ImageURL,
		CategoryID:  in.CategoryID,
		Stock:       in.Stock,
	}
	if patch.IsEmpty() {
		return domain.ErrNoUpdatableFields
	}
	return uc.tx.Run(ctx, func(_ repository.UserRepository, products repository.ProductRepository) error {
		return products.UpdatePartial(id, patch)
	})
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:           p.ID,
		Name:         p.Name,
		Article:      p.Article,
		Description:  p.Description,
		Price:        p.Price,
		Discount:     p.Discount,
		ImageURL:     p.ImageURL,
		CategoryID:   p.CategoryID,
		Stock:        p.Stock,
		CategoryName: p.CategoryName,
	}
}

package usecase

import (
	"github.com/jcastell/tienda-api/internal/application/dto"
	"github.com/jcastell/tienda-api/internal/domain/repository"
)

// CategoryUseCase listado de categorías del catálogo (solo lectura).
type CategoryUseCase struct {
	repo repository.CategoryRepository
}

// NewCategoryUseCase construye el caso de uso.
func NewCategoryUseCase(repo repository.CategoryRepository) *CategoryUseCase {
	return &CategoryUseCase{repo: repo}
}

// List devuelve todas las categorías ordenadas por id, con el contador
// guardado y el conteo vivo. El slice nunca es nil: un catálogo vacío
// serializa como [] y no como null.
func (uc *CategoryUseCase) List() ([]dto.CategoryResponse, error) {
	list, err := uc.repo.ListWithCounts()
	if err != nil {
		return nil, err
	}
	items := make([]dto.CategoryResponse, 0, len(list))
	for _, c := range list {
		items = append(items, dto.CategoryResponse{
			ID:           c.ID,
			Name:         c.Name,
			Slug:         c.Slug,
			IconName:     c.IconName,
			ProductCount: c.ProductCount,
			ActualCount:  c.ActualCount,
		})
	}
	return items, nil
}

package postgres

import (
	"context"
	"fmt"

	"github.com/jcastell/tienda-api/internal/domain/entity"
	"github.com/jcastell/tienda-api/internal/domain/repository"
)

var _ repository.CategoryRepository = (*CategoryRepo)(nil)

// CategoryRepo implementación del puerto CategoryRepository sobre PostgreSQL.
type CategoryRepo struct {
	q Querier
}

// NewCategoryRepository construye el adaptador de persistencia para categorías.
func NewCategoryRepository(q Querier) *CategoryRepo {
	return &CategoryRepo{q: q}
}

// ListWithCounts devuelve todas las categorías ordenadas por id, con el
// contador denormalizado product_count y el conteo vivo de filas de products.
// No se reconcilian: se exponen ambos para que el cliente detecte el desfase.
func (r *CategoryRepo) ListWithCounts() ([]*entity.Category, error) {
	query := `
		SELECT c.id, c.name, c.slug, c.icon_name, c.product_count,
		       COUNT(p.id) AS actual_count
		FROM categories c
		LEFT JOIN products p ON c.id = p.category_id
		GROUP BY c.id, c.name, c.slug, c.icon_name, c.product_count
		ORDER BY c.id`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()
	var list []*entity.Category
	for rows.Next() {
		var c entity.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Slug, &c.IconName, &c.ProductCount, &c.ActualCount); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

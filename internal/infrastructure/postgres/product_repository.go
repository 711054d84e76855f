package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jcastell/tienda-api/internal/domain"
	"github.com/jcastell/tienda-api/internal/domain/entity"
	"github.com/jcastell/tienda-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// Columnas comunes de lectura: producto + nombre de categoría vía LEFT JOIN.
const productSelect = `
	SELECT p.id, p.name, p.article, COALESCE(p.description, ''), p.price, p.discount,
	       COALESCE(p.image_url, ''), p.category_id, p.stock, p.created_at,
	       c.name AS category_name
	FROM products p
	LEFT JOIN categories c ON p.category_id = c.id`

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// GetByID obtiene un producto por ID con el nombre de su categoría. Devuelve (nil, nil) si no existe.
func (r *ProductRepo) GetByID(id int64) (*entity.Product, error) {
	row := r.q.QueryRow(context.Background(), productSelect+` WHERE p.id = $1`, id)
	p, err := scanProduct(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return p, nil
}

// List devuelve todos los productos, más recientes primero.
func (r *ProductRepo) List() ([]*entity.Product, error) {
	return r.list(productSelect + ` ORDER BY p.created_at DESC`)
}

// ListByCategory devuelve los productos de una categoría, más recientes primero.
func (r *ProductRepo) ListByCategory(categoryID int64) ([]*entity.Product, error) {
	return r.list(productSelect+` WHERE p.category_id = $1 ORDER BY p.created_at DESC`, categoryID)
}

func (r *ProductRepo) list(query string, args ...any) ([]*entity.Product, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// Create persiste un nuevo producto; created_at lo asigna la base (DEFAULT now()).
func (r *ProductRepo) Create(product *entity.Product) error {
	query := `
		INSERT INTO products (name, article, description, price, discount, image_url, category_id, stock)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at`
	err := r.q.QueryRow(context.Background(), query,
		product.Name, product.Article, product.Description, product.Price,
		product.Discount, product.ImageURL, product.CategoryID, product.Stock,
	).Scan(&product.ID, &product.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// UpdatePartial aplica solo los campos presentes del patch.
// Devuelve domain.ErrNotFound si el id no existe y domain.ErrNoUpdatableFields
// si el patch viene vacío (el caso de uso ya lo rechaza antes de llegar aquí).
func (r *ProductRepo) UpdatePartial(id int64, patch entity.ProductPatch) error {
	updates, args := buildProductUpdate(patch)
	if len(updates) == 0 {
		return domain.ErrNoUpdatableFields
	}
	args = append(args, id)
	query := fmt.Sprintf(`UPDATE products SET %s WHERE id = $%d RETURNING id`,
		strings.Join(updates, ", "), len(args))
	var updated int64
	if err := r.q.QueryRow(context.Background(), query, args...).Scan(&updated); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("update product: %w", err)
	}
	return nil
}

// buildProductUpdate arma la lista SET del UPDATE dinámico. Los nombres de
// columna salen únicamente de este conjunto cerrado; lo que viene del cliente
// son solo valores, siempre como parámetros posicionales.
func buildProductUpdate(patch entity.ProductPatch) (updates []string, args []any) {
	add := func(column string, value any) {
		args = append(args, value)
		updates = append(updates, fmt.Sprintf("%s = $%d", column, len(args)))
	}
	if patch.Name != nil {
		add("name", *patch.Name)
	}
	if patch.Article != nil {
		add("article", *patch.Article)
	}
	if patch.Description != nil {
		add("description", *patch.Description)
	}
	if patch.Price != nil {
		add("price", *patch.Price)
	}
	if patch.Discount != nil {
		add("discount", *patch.Discount)
	}
	if patch.ImageURL != nil {
		add("image_url", *patch.ImageURL)
	}
	if patch.CategoryID != nil {
		add("category_id", *patch.CategoryID)
	}
	if patch.Stock != nil {
		add("stock", *patch.Stock)
	}
	return updates, args
}

// scanProduct lee una fila del SELECT común. discount NULL se normaliza a 0.
func scanProduct(row pgx.Row) (*entity.Product, error) {
	var p entity.Product
	var discount *decimal.Decimal
	err := row.Scan(
		&p.ID, &p.Name, &p.Article, &p.Description, &p.Price, &discount,
		&p.ImageURL, &p.CategoryID, &p.Stock, &p.CreatedAt, &p.CategoryName,
	)
	if err != nil {
		return nil, err
	}
	if discount != nil {
		p.Discount = *discount
	}
	return &p, nil
}

package http_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"github.com/jcastell/tienda-api/internal/domain"
	"github.com/jcastell/tienda-api/internal/domain/entity"
	"github.com/jcastell/tienda-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes de repositorios (en memoria) y del TxRunner
// ──────────────────────────────────────────────────────────────────────────────

// fakeTxRunner ejecuta el callback directo contra los fakes, sin transacción real.
type fakeTxRunner struct {
	users    repository.UserRepository
	products repository.ProductRepository
}

func (f *fakeTxRunner) Run(_ context.Context, fn func(repository.UserRepository, repository.ProductRepository) error) error {
	return fn(f.users, f.products)
}

type fakeUserRepo struct {
	users  map[string]*entity.User
	nextID int64
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*entity.User{}, nextID: 1}
}

func (f *fakeUserRepo) GetByUsername(username string) (*entity.User, error) {
	u, ok := f.users[username]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (f *fakeUserRepo) Create(u *entity.User) error {
	// Simula el constraint único de username (23505)
	if _, ok := f.users[u.Username]; ok {
		return domain.ErrUsernameTaken
	}
	u.ID = f.nextID
	f.nextID++
	cp := *u
	f.users[u.Username] = &cp
	return nil
}

type fakeProductRepo struct {
	products map[int64]*entity.Product
	nextID   int64
	now      time.Time
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{
		products: map[int64]*entity.Product{},
		nextID:   1,
		now:      time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func (f *fakeProductRepo) GetByID(id int64) (*entity.Product, error) {
	p, ok := f.products[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (f *fakeProductRepo) List() ([]*entity.Product, error) {
	return f.listWhere(func(*entity.Product) bool { return true }), nil
}

func (f *fakeProductRepo) ListByCategory(categoryID int64) ([]*entity.Product, error) {
	return f.listWhere(func(p *entity.Product) bool {
		return p.CategoryID != nil && *p.CategoryID == categoryID
	}), nil
}

func (f *fakeProductRepo) listWhere(keep func(*entity.Product) bool) []*entity.Product {
	var list []*entity.Product
	for _, p := range f.products {
		if keep(p) {
			cp := *p
			list = append(list, &cp)
		}
	}
	// más recientes primero, como el ORDER BY created_at DESC real
	sort.Slice(list, func(i, j int) bool {
		return list[i].CreatedAt.After(list[j].CreatedAt)
	})
	return list
}

func (f *fakeProductRepo) Create(p *entity.Product) error {
	p.ID = f.nextID
	f.nextID++
	f.now = f.now.Add(time.Second)
	p.CreatedAt = f.now
	cp := *p
	f.products[cp.ID] = &cp
	return nil
}

func (f *fakeProductRepo) UpdatePartial(id int64, patch entity.ProductPatch) error {
	if patch.IsEmpty() {
		return domain.ErrNoUpdatableFields
	}
	p, ok := f.products[id]
	if !ok {
		return domain.ErrNotFound
	}
	if patch.Name != nil {
		p.Name = *patch.Name
	}
	if patch.Article != nil {
		p.Article = *patch.Article
	}
	if patch.Description != nil {
		p.Description = *patch.Description
	}
	if patch.Price != nil {
		p.Price = *patch.Price
	}
	if patch.Discount != nil {
		p.Discount = *patch.Discount
	}
	if patch.ImageURL != nil {
		p.ImageURL = *patch.ImageURL
	}
	if patch.CategoryID != nil {
		p.CategoryID = patch.CategoryID
	}
	if patch.Stock != nil {
		p.Stock = *patch.Stock
	}
	return nil
}

type fakeCategoryRepo struct {
	categories []*entity.Category
}

func (f *fakeCategoryRepo) ListWithCounts() ([]*entity.Category, error) {
	return f.categories, nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Helpers HTTP
// ──────────────────────────────────────────────────────────────────────────────

// doJSON lanza una petición con cuerpo JSON y devuelve la respuesta.
func doJSON(t *testing.T, app *fiber.App, method, target, body string) *http.Response {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// decodeBody decodifica el cuerpo JSON de la respuesta en un mapa genérico.
func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}

// decodeList decodifica un cuerpo JSON que es un array de objetos.
func decodeList(t *testing.T, resp *http.Response) []map[string]any {
	t.Helper()
	var list []map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&list))
	return list
}

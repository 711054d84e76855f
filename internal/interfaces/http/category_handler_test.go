package http_test

import (
	"io"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcastell/tienda-api/internal/application/usecase"
	"github.com/jcastell/tienda-api/internal/domain/entity"
	apphttp "github.com/jcastell/tienda-api/internal/interfaces/http"
)

func buildCategoryApp(repo *fakeCategoryRepo) *fiber.App {
	uc := usecase.NewCategoryUseCase(repo)
	app := fiber.New()
	app.All("/api/categories", apphttp.NewCategoryHandler(uc).Handle)
	return app
}

func TestCategories_Preflight(t *testing.T) {
	app := buildCategoryApp(&fakeCategoryRepo{})
	resp := doJSON(t, app, http.MethodOptions, "/api/categories", "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "GET, OPTIONS", resp.Header.Get("Access-Control-Allow-Methods"))
	assert.Equal(t, "Content-Type", resp.Header.Get("Access-Control-Allow-Headers"),
		"categorías solo anuncia Content-Type, sin X-User-Id")

	body, _ := io.ReadAll(resp.Body)
	assert.Empty(t, string(body))
}

func TestCategories_Post_Retorna405(t *testing.T) {
	app := buildCategoryApp(&fakeCategoryRepo{})
	resp := doJSON(t, app, http.MethodPost, "/api/categories", `{"name":"Muebles"}`)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
	assert.Equal(t, "Method not allowed", decodeBody(t, resp)["error"])
}

// Se exponen los dos conteos sin reconciliar: el cliente decide qué hacer
// cuando el contador guardado y el conteo vivo difieren.
func TestCategories_Listar_AmbosConteos(t *testing.T) {
	repo := &fakeCategoryRepo{categories: []*entity.Category{
		{ID: 1, Name: "Muebles", Slug: "muebles", IconName: "sofa", ProductCount: 12, ActualCount: 9},
		{ID: 2, Name: "Lámparas", Slug: "lamparas", IconName: "lamp", ProductCount: 0, ActualCount: 0},
	}}
	app := buildCategoryApp(repo)

	resp := doJSON(t, app, http.MethodGet, "/api/categories", "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))

	list := decodeList(t, resp)
	require.Len(t, list, 2)
	assert.Equal(t, float64(1), list[0]["id"])
	assert.Equal(t, "Muebles", list[0]["name"])
	assert.Equal(t, "muebles", list[0]["slug"])
	assert.Equal(t, "sofa", list[0]["icon_name"])
	assert.Equal(t, float64(12), list[0]["product_count"], "contador denormalizado tal cual está guardado")
	assert.Equal(t, float64(9), list[0]["actual_count"], "conteo vivo del JOIN")
}

func TestCategories_ListarVacio_RetornaArray(t *testing.T) {
	app := buildCategoryApp(&fakeCategoryRepo{})
	resp := doJSON(t, app, http.MethodGet, "/api/categories", "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.JSONEq(t, `[]`, string(body), "catálogo vacío serializa [] y no null")
}

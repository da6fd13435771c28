package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/gamejam-api/internal/dto"
	"github.com/noah-isme/gamejam-api/internal/handler"
	"github.com/noah-isme/gamejam-api/internal/service"
)

func decodeResponse(t *testing.T, resp *http.Response, target interface{}) {
	t.Helper()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())
	require.NoError(t, json.Unmarshal(body, target))
}

type mockEquipoService struct {
	equipos    map[uint]dto.EquipoResponse
	lastFilter dto.EquipoListFilter
	createErr  error
}

func (m *mockEquipoService) Create(_ context.Context, payload dto.EquipoCreateRequest) (dto.EquipoResponse, error) {
	if m.createErr != nil {
		return dto.EquipoResponse{}, m.createErr
	}
	return dto.EquipoResponse{ID: 1, Nombre: payload.Nombre, Descripcion: payload.Descripcion}, nil
}

func (m *mockEquipoService) List(_ context.Context, filter dto.EquipoListFilter) ([]dto.EquipoResponse, error) {
	m.lastFilter = filter
	equipos := make([]dto.EquipoResponse, 0, len(m.equipos))
	for _, equipo := range m.equipos {
		equipos = append(equipos, equipo)
	}
	return equipos, nil
}

func (m *mockEquipoService) Get(_ context.Context, id uint) (dto.EquipoResponse, error) {
	equipo, ok := m.equipos[id]
	if !ok {
		return dto.EquipoResponse{}, &service.NotFoundError{Entity: "equipo", ID: "42"}
	}
	return equipo, nil
}

func (m *mockEquipoService) Update(_ context.Context, id uint, _ dto.EquipoUpdateRequest) (dto.EquipoResponse, error) {
	return m.Get(context.Background(), id)
}

func (m *mockEquipoService) Remove(_ context.Context, id uint) (dto.EquipoResponse, error) {
	return m.Get(context.Background(), id)
}

func newEquipoTestApp(svc service.EquipoService) *fiber.App {
	app := fiber.New()
	handler.NewEquipoHandler(svc, zerolog.New(io.Discard)).Register(app.Group("/api/v1/equipo"))
	return app
}

func TestEquipoHandlerCreate(t *testing.T) {
	app := newEquipoTestApp(&mockEquipoService{})

	body, err := json.Marshal(dto.EquipoCreateRequest{Nombre: "Pixel Forge"})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/equipo", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var response struct {
		Success bool               `json:"success"`
		Data    dto.EquipoResponse `json:"data"`
	}
	decodeResponse(t, resp, &response)
	require.True(t, response.Success)
	require.Equal(t, "Pixel Forge", response.Data.Nombre)
}

func TestEquipoHandlerCreateConflict(t *testing.T) {
	app := newEquipoTestApp(&mockEquipoService{
		createErr: &service.ConflictError{Entity: "equipo", Field: "nombre", Value: "Pixel Forge"},
	})

	body, err := json.Marshal(dto.EquipoCreateRequest{Nombre: "Pixel Forge"})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/equipo", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusConflict, resp.StatusCode)
}

func TestEquipoHandlerListForwardsQueryFilters(t *testing.T) {
	svc := &mockEquipoService{}
	app := newEquipoTestApp(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/equipo?limit=5&materiaId=3&nrc=14", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	require.NotNil(t, svc.lastFilter.Limit)
	require.Equal(t, 5, *svc.lastFilter.Limit)
	require.NotNil(t, svc.lastFilter.MateriaID)
	require.Equal(t, uint(3), *svc.lastFilter.MateriaID)
	require.NotNil(t, svc.lastFilter.NrcID)
	require.Equal(t, uint(14), *svc.lastFilter.NrcID)
}

func TestEquipoHandlerListRejectsMalformedQuery(t *testing.T) {
	app := newEquipoTestApp(&mockEquipoService{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/equipo?materiaId=abc", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestEquipoHandlerGetMissing(t *testing.T) {
	app := newEquipoTestApp(&mockEquipoService{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/equipo/42", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	var response struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
	decodeResponse(t, resp, &response)
	require.False(t, response.Success)
	require.Equal(t, "equipo 42 not found", response.Message)
}

func TestEquipoHandlerGetRejectsNonNumericID(t *testing.T) {
	app := newEquipoTestApp(&mockEquipoService{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/equipo/abc", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

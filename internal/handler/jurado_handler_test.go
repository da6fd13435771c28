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

type mockJuradoService struct {
	realizadas    []dto.EvaluacionRealizadaResponse
	detalle       []dto.DetalleCriterioResponse
	detalleErr    error
	confirmado    dto.JuradoResponse
	confirmErr    error
	lastConfirmar dto.ConfirmarInvitacionRequest
}

func (m *mockJuradoService) Create(_ context.Context, payload dto.JuradoCreateRequest) (dto.JuradoResponse, error) {
	return dto.JuradoResponse{ID: 1, Nombre: payload.Nombre, Email: payload.Email, Estado: "pendiente"}, nil
}

func (m *mockJuradoService) List(_ context.Context) ([]dto.JuradoResponse, error) {
	return nil, nil
}

func (m *mockJuradoService) Get(_ context.Context, id uint) (dto.JuradoResponse, error) {
	return dto.JuradoResponse{ID: id}, nil
}

func (m *mockJuradoService) Update(_ context.Context, id uint, _ dto.JuradoUpdateRequest) (dto.JuradoResponse, error) {
	return dto.JuradoResponse{ID: id}, nil
}

func (m *mockJuradoService) Remove(_ context.Context, _ uint) error {
	return nil
}

func (m *mockJuradoService) ConfirmarInvitacion(_ context.Context, payload dto.ConfirmarInvitacionRequest) (dto.JuradoResponse, error) {
	m.lastConfirmar = payload
	if m.confirmErr != nil {
		return dto.JuradoResponse{}, m.confirmErr
	}
	return m.confirmado, nil
}

func (m *mockJuradoService) EvaluacionesRealizadas(_ context.Context, juradoID string) ([]dto.EvaluacionRealizadaResponse, error) {
	if juradoID == "abc" {
		return nil, &service.InvalidInputError{Field: "jurado id", Value: juradoID, Reason: "identifier must be numeric"}
	}
	return m.realizadas, nil
}

func (m *mockJuradoService) DetalleEvaluacion(_ context.Context, _, _ string) ([]dto.DetalleCriterioResponse, error) {
	if m.detalleErr != nil {
		return nil, m.detalleErr
	}
	return m.detalle, nil
}

func newJuradoTestApp(svc service.JuradoService) *fiber.App {
	app := fiber.New()
	handler.NewJuradoHandler(svc, zerolog.New(io.Discard)).Register(app.Group("/api/v1/jurado"))
	return app
}

func TestJuradoHandlerEvaluacionesRealizadas(t *testing.T) {
	svc := &mockJuradoService{realizadas: []dto.EvaluacionRealizadaResponse{
		{VideojuegoID: 10, VideojuegoNombre: "Nebula Run", CriteriosEvaluados: 2, Promedio: 70, Completada: true},
	}}
	app := newJuradoTestApp(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/jurado/1/evaluaciones", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var response struct {
		Success bool                              `json:"success"`
		Data    []dto.EvaluacionRealizadaResponse `json:"data"`
	}
	decodeResponse(t, resp, &response)
	require.True(t, response.Success)
	require.Len(t, response.Data, 1)
	require.Equal(t, "Nebula Run", response.Data[0].VideojuegoNombre)
}

func TestJuradoHandlerEvaluacionesRealizadasBadID(t *testing.T) {
	app := newJuradoTestApp(&mockJuradoService{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/jurado/abc/evaluaciones", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestJuradoHandlerDetalleEvaluacionMissing(t *testing.T) {
	app := newJuradoTestApp(&mockJuradoService{
		detalleErr: &service.NotFoundError{Entity: "evaluación", ID: "jurado 1 / videojuego 10"},
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/jurado/1/evaluaciones/10", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestJuradoHandlerConfirmarInvitacionRoute(t *testing.T) {
	// The literal segment must not be swallowed by the :id routes.
	svc := &mockJuradoService{confirmado: dto.JuradoResponse{ID: 7, Estado: "confirmado"}}
	app := newJuradoTestApp(svc)

	body, err := json.Marshal(dto.ConfirmarInvitacionRequest{Token: "token-firmado", Password: "claveMuySegura"})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPatch, "/api/v1/jurado/confirmar-invitacion", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	require.Equal(t, "token-firmado", svc.lastConfirmar.Token)

	var response struct {
		Data dto.JuradoResponse `json:"data"`
	}
	decodeResponse(t, resp, &response)
	require.Equal(t, "confirmado", response.Data.Estado)
}

package service

import (
	"context"
	"io"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/noah-isme/gamejam-api/internal/dto"
	"github.com/noah-isme/gamejam-api/internal/models"
	"github.com/noah-isme/gamejam-api/internal/repository"
)

func testLogger() zerolog.Logger {
	return zerolog.New(io.Discard)
}

func testValidator() *validator.Validate {
	return validator.New(validator.WithRequiredStructEnabled())
}

type equipoRepoStub struct {
	equipos    []models.Equipo
	createErr  error
	cascadeErr error
	removed    []uint
	lastFilter repository.EquipoFilter
}

func (s *equipoRepoStub) List(ctx context.Context, filter repository.EquipoFilter) ([]models.Equipo, error) {
	s.lastFilter = filter
	return s.equipos, nil
}

func (s *equipoRepoStub) GetByID(ctx context.Context, id uint) (models.Equipo, error) {
	for _, equipo := range s.equipos {
		if equipo.ID == id {
			return equipo, nil
		}
	}
	return models.Equipo{}, gorm.ErrRecordNotFound
}

func (s *equipoRepoStub) GetByNombre(ctx context.Context, nombre string) (models.Equipo, error) {
	for _, equipo := range s.equipos {
		if equipo.Nombre == nombre {
			return equipo, nil
		}
	}
	return models.Equipo{}, gorm.ErrRecordNotFound
}

func (s *equipoRepoStub) Create(ctx context.Context, equipo *models.Equipo) error {
	if s.createErr != nil {
		return s.createErr
	}
	equipo.ID = uint(len(s.equipos) + 1)
	s.equipos = append(s.equipos, *equipo)
	return nil
}

func (s *equipoRepoStub) Update(ctx context.Context, equipo *models.Equipo) error {
	for i := range s.equipos {
		if s.equipos[i].ID == equipo.ID {
			s.equipos[i] = *equipo
		}
	}
	return nil
}

func (s *equipoRepoStub) SoftDeleteCascade(ctx context.Context, id uint) error {
	if s.cascadeErr != nil {
		return s.cascadeErr
	}
	s.removed = append(s.removed, id)
	return nil
}

func newEquipoTestService(repo repository.EquipoRepository) EquipoService {
	return NewEquipoService(repo, testValidator(), NewEventos(nil, testLogger()), testLogger())
}

func intPtr(v int) *int { return &v }

func uintPtr(v uint) *uint { return &v }

func TestEquipoServiceListLimit(t *testing.T) {
	repo := &equipoRepoStub{equipos: []models.Equipo{
		{ID: 1, Nombre: "Pixel Forge"},
		{ID: 2, Nombre: "Bit Busters"},
		{ID: 3, Nombre: "Los Compiladores"},
	}}
	svc := newEquipoTestService(repo)
	ctx := context.Background()

	todos, err := svc.List(ctx, dto.EquipoListFilter{})
	require.NoError(t, err)
	require.Len(t, todos, 3)

	dos, err := svc.List(ctx, dto.EquipoListFilter{Limit: intPtr(2)})
	require.NoError(t, err)
	require.Len(t, dos, 2)
	require.Equal(t, "Pixel Forge", dos[0].Nombre)
	require.Equal(t, "Bit Busters", dos[1].Nombre)

	vacio, err := svc.List(ctx, dto.EquipoListFilter{Limit: intPtr(0)})
	require.NoError(t, err)
	require.Empty(t, vacio)

	sobra, err := svc.List(ctx, dto.EquipoListFilter{Limit: intPtr(10)})
	require.NoError(t, err)
	require.Len(t, sobra, 3)
}

func TestEquipoServiceListRejectsNegativeLimit(t *testing.T) {
	svc := newEquipoTestService(&equipoRepoStub{})

	_, err := svc.List(context.Background(), dto.EquipoListFilter{Limit: intPtr(-1)})
	require.Error(t, err)

	var validationErrors validator.ValidationErrors
	require.ErrorAs(t, err, &validationErrors)
}

func TestEquipoServiceListForwardsFilters(t *testing.T) {
	repo := &equipoRepoStub{}
	svc := newEquipoTestService(repo)

	_, err := svc.List(context.Background(), dto.EquipoListFilter{
		MateriaID: uintPtr(4),
		NrcID:     uintPtr(9),
	})
	require.NoError(t, err)
	require.NotNil(t, repo.lastFilter.MateriaID)
	require.Equal(t, uint(4), *repo.lastFilter.MateriaID)
	require.NotNil(t, repo.lastFilter.NrcID)
	require.Equal(t, uint(9), *repo.lastFilter.NrcID)
}

func TestEquipoServiceCreateRejectsDuplicateNombre(t *testing.T) {
	repo := &equipoRepoStub{equipos: []models.Equipo{{ID: 1, Nombre: "Pixel Forge"}}}
	svc := newEquipoTestService(repo)

	_, err := svc.Create(context.Background(), dto.EquipoCreateRequest{Nombre: "Pixel Forge"})
	require.Error(t, err)

	var conflict *ConflictError
	require.ErrorAs(t, err, &conflict)
	require.Equal(t, "nombre", conflict.Field)
}

func TestEquipoServiceCreateTranslatesDuplicateKey(t *testing.T) {
	// Two racing creates can both pass the pre-check; the second insert hits
	// the partial unique index and must surface the same conflict.
	repo := &equipoRepoStub{createErr: gorm.ErrDuplicatedKey}
	svc := newEquipoTestService(repo)

	_, err := svc.Create(context.Background(), dto.EquipoCreateRequest{Nombre: "Pixel Forge"})
	var conflict *ConflictError
	require.ErrorAs(t, err, &conflict)
}

func TestEquipoServiceCreateSanitizesDescripcion(t *testing.T) {
	repo := &equipoRepoStub{}
	svc := newEquipoTestService(repo)

	equipo, err := svc.Create(context.Background(), dto.EquipoCreateRequest{
		Nombre:      "Pixel Forge",
		Descripcion: "<script>alert('x')</script>equipo de plataformas",
	})
	require.NoError(t, err)
	require.Equal(t, "equipo de plataformas", equipo.Descripcion)
}

func TestEquipoServiceGetMissing(t *testing.T) {
	svc := newEquipoTestService(&equipoRepoStub{})

	_, err := svc.Get(context.Background(), 42)
	var notFound *NotFoundError
	require.ErrorAs(t, err, &notFound)
	require.Equal(t, "equipo", notFound.Entity)
}

func TestEquipoServiceUpdateRejectsTakenNombre(t *testing.T) {
	repo := &equipoRepoStub{equipos: []models.Equipo{
		{ID: 1, Nombre: "Pixel Forge"},
		{ID: 2, Nombre: "Bit Busters"},
	}}
	svc := newEquipoTestService(repo)

	nombre := "Bit Busters"
	_, err := svc.Update(context.Background(), 1, dto.EquipoUpdateRequest{Nombre: &nombre})
	var conflict *ConflictError
	require.ErrorAs(t, err, &conflict)
}

func TestEquipoServiceRemove(t *testing.T) {
	repo := &equipoRepoStub{equipos: []models.Equipo{{ID: 1, Nombre: "Pixel Forge"}}}
	svc := newEquipoTestService(repo)

	equipo, err := svc.Remove(context.Background(), 1)
	require.NoError(t, err)
	require.Equal(t, "Pixel Forge", equipo.Nombre)
	require.Equal(t, []uint{1}, repo.removed)
}

func TestEquipoServiceRemoveConcurrentLoser(t *testing.T) {
	// The cascade reports no live row when another removal won in between.
	repo := &equipoRepoStub{
		equipos:    []models.Equipo{{ID: 1, Nombre: "Pixel Forge"}},
		cascadeErr: gorm.ErrRecordNotFound,
	}
	svc := newEquipoTestService(repo)

	_, err := svc.Remove(context.Background(), 1)
	var notFound *NotFoundError
	require.ErrorAs(t, err, &notFound)
}

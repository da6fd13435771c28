package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/noah-isme/gamejam-api/internal/models"
)

func TestEvaluacionRepositoryDetalleOrderedByCriterio(t *testing.T) {
	db := setupTestDB(t)
	repo := NewEvaluacionRepository(db)
	ctx := context.Background()

	equipo := models.Equipo{Nombre: "Pixel Forge"}
	require.NoError(t, db.Create(&equipo).Error)
	videojuego := models.Videojuego{Nombre: "Nebula Run", EquipoID: equipo.ID}
	require.NoError(t, db.Create(&videojuego).Error)
	jurado := models.Jurado{Nombre: "Marta", Email: "marta@jam.dev", Estado: models.JuradoEstadoConfirmado}
	require.NoError(t, db.Create(&jurado).Error)

	jugabilidad := models.Criterio{Nombre: "Jugabilidad"}
	arte := models.Criterio{Nombre: "Arte"}
	sonido := models.Criterio{Nombre: "Sonido"}
	require.NoError(t, db.Create(&jugabilidad).Error)
	require.NoError(t, db.Create(&arte).Error)
	require.NoError(t, db.Create(&sonido).Error)

	evaluacion := models.Evaluacion{
		JuradoID:     jurado.ID,
		VideojuegoID: videojuego.ID,
		Detalles: []models.DetalleEvaluacion{
			{CriterioID: sonido.ID, Valor: 70},
			{CriterioID: jugabilidad.ID, Valor: 90},
			{CriterioID: arte.ID, Valor: 80},
		},
	}
	require.NoError(t, repo.CreateEvaluacion(ctx, &evaluacion))

	detalles, err := repo.ListDetallesByJuradoAndVideojuego(ctx, jurado.ID, videojuego.ID)
	require.NoError(t, err)
	require.Len(t, detalles, 3)

	require.Equal(t, "Jugabilidad", detalles[0].Criterio.Nombre)
	require.Equal(t, 90.0, detalles[0].Valor)
	require.Equal(t, "Arte", detalles[1].Criterio.Nombre)
	require.Equal(t, 80.0, detalles[1].Valor)
	require.Equal(t, "Sonido", detalles[2].Criterio.Nombre)
	require.Equal(t, 70.0, detalles[2].Valor)

	require.Equal(t, "Nebula Run", detalles[0].Evaluacion.Videojuego.Nombre)
}

func TestEvaluacionRepositoryExcludesDeletedRows(t *testing.T) {
	db := setupTestDB(t)
	repo := NewEvaluacionRepository(db)
	ctx := context.Background()

	equipo := models.Equipo{Nombre: "Bit Busters"}
	require.NoError(t, db.Create(&equipo).Error)
	videojuego := models.Videojuego{Nombre: "Gravity Well", EquipoID: equipo.ID}
	require.NoError(t, db.Create(&videojuego).Error)
	jurado := models.Jurado{Nombre: "Jorge", Email: "jorge@jam.dev", Estado: models.JuradoEstadoConfirmado}
	require.NoError(t, db.Create(&jurado).Error)
	criterio := models.Criterio{Nombre: "Jugabilidad"}
	require.NoError(t, db.Create(&criterio).Error)

	activa := models.Evaluacion{
		JuradoID:     jurado.ID,
		VideojuegoID: videojuego.ID,
		Detalles: []models.DetalleEvaluacion{
			{CriterioID: criterio.ID, Valor: 85},
			{CriterioID: criterio.ID, Valor: 10, Deleted: true},
		},
	}
	require.NoError(t, repo.CreateEvaluacion(ctx, &activa))

	retirada := models.Evaluacion{
		JuradoID:     jurado.ID,
		VideojuegoID: videojuego.ID,
		Deleted:      true,
		Detalles: []models.DetalleEvaluacion{
			{CriterioID: criterio.ID, Valor: 5},
		},
	}
	require.NoError(t, repo.CreateEvaluacion(ctx, &retirada))

	detalles, err := repo.ListDetallesByJurado(ctx, jurado.ID)
	require.NoError(t, err)
	require.Len(t, detalles, 1)
	require.Equal(t, 85.0, detalles[0].Valor)
}

func TestEvaluacionRepositoryResumenPorVideojuego(t *testing.T) {
	db := setupTestDB(t)
	repo := NewEvaluacionRepository(db)
	ctx := context.Background()

	equipo := models.Equipo{Nombre: "Pixel Forge"}
	require.NoError(t, db.Create(&equipo).Error)
	nebula := models.Videojuego{Nombre: "Nebula Run", EquipoID: equipo.ID}
	gravity := models.Videojuego{Nombre: "Gravity Well", EquipoID: equipo.ID}
	retirado := models.Videojuego{Nombre: "Retirado", EquipoID: equipo.ID, Deleted: true}
	require.NoError(t, db.Create(&nebula).Error)
	require.NoError(t, db.Create(&gravity).Error)
	require.NoError(t, db.Create(&retirado).Error)

	jurado := models.Jurado{Nombre: "Marta", Email: "marta@jam.dev", Estado: models.JuradoEstadoConfirmado}
	require.NoError(t, db.Create(&jurado).Error)

	jugabilidad := models.Criterio{Nombre: "Jugabilidad", Peso: 1}
	arte := models.Criterio{Nombre: "Arte", Peso: 3}
	require.NoError(t, db.Create(&jugabilidad).Error)
	require.NoError(t, db.Create(&arte).Error)

	require.NoError(t, repo.CreateEvaluacion(ctx, &models.Evaluacion{
		JuradoID:     jurado.ID,
		VideojuegoID: nebula.ID,
		Detalles: []models.DetalleEvaluacion{
			{CriterioID: jugabilidad.ID, Valor: 10},
			{CriterioID: arte.ID, Valor: 20},
		},
	}))
	require.NoError(t, repo.CreateEvaluacion(ctx, &models.Evaluacion{
		JuradoID:     jurado.ID,
		VideojuegoID: gravity.ID,
		Detalles: []models.DetalleEvaluacion{
			{CriterioID: jugabilidad.ID, Valor: 5},
			{CriterioID: arte.ID, Valor: 5},
		},
	}))
	require.NoError(t, repo.CreateEvaluacion(ctx, &models.Evaluacion{
		JuradoID:     jurado.ID,
		VideojuegoID: retirado.ID,
		Detalles: []models.DetalleEvaluacion{
			{CriterioID: jugabilidad.ID, Valor: 100},
		},
	}))

	resultados, err := repo.ResumenPorVideojuego(ctx)
	require.NoError(t, err)
	require.Len(t, resultados, 2)

	require.Equal(t, "Nebula Run", resultados[0].Nombre)
	require.Equal(t, int64(1), resultados[0].Evaluaciones)
	require.InDelta(t, 15.0, resultados[0].Promedio, 0.001)
	// (10*1 + 20*3) / (1+3)
	require.InDelta(t, 17.5, resultados[0].PromedioPonderado, 0.001)

	require.Equal(t, "Gravity Well", resultados[1].Nombre)
	require.InDelta(t, 5.0, resultados[1].PromedioPonderado, 0.001)
}

func TestEvaluacionRepositoryListCriteriosSkipsDeleted(t *testing.T) {
	db := setupTestDB(t)
	repo := NewEvaluacionRepository(db)
	ctx := context.Background()

	require.NoError(t, db.Create(&models.Criterio{Nombre: "Jugabilidad"}).Error)
	require.NoError(t, db.Create(&models.Criterio{Nombre: "Obsoleto", Deleted: true}).Error)

	criterios, err := repo.ListCriterios(ctx)
	require.NoError(t, err)
	require.Len(t, criterios, 1)
	require.Equal(t, "Jugabilidad", criterios[0].Nombre)
}

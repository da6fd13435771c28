package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/nats-io/nats.go"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/noah-isme/gamejam-api/internal/config"
	"github.com/noah-isme/gamejam-api/internal/database"
	"github.com/noah-isme/gamejam-api/internal/handler"
	"github.com/noah-isme/gamejam-api/internal/middleware"
	"github.com/noah-isme/gamejam-api/internal/models"
	"github.com/noah-isme/gamejam-api/internal/repository"
	"github.com/noah-isme/gamejam-api/internal/router"
	"github.com/noah-isme/gamejam-api/internal/service"
	cloud "github.com/noah-isme/gamejam-api/pkg/cloudinary"
	"github.com/noah-isme/gamejam-api/pkg/mailer"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	db, err := database.ConnectPostgres(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	if err := db.AutoMigrate(
		&models.Equipo{}, &models.Usuario{}, &models.Estudiante{},
		&models.Materia{}, &models.Nrc{}, &models.EstudianteNrc{},
		&models.Videojuego{}, &models.Jurado{}, &models.Criterio{},
		&models.Evaluacion{}, &models.DetalleEvaluacion{},
	); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}

	var redisClient *redis.Client
	if cfg.RedisURL != "" {
		redisClient, err = database.ConnectRedis(cfg.RedisURL)
		if err != nil {
			log.Fatalf("failed to connect to redis: %v", err)
		}
		defer redisClient.Close()
	}

	var natsConn *nats.Conn
	if cfg.NatsURL != "" {
		natsConn, err = nats.Connect(cfg.NatsURL)
		if err != nil {
			log.Fatalf("failed to connect to nats: %v", err)
		}
		defer natsConn.Close()
	}

	var uploader service.FileUploader
	if cfg.CloudinaryCloudName != "" {
		uploader, err = cloud.New(cloud.Config{
			CloudName: cfg.CloudinaryCloudName,
			APIKey:    cfg.CloudinaryAPIKey,
			APISecret: cfg.CloudinaryAPISecret,
			Folder:    cfg.CloudinaryUploadFolder,
		}, logger)
		if err != nil {
			log.Fatalf("failed to create cloudinary client: %v", err)
		}
	}

	var invitationMailer service.Mailer
	if cfg.SMTPHost != "" {
		invitationMailer, err = mailer.New(mailer.Config{
			Host:          cfg.SMTPHost,
			Port:          cfg.SMTPPort,
			User:          cfg.SMTPUser,
			Password:      cfg.SMTPPassword,
			From:          cfg.SMTPFrom,
			InviteBaseURL: cfg.InviteBaseURL,
		}, logger)
		if err != nil {
			log.Fatalf("failed to create mailer: %v", err)
		}
	}

	validate := validator.New(validator.WithRequiredStructEnabled())
	eventos := service.NewEventos(natsConn, logger)

	equipoRepo := repository.NewEquipoRepository(db)
	estudianteRepo := repository.NewEstudianteRepository(db)
	videojuegoRepo := repository.NewVideojuegoRepository(db)
	juradoRepo := repository.NewJuradoRepository(db)
	evaluacionRepo := repository.NewEvaluacionRepository(db)
	nrcRepo := repository.NewNrcRepository(db)

	equipoService := service.NewEquipoService(equipoRepo, validate, eventos, logger)
	estudianteService := service.NewEstudianteService(estudianteRepo, equipoRepo, nrcRepo, validate, logger)
	videojuegoService := service.NewVideojuegoService(videojuegoRepo, equipoRepo, juradoRepo, evaluacionRepo, validate, uploader, eventos, logger)
	juradoService := service.NewJuradoService(juradoRepo, evaluacionRepo, videojuegoRepo, validate, invitationMailer, eventos, cfg.InviteSecret, cfg.InviteTTL, logger)
	resultadosService := service.NewResultadosService(evaluacionRepo, redisClient, cfg.ResultadosCacheTTL, logger)

	app := fiber.New(fiber.Config{
		AppName:      cfg.AppName,
		ServerHeader: cfg.AppName,
	})

	middleware.Register(app, middleware.Config{Logger: &logger})
	router.Register(app, cfg, router.Dependencies{
		EquipoHandler:     handler.NewEquipoHandler(equipoService, logger),
		EstudianteHandler: handler.NewEstudianteHandler(estudianteService, logger),
		VideojuegoHandler: handler.NewVideojuegoHandler(videojuegoService, logger),
		JuradoHandler:     handler.NewJuradoHandler(juradoService, logger),
		ResultadosHandler: handler.NewResultadosHandler(resultadosService, logger),
		JWTMiddleware:     middleware.JWTProtected(cfg.JWTSecret),
	})

	go func() {
		if err := app.Listen(cfg.HTTPAddress()); err != nil {
			log.Fatalf("failed to start server: %v", err)
		}
	}()

	waitForShutdown(app)
}

func waitForShutdown(app *fiber.App) {
	shutdownCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-shutdownCtx.Done()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(ctx); err != nil {
		log.Printf("graceful shutdown failed: %v", err)
	}

	log.Println("server stopped")
}

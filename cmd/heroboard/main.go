package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.opentelemetry.io/contrib/instrumentation/github.com/labstack/echo/otelecho"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.17.0"

	"github.com/heroboard/heroboard/internal/config"
	"github.com/heroboard/heroboard/internal/infra/database"
	"github.com/heroboard/heroboard/internal/infra/gateway"
	"github.com/heroboard/heroboard/internal/infra/repository"
	"github.com/heroboard/heroboard/internal/present/rest"
	"github.com/heroboard/heroboard/internal/present/rest/middleware"
	"github.com/heroboard/heroboard/internal/service"
	"github.com/heroboard/heroboard/internal/usecase"
)

func main() {
	ctx := context.Background()

	configPath := "config.yaml"
	if len(os.Args) > 1 {
		configPath = os.Args[1]
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		slog.Error("failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	db, err := database.NewPostgres(cfg.Server.PostgresDsn)
	if err != nil {
		slog.Error("failed to connect database", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if err := database.MigratePostgres(db); err != nil {
		slog.Error("failed to migrate database", slog.String("error", err.Error()))
		os.Exit(1)
	}

	var rankingCache usecase.RankingCache
	if cfg.Server.RedisAddr != "" {
		rdb := database.NewRedis(cfg.Server.RedisAddr, cfg.Server.RedisPassword, cfg.Server.RedisDB)
		rankingCache = service.NewRankingCache(rdb)
	}

	authService := service.NewAuthService(cfg.Server.TokenSecret)
	catalog := gateway.NewCatalogGateway(cfg.Server.CatalogEndpoint)

	engagementRepo := repository.NewEngagementRepository(db)
	viewRepo := repository.NewViewRepository(db)
	connectionRepo := repository.NewConnectionRepository(db)

	engagementUC := usecase.NewEngagementUsecase(engagementRepo, rankingCache)
	viewUC := usecase.NewViewUsecase(viewRepo, rankingCache)
	connectionUC := usecase.NewConnectionUsecase(connectionRepo)

	handler := rest.NewHandler(engagementUC, viewUC, connectionUC, catalog)
	authMiddleware := middleware.NewAuthMiddleware(authService)

	e := echo.New()
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.CORS())

	if cfg.Server.EnableTrace {
		tp, err := initTracer(ctx, cfg)
		if err != nil {
			slog.Error("failed to initialize tracer", slog.String("error", err.Error()))
			os.Exit(1)
		}
		defer func() {
			if err := tp.Shutdown(ctx); err != nil {
				slog.Error("failed to shutdown tracer", slog.String("error", err.Error()))
			}
		}()
		e.Use(otelecho.Middleware("heroboard"))
	}

	e.Use(authMiddleware.IdentifyActor)

	handler.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(cfg.Server.ListenAddr))
}

func initTracer(ctx context.Context, cfg config.Config) (*sdktrace.TracerProvider, error) {
	exporter, err := otlptracehttp.New(ctx,
		otlptracehttp.WithEndpoint(cfg.Server.TraceEndpoint),
		otlptracehttp.WithInsecure(),
	)
	if err != nil {
		return nil, err
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceNameKey.String("heroboard"),
		),
	)
	if err != nil {
		return nil, err
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)

	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(propagation.TraceContext{}, propagation.Baggage{}))

	return tp, nil
}

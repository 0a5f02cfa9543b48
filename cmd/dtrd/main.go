package main

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	dtrpb "dtr-engine/gen/proto/dtr/v1"
	"dtr-engine/internal/async"
	"dtr-engine/internal/common"
	"dtr-engine/internal/events"
	"dtr-engine/internal/export"
	"dtr-engine/internal/extract"
	"dtr-engine/internal/format"
	"dtr-engine/internal/httpapi"
	"dtr-engine/internal/ingest"
	"dtr-engine/internal/ocr"
	"dtr-engine/internal/pipeline"
	repo "dtr-engine/internal/repository"
	"dtr-engine/internal/review"
	svc "dtr-engine/internal/server"
)

func main() {
	_ = godotenv.Load()

	// Process-level logger
	zlog, _ := zap.NewProduction()
	defer func() { _ = zlog.Sync() }()
	log := zlog.Sugar()

	// Component logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	entc, pool, err := repo.Open(ctx, cfg.Database, logger)
	if err != nil {
		log.Fatalf("opening database: %v", err)
	}
	defer repo.Close(entc, pool, logger)

	if err := repo.HealthCheck(ctx, pool, 5*time.Second, logger); err != nil {
		log.Fatalf("database health check failed: %v", err)
	}
	log.Infow("database health OK")

	formatsRepo := repo.NewFormatRepository(entc, logger)
	intakesRepo := repo.NewIntakeRepository(entc, logger)

	emitter := events.NewEmitter()
	emitter.Subscribe(events.TypeIntakeCreated, func(ev events.Event) {
		logger.Info("new intake awaiting review", "intake_id", ev.ID)
	})

	registry := format.NewRegistry(formatsRepo, logger)
	matcher := format.NewMatcher(registry, logger)
	extractor := extract.NewExtractor(logger)
	reviewSvc := review.NewService(intakesRepo, emitter, logger)
	exportSvc := export.NewService(logger)

	if cfg.Formats.SeedPath != "" {
		if _, err := format.Seed(ctx, registry, cfg.Formats.SeedPath, logger); err != nil {
			log.Fatalf("seeding formats: %v", err)
		}
	}

	engine := ocr.NewTesseractEngine(ocr.TesseractConfig{
		TessdataDir:   os.Getenv("TESSDATA_PREFIX"),
		PSM:           6,
		HeicConverter: os.Getenv("HEIC_CONVERTER"),
	}, logger)
	enhancer := ocr.NewImagingEnhancer(logger)

	processor := pipeline.NewProcessor(logger, registry, matcher, extractor, reviewSvc,
		pipeline.WithOCR(engine, cfg.OCR.Timeout),
		pipeline.WithEnhancer(enhancer, ocr.EnhanceOptions{
			Denoise:          cfg.OCR.Denoise,
			Sharpen:          cfg.OCR.Sharpen,
			Contrast:         cfg.OCR.Contrast,
			Perspective:      cfg.OCR.Perspective,
			RemoveBackground: cfg.OCR.RemoveBackground,
		}),
	)

	// Filesystem watch ingestion
	var queue *async.IngestQueue
	if len(cfg.Ingest.WatchDirs) > 0 {
		ingestor := ingest.NewBatchIngestor(processor, nil, logger)
		queue = async.NewIngestQueue(ingestor, logger, async.WithWorkers(cfg.Ingest.Workers))
		paths, _, err := ingest.Watch(ctx, ingest.WatchConfig{
			Roots:       cfg.Ingest.WatchDirs,
			InitialScan: cfg.Ingest.InitialScan,
			Debounce:    cfg.Ingest.Debounce,
		}, logger)
		if err != nil {
			log.Fatalf("starting watcher: %v", err)
		}
		go func() {
			for p := range paths {
				_ = queue.Enqueue(ctx, async.Job{Path: p})
			}
		}()
		log.Infow("watching for documents", "dirs", cfg.Ingest.WatchDirs)
	}

	// gRPC server
	grpcServer := grpc.NewServer()
	hs := health.NewServer()
	healthpb.RegisterHealthServer(grpcServer, hs)
	hs.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	reflection.Register(grpcServer)
	dtrpb.RegisterDtrServiceServer(grpcServer,
		svc.NewDtrService(registry, processor, reviewSvc, exportSvc, logger))

	lis, err := net.Listen("tcp", cfg.Server.GRPCAddr)
	if err != nil {
		log.Fatalf("listen %s: %v", cfg.Server.GRPCAddr, err)
	}
	go func() {
		log.Infof("gRPC serving on %s", cfg.Server.GRPCAddr)
		if err := grpcServer.Serve(lis); err != nil {
			log.Fatalf("grpc serve: %v", err)
		}
	}()

	// Operator review surface
	adminSrv := &http.Server{
		Addr:    cfg.Server.AdminAddr,
		Handler: httpapi.NewRouter(registry, reviewSvc, logger),
	}
	go func() {
		log.Infof("admin API serving on %s", cfg.Server.AdminAddr)
		if err := adminSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("admin serve: %v", err)
		}
	}()

	<-ctx.Done()
	log.Info("shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = adminSrv.Shutdown(shutdownCtx)
	grpcServer.GracefulStop()
	if queue != nil {
		queue.Shutdown(shutdownCtx)
	}
	log.Info("stopped")
}

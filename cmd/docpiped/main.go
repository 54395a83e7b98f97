package main

import (
	"context"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	v1 "github.com/docufill/docpipe/gen/proto/docpipe/v1"
	"github.com/docufill/docpipe/internal/async"
	"github.com/docufill/docpipe/internal/classify"
	"github.com/docufill/docpipe/internal/common"
	"github.com/docufill/docpipe/internal/export"
	"github.com/docufill/docpipe/internal/extract"
	"github.com/docufill/docpipe/internal/ingest"
	"github.com/docufill/docpipe/internal/llm/openai"
	"github.com/docufill/docpipe/internal/mapper"
	"github.com/docufill/docpipe/internal/merge"
	"github.com/docufill/docpipe/internal/ocr"
	"github.com/docufill/docpipe/internal/pipeline"
	"github.com/docufill/docpipe/internal/qa"
	repo "github.com/docufill/docpipe/internal/repository"
	svc "github.com/docufill/docpipe/internal/server"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if cfg.Database.DSN == "" {
		logger.Error("missing DB_URL environment variable")
		os.Exit(1)
	}
	addr := cfg.Server.GRPCAddr
	if !strings.HasPrefix(addr, ":") && !strings.Contains(addr, ":") {
		addr = ":" + addr
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	entc, pool, err := repo.Open(ctx, repo.Config{
		Driver:           cfg.Database.Driver,
		DSN:              cfg.Database.DSN,
		MaxConns:         cfg.Database.MaxConns,
		MinConns:         cfg.Database.MinConns,
		MaxConnLifetime:  cfg.Database.MaxConnLifetime,
		MaxConnIdleTime:  cfg.Database.MaxConnIdleTime,
		DialTimeout:      cfg.Database.DialTimeout,
		StatementTimeout: cfg.Database.StatementTimeout,
	}, logger)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer repo.Close(entc, pool, logger)

	if err := repo.HealthCheck(ctx, pool, 5*time.Second, logger); err != nil {
		logger.Error("failed to ping database", "error", err)
		os.Exit(1)
	}

	docsRepo := repo.NewDocumentRepository(entc, logger)
	jobsRepo := repo.NewJobRepository(entc, logger)
	resultsRepo := repo.NewResultRepository(entc, logger)
	templatesRepo := repo.NewTemplateRepository(entc, logger)
	profilesRepo := repo.NewProfileRepository(entc, logger)

	ocrExtractor := ocr.NewExtractor(ocr.Config{
		HeicConverter:          cfg.OCR.HeicConverter,
		TessdataDir:            cfg.OCR.TessdataDir,
		ArtifactCacheDir:       cfg.OCR.ArtifactCacheDir,
		LowConfidenceThreshold: cfg.OCR.LowConfidenceThreshold,
		MaxPages:               cfg.OCR.MaxPages,
		EnableTSVConfidence:    true,
	}, logger)

	var completer extract.FieldCompleter
	if cfg.LLM.APIKey != "" {
		completer = openai.NewClient(openai.Config{
			APIKey:              cfg.LLM.APIKey,
			BaseURL:             cfg.LLM.BaseURL,
			Model:               cfg.LLM.Model,
			VisionModel:         cfg.LLM.VisionModel,
			Temperature:         cfg.LLM.Temperature,
			Timeout:             cfg.LLM.Timeout,
			LenientOptional:     true,
			VisionConfThreshold: cfg.OCR.LowConfidenceThreshold,
			ArtifactCacheDir:    cfg.OCR.ArtifactCacheDir,
		}, logger)
	} else {
		logger.Warn("OPENAI_API_KEY not set, running rule-only extraction")
	}

	merger := merge.NewEngine(profilesRepo, logger)
	orch := pipeline.NewOrchestrator(pipeline.Deps{
		Jobs:       jobsRepo,
		Docs:       docsRepo,
		Results:    resultsRepo,
		Templates:  templatesRepo,
		OCR:        ocrExtractor,
		Classifier: classify.New(logger),
		Extractor:  extract.NewExtractor(completer, logger),
		Mapper:     mapper.NewMapper(cfg.Mapper.SimilarityThreshold, logger),
		Assessor:   qa.NewAssessor(logger),
		Merger:     merger,
		Logger:     logger,
	})

	queue := async.NewProcessorQueue(orch, logger,
		async.WithWorkers(cfg.Pipeline.Workers),
		async.WithQueueSize(cfg.Pipeline.QueueSize),
		async.WithProcessTimeout(cfg.Pipeline.StageTimeout),
	)

	pipeSvc := pipeline.NewService(orch, queue, jobsRepo, docsRepo, cfg.Pipeline.MaxAttempts, logger)
	if n, err := pipeSvc.Resume(ctx); err != nil {
		logger.Error("resume of unfinished jobs failed", "error", err)
	} else if n > 0 {
		logger.Info("requeued unfinished jobs", "count", n)
	}

	exportDir := os.Getenv("EXPORT_DIR")
	if exportDir == "" {
		exportDir = "./exports"
	}
	exporter := export.NewService(jobsRepo, templatesRepo, merger, mapper.NewMapper(cfg.Mapper.SimilarityThreshold, logger), exportDir, logger)
	ingestor := ingest.NewFSIngestor(docsRepo, logger)

	grpcServer := grpc.NewServer()
	v1.RegisterIngestionServiceServer(grpcServer, svc.NewIngestionService(ingestor, logger))
	v1.RegisterPipelineServiceServer(grpcServer, svc.NewPipelineService(pipeSvc, jobsRepo, templatesRepo, exporter, logger))
	v1.RegisterProfileServiceServer(grpcServer, svc.NewProfileService(merger, logger))
	v1.RegisterTemplateServiceServer(grpcServer, svc.NewTemplateService(templatesRepo, logger))
	v1.RegisterExportServiceServer(grpcServer, svc.NewExportService(exporter, logger))

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	reflection.Register(grpcServer)

	lis, err := net.Listen("tcp", addr)
	if err != nil {
		logger.Error("failed to listen on address", "addr", addr, "error", err)
		os.Exit(1)
	}

	logger.Info("docpipe listening", "addr", addr)
	go func() {
		if err := grpcServer.Serve(lis); err != nil {
			slog.Error("gRPC serve error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	queue.Shutdown(context.Background())
	grpcServer.GracefulStop()
}

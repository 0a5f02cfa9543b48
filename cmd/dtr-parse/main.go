package main

import (
	"context"
	"encoding/json"
	"flag"
	"log/slog"
	"os"
	"time"

	"dtr-engine/internal/entity"
	"dtr-engine/internal/export"
	"dtr-engine/internal/extract"
	"dtr-engine/internal/format"
	"dtr-engine/internal/ingest"
	"dtr-engine/internal/ocr"
	"dtr-engine/internal/pipeline"
	repo "dtr-engine/internal/repository"
	"dtr-engine/internal/review"
)

// dtr-parse runs the extraction pipeline against local files using an
// in-memory registry seeded from a YAML file. Text files are matched
// directly; image files go through enhancement and tesseract first.
func main() {
	seedPath := flag.String("seed", "", "YAML file of format definitions (required)")
	xlsxPath := flag.String("xlsx", "", "write an attendance workbook to this path")
	dirPath := flag.String("dir", "", "ingest every supported file under this directory")
	enhance := flag.Bool("enhance", true, "apply sharpen/contrast before OCR")
	verbose := flag.Bool("v", false, "debug logging")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	if *seedPath == "" || (flag.NArg() == 0 && *dirPath == "") {
		logger.Error("usage", "cmd", "dtr-parse -seed formats.yaml [-dir docs/] [-xlsx out.xlsx] [file...]")
		os.Exit(2)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	store := repo.NewMemoryStore()
	registry := format.NewRegistry(store, logger)
	if _, err := format.Seed(ctx, registry, *seedPath, logger); err != nil {
		logger.Error("seed failed", "error", err)
		os.Exit(1)
	}

	matcher := format.NewMatcher(registry, logger)
	extractor := extract.NewExtractor(logger)
	reviewSvc := review.NewService(store.Intakes(), nil, logger)

	opts := ocr.EnhanceOptions{Sharpen: *enhance, Contrast: *enhance}
	processor := pipeline.NewProcessor(logger, registry, matcher, extractor, reviewSvc,
		pipeline.WithOCR(ocr.NewTesseractEngine(ocr.TesseractConfig{PSM: 6}, logger), 60*time.Second),
		pipeline.WithEnhancer(ocr.NewImagingEnhancer(logger), opts),
	)

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")

	ingestor := ingest.NewBatchIngestor(processor, nil, logger)

	var preds []*entity.Prediction
	emit := func(r ingest.Result) {
		if r.Deduplicated {
			logger.Info("duplicate skipped", "path", r.SourcePath)
			return
		}
		logger.Info("parsed", "path", r.SourcePath,
			"needs_review", r.Prediction.NeedsReview, "is_new_format", r.Prediction.IsNewFormat)
		if err := enc.Encode(r.Prediction); err != nil {
			logger.Error("encode failed", "error", err)
			os.Exit(1)
		}
		preds = append(preds, r.Prediction)
	}

	if *dirPath != "" {
		results, stats, err := ingestor.IngestDirectory(ctx, *dirPath, true)
		if err != nil {
			logger.Error("directory ingest failed", "error", err)
			os.Exit(1)
		}
		for _, r := range results {
			if r.Err != "" {
				logger.Warn("skipped", "path", r.SourcePath, "error", r.Err)
				continue
			}
			emit(r)
		}
		logger.Info("directory done",
			"scanned", stats.Scanned, "matched", stats.Matched,
			"succeeded", stats.Succeeded, "deduplicated", stats.Deduplicated, "failed", stats.Failed)
	}

	for _, path := range flag.Args() {
		r, err := ingestor.IngestPath(ctx, path)
		if err != nil {
			logger.Error("parse failed", "path", path, "error", err)
			os.Exit(1)
		}
		emit(r)
	}

	if *xlsxPath != "" {
		buf, err := export.NewService(logger).AttendanceXLSX(preds)
		if err != nil {
			logger.Error("export failed", "error", err)
			os.Exit(1)
		}
		if err := os.WriteFile(*xlsxPath, buf, 0o644); err != nil {
			logger.Error("write workbook failed", "path", *xlsxPath, "error", err)
			os.Exit(1)
		}
		logger.Info("workbook written", "path", *xlsxPath, "rows", len(preds))
	}
}

package ocr

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"
)

type TesseractConfig struct {
	Tesseract     string // binary name or absolute path; if empty -> "tesseract"
	TesseractLang string // default "eng"
	TessdataDir   string
	PSM           int    // e.g., 6 is good for uniform block of text
	OEM           int    // 1 = LSTM; leave 0 to use default
	HeicConverter string // heif-convert | magick | sips; empty -> HEIC rejected
}

// TesseractEngine shells out to tesseract. DTR sheets arrive as photos or
// scans, so the engine writes the bytes to a scratch file and reads stdout.
type TesseractEngine struct {
	cfg    TesseractConfig
	runner Runner
	logger *slog.Logger
}

func NewTesseractEngine(cfg TesseractConfig, logger *slog.Logger) *TesseractEngine {
	if cfg.Tesseract == "" {
		cfg.Tesseract = "tesseract"
	}
	if cfg.TesseractLang == "" {
		cfg.TesseractLang = "eng"
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &TesseractEngine{cfg: cfg, runner: execRunner{}, logger: logger}
}

var reBoxNoise = regexp.MustCompile(`(?m)^\s*[_\-]{3,}\s*$`)

func (e *TesseractEngine) RecognizeText(ctx context.Context, image []byte) (Result, error) {
	start := time.Now()

	var warnings []string
	if IsHEIC(image) {
		converted, err := ConvertHEIC(ctx, e.runner, e.logger, e.cfg.HeicConverter, image)
		if err != nil {
			return Result{}, fmt.Errorf("heic: %w", err)
		}
		warnings = append(warnings, "converted from heic")
		image = converted
	}

	tmp, err := os.CreateTemp("", "dtr-ocr-*.png")
	if err != nil {
		return Result{}, fmt.Errorf("scratch file: %w", err)
	}
	path := tmp.Name()
	defer func() {
		if rerr := os.Remove(path); rerr != nil {
			e.logger.Warn("scratch file cleanup failed", "path", path, "error", rerr)
		}
	}()
	if _, err := tmp.Write(image); err != nil {
		_ = tmp.Close()
		return Result{}, fmt.Errorf("write scratch file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return Result{}, fmt.Errorf("close scratch file: %w", err)
	}

	args := []string{path, "stdout", "-l", e.cfg.TesseractLang}
	if e.cfg.PSM > 0 {
		args = append(args, "--psm", fmt.Sprintf("%d", e.cfg.PSM))
	}
	if e.cfg.OEM > 0 {
		args = append(args, "--oem", fmt.Sprintf("%d", e.cfg.OEM))
	}
	if e.cfg.TessdataDir != "" {
		args = append(args, "--tessdata-dir", e.cfg.TessdataDir)
	}

	out, errb, err := e.runner.Run(ctx, e.cfg.Tesseract, args...)
	if err != nil {
		return Result{Warnings: append(warnings, string(errb))}, fmt.Errorf("tesseract %s: %w", filepath.Base(path), err)
	}

	txt := reBoxNoise.ReplaceAllString(string(out), "")
	txt = CleanText(txt)
	return Result{
		Text:     txt,
		Language: e.cfg.TesseractLang,
		Duration: time.Since(start),
		Warnings: warnings,
	}, nil
}

var (
	reCRLF       = regexp.MustCompile(`\r\n?`)
	reTabs       = regexp.MustCompile(`\t+`)
	reMultiSpace = regexp.MustCompile(` {2,}`)
	reMultiBlank = regexp.MustCompile(`\n{3,}`)
)

// CleanText collapses noisy whitespace in OCR output. Conservative: keeps
// line breaks; collapses >2 newlines into a single blank line. This is the
// engine's own output cleanup, not something the matcher applies.
func CleanText(s string) string {
	if s == "" {
		return s
	}
	s = reCRLF.ReplaceAllString(s, "\n")
	s = reTabs.ReplaceAllString(s, " ")
	s = reMultiSpace.ReplaceAllString(s, " ")
	s = reMultiBlank.ReplaceAllString(s, "\n\n")
	lines := strings.Split(s, "\n")
	for i := range lines {
		lines[i] = strings.TrimRight(lines[i], " ")
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}

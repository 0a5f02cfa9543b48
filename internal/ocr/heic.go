package ocr

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
)

// heicBrands are the ftyp brands phone cameras emit for HEIF stills.
var heicBrands = [][]byte{
	[]byte("heic"), []byte("heix"), []byte("hevc"), []byte("heif"), []byte("mif1"),
}

// IsHEIC sniffs the ISO-BMFF ftyp box. Phone photos of timesheets arrive
// in HEIC more often than not, and tesseract cannot read them directly.
func IsHEIC(data []byte) bool {
	if len(data) < 12 || !bytes.Equal(data[4:8], []byte("ftyp")) {
		return false
	}
	brand := data[8:12]
	for _, b := range heicBrands {
		if bytes.Equal(brand, b) {
			return true
		}
	}
	return false
}

// ConvertHEIC shells out to an external converter and returns PNG bytes.
// Supported converters: heif-convert, magick, sips.
func ConvertHEIC(ctx context.Context, r Runner, logger *slog.Logger, converter string, data []byte) ([]byte, error) {
	if logger == nil {
		logger = slog.Default()
	}
	tmpDir, err := os.MkdirTemp("", "dtr-heic-*")
	if err != nil {
		return nil, err
	}
	defer func() {
		if rerr := os.RemoveAll(tmpDir); rerr != nil {
			logger.Warn("heic temp cleanup failed", "dir", tmpDir, "error", rerr)
		}
	}()

	in := filepath.Join(tmpDir, "page.heic")
	out := filepath.Join(tmpDir, "page.png")
	if err := os.WriteFile(in, data, 0o600); err != nil {
		return nil, err
	}

	switch converter {
	case "heif-convert":
		if _, errb, err := r.Run(ctx, "heif-convert", in, out); err != nil {
			return nil, fmt.Errorf("heif-convert: %w (%s)", err, truncate(string(errb), 512))
		}
	case "magick":
		if _, errb, err := r.Run(ctx, "magick", in, out); err != nil {
			return nil, fmt.Errorf("magick: %w (%s)", err, truncate(string(errb), 512))
		}
	case "sips":
		if _, errb, err := r.Run(ctx, "sips", "-s", "format", "png", in, "--out", out); err != nil {
			return nil, fmt.Errorf("sips: %w (%s)", err, truncate(string(errb), 512))
		}
	default:
		return nil, fmt.Errorf("heic not supported: converter must be one of heif-convert, magick, sips")
	}

	png, err := os.ReadFile(out)
	if err != nil {
		return nil, fmt.Errorf("heic conversion produced no output: %w", err)
	}
	return png, nil
}

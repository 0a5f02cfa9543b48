package format

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"dtr-engine/internal/entity"
)

// SeedFile is the on-disk shape of a format seed document.
type SeedFile struct {
	Formats []SeedFormat `yaml:"formats"`
}

type SeedFormat struct {
	Name      string            `yaml:"name"`
	CompanyID string            `yaml:"company_id,omitempty"`
	Pattern   string            `yaml:"pattern"`
	Rules     map[string]string `yaml:"rules"`
	Example   string            `yaml:"example,omitempty"`
}

// LoadSeed reads authored format definitions from a YAML file.
func LoadSeed(path string) ([]entity.FormatDraft, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}
	var sf SeedFile
	if err := yaml.Unmarshal(data, &sf); err != nil {
		return nil, fmt.Errorf("parse seed file: %w", err)
	}

	drafts := make([]entity.FormatDraft, 0, len(sf.Formats))
	for i, s := range sf.Formats {
		if s.Name == "" || s.Pattern == "" || len(s.Rules) == 0 {
			return nil, fmt.Errorf("seed format %d: name, pattern and rules are required", i)
		}
		var companyID *uuid.UUID
		if s.CompanyID != "" {
			id, err := uuid.Parse(s.CompanyID)
			if err != nil {
				return nil, fmt.Errorf("seed format %q: company_id: %w", s.Name, err)
			}
			companyID = &id
		}
		drafts = append(drafts, entity.FormatDraft{
			Name:            s.Name,
			CompanyID:       companyID,
			Pattern:         s.Pattern,
			ExtractionRules: entity.ExtractionRules(s.Rules),
			Example:         s.Example,
		})
	}
	return drafts, nil
}

// Seed registers the drafts from a seed file, skipping names that already
// exist as active formats so restarts do not duplicate built-ins.
func Seed(ctx context.Context, reg *Registry, path string, logger *slog.Logger) (int, error) {
	if logger == nil {
		logger = slog.Default()
	}
	drafts, err := LoadSeed(path)
	if err != nil {
		return 0, err
	}
	existing, err := reg.ListActive(ctx, nil)
	if err != nil {
		return 0, err
	}
	known := make(map[string]struct{}, len(existing))
	for _, f := range existing {
		known[f.Name] = struct{}{}
	}

	created := 0
	for _, d := range drafts {
		if _, ok := known[d.Name]; ok {
			logger.Debug("seed format already registered", "name", d.Name)
			continue
		}
		if _, err := reg.Create(ctx, d); err != nil {
			return created, fmt.Errorf("seed format %q: %w", d.Name, err)
		}
		created++
	}
	logger.Info("format seed applied", "path", path, "created", created, "total", len(drafts))
	return created, nil
}

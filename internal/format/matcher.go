package format

import (
	"log/slog"

	"dtr-engine/internal/entity"
)

// Match is the result of a successful match: the winning format plus its
// raw capture groups, indexed and named. Groups[0] is the whole match.
type Match struct {
	Format *entity.DtrFormat
	Groups []string
	Named  map[string]string
}

// Matcher tries formats in registry order and stops at the first hit.
// First-match-wins is the documented tie-break policy: when two formats
// both match the same text, registry (creation) order is the only
// disambiguator, so specific formats should be registered before generic
// fallbacks.
type Matcher struct {
	registry *Registry
	logger   *slog.Logger
}

func NewMatcher(registry *Registry, logger *slog.Logger) *Matcher {
	if logger == nil {
		logger = slog.Default()
	}
	return &Matcher{registry: registry, logger: logger}
}

// Match returns the first format whose pattern matches rawText, or nil
// when none does (including the empty-formats case). The matcher performs
// no text cleanup of its own; pattern authors are expected to encode
// whatever tolerance noisy OCR text needs.
func (m *Matcher) Match(rawText string, formats []*entity.DtrFormat) *Match {
	for _, f := range formats {
		re := m.registry.Compile(f)
		if re == nil {
			continue
		}
		groups := re.FindStringSubmatch(rawText)
		if groups == nil {
			continue
		}
		named := make(map[string]string)
		for i, name := range re.SubexpNames() {
			if name != "" && i < len(groups) {
				named[name] = groups[i]
			}
		}
		m.logger.Debug("format matched", "format_id", f.ID, "name", f.Name, "groups", len(groups))
		return &Match{Format: f, Groups: groups, Named: named}
	}
	return nil
}

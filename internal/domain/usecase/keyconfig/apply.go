package keyconfig

import (
	"errors"

	"github.com/amirhossein-jamali/keylog/internal/domain/entity"
	errs "github.com/amirhossein-jamali/keylog/internal/domain/error"
	coreport "github.com/amirhossein-jamali/keylog/internal/domain/port/core"
	"github.com/amirhossein-jamali/keylog/internal/domain/port/usecase"
)

// Entry is one declarative key registration. Keys are interned by Name,
// so a Description only takes effect on the first entry that creates the
// key; later differing descriptions are ignored with a warning.
type Entry struct {
	Name        string
	Description string
	Level       string
	Policy      string
}

// Report lists the display names of the keys touched by Apply, in input order
type Report struct {
	Added      []string
	Discarded  []string
	Set        []string
	Updated    []string
	NotUpdated []string
}

type resolvedEntry struct {
	key    *entity.Key
	level  entity.Level
	policy Policy
}

// Applier registers configured keys with the facade
type Applier struct {
	facade  usecase.KeyLogger
	catalog *Catalog
	logger  coreport.Logger
}

// NewApplier creates an applier; catalog may be nil
func NewApplier(facade usecase.KeyLogger, catalog *Catalog, logger coreport.Logger) *Applier {
	if catalog == nil {
		catalog = NewCatalog()
	}
	return &Applier{
		facade:  facade,
		catalog: catalog,
		logger:  logger,
	}
}

// Catalog returns the catalog keys are interned in
func (a *Applier) Catalog() *Catalog {
	return a.catalog
}

// Apply validates every entry and, only if all are valid, registers them
// in order using each entry's policy.
func (a *Applier) Apply(entries []Entry) (*Report, error) {
	resolved, err := a.resolve(entries)
	if err != nil {
		var kcErr *errs.KeyConfigError
		if errors.As(err, &kcErr) {
			a.logger.Error("Invalid key configuration", kcErr.LogFields())
		}
		return nil, err
	}

	report := &Report{}
	for _, r := range resolved {
		label := r.key.Display()
		switch r.policy {
		case PolicySet:
			a.facade.SetKey(r.key, r.level)
			report.Set = append(report.Set, label)
		case PolicyUpdate:
			if a.facade.UpdateKey(r.key, r.level) {
				report.Updated = append(report.Updated, label)
			} else {
				report.NotUpdated = append(report.NotUpdated, label)
			}
		default:
			if a.facade.AddKey(r.key, r.level) {
				report.Added = append(report.Added, label)
			} else {
				report.Discarded = append(report.Discarded, label)
			}
		}

		a.logger.Debug("Key configured", map[string]any{
			"key":    label,
			"level":  r.level.Display(),
			"policy": string(r.policy),
		})
	}

	a.logger.Info("Key configuration applied", map[string]any{
		"added":       len(report.Added),
		"discarded":   len(report.Discarded),
		"set":         len(report.Set),
		"updated":     len(report.Updated),
		"not_updated": len(report.NotUpdated),
	})
	return report, nil
}

// ApplyOverride parses level and installs it as the override threshold
func (a *Applier) ApplyOverride(level string) error {
	parsed, err := entity.ParseLevel(level)
	if err != nil {
		a.logger.Error("Invalid override level", map[string]any{
			"value": level,
			"error": err.Error(),
		})
		return err
	}
	a.facade.SetOverrideLevel(parsed)
	a.logger.Debug("Override level set", map[string]any{"level": parsed.Display()})
	return nil
}

func (a *Applier) resolve(entries []Entry) ([]resolvedEntry, error) {
	resolved := make([]resolvedEntry, 0, len(entries))
	for i, e := range entries {
		label := e.Name
		if label == "" {
			label = e.Description
		}
		if label == "" {
			return nil, errs.NewKeyConfigError(i, "", "", errs.ErrInvalidKey)
		}

		level, err := entity.ParseLevel(e.Level)
		if err != nil {
			return nil, errs.NewKeyConfigError(i, label, e.Level, errs.ErrUnknownLevel)
		}

		policy, err := ParsePolicy(e.Policy)
		if err != nil {
			return nil, errs.NewKeyConfigError(i, label, e.Policy, errs.ErrUnknownPolicy)
		}

		resolved = append(resolved, resolvedEntry{level: level, policy: policy})
	}

	// keys are interned only once every entry is valid
	for i, e := range entries {
		if e.Description == "" {
			resolved[i].key = a.catalog.Key(e.Name)
			continue
		}

		key := a.catalog.KeyWithDescription(e.Name, e.Description)
		if current, _ := key.Description(); current != e.Description {
			a.logger.Warn("Key description ignored", map[string]any{
				"index":       i,
				"key":         e.Name,
				"description": e.Description,
				"display":     key.Display(),
			})
		}
		resolved[i].key = key
	}
	return resolved, nil
}

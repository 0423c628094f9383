// Package service orchestrates CSV loading, type inference, JSON
// encoding and serializer generation for the convert module
package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"csvforge/internal/core/schemagen"
	"csvforge/internal/core/tabular"
	"csvforge/internal/modkit/repokit"
	perr "csvforge/internal/platform/errors"
	"csvforge/internal/platform/logger"
	"csvforge/internal/services/convert/domain"
	"csvforge/internal/services/convert/repo"
)

// Config for the convert service
type Config struct {
	// RunsLimit caps how many ledger rows RecentRuns returns
	RunsLimit int
}

// Service implements domain.ServicePort
// A nil TxRunner disables the run ledger; conversions still work
type Service struct {
	tx     repokit.TxRunner
	binder repokit.Binder[repo.Storage]
	cfg    Config
	log    *logger.Logger
}

// New constructs a convert service
func New(tx repokit.TxRunner, binder repokit.Binder[repo.Storage], cfg Config) *Service {
	if cfg.RunsLimit <= 0 {
		cfg.RunsLimit = 50
	}
	return &Service{tx: tx, binder: binder, cfg: cfg, log: logger.Named("convert")}
}

// Convert implements domain.ServicePort
func (s *Service) Convert(ctx context.Context, in domain.ConvertInput) (domain.ConvertResult, error) {
	var zero domain.ConvertResult

	delim := in.Delimiter
	if delim == "" {
		delim = ","
	}
	level, err := schemagen.ParseLevel(in.Validation)
	if err != nil {
		return zero, err
	}
	kinds, err := resolveKinds(in.Kinds)
	if err != nil {
		return zero, err
	}

	var ds *tabular.Dataset
	if in.Path != "" {
		ds, err = tabular.ReadFile(in.Path, delim)
	} else {
		ds, err = tabular.ReadString(in.CSV, delim)
	}
	if err != nil {
		return zero, err
	}

	body, err := tabular.EncodeJSON(ds, in.Indent)
	if err != nil {
		return zero, err
	}

	class := schemagen.ClassName(in.ClassName)
	fields := schemagen.FieldsOf(ds)

	sources := make(map[string]string, len(kinds))
	for _, k := range kinds {
		code, err := schemagen.Generate(k, class, level, fields)
		if err != nil {
			return zero, err
		}
		sources[string(k)] = code
	}

	res := domain.ConvertResult{
		RunID:     uuid.NewString(),
		ClassName: class,
		Records:   len(ds.Records),
		Columns:   columnsOf(ds),
		JSON:      string(body),
		Sources:   sources,
		Summary:   tabular.Summarize(ds).String(),
	}
	s.recordRun(ctx, res, level, kinds)
	return res, nil
}

// Sample implements domain.ServicePort
func (s *Service) Sample(ctx context.Context) (domain.SamplePreview, error) {
	res, err := s.Convert(ctx, domain.ConvertInput{CSV: tabular.SampleCSV()})
	if err != nil {
		return domain.SamplePreview{}, err
	}
	return domain.SamplePreview{CSV: tabular.SampleCSV(), Result: res}, nil
}

// RecentRuns implements domain.ServicePort
func (s *Service) RecentRuns(ctx context.Context, limit int) ([]domain.RunRecord, error) {
	if s.tx == nil {
		return nil, perr.Unavailablef("run ledger is not configured")
	}
	if limit <= 0 || limit > s.cfg.RunsLimit {
		limit = s.cfg.RunsLimit
	}
	return s.binder.Bind(s.tx).RecentRuns(ctx, limit)
}

// recordRun persists the ledger row best effort; a conversion never
// fails because the ledger is down
func (s *Service) recordRun(ctx context.Context, res domain.ConvertResult, level schemagen.Level, kinds []schemagen.Kind) {
	if s.tx == nil {
		return
	}
	names := make([]string, 0, len(kinds))
	for _, k := range kinds {
		names = append(names, string(k))
	}
	rec := domain.RunRecord{
		ID:         res.RunID,
		CreatedAt:  time.Now().UTC(),
		ClassName:  res.ClassName,
		Validation: string(level),
		Records:    res.Records,
		Fields:     len(res.Columns),
		Kinds:      names,
	}
	if err := s.binder.Bind(s.tx).InsertRun(ctx, rec); err != nil {
		s.log.Warn().Err(err).Str("run_id", rec.ID).Msg("run ledger insert failed")
	}
}

func resolveKinds(names []string) ([]schemagen.Kind, error) {
	if len(names) == 0 {
		return schemagen.Kinds(), nil
	}
	out := make([]schemagen.Kind, 0, len(names))
	for _, n := range names {
		k, err := schemagen.ParseKind(n)
		if err != nil {
			return nil, err
		}
		out = append(out, k)
	}
	return out, nil
}

func columnsOf(ds *tabular.Dataset) []domain.ColumnType {
	out := make([]domain.ColumnType, 0, len(ds.Columns))
	for _, col := range ds.Columns {
		out = append(out, domain.ColumnType{Name: col, Tag: string(ds.Tags[col])})
	}
	return out
}

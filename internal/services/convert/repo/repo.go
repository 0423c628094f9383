// Package repo persists the conversion run ledger in Postgres
package repo

import (
	"context"

	"csvforge/internal/modkit/repokit"
	perr "csvforge/internal/platform/errors"
	"csvforge/internal/services/convert/domain"
)

type (
	pg     struct{ q repokit.Queryer }
	binder struct{}
)

// NewPG constructs a new repo binder for Postgres
func NewPG() repokit.Binder[Storage] { return binder{} }

// Bind implements repokit.Binder
func (binder) Bind(q repokit.Queryer) Storage { return &pg{q: q} }

// Storage defines the run ledger repository
type Storage interface {
	InsertRun(ctx context.Context, rec domain.RunRecord) error
	RecentRuns(ctx context.Context, limit int) ([]domain.RunRecord, error)
}

// InsertRun implements Storage
func (s *pg) InsertRun(ctx context.Context, rec domain.RunRecord) error {
	const q = `
		INSERT INTO conversion_runs
			(id, created_at, class_name, validation, records, fields, kinds)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (id) DO NOTHING`

	_, err := s.q.Exec(ctx, q,
		rec.ID, rec.CreatedAt, rec.ClassName, rec.Validation,
		rec.Records, rec.Fields, rec.Kinds,
	)
	if err != nil {
		return perr.DBf("inserting conversion run %s: %v", rec.ID, err)
	}
	return nil
}

// RecentRuns implements Storage, newest first
func (s *pg) RecentRuns(ctx context.Context, limit int) ([]domain.RunRecord, error) {
	const q = `
		SELECT id, created_at, class_name, validation, records, fields, kinds
		FROM conversion_runs
		ORDER BY created_at DESC
		LIMIT $1`

	rows, err := s.q.Query(ctx, q, limit)
	if err != nil {
		return nil, perr.DBf("listing conversion runs: %v", err)
	}
	defer rows.Close()

	var out []domain.RunRecord
	for rows.Next() {
		var rec domain.RunRecord
		if err := rows.Scan(
			&rec.ID, &rec.CreatedAt, &rec.ClassName, &rec.Validation,
			&rec.Records, &rec.Fields, &rec.Kinds,
		); err != nil {
			return nil, perr.DBf("scanning conversion run: %v", err)
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, perr.DBf("iterating conversion runs: %v", err)
	}
	return out, nil
}

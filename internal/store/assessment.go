package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// assessmentRepo implements AssessmentRepo over raw SQL. String slices
// are stored as JSON text columns.
type assessmentRepo struct {
	db *sql.DB
}

func (r *assessmentRepo) Save(ctx context.Context, rec *AssessmentRecord) error {
	skills, err := encodeList(rec.Skills)
	if err != nil {
		return err
	}
	strengths, err := encodeList(rec.Strengths)
	if err != nil {
		return err
	}
	weakAreas, err := encodeList(rec.WeakAreas)
	if err != nil {
		return err
	}

	createdAt := rec.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO assessments (
			id, created_at, domain, skills,
			score, total, level, strengths, weak_areas
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.ID, createdAt.UTC(), rec.Domain, skills,
		rec.Score, rec.Total, rec.Level, strengths, weakAreas,
	)
	if err != nil {
		return fmt.Errorf("save assessment: %w", err)
	}
	return nil
}

func (r *assessmentRepo) List(ctx context.Context, limit int) ([]AssessmentRecord, error) {
	query := `SELECT id, created_at, domain, skills,
		score, total, level, strengths, weak_areas
		FROM assessments ORDER BY created_at DESC, id DESC`
	var args []any
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list assessments: %w", err)
	}
	defer rows.Close()

	var recs []AssessmentRecord
	for rows.Next() {
		rec, err := scanAssessment(rows)
		if err != nil {
			return nil, err
		}
		recs = append(recs, *rec)
	}
	return recs, rows.Err()
}

func (r *assessmentRepo) Get(ctx context.Context, id string) (*AssessmentRecord, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, created_at, domain, skills,
			score, total, level, strengths, weak_areas
		FROM assessments WHERE id = ?`, id)

	rec, err := scanAssessment(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	return rec, err
}

func scanAssessment(row rowScanner) (*AssessmentRecord, error) {
	var rec AssessmentRecord
	var skills, strengths, weakAreas string

	err := row.Scan(
		&rec.ID, &rec.CreatedAt, &rec.Domain, &skills,
		&rec.Score, &rec.Total, &rec.Level, &strengths, &weakAreas,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan assessment: %w", err)
	}

	if rec.Skills, err = decodeList(skills); err != nil {
		return nil, err
	}
	if rec.Strengths, err = decodeList(strengths); err != nil {
		return nil, err
	}
	if rec.WeakAreas, err = decodeList(weakAreas); err != nil {
		return nil, err
	}
	return &rec, nil
}

func encodeList(list []string) (string, error) {
	if list == nil {
		list = []string{}
	}
	b, err := json.Marshal(list)
	if err != nil {
		return "", fmt.Errorf("encode list: %w", err)
	}
	return string(b), nil
}

func decodeList(raw string) ([]string, error) {
	var list []string
	if err := json.Unmarshal([]byte(raw), &list); err != nil {
		return nil, fmt.Errorf("decode list: %w", err)
	}
	return list, nil
}

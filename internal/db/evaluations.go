package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jonathan/resume-evaluator/internal/types"
)

// ErrNotFound is returned when an evaluation does not exist
var ErrNotFound = errors.New("evaluation not found")

// EvaluationRecord is a stored evaluation result
type EvaluationRecord struct {
	ID           uuid.UUID              `json:"id"`
	OverallScore int                    `json:"overall_score"`
	ProfileTier  string                 `json:"profile_tier"`
	Report       types.EvaluationReport `json:"report"`
	CreatedAt    time.Time              `json:"created_at"`
}

// SaveEvaluation stores an evaluation report and returns its ID
func (db *DB) SaveEvaluation(ctx context.Context, report types.EvaluationReport) (uuid.UUID, error) {
	id := uuid.New()

	jsonBytes, err := json.Marshal(report)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal report: %w", err)
	}

	_, err = db.pool.Exec(ctx,
		`INSERT INTO evaluations (id, overall_score, profile_tier, report)
		 VALUES ($1, $2, $3, $4)`,
		id, report.OverallScore, report.ProfileTier, jsonBytes,
	)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to save evaluation: %w", err)
	}
	return id, nil
}

// GetEvaluation retrieves a stored evaluation by ID
func (db *DB) GetEvaluation(ctx context.Context, id uuid.UUID) (*EvaluationRecord, error) {
	record := EvaluationRecord{ID: id}
	var reportJSON []byte

	err := db.pool.QueryRow(ctx,
		`SELECT overall_score, profile_tier, report, created_at
		 FROM evaluations WHERE id = $1`,
		id,
	).Scan(&record.OverallScore, &record.ProfileTier, &reportJSON, &record.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get evaluation: %w", err)
	}

	if err := json.Unmarshal(reportJSON, &record.Report); err != nil {
		return nil, fmt.Errorf("failed to unmarshal report: %w", err)
	}
	return &record, nil
}

// ListEvaluations returns the most recent evaluations, newest first
func (db *DB) ListEvaluations(ctx context.Context, limit int) ([]EvaluationRecord, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := db.pool.Query(ctx,
		`SELECT id, overall_score, profile_tier, report, created_at
		 FROM evaluations ORDER BY created_at DESC LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list evaluations: %w", err)
	}
	defer rows.Close()

	var records []EvaluationRecord
	for rows.Next() {
		var record EvaluationRecord
		var reportJSON []byte
		if err := rows.Scan(&record.ID, &record.OverallScore, &record.ProfileTier, &reportJSON, &record.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan evaluation: %w", err)
		}
		if err := json.Unmarshal(reportJSON, &record.Report); err != nil {
			return nil, fmt.Errorf("failed to unmarshal report: %w", err)
		}
		records = append(records, record)
	}
	return records, rows.Err()
}

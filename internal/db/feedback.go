package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/jonathan/fairpath/internal/types"
)

// RecordFeedback stores one feedback entry and returns its ID. The
// training label is derived from the feedback type at write time so
// export queries never re-derive it.
func (db *DB) RecordFeedback(ctx context.Context, entry *types.FeedbackEntry) (uuid.UUID, error) {
	if !types.ValidFeedbackType(entry.FeedbackType) {
		return uuid.Nil, fmt.Errorf("invalid feedback type: %s", entry.FeedbackType)
	}

	var id uuid.UUID
	err := db.pool.QueryRow(ctx,
		`INSERT INTO recommendation_feedback
		 (career_id, career_name, soc_code, feedback_type, predicted_score, label, ranking_position)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING id`,
		entry.CareerID, entry.CareerName, entry.SOCCode, entry.FeedbackType,
		entry.PredictedScore, types.FeedbackLabel(entry.FeedbackType), entry.RankingPosition,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to record feedback: %w", err)
	}
	return id, nil
}

// ListFeedback retrieves recent feedback entries, newest first.
func (db *DB) ListFeedback(ctx context.Context, limit int) ([]types.FeedbackEntry, error) {
	if limit <= 0 {
		limit = 50
	}

	rows, err := db.pool.Query(ctx,
		`SELECT id, career_id, career_name, soc_code, feedback_type,
		        predicted_score, label, ranking_position, created_at
		 FROM recommendation_feedback ORDER BY created_at DESC LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list feedback: %w", err)
	}
	defer rows.Close()

	var entries []types.FeedbackEntry
	for rows.Next() {
		var e types.FeedbackEntry
		if err := rows.Scan(&e.ID, &e.CareerID, &e.CareerName, &e.SOCCode, &e.FeedbackType,
			&e.PredictedScore, &e.Label, &e.RankingPosition, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan feedback: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// PopularCareers aggregates positive feedback per career, most popular
// first.
func (db *DB) PopularCareers(ctx context.Context, limit int) ([]types.PopularCareer, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := db.pool.Query(ctx,
		`SELECT career_id, career_name, soc_code, COUNT(*) AS cnt
		 FROM recommendation_feedback
		 WHERE label = 1.0
		 GROUP BY career_id, career_name, soc_code
		 ORDER BY cnt DESC, career_id ASC
		 LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query popular careers: %w", err)
	}
	defer rows.Close()

	var popular []types.PopularCareer
	for rows.Next() {
		var p types.PopularCareer
		if err := rows.Scan(&p.CareerID, &p.CareerName, &p.SOCCode, &p.Count); err != nil {
			return nil, fmt.Errorf("failed to scan popular career: %w", err)
		}
		popular = append(popular, p)
	}
	return popular, rows.Err()
}

// FeedbackStats summarizes the stored feedback for reporting.
type FeedbackStats struct {
	Total    int `json:"total"`
	Positive int `json:"positive"`
	Negative int `json:"negative"`
	Neutral  int `json:"neutral"`
}

// Stats returns label counts across all stored feedback.
func (db *DB) Stats(ctx context.Context) (*FeedbackStats, error) {
	var s FeedbackStats
	err := db.pool.QueryRow(ctx,
		`SELECT COUNT(*),
		        COUNT(*) FILTER (WHERE label = 1.0),
		        COUNT(*) FILTER (WHERE label = 0.0),
		        COUNT(*) FILTER (WHERE label = 0.5)
		 FROM recommendation_feedback`,
	).Scan(&s.Total, &s.Positive, &s.Negative, &s.Neutral)
	if err != nil {
		return nil, fmt.Errorf("failed to query feedback stats: %w", err)
	}
	return &s, nil
}

package storage

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/atlasfreight/exportdesk/internal/model"
)

// SaveRiskAssessment appends an assessment to the audit history. Samples are
// stored as JSON so the exact inputs can be replayed later.
func (s *SQLiteStorage) SaveRiskAssessment(ctx context.Context, assessment *model.RiskAssessment) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateAssessment(assessment); err != nil {
		return err
	}

	samples, err := json.Marshal(assessment.Samples)
	if err != nil {
		return fmt.Errorf("failed to marshal samples: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO risk_assessments (
			multiplier, congestion_tier, storm_tier,
			base_coefficient, wind_contribution, congestion_contribution,
			estimated_delay_days, samples
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		assessment.Multiplier,
		string(assessment.PortCongestionTier),
		string(assessment.StormRiskTier),
		assessment.Breakdown.BaseCoefficient,
		assessment.Breakdown.WindContribution,
		assessment.Breakdown.CongestionContribution,
		assessment.Breakdown.EstimatedDelayDays,
		string(samples),
	)
	if err != nil {
		return fmt.Errorf("failed to save risk assessment: %w", err)
	}

	return nil
}

// ListRiskAssessments returns the most recent assessments, newest first.
func (s *SQLiteStorage) ListRiskAssessments(ctx context.Context, limit int) ([]model.RiskAssessment, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT multiplier, congestion_tier, storm_tier,
			base_coefficient, wind_contribution, congestion_contribution,
			estimated_delay_days, samples, computed_at
		FROM risk_assessments
		ORDER BY computed_at DESC, id DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list risk assessments: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var assessments []model.RiskAssessment
	for rows.Next() {
		var assessment model.RiskAssessment
		var congestionTier, stormTier, samples string

		if err := rows.Scan(
			&assessment.Multiplier, &congestionTier, &stormTier,
			&assessment.Breakdown.BaseCoefficient,
			&assessment.Breakdown.WindContribution,
			&assessment.Breakdown.CongestionContribution,
			&assessment.Breakdown.EstimatedDelayDays,
			&samples, &assessment.ComputedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan risk assessment: %w", err)
		}

		assessment.PortCongestionTier = model.CongestionTier(congestionTier)
		assessment.StormRiskTier = model.StormTier(stormTier)

		if err := json.Unmarshal([]byte(samples), &assessment.Samples); err != nil {
			return nil, fmt.Errorf("failed to unmarshal samples: %w", err)
		}

		assessments = append(assessments, assessment)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate risk assessments: %w", err)
	}

	return assessments, nil
}

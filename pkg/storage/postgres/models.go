package postgres

import (
	"database/sql"
	"drills/pkg/domain"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// PgEvaluation is the row layout of the evaluations table.
type PgEvaluation struct {
	ID     uuid.UUID `db:"id"      goqu:"skipinsert"`
	UserID uuid.UUID `db:"user_id"`

	Input  []byte `db:"input"`
	Status string `db:"status"`
	Result []byte `db:"result"`

	Attempts  uint           `db:"attempts"   goqu:"skipinsert"`
	LastError sql.NullString `db:"last_error"`

	CreatedAt time.Time    `db:"created_at" goqu:"skipinsert"`
	UpdatedAt sql.NullTime `db:"updated_at" goqu:"skipinsert"`
	DeletedAt sql.NullTime `db:"deleted_at" goqu:"skipinsert"`
}

func (p *PgEvaluation) ToDomain() (*domain.Evaluation, error) {
	var input domain.EvaluationInput
	if err := json.Unmarshal(p.Input, &input); err != nil {
		return nil, fmt.Errorf("could not unmarshal evaluation input: %w", err)
	}

	var result domain.EvaluationResult
	if len(p.Result) > 0 {
		if err := json.Unmarshal(p.Result, &result); err != nil {
			return nil, fmt.Errorf("could not unmarshal evaluation result: %w", err)
		}
	}

	return &domain.Evaluation{
		ID:        domain.EvaluationID(p.ID),
		UserID:    domain.UserID(p.UserID),
		Input:     input,
		Status:    domain.EvaluationStatus(p.Status),
		Result:    result,
		Attempts:  p.Attempts,
		LastError: p.LastError.String,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt.Time,
		DeletedAt: p.DeletedAt.Time,
	}, nil
}

func (p *PgEvaluation) FromDomain(e domain.Evaluation) error {
	input, err := json.Marshal(e.Input)
	if err != nil {
		return fmt.Errorf("could not marshal evaluation input: %w", err)
	}

	result, err := json.Marshal(e.Result)
	if err != nil {
		return fmt.Errorf("could not marshal evaluation result: %w", err)
	}

	*p = PgEvaluation{
		ID:       uuid.UUID(e.ID),
		UserID:   uuid.UUID(e.UserID),
		Input:    input,
		Status:   string(e.Status),
		Result:   result,
		Attempts: e.Attempts,
		LastError: sql.NullString{
			String: e.LastError,
			Valid:  e.LastError != "",
		},
		CreatedAt: e.CreatedAt,
		UpdatedAt: sql.NullTime{
			Time:  e.UpdatedAt,
			Valid: !e.UpdatedAt.IsZero(),
		},
		DeletedAt: sql.NullTime{
			Time:  e.DeletedAt,
			Valid: !e.DeletedAt.IsZero(),
		},
	}

	return nil
}

func pgEvaluationsToDomain(rows []PgEvaluation) ([]domain.Evaluation, error) {
	out := make([]domain.Evaluation, 0, len(rows))
	for i := range rows {
		d, err := rows[i].ToDomain()
		if err != nil {
			return nil, err
		}
		out = append(out, *d)
	}

	return out, nil
}

package postgres

import (
	"context"
	"database/sql"
	"drills/pkg/domain"
	"drills/pkg/storage"
	"encoding/json"
	"fmt"

	"github.com/doug-martin/goqu/v9"
	"github.com/doug-martin/goqu/v9/exp"
	"github.com/google/uuid"
)

const (
	evaluationsTable = "evaluations"
)

// StoreEvaluation inserts a single evaluation and returns the stored row.
func (p *PgSQL) StoreEvaluation(ctx context.Context, evaluation domain.Evaluation) (*domain.Evaluation, error) {
	var row PgEvaluation
	if err := row.FromDomain(evaluation); err != nil {
		return nil, err
	}

	var stored PgEvaluation
	if _, err := p.Builder.Insert(evaluationsTable).
		Rows(row).
		Returning(&PgEvaluation{}).
		Executor().ScanStructContext(ctx, &stored); err != nil {
		return nil, fmt.Errorf("could not store evaluation into pg: %w", err)
	}

	return stored.ToDomain()
}

// UpdateEvaluationByID updates the status and the non-nil fields of updates.
// updated_at is always refreshed.
func (p *PgSQL) UpdateEvaluationByID(ctx context.Context,
	id domain.EvaluationID,
	updates storage.EvaluationUpdates) (*domain.Evaluation, error) {
	rec := goqu.Record{
		"updated_at": goqu.L("CURRENT_TIMESTAMP"),
		"status":     string(updates.Status),
	}
	if updates.IncrementAttempts {
		rec["attempts"] = goqu.L("attempts + 1")
	}
	if updates.Result != nil {
		b, err := json.Marshal(updates.Result)
		if err != nil {
			return nil, fmt.Errorf("could not marshal result: %w", err)
		}
		rec["result"] = b
	}
	if updates.LastError != nil {
		if *updates.LastError == "" {
			rec["last_error"] = goqu.L("NULL")
		} else {
			rec["last_error"] = *updates.LastError
		}
	}

	var row PgEvaluation
	found, err := p.Builder.Update(evaluationsTable).
		Set(rec).
		Where(
			goqu.I("id").Eq(uuid.UUID(id)),
			goqu.I("deleted_at").IsNull(),
		).
		Returning(&PgEvaluation{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not update evaluation in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain()
}

// EvaluationByID returns an evaluation owned by userID.
func (p *PgSQL) EvaluationByID(ctx context.Context,
	userID domain.UserID,
	id domain.EvaluationID) (*domain.Evaluation, error) {
	var row PgEvaluation
	found, err := p.Builder.From(evaluationsTable).
		Where(
			goqu.I("id").Eq(uuid.UUID(id)),
			goqu.I("user_id").Eq(uuid.UUID(userID)),
			goqu.I("deleted_at").IsNull(),
		).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch evaluation by id: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain()
}

// LockEvaluationByID selects an evaluation FOR UPDATE. It must run inside a
// transaction.
func (p *PgSQL) LockEvaluationByID(ctx context.Context, id domain.EvaluationID) (*domain.Evaluation, error) {
	if _, ok := p.DB.(*sql.Tx); !ok {
		return nil, storage.ErrNotInTx
	}

	var row PgEvaluation
	found, err := p.Builder.From(evaluationsTable).
		Where(
			goqu.I("id").Eq(uuid.UUID(id)),
			goqu.I("deleted_at").IsNull(),
		).
		ForUpdate(exp.Wait).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not lock evaluation by id: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain()
}

// DeleteEvaluation soft-deletes an evaluation by setting deleted_at.
func (p *PgSQL) DeleteEvaluation(ctx context.Context,
	userID domain.UserID,
	id domain.EvaluationID) (*domain.Evaluation, error) {
	var row PgEvaluation
	found, err := p.Builder.Update(evaluationsTable).
		Set(goqu.Record{
			"deleted_at": goqu.L("CURRENT_TIMESTAMP"),
		}).
		Where(
			goqu.I("id").Eq(uuid.UUID(id)),
			goqu.I("user_id").Eq(uuid.UUID(userID)),
			goqu.I("deleted_at").IsNull(),
		).
		Returning(&PgEvaluation{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not delete evaluation in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain()
}

// UserEvaluations returns a page ordered by created_at DESC, id DESC.
func (p *PgSQL) UserEvaluations(ctx context.Context,
	userID domain.UserID,
	status domain.EvaluationStatus,
	cursor storage.EvaluationCursor,
	limit uint) (storage.UserEvaluations, error) {
	w := []goqu.Expression{
		goqu.I("user_id").Eq(uuid.UUID(userID)),
		goqu.I("deleted_at").IsNull(),
	}
	if status != "" {
		w = append(w, goqu.I("status").Eq(string(status)))
	}
	if !cursor.IsZero() {
		w = append(w, goqu.L("(created_at, id) < (?, ?)", cursor.CreatedAt, uuid.UUID(cursor.ID)))
	}

	// fetch one extra row to know whether a next page exists
	var rows []PgEvaluation
	if err := p.Builder.From(evaluationsTable).
		Where(w...).
		Order(goqu.I("created_at").Desc(), goqu.I("id").Desc()).
		Limit(limit + 1).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return storage.UserEvaluations{}, fmt.Errorf("could not fetch user evaluations from pg: %w", err)
	}

	var nextCursor *storage.EvaluationCursor
	if uint(len(rows)) > limit {
		rows = rows[:limit]
		if limit > 0 {
			last := rows[len(rows)-1]
			nextCursor = &storage.EvaluationCursor{
				CreatedAt: last.CreatedAt,
				ID:        domain.EvaluationID(last.ID),
			}
		}
	}

	evaluations, err := pgEvaluationsToDomain(rows)
	if err != nil {
		return storage.UserEvaluations{}, err
	}

	return storage.UserEvaluations{
		Evaluations: evaluations,
		NextCursor:  nextCursor,
	}, nil
}

package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/abhishekvarma12345/money-maven-goals/internal/apperrors"
	"github.com/abhishekvarma12345/money-maven-goals/internal/core/domain"
	portsrepo "github.com/abhishekvarma12345/money-maven-goals/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxIncomeStreamRepository struct {
	db *pgxpool.Pool
}

func newPgxIncomeStreamRepository(db *pgxpool.Pool) portsrepo.IncomeStreamRepository {
	return &PgxIncomeStreamRepository{db: db}
}

// Ensure PgxIncomeStreamRepository implements portsrepo.IncomeStreamRepository
var _ portsrepo.IncomeStreamRepository = (*PgxIncomeStreamRepository)(nil)

func (r *PgxIncomeStreamRepository) SaveStream(ctx context.Context, stream domain.IncomeStream) error {
	query := `
        INSERT INTO income_streams (stream_id, user_id, source, amount, frequency, created_at, created_by, last_updated_at, last_updated_by)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
    `
	_, err := r.db.Exec(ctx, query,
		stream.StreamID,
		stream.UserID,
		stream.Source,
		stream.Amount,
		stream.Frequency,
		stream.CreatedAt,
		stream.CreatedBy,
		stream.LastUpdatedAt,
		stream.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save income stream: %w", err)
	}
	return nil
}

func (r *PgxIncomeStreamRepository) FindStreamByID(ctx context.Context, streamID string) (*domain.IncomeStream, error) {
	query := `
		SELECT stream_id, user_id, source, amount, frequency, created_at, created_by, last_updated_at, last_updated_by
		FROM income_streams
		WHERE stream_id = $1;
	`
	var stream domain.IncomeStream
	err := r.db.QueryRow(ctx, query, streamID).Scan(
		&stream.StreamID,
		&stream.UserID,
		&stream.Source,
		&stream.Amount,
		&stream.Frequency,
		&stream.CreatedAt,
		&stream.CreatedBy,
		&stream.LastUpdatedAt,
		&stream.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find income stream by ID %s: %w", streamID, err)
	}
	return &stream, nil
}

func (r *PgxIncomeStreamRepository) FindStreamsByUser(ctx context.Context, userID string) ([]domain.IncomeStream, error) {
	query := `
		SELECT stream_id, user_id, source, amount, frequency, created_at, created_by, last_updated_at, last_updated_by
		FROM income_streams
		WHERE user_id = $1
		ORDER BY created_at;
	`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query income streams for user %s: %w", userID, err)
	}
	defer rows.Close()

	streams := []domain.IncomeStream{}
	for rows.Next() {
		var s domain.IncomeStream
		err := rows.Scan(
			&s.StreamID,
			&s.UserID,
			&s.Source,
			&s.Amount,
			&s.Frequency,
			&s.CreatedAt,
			&s.CreatedBy,
			&s.LastUpdatedAt,
			&s.LastUpdatedBy,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan income stream row: %w", err)
		}
		streams = append(streams, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating income stream rows: %w", err)
	}
	return streams, nil
}

func (r *PgxIncomeStreamRepository) DeleteStream(ctx context.Context, streamID string) error {
	query := `DELETE FROM income_streams WHERE stream_id = $1;`
	tag, err := r.db.Exec(ctx, query, streamID)
	if err != nil {
		return fmt.Errorf("failed to delete income stream %s: %w", streamID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

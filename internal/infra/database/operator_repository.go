package database

import (
	"context"
	"database/sql"
	"errors"

	"github.com/aishnar/aishnar-leads/internal/entity"
)

type OperatorRepository struct {
	DB *sql.DB
}

func NewOperatorRepository(db *sql.DB) *OperatorRepository {
	return &OperatorRepository{DB: db}
}

func (r *OperatorRepository) FindByEmail(ctx context.Context, email string) (*entity.Operator, error) {
	query := `
		SELECT id, email, password_hash, created_at
		FROM operators
		WHERE lower(email) = lower($1)
	`

	var op entity.Operator
	err := r.DB.QueryRowContext(ctx, query, email).Scan(
		&op.ID,
		&op.Email,
		&op.PasswordHash,
		&op.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, entity.ErrOperatorNotFound
	}
	if err != nil {
		return nil, err
	}

	return &op, nil
}

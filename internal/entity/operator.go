package entity

import (
	"context"
	"errors"
	"time"
)

var ErrOperatorNotFound = errors.New("operator not found")

// Operator is an admin user allowed into the review dashboard.
// Rows are seeded out of band, there is no self-service signup.
type Operator struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

type OperatorRepositoryInterface interface {
	FindByEmail(ctx context.Context, email string) (*Operator, error)
}

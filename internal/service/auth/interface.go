package auth

import (
	"context"

	"github.com/spinwager/casino-backend/internal/domain/models"
)

type UserRepo interface {
	CreateUser(ctx context.Context, user *models.User) (int64, error)
	GetUser(ctx context.Context, email string) (*models.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	DeleteUser(ctx context.Context, id int64) error
}

type TokenProvider interface {
	Issue(subject string) (string, error)
	ExtractSubject(token string) (string, error)
	IsExpired(token string) bool
}

package repository

import (
	"context"

	"techhive-users/internal/domain/user"
)

// UserRepository is the shared user table. Every method is atomic on its own;
// sequences of calls are not.
type UserRepository interface {
	GetAll(ctx context.Context) []user.User
	GetByID(ctx context.Context, id int) (user.User, error)
	NextID(ctx context.Context) int
	Insert(ctx context.Context, u *user.User) error
	Update(ctx context.Context, id int, name, email string) (user.User, error)
	Delete(ctx context.Context, id int) bool
	EmailTaken(ctx context.Context, email string, exceptID int) bool
	Count(ctx context.Context) int
}

package domain

import (
	"context"
	"time"
)

type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	ContactNo    string    `json:"contact_no"`
	CreatedAt    time.Time `json:"created_at"`
}

type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetByID(ctx context.Context, id string) (*User, error)
	UpdateProfile(ctx context.Context, id, name, contactNo string) (*User, error)
	UpdatePassword(ctx context.Context, id, passwordHash string) error
	Delete(ctx context.Context, id string) error
	FetchAll(ctx context.Context) ([]User, error)
	Count(ctx context.Context) (int64, error)
}

type UserUsecase interface {
	Register(ctx context.Context, name, email, password, contactNo string) (*User, error)
	Login(ctx context.Context, email, password string) (string, *User, error)
	Profile(ctx context.Context, id string) (*User, error)
	UpdateProfile(ctx context.Context, id, name, contactNo string) (*User, error)
	ChangePassword(ctx context.Context, id, currentPassword, newPassword string) error
	// DeleteAccount is a hard delete. Irreversible.
	DeleteAccount(ctx context.Context, id string) error
}

package usecase

import (
	"context"
	"errors"
	"time"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"
	"go-jobboard-backend/pkg/auth"

	"github.com/google/uuid"
)

type userUsecase struct {
	userRepo domain.UserRepository
	tokens   *auth.TokenService
}

func NewUserUsecase(userRepo domain.UserRepository, tokens *auth.TokenService) domain.UserUsecase {
	return &userUsecase{userRepo: userRepo, tokens: tokens}
}

func (u *userUsecase) Register(ctx context.Context, name, email, password, contactNo string) (*domain.User, error) {
	hash, err := hashPassword(password)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        normalizeEmail(email),
		PasswordHash: hash,
		ContactNo:    contactNo,
		CreatedAt:    time.Now(),
	}

	if err := u.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, domain.ErrDuplicateEmail) {
			return nil, apperror.Conflict("User with this email already exists")
		}
		return nil, err
	}
	return user, nil
}

func (u *userUsecase) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	user, err := u.userRepo.GetByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return "", nil, apperror.NotFound("User not found")
		}
		return "", nil, err
	}

	if !checkPassword(password, user.PasswordHash) {
		return "", nil, apperror.Unauthorized("Invalid password")
	}

	token, err := u.tokens.Issue(user.ID, "")
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

func (u *userUsecase) Profile(ctx context.Context, id string) (*domain.User, error) {
	user, err := u.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("User not found")
		}
		return nil, err
	}
	return user, nil
}

func (u *userUsecase) UpdateProfile(ctx context.Context, id, name, contactNo string) (*domain.User, error) {
	user, err := u.userRepo.UpdateProfile(ctx, id, name, contactNo)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("User not found")
		}
		return nil, err
	}
	return user, nil
}

func (u *userUsecase) ChangePassword(ctx context.Context, id, currentPassword, newPassword string) error {
	user, err := u.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("User not found")
		}
		return err
	}

	if !checkPassword(currentPassword, user.PasswordHash) {
		return apperror.BadRequest("Current password is incorrect")
	}

	hash, err := hashPassword(newPassword)
	if err != nil {
		return err
	}
	return u.userRepo.UpdatePassword(ctx, id, hash)
}

func (u *userUsecase) DeleteAccount(ctx context.Context, id string) error {
	err := u.userRepo.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("User not found")
		}
		return err
	}
	return nil
}

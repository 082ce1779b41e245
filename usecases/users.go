package usecases

import (
	"context"
	"errors"

	"rental-server/auth"
	"rental-server/entities"
	"rental-server/repositories"

	"gorm.io/gorm"
)

type UserUseCase struct {
	UserRepo repositories.UserRepository
	Secret   string
}

func NewUserUseCase(userRepo repositories.UserRepository, secret string) *UserUseCase {
	return &UserUseCase{
		UserRepo: userRepo,
		Secret:   secret,
	}
}

// Register creates a new account with an argon2id password hash.
func (uc *UserUseCase) Register(ctx context.Context, fullName, role string, phone int64, email, password string) (*entities.User, error) {
	if fullName == "" {
		return nil, errors.New("fullName is required")
	}
	if role == "" {
		return nil, errors.New("role is required")
	}
	if phone == 0 {
		return nil, errors.New("phone is required")
	}
	if email == "" {
		return nil, errors.New("email is required")
	}
	if password == "" {
		return nil, errors.New("password is required")
	}

	existing, err := uc.UserRepo.GetByEmail(ctx, email)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, ErrUserExists
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := &entities.User{
		FullName:     fullName,
		Role:         role,
		Phone:        phone,
		Email:        email,
		PasswordHash: hash,
	}
	if err := uc.UserRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login verifies the password and issues a signed token with 1-day expiry.
func (uc *UserUseCase) Login(ctx context.Context, email, password string) (*entities.User, string, error) {
	user, err := uc.UserRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", err
	}
	if !auth.VerifyPassword(user.PasswordHash, password) {
		return nil, "", ErrInvalidCredentials
	}

	token, err := auth.CreateToken(uc.Secret, user.ID, user.Role, user.Email, user.FullName, auth.TokenTTL)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// GetAllUsers retrieves every registered account.
func (uc *UserUseCase) GetAllUsers(ctx context.Context) ([]entities.User, error) {
	return uc.UserRepo.GetAll(ctx)
}

package service

import (
	"context"
	"errors"
	"time"

	appErrors "github.com/lojatricolor/storefront/internal/errors"
	"github.com/lojatricolor/storefront/internal/identity"
	"github.com/lojatricolor/storefront/internal/models"
	repository "github.com/lojatricolor/storefront/internal/repositories"
	"github.com/golang-jwt/jwt/v5"
)

const tokenTTL = 24 * time.Hour

// UserService manages admin accounts and issues session tokens for
// principals that pass the access gate.
type UserService struct {
	repo     repository.UserRepository
	provider identity.Provider
	gate     *identity.Gate
	jwtKey   []byte
}

func NewUserService(repo repository.UserRepository, provider identity.Provider, gate *identity.Gate, jwtKey []byte) *UserService {
	return &UserService{
		repo:     repo,
		provider: provider,
		gate:     gate,
		jwtKey:   jwtKey,
	}
}

func (s *UserService) Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, error) {

	principal, err := s.gate.Login(ctx, req.Email, req.Password)
	if err != nil {
		return nil, err
	}

	claims := &models.Claims{
		UID:   principal.UID,
		Email: principal.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(tokenTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString(s.jwtKey)
	if err != nil {
		return nil, appErrors.InternalError("Failed to generate authentication token").WithError(err)
	}

	return &models.LoginResponse{
		Success:   true,
		Token:     tokenString,
		ExpiresIn: int(time.Until(claims.ExpiresAt.Time).Seconds()),
	}, nil
}

func (s *UserService) Logout(ctx context.Context) error {
	return s.gate.Logout(ctx)
}

func (s *UserService) List(ctx context.Context) ([]models.UserData, error) {

	users, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, appErrors.StoreUnavailableError("Failed to load users").WithError(err)
	}

	return users, nil
}

// Create provisions the identity-provider account first, then the
// UserData record gating the admin surface.
func (s *UserService) Create(ctx context.Context, req *models.CreateUserRequest) (*models.UserData, error) {

	uid, err := s.provider.CreateAccount(ctx, req.Email, req.Password)
	if err != nil {

		if errors.Is(err, identity.ErrAccountExists) {
			return nil, appErrors.DuplicateEntryError("Email already registered")
		}

		return nil, appErrors.WriteFailedError("Failed to create account").WithError(err)
	}

	user := &models.UserData{
		UID:       uid,
		Email:     req.Email,
		Access:    req.Access,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.repo.Save(ctx, user); err != nil {
		return nil, appErrors.WriteFailedError("Failed to save user record").WithError(err)
	}

	return user, nil
}

func (s *UserService) UpdateAccess(ctx context.Context, uid string, access bool) error {

	if err := s.repo.UpdateAccess(ctx, uid, access); err != nil {

		if errors.Is(err, repository.ErrNotFound) {
			return appErrors.NotFoundError("User not found")
		}

		return appErrors.WriteFailedError("Failed to update access").WithError(err)
	}

	return nil
}

// Delete removes the UserData record only; the provider account stays but
// fails the gate from then on.
func (s *UserService) Delete(ctx context.Context, uid string) error {

	if err := s.repo.Delete(ctx, uid); err != nil {
		return appErrors.WriteFailedError("Failed to delete user").WithError(err)
	}

	return nil
}

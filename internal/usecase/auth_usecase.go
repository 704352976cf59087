package usecase

import (
	"context"
	"time"

	"corruptx/internal/domain/entity"
	"corruptx/internal/domain/repository"
	"corruptx/pkg/errors"
	"corruptx/pkg/logger"
)

type AuthUseCase struct {
	profileRepo  repository.ProfileRepository
	authProvider AuthProviderClient
}

func NewAuthUseCase(profileRepo repository.ProfileRepository, authProvider AuthProviderClient) *AuthUseCase {
	return &AuthUseCase{
		profileRepo:  profileRepo,
		authProvider: authProvider,
	}
}

type RegisterInput struct {
	Email              string `json:"email" validate:"required,email"`
	Password           string `json:"password" validate:"required,min=8"`
	DisclaimerAccepted bool   `json:"disclaimer_accepted"`
}

type AuthResult struct {
	Profile *entity.Profile `json:"profile"`
	Token   string          `json:"token"`
}

// Register creates the auth provider user and its profile row. Accepting
// the legal disclaimer is a precondition, not a checkbox stored for later.
// If the profile write fails the provider user is deleted again so a
// half-registered account can't log in.
func (uc *AuthUseCase) Register(ctx context.Context, input RegisterInput) (*AuthResult, error) {
	if !input.DisclaimerAccepted {
		return nil, errors.BadRequest("You must accept the disclaimer to create an account", nil)
	}

	existing, err := uc.profileRepo.GetByEmail(ctx, input.Email)
	if err == nil && existing != nil {
		return nil, errors.BadRequest("Email already in use", nil)
	}

	uid, err := uc.authProvider.CreateUser(ctx, input.Email, input.Password)
	if err != nil {
		return nil, errors.Internal("Failed to create user in authentication provider", err)
	}

	now := time.Now()
	profile := &entity.Profile{
		ID:                   uid,
		Email:                input.Email,
		Role:                 entity.RoleUser,
		DisclaimerAccepted:   true,
		DisclaimerAcceptedAt: &now,
		CreatedAt:            now,
	}

	if err := uc.profileRepo.Create(ctx, profile); err != nil {
		if delErr := uc.authProvider.DeleteUser(ctx, uid); delErr != nil {
			logger.Warn("Orphaned auth user %s after failed profile write: %v", uid, delErr)
		}
		return nil, errors.Internal("Failed to create profile record", err)
	}

	token, err := uc.authProvider.SignInWithEmailPassword(input.Email, input.Password)
	if err != nil {
		return nil, errors.Internal("Failed to generate authentication token", err)
	}

	return &AuthResult{
		Profile: profile,
		Token:   token,
	}, nil
}

func (uc *AuthUseCase) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	token, err := uc.authProvider.SignInWithEmailPassword(email, password)
	if err != nil {
		return nil, errors.Unauthorized("Invalid email or password", err)
	}

	uid, err := uc.authProvider.VerifyToken(ctx, token)
	if err != nil {
		return nil, errors.Unauthorized("Invalid authentication token", err)
	}

	profile, err := uc.profileRepo.GetByID(ctx, uid)
	if err != nil {
		return nil, errors.NotFound("Profile", err)
	}

	return &AuthResult{
		Profile: profile,
		Token:   token,
	}, nil
}

func (uc *AuthUseCase) GetProfile(ctx context.Context, uid string) (*entity.Profile, error) {
	return uc.profileRepo.GetByID(ctx, uid)
}

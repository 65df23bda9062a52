package usecases

import (
	"context"
	"fmt"
	"strings"

	"vendra/internal/application/auth/dto"
	"vendra/internal/domain/role"
	"vendra/internal/domain/user"
	"vendra/internal/infrastructure/auth"
	"vendra/internal/shared/errors"
	"vendra/internal/shared/logger"
	"vendra/internal/shared/utils"
)

// LoginUseCase authenticates a principal and issues a token pair. The
// scopes embedded in the access token are resolved from the user's
// role at login time.
type LoginUseCase struct {
	userRepo user.Repository
	roleRepo role.Repository
	hasher   *auth.BcryptPasswordHasher
	tokens   *auth.JWTService
	logger   logger.Interface
}

// NewLoginUseCase creates a new login use case
func NewLoginUseCase(
	userRepo user.Repository,
	roleRepo role.Repository,
	hasher *auth.BcryptPasswordHasher,
	tokens *auth.JWTService,
	log logger.Interface,
) *LoginUseCase {
	return &LoginUseCase{
		userRepo: userRepo,
		roleRepo: roleRepo,
		hasher:   hasher,
		tokens:   tokens,
		logger:   log,
	}
}

// Execute executes the login use case
func (uc *LoginUseCase) Execute(ctx context.Context, request dto.LoginRequest) (*dto.TokenResponse, error) {
	email := strings.ToLower(strings.TrimSpace(request.Email))

	u, err := uc.userRepo.GetByEmail(ctx, email)
	if err != nil {
		uc.logger.Errorw("failed to look up user for login", "error", err)
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	// Same response for unknown email and wrong password.
	if u == nil {
		uc.logger.Warnw("login attempt for unknown email", "email", utils.MaskEmail(email))
		return nil, errors.NewUnauthorizedError("invalid credentials")
	}
	if !u.Active() {
		uc.logger.Warnw("login attempt for deactivated user", "user_id", u.ID())
		return nil, errors.NewUnauthorizedError("invalid credentials")
	}
	if err := uc.hasher.Verify(request.Password, u.HashedPassword()); err != nil {
		uc.logger.Warnw("failed login attempt", "user_id", u.ID())
		return nil, errors.NewUnauthorizedError("invalid credentials")
	}

	scopes, err := uc.resolveScopes(ctx, u)
	if err != nil {
		return nil, err
	}

	pair, err := uc.tokens.Generate(u.ID(), scopes)
	if err != nil {
		uc.logger.Errorw("failed to issue tokens", "user_id", u.ID(), "error", err)
		return nil, fmt.Errorf("failed to issue tokens: %w", err)
	}

	uc.logger.Infow("user logged in", "user_id", u.ID())

	return &dto.TokenResponse{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		TokenType:    "Bearer",
		ExpiresIn:    uc.tokens.AccessExpMinutes() * 60,
	}, nil
}

func (uc *LoginUseCase) resolveScopes(ctx context.Context, u *user.User) ([]string, error) {
	if u.RoleID() == nil {
		return nil, nil
	}

	r, err := uc.roleRepo.GetByID(ctx, *u.RoleID())
	if err != nil {
		uc.logger.Errorw("failed to resolve role scopes", "user_id", u.ID(), "error", err)
		return nil, fmt.Errorf("failed to resolve role: %w", err)
	}
	if r == nil || !r.Active() {
		return nil, nil
	}
	return r.Scopes(), nil
}

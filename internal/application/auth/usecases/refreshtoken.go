package usecases

import (
	"context"
	"fmt"

	"vendra/internal/application/auth/dto"
	"vendra/internal/domain/role"
	"vendra/internal/domain/user"
	"vendra/internal/infrastructure/auth"
	"vendra/internal/shared/errors"
	"vendra/internal/shared/logger"
)

// RefreshTokenUseCase rotates a refresh token. The old refresh token
// is revoked the moment the new pair is issued, and scopes are
// re-resolved so role changes take effect on rotation.
type RefreshTokenUseCase struct {
	userRepo user.Repository
	roleRepo role.Repository
	tokens   *auth.JWTService
	logger   logger.Interface
}

// NewRefreshTokenUseCase creates a new refresh token use case
func NewRefreshTokenUseCase(
	userRepo user.Repository,
	roleRepo role.Repository,
	tokens *auth.JWTService,
	log logger.Interface,
) *RefreshTokenUseCase {
	return &RefreshTokenUseCase{
		userRepo: userRepo,
		roleRepo: roleRepo,
		tokens:   tokens,
		logger:   log,
	}
}

// Execute executes the refresh token use case
func (uc *RefreshTokenUseCase) Execute(ctx context.Context, request dto.RefreshRequest) (*dto.TokenResponse, error) {
	claims, err := uc.tokens.Verify(request.RefreshToken, auth.TokenTypeRefresh)
	if err != nil {
		return nil, errors.NewUnauthorizedError("invalid refresh token")
	}

	u, err := uc.userRepo.GetByID(ctx, claims.UserID)
	if err != nil {
		uc.logger.Errorw("failed to look up user for refresh", "user_id", claims.UserID, "error", err)
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	if u == nil || !u.Active() {
		return nil, errors.NewUnauthorizedError("invalid refresh token")
	}

	scopes := claims.Scopes
	if u.RoleID() != nil {
		r, err := uc.roleRepo.GetByID(ctx, *u.RoleID())
		if err != nil {
			uc.logger.Errorw("failed to resolve role scopes", "user_id", u.ID(), "error", err)
			return nil, fmt.Errorf("failed to resolve role: %w", err)
		}
		if r != nil && r.Active() {
			scopes = r.Scopes()
		}
	}

	pair, err := uc.tokens.Refresh(request.RefreshToken, scopes)
	if err != nil {
		return nil, errors.NewUnauthorizedError("invalid refresh token")
	}

	uc.logger.Infow("token refreshed", "user_id", u.ID())

	return &dto.TokenResponse{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		TokenType:    "Bearer",
		ExpiresIn:    uc.tokens.AccessExpMinutes() * 60,
	}, nil
}

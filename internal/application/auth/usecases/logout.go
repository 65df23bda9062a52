package usecases

import (
	"context"

	"vendra/internal/application/auth/dto"
	"vendra/internal/infrastructure/auth"
	"vendra/internal/shared/logger"
)

// LogoutUseCase revokes the presented tokens. Revocation is keyed by
// token ID, so already-expired or garbage tokens are simply ignored.
type LogoutUseCase struct {
	tokens *auth.JWTService
	logger logger.Interface
}

// NewLogoutUseCase creates a new logout use case
func NewLogoutUseCase(tokens *auth.JWTService, log logger.Interface) *LogoutUseCase {
	return &LogoutUseCase{
		tokens: tokens,
		logger: log,
	}
}

// Execute executes the logout use case. accessToken is the bearer
// token of the request itself; the refresh token rides in the body.
func (uc *LogoutUseCase) Execute(ctx context.Context, accessToken string, request dto.LogoutRequest) {
	if accessToken != "" {
		uc.tokens.Revoke(accessToken)
	}
	if request.RefreshToken != "" {
		uc.tokens.Revoke(request.RefreshToken)
	}
	uc.logger.Infow("tokens revoked on logout")
}

package usecases

import (
	"context"
	"fmt"

	"vendra/internal/application/user/dto"
	domainRole "vendra/internal/domain/role"
	domainUser "vendra/internal/domain/user"
	"vendra/internal/shared/errors"
	"vendra/internal/shared/logger"
)

// AssignRoleUseCase attaches a role to a user. The change applies to
// tokens issued after the assignment; live access tokens keep their
// embedded scopes until they expire or are refreshed.
type AssignRoleUseCase struct {
	userRepo domainUser.Repository
	roleRepo domainRole.Repository
	logger   logger.Interface
}

// NewAssignRoleUseCase creates a new assign role use case
func NewAssignRoleUseCase(
	userRepo domainUser.Repository,
	roleRepo domainRole.Repository,
	log logger.Interface,
) *AssignRoleUseCase {
	return &AssignRoleUseCase{
		userRepo: userRepo,
		roleRepo: roleRepo,
		logger:   log,
	}
}

// Execute executes the assign role use case
func (uc *AssignRoleUseCase) Execute(ctx context.Context, userID uint, request dto.AssignRoleRequest) (*dto.UserResponse, error) {
	u, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if u == nil {
		return nil, errors.NewNotFoundError("user not found")
	}

	r, err := uc.roleRepo.GetByID(ctx, request.RoleID)
	if err != nil {
		return nil, fmt.Errorf("failed to get role: %w", err)
	}
	if r == nil || !r.Active() {
		return nil, errors.NewValidationError("role does not exist or is inactive")
	}

	u.AssignRole(r.ID())

	if err := uc.userRepo.Update(ctx, u); err != nil {
		uc.logger.Errorw("failed to assign role", "user_id", userID, "role_id", request.RoleID, "error", err)
		return nil, fmt.Errorf("failed to assign role: %w", err)
	}

	uc.logger.Infow("role assigned", "user_id", userID, "role", r.Code())

	return ToUserResponse(u), nil
}

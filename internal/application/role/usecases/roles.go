package usecases

import (
	"context"
	"fmt"

	"vendra/internal/application/role/dto"
	domainPermission "vendra/internal/domain/permission"
	domainRole "vendra/internal/domain/role"
	"vendra/internal/shared/errors"
	"vendra/internal/shared/logger"
)

// CreateRoleUseCase registers a role and mirrors its scopes into the
// policy store so enforcement picks the role up immediately.
type CreateRoleUseCase struct {
	roleRepo domainRole.Repository
	enforcer domainPermission.Enforcer
	logger   logger.Interface
}

// NewCreateRoleUseCase creates a new create role use case
func NewCreateRoleUseCase(
	roleRepo domainRole.Repository,
	enforcer domainPermission.Enforcer,
	log logger.Interface,
) *CreateRoleUseCase {
	return &CreateRoleUseCase{
		roleRepo: roleRepo,
		enforcer: enforcer,
		logger:   log,
	}
}

// Execute executes the create role use case
func (uc *CreateRoleUseCase) Execute(ctx context.Context, request dto.CreateRoleRequest) (*dto.RoleResponse, error) {
	for _, scope := range request.Scopes {
		if !domainRole.ValidScope(scope) {
			return nil, errors.NewValidationError(fmt.Sprintf("malformed scope %q", scope))
		}
	}

	r, err := domainRole.NewRole(request.Code, request.Name, request.Type, request.Scopes, request.IsAdmin)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.roleRepo.Create(ctx, r); err != nil {
		if err == domainRole.ErrRoleCodeExists {
			return nil, errors.NewConflictError("role with this code already exists", request.Code)
		}
		uc.logger.Errorw("failed to create role", "code", request.Code, "error", err)
		return nil, fmt.Errorf("failed to create role: %w", err)
	}

	for _, scope := range r.Scopes() {
		resource, action := splitScope(scope)
		if err := uc.enforcer.AddPolicy(r.Code(), resource, action); err != nil {
			uc.logger.Errorw("failed to mirror scope into policy store",
				"role", r.Code(), "scope", scope, "error", err)
			return nil, fmt.Errorf("failed to register role policy: %w", err)
		}
	}

	uc.logger.Infow("role created", "id", r.ID(), "code", r.Code())

	return toRoleResponse(r), nil
}

// ListRolesUseCase lists all active roles.
type ListRolesUseCase struct {
	roleRepo domainRole.Repository
	logger   logger.Interface
}

// NewListRolesUseCase creates a new list roles use case
func NewListRolesUseCase(roleRepo domainRole.Repository, log logger.Interface) *ListRolesUseCase {
	return &ListRolesUseCase{
		roleRepo: roleRepo,
		logger:   log,
	}
}

// Execute executes the list roles use case
func (uc *ListRolesUseCase) Execute(ctx context.Context) ([]dto.RoleResponse, error) {
	roles, err := uc.roleRepo.ListActive(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list roles", "error", err)
		return nil, fmt.Errorf("failed to list roles: %w", err)
	}

	responses := make([]dto.RoleResponse, 0, len(roles))
	for _, r := range roles {
		responses = append(responses, *toRoleResponse(r))
	}
	return responses, nil
}

func toRoleResponse(r *domainRole.Role) *dto.RoleResponse {
	return &dto.RoleResponse{
		ID:        r.ID(),
		Code:      r.Code(),
		Name:      r.Name(),
		Type:      r.RoleType(),
		Scopes:    r.Scopes(),
		IsAdmin:   r.IsAdmin(),
		Active:    r.Active(),
		CreatedAt: r.CreatedAt(),
	}
}

func splitScope(scope string) (string, string) {
	for i := 0; i < len(scope); i++ {
		if scope[i] == ':' {
			return scope[:i], scope[i+1:]
		}
	}
	return scope, ""
}

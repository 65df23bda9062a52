package usecases

import (
	"context"
	"fmt"
	"strings"

	"vendra/internal/application/user/dto"
	domainUser "vendra/internal/domain/user"
	"vendra/internal/infrastructure/auth"
	"vendra/internal/shared/errors"
	"vendra/internal/shared/logger"
)

// CreateUserUseCase handles the business logic for creating a user
type CreateUserUseCase struct {
	userRepo domainUser.Repository
	hasher   *auth.BcryptPasswordHasher
	logger   logger.Interface
}

// NewCreateUserUseCase creates a new create user use case
func NewCreateUserUseCase(
	userRepo domainUser.Repository,
	hasher *auth.BcryptPasswordHasher,
	log logger.Interface,
) *CreateUserUseCase {
	return &CreateUserUseCase{
		userRepo: userRepo,
		hasher:   hasher,
		logger:   log,
	}
}

// Execute executes the create user use case
func (uc *CreateUserUseCase) Execute(ctx context.Context, request dto.CreateUserRequest) (*dto.UserResponse, error) {
	email := strings.ToLower(strings.TrimSpace(request.Email))

	existing, err := uc.userRepo.GetByEmail(ctx, email)
	if err != nil {
		uc.logger.Errorw("failed to check for existing user", "error", err)
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}
	if existing != nil {
		return nil, errors.NewConflictError("user with this email already exists")
	}

	hash, err := uc.hasher.Hash(request.Password)
	if err != nil {
		uc.logger.Errorw("failed to hash password", "error", err)
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	userEntity, err := domainUser.NewUser(email, request.Name, hash)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if request.RoleID != nil {
		userEntity.AssignRole(*request.RoleID)
	}

	if err := uc.userRepo.Create(ctx, userEntity); err != nil {
		if err == domainUser.ErrEmailExists {
			return nil, errors.NewConflictError("user with this email already exists")
		}
		uc.logger.Errorw("failed to persist user", "error", err)
		return nil, fmt.Errorf("failed to save user: %w", err)
	}

	uc.logger.Infow("user created", "id", userEntity.ID(), "email", userEntity.Email())

	return ToUserResponse(userEntity), nil
}

// ToUserResponse maps a user entity to its outward shape.
func ToUserResponse(u *domainUser.User) *dto.UserResponse {
	return &dto.UserResponse{
		ID:        u.ID(),
		Email:     u.Email(),
		Name:      u.Name(),
		Active:    u.Active(),
		Superuser: u.Superuser(),
		RoleID:    u.RoleID(),
		CreatedAt: u.CreatedAt(),
		UpdatedAt: u.UpdatedAt(),
	}
}

package usecases

import (
	"context"
	"fmt"

	"vendra/internal/application/user/dto"
	domainUser "vendra/internal/domain/user"
	"vendra/internal/shared/logger"
	"vendra/internal/shared/utils"
)

// ListUsersUseCase retrieves a paginated user listing.
type ListUsersUseCase struct {
	userRepo domainUser.Repository
	logger   logger.Interface
}

// NewListUsersUseCase creates a new list users use case
func NewListUsersUseCase(userRepo domainUser.Repository, log logger.Interface) *ListUsersUseCase {
	return &ListUsersUseCase{
		userRepo: userRepo,
		logger:   log,
	}
}

// Execute executes the list users use case
func (uc *ListUsersUseCase) Execute(ctx context.Context, skip, limit int) ([]dto.UserResponse, int64, error) {
	window := utils.ValidatePageWindow(skip, limit)

	users, total, err := uc.userRepo.List(ctx, window.Skip, window.Limit)
	if err != nil {
		uc.logger.Errorw("failed to list users", "error", err)
		return nil, 0, fmt.Errorf("failed to list users: %w", err)
	}

	responses := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		responses = append(responses, *ToUserResponse(u))
	}
	return responses, total, nil
}

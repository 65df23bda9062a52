package middleware

import (
	"context"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"vendra/internal/domain/user"
)

func testTime() time.Time {
	return time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
}

func init() {
	gin.SetMode(gin.TestMode)
}

type mockUserRepository struct {
	GetByIDFunc func(ctx context.Context, id uint) (*user.User, error)
}

func (m *mockUserRepository) Create(ctx context.Context, u *user.User) error { return nil }
func (m *mockUserRepository) Update(ctx context.Context, u *user.User) error { return nil }

func (m *mockUserRepository) GetByID(ctx context.Context, id uint) (*user.User, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockUserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	return nil, nil
}

func (m *mockUserRepository) List(ctx context.Context, skip, limit int) ([]*user.User, int64, error) {
	return nil, 0, nil
}

type mockEnforcer struct {
	EnforceScopeFunc func(roleCode, scope string) (bool, error)
}

func (m *mockEnforcer) Enforce(roleCode, resource, action string) (bool, error) {
	return false, nil
}

func (m *mockEnforcer) EnforceScope(roleCode, scope string) (bool, error) {
	if m.EnforceScopeFunc != nil {
		return m.EnforceScopeFunc(roleCode, scope)
	}
	return false, nil
}

func (m *mockEnforcer) AddPolicy(roleCode, resource, action string) error    { return nil }
func (m *mockEnforcer) RemovePolicy(roleCode, resource, action string) error { return nil }
func (m *mockEnforcer) GetPermissionsForRole(roleCode string) ([][]string, error) {
	return nil, nil
}
func (m *mockEnforcer) LoadPolicy() error { return nil }

type mockLimiter struct {
	AllowFunc func(key string) (bool, error)
}

func (m *mockLimiter) Allow(key string) (bool, error) {
	if m.AllowFunc != nil {
		return m.AllowFunc(key)
	}
	return true, nil
}

func activeUser(t *testing.T, id uint, superuser bool) *user.User {
	t.Helper()
	u, err := user.ReconstructUser(id, "worker@example.com", "Worker", "hash", true, superuser, nil, testTime(), testTime())
	if err != nil {
		t.Fatalf("reconstruct user: %v", err)
	}
	return u
}

func inactiveUser(t *testing.T, id uint) *user.User {
	t.Helper()
	u, err := user.ReconstructUser(id, "former@example.com", "Former", "hash", false, false, nil, testTime(), testTime())
	if err != nil {
		t.Fatalf("reconstruct user: %v", err)
	}
	return u
}

package permission

import (
	"encoding/json"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"vendra/internal/infrastructure/persistence/models"
	"vendra/internal/shared/logger"
)

// PolicySync mirrors the scope lists stored on roles into casbin
// policies. Run at startup and after any role mutation.
type PolicySync struct {
	db       *gorm.DB
	enforcer *Enforcer
	logger   logger.Interface
}

func NewPolicySync(db *gorm.DB, enforcer *Enforcer, log logger.Interface) *PolicySync {
	return &PolicySync{
		db:       db,
		enforcer: enforcer,
		logger:   log,
	}
}

// SyncAll replaces the casbin policies of every active role with the
// scopes currently stored on the role rows.
func (s *PolicySync) SyncAll() error {
	s.logger.Info("syncing role scopes to casbin...")

	var roles []*models.RoleModel
	if err := s.db.Where("active = ?", true).Find(&roles).Error; err != nil {
		return fmt.Errorf("failed to load roles: %w", err)
	}

	synced := 0
	for _, r := range roles {
		if err := s.SyncRole(r); err != nil {
			return err
		}
		synced++
	}

	s.logger.Infow("role scopes synced to casbin", "roles", synced)
	return nil
}

// SyncRole replaces one role's policies with its stored scope list.
func (s *PolicySync) SyncRole(r *models.RoleModel) error {
	var scopes []string
	if len(r.Scopes) > 0 {
		if err := json.Unmarshal(r.Scopes, &scopes); err != nil {
			return fmt.Errorf("failed to decode scopes for role %q: %w", r.Code, err)
		}
	}

	if err := s.enforcer.RemovePoliciesForRole(r.Code); err != nil {
		return err
	}

	for _, scope := range scopes {
		resource, action, ok := strings.Cut(scope, ":")
		if !ok || resource == "" || action == "" {
			s.logger.Warnw("skipping malformed scope", "role", r.Code, "scope", scope)
			continue
		}
		if err := s.enforcer.AddPolicy(r.Code, resource, action); err != nil {
			return err
		}
	}

	return nil
}

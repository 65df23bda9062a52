package audit

import (
	"context"
	"fmt"

	"vendra/internal/domain/audit"
	"vendra/internal/shared/logger"
)

// Recorder gates audit writes on the runtime audit level. Mutation
// records run inside the caller's transaction, so a failed append
// rolls the data change back with it.
type Recorder struct {
	repo     audit.Repository
	resolver audit.LevelResolver
	logger   logger.Interface
}

// NewRecorder creates an audit recorder.
func NewRecorder(repo audit.Repository, resolver audit.LevelResolver, log logger.Interface) *Recorder {
	return &Recorder{
		repo:     repo,
		resolver: resolver,
		logger:   log,
	}
}

// Record appends one audit record if the current level covers the
// action. Read actions additionally require a known actor: anonymous
// reads are never audited.
func (r *Recorder) Record(ctx context.Context, action audit.Action, entityType string, entityID *uint, description string, actorID uint) error {
	level := r.resolver.Resolve(ctx)
	if level < action.MinLevel() {
		return nil
	}
	if action.IsRead() && actorID == 0 {
		return nil
	}

	record, err := audit.NewRecord(action, entityType, entityID, description, actorID)
	if err != nil {
		return fmt.Errorf("failed to build audit record: %w", err)
	}

	if err := r.repo.Append(ctx, record); err != nil {
		return err
	}

	r.logger.Debugw("audit record appended",
		"action", action,
		"entity_type", entityType,
		"actor_id", actorID)
	return nil
}

// RecordRead appends a read-action record, logging instead of failing:
// a broken audit store must not take read endpoints down with it.
func (r *Recorder) RecordRead(ctx context.Context, action audit.Action, entityType string, entityID *uint, description string, actorID uint) {
	if err := r.Record(ctx, action, entityType, entityID, description, actorID); err != nil {
		r.logger.Warnw("failed to record read audit",
			"action", action,
			"entity_type", entityType,
			"error", err)
	}
}

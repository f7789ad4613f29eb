package service

import (
	"context"
	"log/slog"

	"github.com/SergeyBogomolovv/lens-order-service/internal/entities"
	"github.com/SergeyBogomolovv/lens-order-service/internal/policy"
	"github.com/google/uuid"
)

type PresenceRegistry interface {
	MarkOnline(ctx context.Context, userID uuid.UUID) error
	MarkOffline(ctx context.Context, userID uuid.UUID) error
}

type presenceService struct {
	logger   *slog.Logger
	registry PresenceRegistry
}

// NewPresenceService tracks who can receive realtime pushes. A nil registry
// turns both calls into no-ops.
func NewPresenceService(logger *slog.Logger, registry PresenceRegistry) *presenceService {
	return &presenceService{
		logger:   logger.With(slog.String("service", "presence")),
		registry: registry,
	}
}

func (s *presenceService) Heartbeat(ctx context.Context, p entities.Principal) error {
	if err := policy.Authorize(p, policy.HeartbeatPresence); err != nil {
		return err
	}
	if s.registry == nil {
		return nil
	}
	return s.registry.MarkOnline(ctx, p.ID)
}

func (s *presenceService) Leave(ctx context.Context, p entities.Principal) error {
	if err := policy.Authorize(p, policy.HeartbeatPresence); err != nil {
		return err
	}
	if s.registry == nil {
		return nil
	}
	if err := s.registry.MarkOffline(ctx, p.ID); err != nil {
		return err
	}
	s.logger.Debug("user went offline", slog.String("user_id", p.ID.String()))
	return nil
}

package service

import (
	"context"
	"fmt"

	"github.com/campusnet/social-api/internal/core/domain"
	"github.com/campusnet/social-api/internal/core/ports"
)

// OwnershipGuard gates every post/comment mutation on an authorship edge.
// It is never used on read paths; plain existence checks (NotFound) are a
// separate concern.
type OwnershipGuard struct {
	edges ports.OwnershipRepository
}

func NewOwnershipGuard(edges ports.OwnershipRepository) *OwnershipGuard {
	return &OwnershipGuard{edges: edges}
}

// Assert fails with domain.ErrForbidden unless principalID authored the
// named entity. A missing entity and a foreign-owned entity are the same
// failure; callers must not be able to tell them apart.
func (g *OwnershipGuard) Assert(ctx context.Context, principalID, entityID string, kind domain.EntityKind) error {
	ok, err := g.edges.HasAuthorship(ctx, principalID, entityID, kind)
	if err != nil {
		return fmt.Errorf("ownership check: %w", err)
	}
	if !ok {
		return domain.ErrForbidden
	}
	return nil
}

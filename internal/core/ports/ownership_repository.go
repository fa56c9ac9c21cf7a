package ports

import (
	"context"

	"github.com/campusnet/social-api/internal/core/domain"
)

// OwnershipRepository answers authorship-edge existence queries: "did this
// user author this entity?". It deliberately cannot distinguish a missing
// entity from one owned by somebody else.
type OwnershipRepository interface {
	HasAuthorship(ctx context.Context, authorID, entityID string, kind domain.EntityKind) (bool, error)
}

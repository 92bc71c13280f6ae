package services

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/yungbote/learnpath-backend/internal/data/repos"
	types "github.com/yungbote/learnpath-backend/internal/domain"
	"github.com/yungbote/learnpath-backend/internal/platform/logger"
)

// Identity is the set of keys a graph User node may be matched by.
type Identity struct {
	ID       string
	LegacyID string
	Email    string
}

// IdentityResolver never fails: when the identity record is unavailable it returns the
// learner id alone so id-based graph matching is still attempted.
type IdentityResolver interface {
	Resolve(ctx context.Context, learnerID string) Identity
}

type identityResolver struct {
	log   *logger.Logger
	users repos.UserRepo
}

func NewIdentityResolver(log *logger.Logger, users repos.UserRepo) IdentityResolver {
	return &identityResolver{log: log.With("service", "IdentityResolver"), users: users}
}

// Resolve looks the learner up by identity-store id, or by legacy id when the learner id
// is not a UUID, and returns every key on the record with ID in canonical form.
func (r *identityResolver) Resolve(ctx context.Context, learnerID string) Identity {
	learnerID = strings.TrimSpace(learnerID)
	out := Identity{ID: learnerID}
	if r.users == nil {
		r.log.Warn("identity store not configured; matching by learner id only", "learner_id", learnerID)
		return out
	}
	u, err := r.lookup(ctx, learnerID)
	if err != nil {
		r.log.Warn("identity lookup failed; matching by learner id only", "learner_id", learnerID, "error", err)
		return out
	}
	if u == nil {
		r.log.Warn("identity record not found; matching by learner id only", "learner_id", learnerID)
		return out
	}
	if u.ID != uuid.Nil {
		out.ID = u.ID.String()
	}
	out.LegacyID = strings.TrimSpace(u.LegacyID)
	out.Email = strings.TrimSpace(u.Email)
	return out
}

func (r *identityResolver) lookup(ctx context.Context, learnerID string) (*types.User, error) {
	if uid, err := uuid.Parse(learnerID); err == nil {
		return r.users.GetByID(ctx, nil, uid)
	}
	return r.users.GetByLegacyID(ctx, nil, learnerID)
}

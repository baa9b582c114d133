package repository

import (
	"context"

	"github.com/AwwwRyan/coverletter-gen/internal/profile/domain"
)

// Store persists one profile document per user.
// Writes are last-write-wins; callers get no further coordination.
type Store interface {
	// Get returns domain.ErrNotFound when the user has no profile yet.
	Get(ctx context.Context, uid string) (domain.Profile, error)
	// Set overwrites the whole document.
	Set(ctx context.Context, uid string, p domain.Profile) error
	// Merge writes only the patch fields, creating the document if needed.
	Merge(ctx context.Context, uid string, patch domain.Patch) error
	Ping(ctx context.Context) error
}

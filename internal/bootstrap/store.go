package bootstrap

import (
	"context"
	"fmt"

	firebase "firebase.google.com/go/v4"

	"github.com/AwwwRyan/coverletter-gen/config"
	"github.com/AwwwRyan/coverletter-gen/internal/profile/repository"
)

// Closer releases a backend connection on shutdown.
type Closer func() error

func nopCloser() error { return nil }

// BuildProfileStore opens the backend named by PROFILE_STORE. app is only
// needed for the firestore backend.
func BuildProfileStore(ctx context.Context, cfg *config.Config, app *firebase.App) (repository.Store, Closer, error) {
	switch cfg.Store.Backend {
	case config.StoreFirestore:
		if app == nil {
			return nil, nil, fmt.Errorf("firestore store needs an initialized Firebase app")
		}
		client, err := app.Firestore(ctx)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to get Firestore client: %w", err)
		}
		return repository.NewFirestoreStore(client), client.Close, nil

	case config.StoreRedis:
		client, err := OpenRedis(ctx, &cfg.Redis)
		if err != nil {
			return nil, nil, err
		}
		return repository.NewRedisStore(client), client.Close, nil

	case config.StorePostgres:
		db, err := OpenDB(ctx, DBOptions{Database: &cfg.Database})
		if err != nil {
			return nil, nil, err
		}
		store := repository.NewPostgresStore(db)
		if err := store.EnsureSchema(ctx); err != nil {
			db.Close()
			return nil, nil, err
		}
		return store, db.Close, nil

	case config.StoreMemory:
		return repository.NewMemoryStore(), nopCloser, nil

	default:
		return nil, nil, fmt.Errorf("unknown profile store %q", cfg.Store.Backend)
	}
}

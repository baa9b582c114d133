package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/AwwwRyan/coverletter-gen/internal/profile/domain"
)

const createProfilesTable = `
	CREATE TABLE IF NOT EXISTS profiles (
		uid        TEXT PRIMARY KEY,
		doc        JSONB NOT NULL DEFAULT '{}'::jsonb,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)
`

const upsertProfile = `
	INSERT INTO profiles (uid, doc)
	VALUES ($1, $2)
	ON CONFLICT (uid) DO UPDATE SET
		doc = EXCLUDED.doc,
		updated_at = NOW()
`

// claimProfile makes sure a row exists to lock before a merge reads it.
const claimProfile = `INSERT INTO profiles (uid) VALUES ($1) ON CONFLICT (uid) DO NOTHING`

const updateProfileDoc = `UPDATE profiles SET doc = $2, updated_at = NOW() WHERE uid = $1`

// PostgresStore keeps each profile document in the profiles table as JSONB.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

// EnsureSchema creates the profiles table when it does not exist.
func (s *PostgresStore) EnsureSchema(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, createProfilesTable); err != nil {
		return fmt.Errorf("failed to create profiles table: %w", err)
	}
	return nil
}

func (s *PostgresStore) Get(ctx context.Context, uid string) (domain.Profile, error) {
	var raw []byte
	err := s.db.QueryRowContext(ctx, `SELECT doc FROM profiles WHERE uid = $1`, uid).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Profile{}, domain.ErrNotFound
	}
	if err != nil {
		return domain.Profile{}, fmt.Errorf("failed to get profile: %w", err)
	}

	var doc map[string]any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return domain.Profile{}, fmt.Errorf("failed to unmarshal profile: %w", err)
	}
	return domain.FromDocument(doc)
}

func (s *PostgresStore) Set(ctx context.Context, uid string, p domain.Profile) error {
	data, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("failed to marshal profile: %w", err)
	}
	if _, err := s.db.ExecContext(ctx, upsertProfile, uid, data); err != nil {
		return fmt.Errorf("failed to set profile: %w", err)
	}
	return nil
}

// Merge claims the row, locks it, merges the patch in Go and writes it back
// in the same transaction. Concurrent first-time merges serialize on the
// claimed row instead of overwriting each other.
func (s *PostgresStore) Merge(ctx context.Context, uid string, patch domain.Patch) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, claimProfile, uid); err != nil {
		return fmt.Errorf("failed to claim profile: %w", err)
	}

	var raw []byte
	if err := tx.QueryRowContext(ctx, `SELECT doc FROM profiles WHERE uid = $1 FOR UPDATE`, uid).Scan(&raw); err != nil {
		return fmt.Errorf("failed to lock profile: %w", err)
	}
	var doc map[string]any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return fmt.Errorf("failed to unmarshal profile: %w", err)
	}

	data, err := json.Marshal(domain.MergeDocument(doc, patch))
	if err != nil {
		return fmt.Errorf("failed to marshal profile: %w", err)
	}
	if _, err := tx.ExecContext(ctx, updateProfileDoc, uid, data); err != nil {
		return fmt.Errorf("failed to merge profile: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit profile merge: %w", err)
	}
	return nil
}

func (s *PostgresStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

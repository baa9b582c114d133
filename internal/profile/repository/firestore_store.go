package repository

import (
	"context"
	"errors"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/AwwwRyan/coverletter-gen/internal/profile/domain"
)

const (
	usersCollection   = "users"
	profileCollection = "profile"
	profileDocID      = "main"
)

// FirestoreStore reads and writes users/{uid}/profile/main.
type FirestoreStore struct {
	client *firestore.Client
}

func NewFirestoreStore(client *firestore.Client) *FirestoreStore {
	return &FirestoreStore{client: client}
}

func (s *FirestoreStore) doc(uid string) *firestore.DocumentRef {
	return s.client.Collection(usersCollection).Doc(uid).Collection(profileCollection).Doc(profileDocID)
}

func (s *FirestoreStore) Get(ctx context.Context, uid string) (domain.Profile, error) {
	snap, err := s.doc(uid).Get(ctx)
	if status.Code(err) == codes.NotFound {
		return domain.Profile{}, domain.ErrNotFound
	}
	if err != nil {
		return domain.Profile{}, fmt.Errorf("failed to get profile: %w", err)
	}
	return domain.FromDocument(snap.Data())
}

func (s *FirestoreStore) Set(ctx context.Context, uid string, p domain.Profile) error {
	doc, err := p.Document()
	if err != nil {
		return err
	}
	if _, err := s.doc(uid).Set(ctx, doc); err != nil {
		return fmt.Errorf("failed to set profile: %w", err)
	}
	return nil
}

func (s *FirestoreStore) Merge(ctx context.Context, uid string, patch domain.Patch) error {
	if _, err := s.doc(uid).Set(ctx, map[string]any(patch), firestore.MergeAll); err != nil {
		return fmt.Errorf("failed to merge profile: %w", err)
	}
	return nil
}

// Ping lists at most one user document to confirm the client can reach Firestore.
func (s *FirestoreStore) Ping(ctx context.Context) error {
	_, err := s.client.Collection(usersCollection).Limit(1).Documents(ctx).Next()
	if err != nil && !errors.Is(err, iterator.Done) {
		return fmt.Errorf("firestore ping: %w", err)
	}
	return nil
}

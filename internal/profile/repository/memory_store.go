package repository

import (
	"context"
	"sync"

	"github.com/AwwwRyan/coverletter-gen/internal/profile/domain"
)

type MemoryStore struct {
	mu   sync.RWMutex
	docs map[string]map[string]any
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{docs: make(map[string]map[string]any)}
}

func (s *MemoryStore) Get(ctx context.Context, uid string) (domain.Profile, error) {
	if err := ctx.Err(); err != nil {
		return domain.Profile{}, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	doc, ok := s.docs[uid]
	if !ok {
		return domain.Profile{}, domain.ErrNotFound
	}
	return domain.FromDocument(doc)
}

func (s *MemoryStore) Set(ctx context.Context, uid string, p domain.Profile) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	doc, err := p.Document()
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.docs[uid] = doc
	return nil
}

func (s *MemoryStore) Merge(ctx context.Context, uid string, patch domain.Patch) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.docs[uid] = domain.MergeDocument(s.docs[uid], patch)
	return nil
}

func (s *MemoryStore) Ping(ctx context.Context) error {
	return ctx.Err()
}

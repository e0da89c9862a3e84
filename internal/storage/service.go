package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/talentflow/talentflow-back/internal/kv"
)

var (
	ErrNotFound   = errors.New("resource not found")
	ErrEmailTaken = errors.New("a candidate with this email already exists")
	ErrSlugTaken  = errors.New("a job with this slug already exists")
)

// Store keys. Timelines, submissions and assignments are keyed per entity.
const (
	keyJobs          = "jobs"
	keyCandidates    = "candidates"
	keyAssessments   = "assessments"
	keyCandidateAuth = "candidate_auth"
	keyOutbox        = "outbox"

	keyPrefixTimeline    = "timeline:"
	keyPrefixSubmissions = "submissions:"
	keyPrefixAssignments = "assignments:"
)

// Service is the sole writer of the key-value store. Every operation is a
// read-modify-write over a whole collection, so a single mutex serializes
// them; the underlying store never sees interleaved writers.
type Service struct {
	mu    sync.RWMutex
	store kv.Store
	now   func() time.Time
}

func NewService(store kv.Store) *Service {
	return &Service{
		store: store,
		now:   func() time.Time { return time.Now().UTC() },
	}
}

// ClearAll wipes every key. Used by the reseed endpoint.
func (s *Service) ClearAll(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.store.Clear(ctx); err != nil {
		return fmt.Errorf("clear store: %w", err)
	}
	return nil
}

// read decodes the collection under key into out, treating an absent key as
// an empty collection.
func (s *Service) read(ctx context.Context, key string, out any) error {
	raw, err := s.store.Get(ctx, key)
	if err != nil {
		if errors.Is(err, kv.ErrKeyNotFound) {
			return nil
		}
		return fmt.Errorf("read %s: %w", key, err)
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode %s: %w", key, err)
	}
	return nil
}

func (s *Service) write(ctx context.Context, key string, value any) error {
	encoded, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := s.store.Set(ctx, key, encoded); err != nil {
		return fmt.Errorf("write %s: %w", key, err)
	}
	return nil
}

// paginate clamps page and pageSize to a minimum of 1; an absent (zero)
// pageSize takes the collection default.
func paginate(total, page, pageSize, defaultPageSize int) (start, end int) {
	if page < 1 {
		page = 1
	}
	if pageSize == 0 {
		pageSize = defaultPageSize
	}
	if pageSize < 1 {
		pageSize = 1
	}
	start = (page - 1) * pageSize
	if start >= total {
		return total, total
	}
	end = start + pageSize
	if end > total {
		end = total
	}
	return start, end
}

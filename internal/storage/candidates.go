package storage

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/talentflow/talentflow-back/internal/domain"
)

const defaultCandidatePageSize = 1000

// ListCandidates filters and pages candidates by name/email substring and
// exact stage. Pure read; total counts matches before pagination.
func (s *Service) ListCandidates(ctx context.Context, filter domain.CandidateListFilter) ([]domain.Candidate, int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.listCandidatesLocked(ctx, filter)
}

func (s *Service) listCandidatesLocked(ctx context.Context, filter domain.CandidateListFilter) ([]domain.Candidate, int, error) {
	var candidates []domain.Candidate
	if err := s.read(ctx, keyCandidates, &candidates); err != nil {
		return nil, 0, err
	}

	filtered := make([]domain.Candidate, 0, len(candidates))
	for _, candidate := range candidates {
		if matchesCandidateFilter(candidate, filter) {
			filtered = append(filtered, candidate)
		}
	}

	total := len(filtered)
	start, end := paginate(total, filter.Page, filter.PageSize, defaultCandidatePageSize)
	return filtered[start:end], total, nil
}

func matchesCandidateFilter(candidate domain.Candidate, filter domain.CandidateListFilter) bool {
	if search := strings.ToLower(strings.TrimSpace(filter.Search)); search != "" {
		name := strings.ToLower(candidate.Name)
		email := strings.ToLower(candidate.Email)
		if !strings.Contains(name, search) && !strings.Contains(email, search) {
			return false
		}
	}
	if filter.Stage != "" && filter.Stage != "all" {
		stage := candidate.Stage
		if stage == "" {
			stage = domain.StageApplied
		}
		if string(stage) != filter.Stage {
			return false
		}
	}
	return true
}

func (s *Service) GetCandidate(ctx context.Context, candidateID string) (domain.Candidate, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var candidates []domain.Candidate
	if err := s.read(ctx, keyCandidates, &candidates); err != nil {
		return domain.Candidate{}, err
	}
	for _, candidate := range candidates {
		if candidate.ID == candidateID {
			return candidate, nil
		}
	}
	return domain.Candidate{}, ErrNotFound
}

// AddCandidate appends a candidate and records a "created" timeline event.
// The case-insensitive email uniqueness check runs in the same critical
// section as the insert, so concurrent creates cannot both pass it.
func (s *Service) AddCandidate(ctx context.Context, candidate domain.Candidate) (domain.Candidate, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var candidates []domain.Candidate
	if err := s.read(ctx, keyCandidates, &candidates); err != nil {
		return domain.Candidate{}, err
	}

	if email := NormalizeEmail(candidate.Email); email != "" {
		for _, existing := range candidates {
			if NormalizeEmail(existing.Email) == email {
				return domain.Candidate{}, ErrEmailTaken
			}
		}
	}

	if candidate.ID == "" {
		candidate.ID = uuid.NewString()
	}
	if candidate.Stage == "" {
		candidate.Stage = domain.StageApplied
	}

	candidates = append(candidates, candidate)
	if err := s.write(ctx, keyCandidates, candidates); err != nil {
		return domain.Candidate{}, err
	}

	event := domain.TimelineEvent{
		At:    s.now(),
		Type:  domain.TimelineEventCreated,
		Stage: candidate.Stage,
	}
	if err := s.appendTimelineLocked(ctx, candidate.ID, event); err != nil {
		return domain.Candidate{}, err
	}
	return candidate, nil
}

// CandidateUpdate carries a partial candidate update; nil fields are left
// untouched.
type CandidateUpdate struct {
	Name  *string       `json:"name,omitempty"`
	Email *string       `json:"email,omitempty"`
	Stage *domain.Stage `json:"stage,omitempty"`
	JobID *string       `json:"jobId,omitempty"`
	Notes *string       `json:"notes,omitempty"`
}

// UpdateCandidate merges the update into the stored record. A stage change
// relative to the stored value appends exactly one "stage" timeline event;
// no other field change touches the timeline. An email change is rechecked
// for uniqueness against every other candidate.
func (s *Service) UpdateCandidate(ctx context.Context, candidateID string, update CandidateUpdate) (domain.Candidate, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var candidates []domain.Candidate
	if err := s.read(ctx, keyCandidates, &candidates); err != nil {
		return domain.Candidate{}, err
	}

	if update.Email != nil {
		if email := NormalizeEmail(*update.Email); email != "" {
			for _, existing := range candidates {
				if existing.ID != candidateID && NormalizeEmail(existing.Email) == email {
					return domain.Candidate{}, ErrEmailTaken
				}
			}
		}
	}

	for i := range candidates {
		if candidates[i].ID != candidateID {
			continue
		}

		previousStage := candidates[i].Stage
		if update.Name != nil {
			candidates[i].Name = *update.Name
		}
		if update.Email != nil {
			candidates[i].Email = *update.Email
		}
		if update.Stage != nil {
			candidates[i].Stage = *update.Stage
		}
		if update.JobID != nil {
			candidates[i].JobID = *update.JobID
		}
		if update.Notes != nil {
			candidates[i].Notes = *update.Notes
		}

		if err := s.write(ctx, keyCandidates, candidates); err != nil {
			return domain.Candidate{}, err
		}

		if update.Stage != nil && *update.Stage != previousStage {
			event := domain.TimelineEvent{
				At:   s.now(),
				Type: domain.TimelineEventStage,
				From: previousStage,
				To:   *update.Stage,
			}
			if err := s.appendTimelineLocked(ctx, candidateID, event); err != nil {
				return domain.Candidate{}, err
			}
		}
		return candidates[i], nil
	}
	return domain.Candidate{}, ErrNotFound
}

// DeleteCandidate removes the candidate record. Timeline and assignment
// entries keyed by the id are intentionally left behind.
func (s *Service) DeleteCandidate(ctx context.Context, candidateID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var candidates []domain.Candidate
	if err := s.read(ctx, keyCandidates, &candidates); err != nil {
		return err
	}

	remaining := candidates[:0]
	for _, candidate := range candidates {
		if candidate.ID != candidateID {
			remaining = append(remaining, candidate)
		}
	}
	return s.write(ctx, keyCandidates, remaining)
}

// Timeline returns a candidate's events in insertion order.
func (s *Service) Timeline(ctx context.Context, candidateID string) ([]domain.TimelineEvent, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var events []domain.TimelineEvent
	if err := s.read(ctx, keyPrefixTimeline+candidateID, &events); err != nil {
		return nil, err
	}
	if events == nil {
		events = []domain.TimelineEvent{}
	}
	return events, nil
}

func (s *Service) appendTimelineLocked(ctx context.Context, candidateID string, event domain.TimelineEvent) error {
	key := keyPrefixTimeline + candidateID
	var events []domain.TimelineEvent
	if err := s.read(ctx, key, &events); err != nil {
		return err
	}
	events = append(events, event)
	return s.write(ctx, key, events)
}

// NormalizeEmail lowercases and trims an address for uniqueness checks and
// auth keys.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

package storage

import (
	"context"

	"github.com/google/uuid"
	"github.com/talentflow/talentflow-back/internal/domain"
)

// CreateCandidateAuth stores a temporary credential keyed by normalized
// email. Reinviting the same address overwrites the previous credential.
func (s *Service) CreateCandidateAuth(ctx context.Context, candidateID, email, password string) (domain.CandidateAuth, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	credentials := make(map[string]domain.CandidateAuth)
	if err := s.read(ctx, keyCandidateAuth, &credentials); err != nil {
		return domain.CandidateAuth{}, err
	}

	normalized := NormalizeEmail(email)
	auth := domain.CandidateAuth{
		CandidateID: candidateID,
		Email:       normalized,
		Password:    password,
	}
	credentials[normalized] = auth
	if err := s.write(ctx, keyCandidateAuth, credentials); err != nil {
		return domain.CandidateAuth{}, err
	}
	return auth, nil
}

// CandidateAuthByEmail returns the stored credential, or nil when the email
// was never invited.
func (s *Service) CandidateAuthByEmail(ctx context.Context, email string) (*domain.CandidateAuth, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	credentials := make(map[string]domain.CandidateAuth)
	if err := s.read(ctx, keyCandidateAuth, &credentials); err != nil {
		return nil, err
	}
	auth, ok := credentials[NormalizeEmail(email)]
	if !ok {
		return nil, nil
	}
	return &auth, nil
}

// AssignAssessment overwrites the candidate's assignment with the given job
// and records a timeline event. Only the latest assignment is retained.
func (s *Service) AssignAssessment(ctx context.Context, candidateID, jobID string) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	assignments := []string{jobID}
	if err := s.write(ctx, keyPrefixAssignments+candidateID, assignments); err != nil {
		return nil, err
	}

	event := domain.TimelineEvent{
		At:    s.now(),
		Type:  domain.TimelineEventAssignment,
		JobID: jobID,
	}
	if err := s.appendTimelineLocked(ctx, candidateID, event); err != nil {
		return nil, err
	}
	return assignments, nil
}

func (s *Service) Assignments(ctx context.Context, candidateID string) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var assignments []string
	if err := s.read(ctx, keyPrefixAssignments+candidateID, &assignments); err != nil {
		return nil, err
	}
	if assignments == nil {
		assignments = []string{}
	}
	return assignments, nil
}

// AddOutboxMessage appends a simulated email. Nothing in the service ever
// consumes or removes outbox entries.
func (s *Service) AddOutboxMessage(ctx context.Context, message domain.OutboxMessage) (domain.OutboxMessage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var outbox []domain.OutboxMessage
	if err := s.read(ctx, keyOutbox, &outbox); err != nil {
		return domain.OutboxMessage{}, err
	}

	message.ID = uuid.NewString()
	message.At = s.now()
	outbox = append(outbox, message)
	if err := s.write(ctx, keyOutbox, outbox); err != nil {
		return domain.OutboxMessage{}, err
	}
	return message, nil
}

func (s *Service) Outbox(ctx context.Context) ([]domain.OutboxMessage, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var outbox []domain.OutboxMessage
	if err := s.read(ctx, keyOutbox, &outbox); err != nil {
		return nil, err
	}
	if outbox == nil {
		outbox = []domain.OutboxMessage{}
	}
	return outbox, nil
}

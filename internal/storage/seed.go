package storage

import (
	"context"

	"github.com/talentflow/talentflow-back/internal/domain"
)

// SeedData is a sample dataset loaded only into an empty store.
type SeedData struct {
	Jobs        []domain.Job
	Candidates  []domain.Candidate
	Assessments []domain.Assessment
}

// SeedIfEmpty writes each collection only when its stored counterpart is
// empty. Seeded candidates get a single "seed" timeline event.
func (s *Service) SeedIfEmpty(ctx context.Context, data SeedData) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var jobs []domain.Job
	if err := s.read(ctx, keyJobs, &jobs); err != nil {
		return err
	}
	if len(jobs) == 0 && len(data.Jobs) > 0 {
		if err := s.write(ctx, keyJobs, data.Jobs); err != nil {
			return err
		}
	}

	var candidates []domain.Candidate
	if err := s.read(ctx, keyCandidates, &candidates); err != nil {
		return err
	}
	if len(candidates) == 0 && len(data.Candidates) > 0 {
		if err := s.write(ctx, keyCandidates, data.Candidates); err != nil {
			return err
		}
		for _, candidate := range data.Candidates {
			events := []domain.TimelineEvent{{
				At:    s.now(),
				Type:  domain.TimelineEventSeed,
				Stage: candidate.Stage,
			}}
			if err := s.write(ctx, keyPrefixTimeline+candidate.ID, events); err != nil {
				return err
			}
		}
	}

	assessments := make(map[string]domain.Assessment)
	if err := s.read(ctx, keyAssessments, &assessments); err != nil {
		return err
	}
	if len(assessments) == 0 && len(data.Assessments) > 0 {
		byJob := make(map[string]domain.Assessment, len(data.Assessments))
		for _, assessment := range data.Assessments {
			byJob[assessment.JobID] = assessment
		}
		if err := s.write(ctx, keyAssessments, byJob); err != nil {
			return err
		}
	}
	return nil
}

package storage

import (
	"context"

	"github.com/google/uuid"
	"github.com/talentflow/talentflow-back/internal/domain"
)

// GetAssessment returns the assessment saved for a job, or nil when none
// exists.
func (s *Service) GetAssessment(ctx context.Context, jobID string) (*domain.Assessment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	assessments := make(map[string]domain.Assessment)
	if err := s.read(ctx, keyAssessments, &assessments); err != nil {
		return nil, err
	}
	assessment, ok := assessments[jobID]
	if !ok {
		return nil, nil
	}
	return &assessment, nil
}

// SaveAssessment overwrites the job's assessment wholesale. Last write wins;
// there is no partial patching.
func (s *Service) SaveAssessment(ctx context.Context, jobID string, assessment domain.Assessment) (domain.Assessment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	assessments := make(map[string]domain.Assessment)
	if err := s.read(ctx, keyAssessments, &assessments); err != nil {
		return domain.Assessment{}, err
	}

	assessment.JobID = jobID
	assessments[jobID] = assessment
	if err := s.write(ctx, keyAssessments, assessments); err != nil {
		return domain.Assessment{}, err
	}
	return assessment, nil
}

// SubmitAssessment appends a submission for the job. The timeline event on
// the submitting candidate is best-effort: a failure there never rolls back
// the stored submission.
func (s *Service) SubmitAssessment(ctx context.Context, jobID string, submission domain.Submission) (domain.Submission, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := keyPrefixSubmissions + jobID
	var submissions []domain.Submission
	if err := s.read(ctx, key, &submissions); err != nil {
		return domain.Submission{}, err
	}

	submission.ID = uuid.NewString()
	submission.At = s.now()
	submissions = append(submissions, submission)
	if err := s.write(ctx, key, submissions); err != nil {
		return domain.Submission{}, err
	}

	if submission.CandidateID != "" {
		event := domain.TimelineEvent{
			At:    s.now(),
			Type:  domain.TimelineEventSubmission,
			JobID: jobID,
		}
		_ = s.appendTimelineLocked(ctx, submission.CandidateID, event)
	}
	return submission, nil
}

// Submissions lists a job's submissions in insertion order.
func (s *Service) Submissions(ctx context.Context, jobID string) ([]domain.Submission, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var submissions []domain.Submission
	if err := s.read(ctx, keyPrefixSubmissions+jobID, &submissions); err != nil {
		return nil, err
	}
	if submissions == nil {
		submissions = []domain.Submission{}
	}
	return submissions, nil
}

package storage

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/talentflow/talentflow-back/internal/domain"
)

func TestGetAssessmentMissingReturnsNil(t *testing.T) {
	service := newTestService()

	assessment, err := service.GetAssessment(context.Background(), "job-1")
	if err != nil {
		t.Fatalf("get assessment: %v", err)
	}
	if assessment != nil {
		t.Fatalf("expected nil for a job without an assessment, got %+v", assessment)
	}
}

func TestSaveAssessmentOverwritesWholesale(t *testing.T) {
	service := newTestService()

	first := domain.Assessment{Title: "v1", Sections: []domain.Section{{ID: "s1", Title: "Basics"}}}
	if _, err := service.SaveAssessment(context.Background(), "job-1", first); err != nil {
		t.Fatalf("save assessment: %v", err)
	}

	second := domain.Assessment{Title: "v2"}
	saved, err := service.SaveAssessment(context.Background(), "job-1", second)
	if err != nil {
		t.Fatalf("save assessment again: %v", err)
	}
	if saved.JobID != "job-1" {
		t.Fatalf("expected jobId stamped on save, got %q", saved.JobID)
	}

	stored, err := service.GetAssessment(context.Background(), "job-1")
	if err != nil {
		t.Fatalf("get assessment: %v", err)
	}
	if stored.Title != "v2" || len(stored.Sections) != 0 {
		t.Fatalf("expected last write to win wholesale, got %+v", stored)
	}
}

func TestSubmitAssessmentAppendsAndRecordsTimeline(t *testing.T) {
	service := newTestService()
	candidate := mustAddCandidate(t, service, domain.Candidate{Name: "Ada", Email: "ada@example.com"})

	submission := domain.Submission{
		CandidateID: candidate.ID,
		Responses:   map[string]json.RawMessage{"q1": json.RawMessage(`"go"`)},
	}
	stored, err := service.SubmitAssessment(context.Background(), "job-1", submission)
	if err != nil {
		t.Fatalf("submit assessment: %v", err)
	}
	if stored.ID == "" || stored.At.IsZero() {
		t.Fatalf("expected generated id and timestamp, got %+v", stored)
	}

	submissions, err := service.Submissions(context.Background(), "job-1")
	if err != nil {
		t.Fatalf("submissions: %v", err)
	}
	if len(submissions) != 1 {
		t.Fatalf("expected one submission, got %d", len(submissions))
	}

	timeline, err := service.Timeline(context.Background(), candidate.ID)
	if err != nil {
		t.Fatalf("timeline: %v", err)
	}
	last := timeline[len(timeline)-1]
	if last.Type != domain.TimelineEventSubmission || last.JobID != "job-1" {
		t.Fatalf("expected submission event for job-1, got %+v", last)
	}
}

func TestSubmitAssessmentWithoutCandidateSkipsTimeline(t *testing.T) {
	service := newTestService()

	_, err := service.SubmitAssessment(context.Background(), "job-1", domain.Submission{
		Responses: map[string]json.RawMessage{"q1": json.RawMessage(`5`)},
	})
	if err != nil {
		t.Fatalf("submit assessment: %v", err)
	}

	submissions, err := service.Submissions(context.Background(), "job-1")
	if err != nil {
		t.Fatalf("submissions: %v", err)
	}
	if len(submissions) != 1 {
		t.Fatalf("expected the anonymous submission stored, got %d", len(submissions))
	}
}

func TestAssignAssessmentOverwritesPreviousAssignment(t *testing.T) {
	service := newTestService()
	candidate := mustAddCandidate(t, service, domain.Candidate{Name: "Ada", Email: "ada@example.com"})

	if _, err := service.AssignAssessment(context.Background(), candidate.ID, "job-1"); err != nil {
		t.Fatalf("assign: %v", err)
	}
	assignments, err := service.AssignAssessment(context.Background(), candidate.ID, "job-2")
	if err != nil {
		t.Fatalf("reassign: %v", err)
	}
	if len(assignments) != 1 || assignments[0] != "job-2" {
		t.Fatalf("expected only the latest assignment, got %v", assignments)
	}

	stored, err := service.Assignments(context.Background(), candidate.ID)
	if err != nil {
		t.Fatalf("assignments: %v", err)
	}
	if len(stored) != 1 || stored[0] != "job-2" {
		t.Fatalf("expected stored assignment job-2, got %v", stored)
	}

	timeline, err := service.Timeline(context.Background(), candidate.ID)
	if err != nil {
		t.Fatalf("timeline: %v", err)
	}
	// created + two assignment events
	if len(timeline) != 3 {
		t.Fatalf("expected 3 timeline events, got %d", len(timeline))
	}
}

func TestCandidateAuthOverwriteAndLookup(t *testing.T) {
	service := newTestService()

	if _, err := service.CreateCandidateAuth(context.Background(), "cand-1", "  Ada@Example.com ", "first1"); err != nil {
		t.Fatalf("create auth: %v", err)
	}
	auth, err := service.CreateCandidateAuth(context.Background(), "cand-1", "ada@example.com", "second")
	if err != nil {
		t.Fatalf("recreate auth: %v", err)
	}
	if auth.Email != "ada@example.com" {
		t.Fatalf("expected normalized email, got %q", auth.Email)
	}

	found, err := service.CandidateAuthByEmail(context.Background(), "ADA@EXAMPLE.COM")
	if err != nil {
		t.Fatalf("lookup auth: %v", err)
	}
	if found == nil || found.Password != "second" {
		t.Fatalf("expected the reissued credential, got %+v", found)
	}

	missing, err := service.CandidateAuthByEmail(context.Background(), "nobody@example.com")
	if err != nil {
		t.Fatalf("lookup missing auth: %v", err)
	}
	if missing != nil {
		t.Fatalf("expected nil for unknown email, got %+v", missing)
	}
}

func TestOutboxAppendsInOrder(t *testing.T) {
	service := newTestService()

	for _, subject := range []string{"first", "second"} {
		if _, err := service.AddOutboxMessage(context.Background(), domain.OutboxMessage{
			To:      "ada@example.com",
			Subject: subject,
		}); err != nil {
			t.Fatalf("add outbox message: %v", err)
		}
	}

	outbox, err := service.Outbox(context.Background())
	if err != nil {
		t.Fatalf("outbox: %v", err)
	}
	if len(outbox) != 2 || outbox[0].Subject != "first" || outbox[1].Subject != "second" {
		t.Fatalf("expected insertion order preserved, got %+v", outbox)
	}
}

func TestSeedIfEmptyOnlySeedsEmptyCollections(t *testing.T) {
	service := newTestService()
	existing := mustCreateJob(t, service, domain.Job{Title: "existing"})

	err := service.SeedIfEmpty(context.Background(), SeedData{
		Jobs:       []domain.Job{{ID: "seed-job", Title: "seeded", Slug: "seeded"}},
		Candidates: []domain.Candidate{{ID: "seed-cand", Name: "Seed", Email: "seed@example.com", Stage: domain.StageApplied}},
	})
	if err != nil {
		t.Fatalf("seed: %v", err)
	}

	jobs, total, err := service.ListJobs(context.Background(), domain.JobListFilter{})
	if err != nil {
		t.Fatalf("list jobs: %v", err)
	}
	if total != 1 || jobs[0].ID != existing.ID {
		t.Fatalf("expected non-empty jobs collection untouched, got %d jobs", total)
	}

	_, total, err = service.ListCandidates(context.Background(), domain.CandidateListFilter{})
	if err != nil {
		t.Fatalf("list candidates: %v", err)
	}
	if total != 1 {
		t.Fatalf("expected empty candidates collection seeded, got %d", total)
	}

	timeline, err := service.Timeline(context.Background(), "seed-cand")
	if err != nil {
		t.Fatalf("timeline: %v", err)
	}
	if len(timeline) != 1 || timeline[0].Type != domain.TimelineEventSeed {
		t.Fatalf("expected a single seed event, got %+v", timeline)
	}
}

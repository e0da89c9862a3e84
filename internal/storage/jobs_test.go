package storage

import (
	"context"
	"fmt"
	"testing"

	"github.com/talentflow/talentflow-back/internal/domain"
	"github.com/talentflow/talentflow-back/internal/kv"
)

func newTestService() *Service {
	return NewService(kv.NewMemoryStore())
}

func mustCreateJob(t *testing.T, service *Service, job domain.Job) domain.Job {
	t.Helper()
	created, err := service.CreateJob(context.Background(), job)
	if err != nil {
		t.Fatalf("create job: %v", err)
	}
	return created
}

func TestListJobsReturnsInsertedSetInInsertionOrder(t *testing.T) {
	service := newTestService()
	titles := []string{"zeta role", "alpha role", "mid role"}
	for _, title := range titles {
		mustCreateJob(t, service, domain.Job{Title: title})
	}

	jobs, total, err := service.ListJobs(context.Background(), domain.JobListFilter{})
	if err != nil {
		t.Fatalf("list jobs: %v", err)
	}
	if total != len(titles) {
		t.Fatalf("expected total %d, got %d", len(titles), total)
	}
	for i, job := range jobs {
		if job.Title != titles[i] {
			t.Fatalf("position %d: expected %q, got %q", i, titles[i], job.Title)
		}
	}
}

func TestListJobsSortByTitle(t *testing.T) {
	service := newTestService()
	for _, title := range []string{"charlie", "alpha", "bravo"} {
		mustCreateJob(t, service, domain.Job{Title: title})
	}

	jobs, _, err := service.ListJobs(context.Background(), domain.JobListFilter{Sort: domain.SortByTitle})
	if err != nil {
		t.Fatalf("list jobs: %v", err)
	}
	expected := []string{"alpha", "bravo", "charlie"}
	for i, job := range jobs {
		if job.Title != expected[i] {
			t.Fatalf("position %d: expected %q, got %q", i, expected[i], job.Title)
		}
	}
}

func TestListJobsActiveFilterExcludesArchivedAndFilled(t *testing.T) {
	service := newTestService()
	mustCreateJob(t, service, domain.Job{Title: "open role"})
	archived := mustCreateJob(t, service, domain.Job{Title: "archived role"})
	filled := mustCreateJob(t, service, domain.Job{Title: "filled role"})

	if _, err := service.ArchiveJob(context.Background(), archived.ID, true); err != nil {
		t.Fatalf("archive job: %v", err)
	}
	filledStatus := domain.JobStatusFilled
	if _, err := service.UpdateJob(context.Background(), filled.ID, JobUpdate{Status: &filledStatus}); err != nil {
		t.Fatalf("update job: %v", err)
	}

	jobs, total, err := service.ListJobs(context.Background(), domain.JobListFilter{Status: domain.JobFilterActive})
	if err != nil {
		t.Fatalf("list jobs: %v", err)
	}
	if total != 1 {
		t.Fatalf("expected 1 active job, got %d", total)
	}
	if jobs[0].Title != "open role" {
		t.Fatalf("expected the open role, got %q", jobs[0].Title)
	}
}

func TestListJobsSearchMatchesTitleAndSlug(t *testing.T) {
	service := newTestService()
	mustCreateJob(t, service, domain.Job{Title: "Backend Engineer"})
	mustCreateJob(t, service, domain.Job{Title: "Designer"})

	jobs, total, err := service.ListJobs(context.Background(), domain.JobListFilter{Search: "ENGINEER"})
	if err != nil {
		t.Fatalf("list jobs: %v", err)
	}
	if total != 1 || jobs[0].Title != "Backend Engineer" {
		t.Fatalf("expected the engineer role, got total=%d", total)
	}

	_, total, err = service.ListJobs(context.Background(), domain.JobListFilter{Search: "backend-engineer"})
	if err != nil {
		t.Fatalf("list jobs by slug: %v", err)
	}
	if total != 1 {
		t.Fatalf("expected slug search hit, got total=%d", total)
	}
}

func TestListJobsTagsRequireAllPresent(t *testing.T) {
	service := newTestService()
	mustCreateJob(t, service, domain.Job{Title: "both", Tags: []string{"go", "remote"}})
	mustCreateJob(t, service, domain.Job{Title: "only go", Tags: []string{"go"}})

	jobs, total, err := service.ListJobs(context.Background(), domain.JobListFilter{Tags: []string{"go", "remote"}})
	if err != nil {
		t.Fatalf("list jobs: %v", err)
	}
	if total != 1 || jobs[0].Title != "both" {
		t.Fatalf("expected only the fully tagged job, got total=%d", total)
	}
}

func TestListJobsPagination(t *testing.T) {
	service := newTestService()
	for i := 1; i <= 30; i++ {
		mustCreateJob(t, service, domain.Job{Title: fmt.Sprintf("role %02d", i)})
	}

	jobs, total, err := service.ListJobs(context.Background(), domain.JobListFilter{Page: 2, PageSize: 10})
	if err != nil {
		t.Fatalf("list jobs: %v", err)
	}
	if total != 30 {
		t.Fatalf("expected total 30 before pagination, got %d", total)
	}
	if len(jobs) != 10 {
		t.Fatalf("expected 10 items on page 2, got %d", len(jobs))
	}
	if jobs[0].Title != "role 11" || jobs[9].Title != "role 20" {
		t.Fatalf("expected items 11-20, got %q..%q", jobs[0].Title, jobs[9].Title)
	}
}

func TestListJobsPageBeyondEndIsEmpty(t *testing.T) {
	service := newTestService()
	mustCreateJob(t, service, domain.Job{Title: "only"})

	jobs, total, err := service.ListJobs(context.Background(), domain.JobListFilter{Page: 5, PageSize: 10})
	if err != nil {
		t.Fatalf("list jobs: %v", err)
	}
	if total != 1 || len(jobs) != 0 {
		t.Fatalf("expected empty page with total 1, got total=%d len=%d", total, len(jobs))
	}
}

func TestCreateJobDefaultsAndSlug(t *testing.T) {
	service := newTestService()
	job := mustCreateJob(t, service, domain.Job{Title: "Staff Engineer, Platform"})

	if job.ID == "" {
		t.Fatalf("expected generated id")
	}
	if job.Slug != "staff-engineer-platform" {
		t.Fatalf("expected derived slug, got %q", job.Slug)
	}
	if job.Status != domain.JobStatusOpen {
		t.Fatalf("expected default status open, got %q", job.Status)
	}
	if job.Order != 1 {
		t.Fatalf("expected default order 1, got %d", job.Order)
	}
}

func TestCreateJobRejectsDuplicateSlug(t *testing.T) {
	service := newTestService()
	mustCreateJob(t, service, domain.Job{Title: "Engineer"})

	_, err := service.CreateJob(context.Background(), domain.Job{Title: "Engineer"})
	if err != ErrSlugTaken {
		t.Fatalf("expected ErrSlugTaken, got %v", err)
	}

	_, total, err := service.ListJobs(context.Background(), domain.JobListFilter{})
	if err != nil {
		t.Fatalf("list jobs: %v", err)
	}
	if total != 1 {
		t.Fatalf("expected rejected create to store nothing, total=%d", total)
	}
}

func TestReorderJobsStablePartialReorder(t *testing.T) {
	service := newTestService()
	first := mustCreateJob(t, service, domain.Job{Title: "one"})
	second := mustCreateJob(t, service, domain.Job{Title: "two"})
	third := mustCreateJob(t, service, domain.Job{Title: "three"})

	reordered, err := service.ReorderJobs(context.Background(), []string{second.ID, first.ID})
	if err != nil {
		t.Fatalf("reorder jobs: %v", err)
	}

	expected := []string{second.ID, first.ID, third.ID}
	if len(reordered) != len(expected) {
		t.Fatalf("expected %d jobs, got %d", len(expected), len(reordered))
	}
	for i, job := range reordered {
		if job.ID != expected[i] {
			t.Fatalf("position %d: expected %s, got %s", i, expected[i], job.ID)
		}
	}
}

func TestReorderJobsIgnoresUnknownIDs(t *testing.T) {
	service := newTestService()
	only := mustCreateJob(t, service, domain.Job{Title: "only"})

	reordered, err := service.ReorderJobs(context.Background(), []string{"ghost", only.ID})
	if err != nil {
		t.Fatalf("reorder jobs: %v", err)
	}
	if len(reordered) != 1 || reordered[0].ID != only.ID {
		t.Fatalf("expected only the real job to survive, got %d jobs", len(reordered))
	}
}

func TestBulkUnarchiveIsIdempotent(t *testing.T) {
	service := newTestService()
	archived := mustCreateJob(t, service, domain.Job{Title: "stale"})
	fresh := mustCreateJob(t, service, domain.Job{Title: "fresh"})
	if _, err := service.ArchiveJob(context.Background(), archived.ID, true); err != nil {
		t.Fatalf("archive job: %v", err)
	}

	affected, err := service.BulkUnarchive(context.Background(), []string{archived.ID, fresh.ID})
	if err != nil {
		t.Fatalf("bulk unarchive: %v", err)
	}
	if len(affected) != 2 {
		t.Fatalf("expected 2 affected jobs, got %d", len(affected))
	}
	for _, job := range affected {
		if job.Archived {
			t.Fatalf("job %s still archived", job.ID)
		}
	}

	// A second pass over already-unarchived ids must not error or flip state.
	affected, err = service.BulkUnarchive(context.Background(), []string{archived.ID, fresh.ID})
	if err != nil {
		t.Fatalf("second bulk unarchive: %v", err)
	}
	for _, job := range affected {
		if job.Archived {
			t.Fatalf("job %s re-archived on second pass", job.ID)
		}
	}
}

func TestDeleteJobRemovesOnlyTarget(t *testing.T) {
	service := newTestService()
	keep := mustCreateJob(t, service, domain.Job{Title: "keep"})
	drop := mustCreateJob(t, service, domain.Job{Title: "drop"})

	if err := service.DeleteJob(context.Background(), drop.ID); err != nil {
		t.Fatalf("delete job: %v", err)
	}

	jobs, total, err := service.ListJobs(context.Background(), domain.JobListFilter{})
	if err != nil {
		t.Fatalf("list jobs: %v", err)
	}
	if total != 1 || jobs[0].ID != keep.ID {
		t.Fatalf("expected only %s to remain, got %d jobs", keep.ID, total)
	}
}

func TestListJobsClampsPageAndPageSize(t *testing.T) {
	service := newTestService()
	for i := 0; i < 5; i++ {
		mustCreateJob(t, service, domain.Job{Title: fmt.Sprintf("Job %d", i)})
	}

	jobs, total, err := service.ListJobs(context.Background(), domain.JobListFilter{Page: 1, PageSize: -3})
	if err != nil {
		t.Fatalf("list jobs: %v", err)
	}
	if len(jobs) != 1 || total != 5 {
		t.Fatalf("expected negative pageSize clamped to 1 item, got %d items total %d", len(jobs), total)
	}

	jobs, total, err = service.ListJobs(context.Background(), domain.JobListFilter{Page: -2, PageSize: 2})
	if err != nil {
		t.Fatalf("list jobs: %v", err)
	}
	if len(jobs) != 2 || total != 5 || jobs[0].Title != "Job 0" {
		t.Fatalf("expected negative page clamped to first page, got %d items starting at %q", len(jobs), jobs[0].Title)
	}

	jobs, _, err = service.ListJobs(context.Background(), domain.JobListFilter{Page: 1, PageSize: 0})
	if err != nil {
		t.Fatalf("list jobs: %v", err)
	}
	if len(jobs) != 5 {
		t.Fatalf("expected zero pageSize to take the default, got %d items", len(jobs))
	}
}

func TestSlugify(t *testing.T) {
	cases := map[string]string{
		"Engineer":                  "engineer",
		"Senior  Engineer":          "senior-engineer",
		"ML / AI Engineer (Remote)": "ml-ai-engineer-remote",
		"  trimmed  ":               "trimmed",
	}
	for input, expected := range cases {
		if got := Slugify(input); got != expected {
			t.Fatalf("Slugify(%q): expected %q, got %q", input, expected, got)
		}
	}
}

package storage

import (
	"context"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/talentflow/talentflow-back/internal/domain"
)

const defaultJobPageSize = 25

// ListJobs filters, sorts and pages the jobs collection. The returned total
// counts matches after filtering but before pagination. Pure read.
func (s *Service) ListJobs(ctx context.Context, filter domain.JobListFilter) ([]domain.Job, int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var jobs []domain.Job
	if err := s.read(ctx, keyJobs, &jobs); err != nil {
		return nil, 0, err
	}

	filtered := make([]domain.Job, 0, len(jobs))
	for _, job := range jobs {
		if matchesJobFilter(job, filter) {
			filtered = append(filtered, job)
		}
	}

	switch filter.Sort {
	case domain.SortByTitle:
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].Title < filtered[j].Title
		})
	case domain.SortByOrder:
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].Order < filtered[j].Order
		})
	}

	total := len(filtered)
	start, end := paginate(total, filter.Page, filter.PageSize, defaultJobPageSize)
	return filtered[start:end], total, nil
}

func matchesJobFilter(job domain.Job, filter domain.JobListFilter) bool {
	if search := strings.ToLower(strings.TrimSpace(filter.Search)); search != "" {
		title := strings.ToLower(job.Title)
		slug := strings.ToLower(job.Slug)
		if !strings.Contains(title, search) && !strings.Contains(slug, search) {
			return false
		}
	}

	if status := strings.ToLower(filter.Status); status != "" && status != domain.JobFilterAll {
		jobStatus := strings.ToLower(string(job.Status))
		switch status {
		case domain.JobFilterActive:
			if job.Archived || jobStatus == "archived" || jobStatus == string(domain.JobStatusFilled) {
				return false
			}
		case domain.JobFilterArchived:
			if !job.Archived && jobStatus != "archived" {
				return false
			}
		case domain.JobFilterFilled:
			if jobStatus != string(domain.JobStatusFilled) || job.Archived {
				return false
			}
		default:
			if jobStatus != status {
				return false
			}
		}
	}

	if jobType := strings.ToLower(filter.Type); jobType != "" && jobType != "all" {
		current := string(job.Type)
		if current == "" {
			current = string(domain.JobTypeFullTime)
		}
		if strings.ToLower(current) != jobType {
			return false
		}
	}

	for _, required := range filter.Tags {
		if !containsTag(job.Tags, required) {
			return false
		}
	}

	return true
}

func containsTag(tags []string, target string) bool {
	for _, tag := range tags {
		if tag == target {
			return true
		}
	}
	return false
}

// CreateJob appends a new job, filling in defaults. The slug uniqueness
// check runs in the same critical section as the write.
func (s *Service) CreateJob(ctx context.Context, job domain.Job) (domain.Job, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var jobs []domain.Job
	if err := s.read(ctx, keyJobs, &jobs); err != nil {
		return domain.Job{}, err
	}

	if job.ID == "" {
		job.ID = uuid.NewString()
	}
	if job.Slug == "" {
		job.Slug = Slugify(job.Title)
	}
	if job.Status == "" {
		job.Status = domain.JobStatusOpen
	}
	if job.Order == 0 {
		for _, existing := range jobs {
			if existing.Order >= job.Order {
				job.Order = existing.Order + 1
			}
		}
		if job.Order == 0 {
			job.Order = 1
		}
	}

	for _, existing := range jobs {
		if existing.Slug != "" && strings.EqualFold(existing.Slug, job.Slug) {
			return domain.Job{}, ErrSlugTaken
		}
	}

	jobs = append(jobs, job)
	if err := s.write(ctx, keyJobs, jobs); err != nil {
		return domain.Job{}, err
	}
	return job, nil
}

// JobUpdate carries a partial job update; nil fields are left untouched.
type JobUpdate struct {
	Title    *string           `json:"title,omitempty"`
	Company  *string           `json:"company,omitempty"`
	Location *string           `json:"location,omitempty"`
	Type     *domain.JobType   `json:"type,omitempty"`
	Slug     *string           `json:"slug,omitempty"`
	Status   *domain.JobStatus `json:"status,omitempty"`
	Archived *bool             `json:"archived,omitempty"`
	Order    *int              `json:"order,omitempty"`
	Tags     *[]string         `json:"tags,omitempty"`
}

func applyJobUpdate(job *domain.Job, update JobUpdate) {
	if update.Title != nil {
		job.Title = *update.Title
	}
	if update.Company != nil {
		job.Company = *update.Company
	}
	if update.Location != nil {
		job.Location = *update.Location
	}
	if update.Type != nil {
		job.Type = *update.Type
	}
	if update.Slug != nil {
		job.Slug = *update.Slug
	}
	if update.Status != nil {
		job.Status = *update.Status
	}
	if update.Archived != nil {
		job.Archived = *update.Archived
	}
	if update.Order != nil {
		job.Order = *update.Order
	}
	if update.Tags != nil {
		job.Tags = *update.Tags
	}
}

func (s *Service) UpdateJob(ctx context.Context, jobID string, update JobUpdate) (domain.Job, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var jobs []domain.Job
	if err := s.read(ctx, keyJobs, &jobs); err != nil {
		return domain.Job{}, err
	}

	for i := range jobs {
		if jobs[i].ID == jobID {
			applyJobUpdate(&jobs[i], update)
			if err := s.write(ctx, keyJobs, jobs); err != nil {
				return domain.Job{}, err
			}
			return jobs[i], nil
		}
	}
	return domain.Job{}, ErrNotFound
}

func (s *Service) ArchiveJob(ctx context.Context, jobID string, archived bool) (domain.Job, error) {
	return s.UpdateJob(ctx, jobID, JobUpdate{Archived: &archived})
}

// ReorderJobs moves the listed ids to the front in the given order; jobs not
// mentioned keep their original relative order after them.
func (s *Service) ReorderJobs(ctx context.Context, orderedIDs []string) ([]domain.Job, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var jobs []domain.Job
	if err := s.read(ctx, keyJobs, &jobs); err != nil {
		return nil, err
	}

	byID := make(map[string]domain.Job, len(jobs))
	for _, job := range jobs {
		byID[job.ID] = job
	}

	mentioned := make(map[string]struct{}, len(orderedIDs))
	reordered := make([]domain.Job, 0, len(jobs))
	for _, id := range orderedIDs {
		mentioned[id] = struct{}{}
		if job, ok := byID[id]; ok {
			reordered = append(reordered, job)
		}
	}
	for _, job := range jobs {
		if _, ok := mentioned[job.ID]; !ok {
			reordered = append(reordered, job)
		}
	}

	if err := s.write(ctx, keyJobs, reordered); err != nil {
		return nil, err
	}
	return reordered, nil
}

// BulkUnarchive clears the archived flag on every listed id. Ids already
// unarchived are left as-is; unknown ids are ignored.
func (s *Service) BulkUnarchive(ctx context.Context, jobIDs []string) ([]domain.Job, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var jobs []domain.Job
	if err := s.read(ctx, keyJobs, &jobs); err != nil {
		return nil, err
	}

	targets := make(map[string]struct{}, len(jobIDs))
	for _, id := range jobIDs {
		targets[id] = struct{}{}
	}

	affected := make([]domain.Job, 0, len(jobIDs))
	for i := range jobs {
		if _, ok := targets[jobs[i].ID]; ok {
			jobs[i].Archived = false
			affected = append(affected, jobs[i])
		}
	}

	if err := s.write(ctx, keyJobs, jobs); err != nil {
		return nil, err
	}
	return affected, nil
}

// DeleteJob removes the job outright. Timelines and assignments referencing
// it are left in place; JobID is a weak reference throughout.
func (s *Service) DeleteJob(ctx context.Context, jobID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var jobs []domain.Job
	if err := s.read(ctx, keyJobs, &jobs); err != nil {
		return err
	}

	remaining := jobs[:0]
	for _, job := range jobs {
		if job.ID != jobID {
			remaining = append(remaining, job)
		}
	}
	return s.write(ctx, keyJobs, remaining)
}

// Slugify derives a URL-safe identifier from a job title: lowercased, with
// non-alphanumeric runs collapsed to single dashes.
func Slugify(title string) string {
	var builder strings.Builder
	lastDash := true
	for _, r := range strings.ToLower(strings.TrimSpace(title)) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			builder.WriteRune(r)
			lastDash = false
			continue
		}
		if !lastDash {
			builder.WriteByte('-')
			lastDash = true
		}
	}
	return strings.TrimSuffix(builder.String(), "-")
}

package seed

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/google/uuid"
	"github.com/talentflow/talentflow-back/internal/domain"
	"github.com/talentflow/talentflow-back/internal/storage"
)

var jobTitles = []string{
	"software engineer 1",
	"software engineer 2",
	"software engineer 3",
	"senior software engineer",
	"technical lead",
	"ML Engineer",
	"DevOPS engineer",
}

var candidateNames = []string{
	"Gaurav", "Arjun", "Abhinav", "Harsh", "Dhruv", "Giriraj", "Ojas",
	"Abhishek", "Nitin", "Armaan", "Siddharth", "Nidhan", "Archit",
}

// Dataset builds the sample data loaded into an empty store: 25 jobs, 900
// candidates spread round-robin across them, and one assessment per job
// picked from the question templates by title keywords.
func Dataset() storage.SeedData {
	jobs := sampleJobs()
	return storage.SeedData{
		Jobs:        jobs,
		Candidates:  sampleCandidates(jobs),
		Assessments: sampleAssessments(jobs),
	}
}

func sampleJobs() []domain.Job {
	jobs := make([]domain.Job, 0, 25)
	for i := 1; i <= 25; i++ {
		tag := "backend"
		if i%2 == 1 {
			tag = "frontend"
		}
		jobs = append(jobs, domain.Job{
			ID:       fmt.Sprintf("job-%d", i),
			Title:    jobTitles[rand.Intn(len(jobTitles))],
			Slug:     fmt.Sprintf("job-%d", i),
			Status:   domain.JobStatusOpen,
			Tags:     []string{"engineering", tag},
			Order:    i,
			Archived: false,
		})
	}
	return jobs
}

func sampleCandidates(jobs []domain.Job) []domain.Candidate {
	candidates := make([]domain.Candidate, 0, 900)
	for i := 1; i <= 900; i++ {
		name := candidateNames[rand.Intn(len(candidateNames))]
		candidates = append(candidates, domain.Candidate{
			ID:    fmt.Sprintf("cand-%d", i),
			Name:  name,
			Email: fmt.Sprintf("%s%d@example.com", strings.ToLower(name), i),
			Stage: domain.CandidateStages[rand.Intn(len(domain.CandidateStages))],
			JobID: jobs[(i-1)%len(jobs)].ID,
		})
	}
	return candidates
}

func sampleAssessments(jobs []domain.Job) []domain.Assessment {
	templates := assessmentTemplates()
	assessments := make([]domain.Assessment, 0, len(jobs))
	for _, job := range jobs {
		template := templates[templateIndexForTitle(job.Title)]
		assessments = append(assessments, instantiate(template, job))
	}
	return assessments
}

func templateIndexForTitle(title string) int {
	lowered := strings.ToLower(title)
	switch {
	case strings.Contains(lowered, "senior") || strings.Contains(lowered, "lead"):
		return 1
	case strings.Contains(lowered, "ml") || strings.Contains(lowered, "machine"):
		return 2
	case strings.Contains(lowered, "devops"):
		return 3
	default:
		return 0
	}
}

// instantiate copies a template, stamping fresh ids on every section,
// question and option so each job's assessment stands alone.
func instantiate(template domain.Assessment, job domain.Job) domain.Assessment {
	sections := make([]domain.Section, 0, len(template.Sections))
	for _, sectionTemplate := range template.Sections {
		questions := make([]domain.Question, 0, len(sectionTemplate.Questions))
		for _, questionTemplate := range sectionTemplate.Questions {
			question := questionTemplate
			question.ID = uuid.NewString()
			if len(questionTemplate.Options) > 0 {
				options := make([]domain.Option, 0, len(questionTemplate.Options))
				for _, option := range questionTemplate.Options {
					option.ID = uuid.NewString()
					options = append(options, option)
				}
				question.Options = options
			}
			questions = append(questions, question)
		}
		sections = append(sections, domain.Section{
			ID:          uuid.NewString(),
			Title:       sectionTemplate.Title,
			Description: sectionTemplate.Description,
			Questions:   questions,
		})
	}

	return domain.Assessment{
		JobID:       job.ID,
		Title:       fmt.Sprintf("%s for %s", template.Title, job.Title),
		Description: template.Description,
		Sections:    sections,
	}
}

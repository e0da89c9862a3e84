package domain

// JobType is the employment type of a job posting.
type JobType string

const (
	JobTypeFullTime JobType = "Full-time"
	JobTypePartTime JobType = "Part-time"
	JobTypeContract JobType = "Contract"
)

// JobStatus is the lifecycle status of a job posting. The archived flag is
// tracked separately; a job can be open and archived at the same time.
type JobStatus string

const (
	JobStatusOpen   JobStatus = "open"
	JobStatusFilled JobStatus = "filled"
)

// Job is a hiring position tracked on the jobs board.
type Job struct {
	ID       string    `json:"id"`
	Title    string    `json:"title"`
	Company  string    `json:"company,omitempty"`
	Location string    `json:"location,omitempty"`
	Type     JobType   `json:"type,omitempty"`
	Slug     string    `json:"slug"`
	Status   JobStatus `json:"status"`
	Archived bool      `json:"archived"`
	Order    int       `json:"order"`
	Tags     []string  `json:"tags,omitempty"`
}

// JobListFilter selects and pages jobs. Zero values mean "everything in
// insertion order".
type JobListFilter struct {
	Search   string
	Status   string
	Type     string
	Tags     []string
	Sort     string
	Page     int
	PageSize int
}

const (
	JobFilterAll      = "all"
	JobFilterActive   = "active"
	JobFilterArchived = "archived"
	JobFilterFilled   = "filled"

	SortByTitle = "title"
	SortByOrder = "order"
)

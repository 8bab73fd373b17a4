package domain

// Display defaults used when an upstream record omits a field
const (
	DefaultTitle       = "No Title"
	DefaultCompany     = "Unknown Company"
	DefaultSalary      = "Salary not disclosed"
	DefaultAttribute   = "Not specified"
	DefaultDescription = "No description provided"
	DefaultLocation    = "Location not specified"
)

// Job is the canonical, default-filled job posting. Two jobs with the same
// ID are the same job regardless of other field values.
type Job struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Company     string `json:"company"`
	Salary      string `json:"salary"`
	JobType     string `json:"jobType"`
	WorkModel   string `json:"workModel"`
	Seniority   string `json:"seniority"`
	Description string `json:"description"`
	Location    string `json:"location"`
	URL         string `json:"url,omitempty"`
	Source      string `json:"source,omitempty"`
}

// JobSummary is the response-friendly job view
type JobSummary struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Company   string `json:"company"`
	Salary    string `json:"salary"`
	Location  string `json:"location"`
	WorkModel string `json:"work_model"`
	Saved     bool   `json:"saved"`
}

// Summarize converts a Job into its list view
func Summarize(j Job, saved bool) JobSummary {
	return JobSummary{
		ID:        j.ID,
		Title:     j.Title,
		Company:   j.Company,
		Salary:    j.Salary,
		Location:  j.Location,
		WorkModel: j.WorkModel,
		Saved:     saved,
	}
}

// IDs returns the identifiers of jobs in order
func IDs(jobs []Job) []string {
	out := make([]string, 0, len(jobs))
	for _, j := range jobs {
		out = append(out, j.ID)
	}
	return out
}

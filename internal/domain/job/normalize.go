package job

import (
	"strings"

	"github.com/google/uuid"
	"github.com/tidwall/gjson"

	"github.com/honeycarbs/jobboard/internal/domain"
)

// Accepted upstream keys per canonical field, in priority order
var (
	idKeys          = []string{"id", "job_id", "jobId", "_id"}
	titleKeys       = []string{"title", "job_title", "position"}
	companyKeys     = []string{"company", "company_name", "companyName", "employer"}
	salaryKeys      = []string{"salary", "salary_range", "salaryRange"}
	jobTypeKeys     = []string{"jobType", "job_type", "type", "employment_type"}
	workModelKeys   = []string{"workModel", "work_model", "remote_type"}
	seniorityKeys   = []string{"seniority", "level", "experience_level"}
	descriptionKeys = []string{"description", "summary"}
	locationKeys    = []string{"location", "job_location", "city"}
	urlKeys         = []string{"url", "link", "redirect_url", "applyUrl"}
)

// Normalize converts a raw record into a canonical Job. It never fails: any
// field that is missing or has an unusable shape takes its default.
func Normalize(raw RawJob) domain.Job {
	j := domain.Job{
		ID:          text(raw.lookup(idKeys...)),
		Title:       orDefault(text(raw.lookup(titleKeys...)), domain.DefaultTitle),
		Company:     orDefault(named(raw.lookup(companyKeys...)), domain.DefaultCompany),
		Salary:      formatSalary(raw.lookup(salaryKeys...)),
		JobType:     orDefault(text(raw.lookup(jobTypeKeys...)), domain.DefaultAttribute),
		WorkModel:   orDefault(workModel(raw), domain.DefaultAttribute),
		Seniority:   orDefault(text(raw.lookup(seniorityKeys...)), domain.DefaultAttribute),
		Description: orDefault(text(raw.lookup(descriptionKeys...)), domain.DefaultDescription),
		Location:    orDefault(named(raw.lookup(locationKeys...)), domain.DefaultLocation),
		URL:         text(raw.lookup(urlKeys...)),
	}

	// generated ids are random so a refetch never collides with older records
	if j.ID == "" {
		j.ID = uuid.NewString()
	}

	return j
}

// NormalizeBatch normalises records in order. A record repeating an id seen
// earlier in the same batch is dropped.
func NormalizeBatch(raws []RawJob) []domain.Job {
	seen := make(map[string]struct{}, len(raws))
	out := make([]domain.Job, 0, len(raws))

	for _, raw := range raws {
		j := Normalize(raw)
		if _, dup := seen[j.ID]; dup {
			continue
		}
		seen[j.ID] = struct{}{}
		out = append(out, j)
	}

	return out
}

func formatSalary(v gjson.Result) string {
	switch {
	case v.Type == gjson.Number:
		return "$" + v.Raw
	case v.Type == gjson.String:
		s := strings.TrimSpace(v.Str)
		if s == "" || s == domain.DefaultSalary {
			return domain.DefaultSalary
		}
		if strings.HasPrefix(s, "$") {
			return s
		}
		return "$" + s
	case v.IsObject():
		lo, hi := text(v.Get("min")), text(v.Get("max"))
		switch {
		case lo != "" && hi != "" && lo != hi:
			return "$" + lo + " - $" + hi
		case lo != "":
			return "$" + lo
		case hi != "":
			return "$" + hi
		}
	}
	return domain.DefaultSalary
}

func workModel(raw RawJob) string {
	if s := text(raw.lookup(workModelKeys...)); s != "" {
		return s
	}

	remote := raw.lookup("remote")
	switch remote.Type {
	case gjson.True:
		return "Remote"
	case gjson.False:
		return "On-site"
	}
	return ""
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

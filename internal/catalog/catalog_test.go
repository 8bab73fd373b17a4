package catalog

import (
	"testing"

	"github.com/honeycarbs/jobboard/internal/domain"
)

func jobs() []domain.Job {
	return []domain.Job{
		{ID: "1", Title: "Go Engineer", Company: "Acme"},
		{ID: "2", Title: "Designer", Company: "ACME Labs"},
		{ID: "3", Title: "Barista", Company: "Bean Co"},
	}
}

func ids(js []domain.Job) []string {
	return domain.IDs(js)
}

func TestVisibleJobsMatchesTitleOrCompany(t *testing.T) {
	c := New()
	c.Load(jobs())
	c.SetQuery("acme")

	got := ids(c.VisibleJobs())
	if len(got) != 2 || got[0] != "1" || got[1] != "2" {
		t.Errorf("VisibleJobs = %v, want [1 2]", got)
	}
}

func TestVisibleJobsQueries(t *testing.T) {
	tests := []struct {
		query string
		want  int
	}{
		{"", 3},
		{"ENGINEER", 1},
		{"co", 1},
		{"zzz", 0},
		{" ", 3},
	}

	c := New()
	c.Load(jobs())
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			c.SetQuery(tt.query)
			if got := len(c.VisibleJobs()); got != tt.want {
				t.Errorf("len(VisibleJobs(%q)) = %d, want %d", tt.query, got, tt.want)
			}
		})
	}
}

func TestVisibleJobsIsSubsetInOrder(t *testing.T) {
	c := New()
	c.Load(jobs())
	c.SetQuery("e")

	all := c.All()
	pos := map[string]int{}
	for i, j := range all {
		pos[j.ID] = i
	}

	last := -1
	for _, j := range c.VisibleJobs() {
		p, ok := pos[j.ID]
		if !ok {
			t.Fatalf("visible job %q not in catalog", j.ID)
		}
		if p <= last {
			t.Errorf("visible jobs out of fetch order")
		}
		last = p
	}
}

func TestLoadKeepsQuery(t *testing.T) {
	c := New()
	c.SetQuery("barista")
	c.Load(jobs())

	if c.Query() != "barista" {
		t.Errorf("Query = %q", c.Query())
	}
	if got := ids(c.VisibleJobs()); len(got) != 1 || got[0] != "3" {
		t.Errorf("VisibleJobs = %v, want [3]", got)
	}

	c.Load(nil)
	if c.Len() != 0 || len(c.VisibleJobs()) != 0 {
		t.Error("empty catalog should have an empty view")
	}
}

func TestLoadCopiesInput(t *testing.T) {
	in := jobs()
	c := New()
	c.Load(in)
	in[0].Title = "changed"

	j, ok := c.Lookup("1")
	if !ok || j.Title != "Go Engineer" {
		t.Errorf("Lookup = %+v, %v", j, ok)
	}
	if _, ok := c.Lookup("missing"); ok {
		t.Error("Lookup of unknown id should fail")
	}
}

// Package catalog holds the fetched job listing and the current search query.
package catalog

import (
	"strings"

	"github.com/honeycarbs/jobboard/internal/domain"
)

// Catalog is not safe for concurrent use; its owner serialises access.
type Catalog struct {
	all   []domain.Job
	index map[string]int
	query string
}

func New() *Catalog {
	return &Catalog{index: map[string]int{}}
}

// Load replaces every job. The query is kept.
func (c *Catalog) Load(jobs []domain.Job) {
	c.all = append(make([]domain.Job, 0, len(jobs)), jobs...)
	c.index = make(map[string]int, len(jobs))
	for i, j := range c.all {
		if _, ok := c.index[j.ID]; !ok {
			c.index[j.ID] = i
		}
	}
}

func (c *Catalog) SetQuery(text string) {
	c.query = text
}

func (c *Catalog) Query() string {
	return c.query
}

// VisibleJobs filters on every call, O(n) in the catalog size. Listings are
// capped at fetch time so no index is kept.
func (c *Catalog) VisibleJobs() []domain.Job {
	if c.query == "" {
		return c.All()
	}

	q := strings.ToLower(c.query)
	out := make([]domain.Job, 0, len(c.all))
	for _, j := range c.all {
		if strings.Contains(strings.ToLower(j.Title), q) || strings.Contains(strings.ToLower(j.Company), q) {
			out = append(out, j)
		}
	}
	return out
}

// All returns a copy of every job in fetch order
func (c *Catalog) All() []domain.Job {
	return append(make([]domain.Job, 0, len(c.all)), c.all...)
}

func (c *Catalog) Lookup(id string) (domain.Job, bool) {
	i, ok := c.index[id]
	if !ok {
		return domain.Job{}, false
	}
	return c.all[i], true
}

func (c *Catalog) Len() int {
	return len(c.all)
}

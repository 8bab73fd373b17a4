package adzuna

import (
	"errors"
	"fmt"
	"net/http"
	"time"
)

// Config defines Adzuna API client settings
type Config struct {
	AppID      string
	AppKey     string
	Country    string
	BaseURL    string
	HTTPClient *http.Client
	PageSize   int
}

// Client queries Adzuna job search API
type Client struct {
	appID      string
	appKey     string
	country    string
	baseURL    string
	httpClient *http.Client
	pageSize   int
}

// SearchParams describe a job search request
type SearchParams struct {
	Location string
	Remote   *bool
}

// ErrDecode is wrapped by errors caused by an unreadable response body
var ErrDecode = errors.New("adzuna: decode response")

// StatusError is returned when the API answers with a non-success status
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("adzuna: API error (%d): %s", e.Code, e.Body)
}

type jobSearchResponse struct {
	Count   int          `json:"count"`
	Results []jobPosting `json:"results"`
}

type jobPosting struct {
	ID           string          `json:"id"`
	Title        string          `json:"title"`
	Company      companySummary  `json:"company"`
	Location     locationSummary `json:"location"`
	Description  string          `json:"description"`
	Created      string          `json:"created"`
	RedirectURL  string          `json:"redirect_url"`
	ContractTime string          `json:"contract_time"`
	ContractType string          `json:"contract_type"`
	SalaryMin    float64         `json:"salary_min"`
	SalaryMax    float64         `json:"salary_max"`
}

type companySummary struct {
	DisplayName string `json:"display_name"`
}

type locationSummary struct {
	DisplayName string `json:"display_name"`
}

// Job represents one Adzuna posting as returned by the API
type Job struct {
	ID           string
	Title        string
	CompanyName  string
	Location     string
	URL          string
	Description  string
	ContractTime string
	ContractType string
	Remote       bool
	PostedAt     time.Time
	SalaryMin    float64
	SalaryMax    float64
}

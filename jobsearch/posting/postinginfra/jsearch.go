package postinginfra

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/jobmatchai/backend/jobsearch/posting"
	"github.com/jobmatchai/backend/pkg/logx"
)

const (
	jsearchBaseURL = "https://jsearch.p.rapidapi.com/search"
	jsearchHost    = "jsearch.p.rapidapi.com"
)

// JSearchSource fetches postings from the JSearch API on RapidAPI.
type JSearchSource struct {
	apiKey string
	client *http.Client
}

func NewJSearchSource(apiKey string) *JSearchSource {
	return &JSearchSource{
		apiKey: apiKey,
		client: &http.Client{Timeout: 10 * time.Second},
	}
}

func (s *JSearchSource) Name() string { return "JSearch" }

type jsearchResponse struct {
	Data []jsearchJob `json:"data"`
}

type jsearchJob struct {
	JobID          string `json:"job_id"`
	JobTitle       string `json:"job_title"`
	EmployerName   string `json:"employer_name"`
	JobCity        string `json:"job_city"`
	JobDescription string `json:"job_description"`
	JobSalary      *struct {
		MinSalary *float64 `json:"min_salary"`
		MaxSalary *float64 `json:"max_salary"`
	} `json:"job_salary"`
	EmploymentType string `json:"job_employment_type"`
	PostedAtUTC    string `json:"job_posted_at_datetime_utc"`
	ApplyLink      string `json:"job_apply_link"`
}

func (s *JSearchSource) Fetch(ctx context.Context, query posting.SearchQuery) ([]posting.Job, error) {
	if s.apiKey == "" {
		logx.Warnf("RapidAPI key not configured, skipping JSearch")
		return nil, nil
	}

	params := url.Values{
		"query":       {fmt.Sprintf("%s in %s", query.JobTitle, query.Location)},
		"page":        {"1"},
		"num_pages":   {"1"},
		"date_posted": {"all"},
	}

	reqURL := fmt.Sprintf("%s?%s", jsearchBaseURL, params.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("X-RapidAPI-Key", s.apiKey)
	req.Header.Set("X-RapidAPI-Host", jsearchHost)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, posting.ErrRegistry.NewWithCause(posting.CodeSourceFailed, err).
			WithDetail("source", s.Name())
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, posting.ErrSourceFailed().
			WithDetail("source", s.Name()).
			WithDetail("status", resp.StatusCode)
	}

	var body jsearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, posting.ErrRegistry.NewWithCause(posting.CodeSourceFailed, err).
			WithDetail("source", s.Name())
	}

	results := body.Data
	if len(results) > query.MaxResults {
		results = results[:query.MaxResults]
	}

	jobs := make([]posting.Job, 0, len(results))
	for _, j := range results {
		var salaryMin, salaryMax *float64
		if j.JobSalary != nil {
			salaryMin = j.JobSalary.MinSalary
			salaryMax = j.JobSalary.MaxSalary
		}
		jobs = append(jobs, posting.Job{
			Source:       s.Name(),
			SourceJobID:  j.JobID,
			Title:        j.JobTitle,
			Company:      orDefault(j.EmployerName, "Unknown"),
			Location:     orDefault(j.JobCity, query.Location),
			Description:  j.JobDescription,
			SalaryMin:    salaryMin,
			SalaryMax:    salaryMax,
			ContractType: orDefault(j.EmploymentType, posting.DefaultContractType),
			CreatedAt:    j.PostedAtUTC,
			RedirectURL:  j.ApplyLink,
		})
	}
	return jobs, nil
}

package postinginfra

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/jobmatchai/backend/jobsearch/posting"
	"github.com/jobmatchai/backend/pkg/logx"
)

const adzunaBaseURL = "https://api.adzuna.com/v1/api/jobs/gb/search"

// AdzunaSource fetches postings from the Adzuna search API.
type AdzunaSource struct {
	appID  string
	apiKey string
	client *http.Client
}

func NewAdzunaSource(appID, apiKey string) *AdzunaSource {
	return &AdzunaSource{
		appID:  appID,
		apiKey: apiKey,
		client: &http.Client{Timeout: 10 * time.Second},
	}
}

func (s *AdzunaSource) Name() string { return "Adzuna" }

type adzunaResponse struct {
	Results []adzunaJob `json:"results"`
}

type adzunaJob struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Company struct {
		DisplayName string `json:"display_name"`
	} `json:"company"`
	Location struct {
		DisplayName string `json:"display_name"`
	} `json:"location"`
	Description  string   `json:"description"`
	SalaryMin    *float64 `json:"salary_min"`
	SalaryMax    *float64 `json:"salary_max"`
	ContractType string   `json:"contract_type"`
	Created      string   `json:"created"`
	RedirectURL  string   `json:"redirect_url"`
}

func (s *AdzunaSource) Fetch(ctx context.Context, query posting.SearchQuery) ([]posting.Job, error) {
	if s.appID == "" || s.apiKey == "" {
		logx.Warnf("Adzuna API credentials not configured, skipping")
		return nil, nil
	}

	perPage := query.MaxResults
	if perPage > 50 {
		perPage = 50
	}

	params := url.Values{
		"app_id":           {s.appID},
		"app_key":          {s.apiKey},
		"what":             {query.JobTitle},
		"where":            {query.Location},
		"distance":         {strconv.Itoa(query.RadiusMiles)},
		"results_per_page": {strconv.Itoa(perPage)},
		"content-type":     {"application/json"},
	}

	reqURL := fmt.Sprintf("%s/1?%s", adzunaBaseURL, params.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, err
	}

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

	var body adzunaResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, posting.ErrRegistry.NewWithCause(posting.CodeSourceFailed, err).
			WithDetail("source", s.Name())
	}

	jobs := make([]posting.Job, 0, len(body.Results))
	for _, j := range body.Results {
		jobs = append(jobs, posting.Job{
			Source:       s.Name(),
			SourceJobID:  j.ID,
			Title:        j.Title,
			Company:      orDefault(j.Company.DisplayName, "Unknown"),
			Location:     orDefault(j.Location.DisplayName, query.Location),
			Description:  j.Description,
			SalaryMin:    j.SalaryMin,
			SalaryMax:    j.SalaryMax,
			ContractType: orDefault(j.ContractType, posting.DefaultContractType),
			CreatedAt:    j.Created,
			RedirectURL:  j.RedirectURL,
		})
	}
	return jobs, nil
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

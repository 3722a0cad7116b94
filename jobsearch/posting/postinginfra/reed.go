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

const reedBaseURL = "https://www.reed.co.uk/api/1.0/search"

// ReedSource fetches postings from the Reed jobseeker API. Reed
// authenticates with HTTP basic auth where the API key is the username and
// the password is empty.
type ReedSource struct {
	apiKey string
	client *http.Client
}

func NewReedSource(apiKey string) *ReedSource {
	return &ReedSource{
		apiKey: apiKey,
		client: &http.Client{Timeout: 10 * time.Second},
	}
}

func (s *ReedSource) Name() string { return "Reed" }

type reedResponse struct {
	Results []reedJob `json:"results"`
}

type reedJob struct {
	JobID          json.Number `json:"jobId"`
	JobTitle       string      `json:"jobTitle"`
	EmployerName   string      `json:"employerName"`
	LocationName   string      `json:"locationName"`
	JobDescription string      `json:"jobDescription"`
	MinimumSalary  *float64    `json:"minimumSalary"`
	MaximumSalary  *float64    `json:"maximumSalary"`
	ContractType   string      `json:"contractType"`
	Date           string      `json:"date"`
	JobURL         string      `json:"jobUrl"`
	Distance       *float64    `json:"distance"`
}

func (s *ReedSource) Fetch(ctx context.Context, query posting.SearchQuery) ([]posting.Job, error) {
	if s.apiKey == "" {
		logx.Warnf("Reed API key not configured, skipping")
		return nil, nil
	}

	take := query.MaxResults
	if take > 100 {
		take = 100
	}

	params := url.Values{
		"keywords":             {query.JobTitle},
		"location":             {query.Location},
		"distancefromlocation": {strconv.Itoa(query.RadiusMiles)},
		"resultsToTake":        {strconv.Itoa(take)},
	}

	reqURL := fmt.Sprintf("%s?%s", reedBaseURL, params.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, err
	}
	req.SetBasicAuth(s.apiKey, "")

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

	var body reedResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, posting.ErrRegistry.NewWithCause(posting.CodeSourceFailed, err).
			WithDetail("source", s.Name())
	}

	jobs := make([]posting.Job, 0, len(body.Results))
	for _, j := range body.Results {
		jobs = append(jobs, posting.Job{
			Source:        s.Name(),
			SourceJobID:   j.JobID.String(),
			Title:         j.JobTitle,
			Company:       orDefault(j.EmployerName, "Unknown"),
			Location:      orDefault(j.LocationName, query.Location),
			Description:   j.JobDescription,
			SalaryMin:     j.MinimumSalary,
			SalaryMax:     j.MaximumSalary,
			ContractType:  orDefault(j.ContractType, posting.DefaultContractType),
			CreatedAt:     j.Date,
			RedirectURL:   j.JobURL,
			DistanceMiles: j.Distance,
		})
	}
	return jobs, nil
}

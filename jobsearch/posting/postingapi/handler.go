package postingapi

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jobmatchai/backend/internal/ai/coverletter"
	"github.com/jobmatchai/backend/jobsearch/cv"
	"github.com/jobmatchai/backend/jobsearch/cv/cvsrv"
	"github.com/jobmatchai/backend/jobsearch/match"
	"github.com/jobmatchai/backend/jobsearch/posting"
	"github.com/jobmatchai/backend/jobsearch/posting/postingsrv"
	"github.com/jobmatchai/backend/jobsearch/rank"
	"github.com/jobmatchai/backend/pkg/logx"
)

type JobHandlers struct {
	postings *postingsrv.Service
	cvs      *cvsrv.Service
	letters  *coverletter.Generator
}

func NewJobHandlers(postings *postingsrv.Service, cvs *cvsrv.Service, letters *coverletter.Generator) *JobHandlers {
	return &JobHandlers{
		postings: postings,
		cvs:      cvs,
		letters:  letters,
	}
}

func (h *JobHandlers) RegisterRoutes(app *fiber.App) {
	app.Post("/api/jobs/search", h.SearchJobs)
	app.Post("/api/cover-letter", h.GenerateCoverLetter)
}

// SearchJobsRequest combines the upstream query with optional match and
// filter settings.
type SearchJobsRequest struct {
	JobTitle    string         `json:"job_title" validate:"required"`
	Location    string         `json:"location" validate:"required"`
	RadiusMiles int            `json:"radius_miles"`
	MaxResults  int            `json:"max_results"`
	CVFile      string         `json:"cv_file,omitempty"`
	Filters     *rank.Criteria `json:"filters,omitempty"`
}

// SearchJobs aggregates postings from every board, scores them against a
// previously uploaded CV when one is named, and applies filters
// POST /api/jobs/search
func (h *JobHandlers) SearchJobs(c *fiber.Ctx) error {
	var req SearchJobsRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	jobs, err := h.postings.Search(c.Context(), posting.SearchQuery{
		JobTitle:    req.JobTitle,
		Location:    req.Location,
		RadiusMiles: req.RadiusMiles,
		MaxResults:  req.MaxResults,
	})
	if err != nil {
		return err
	}

	if len(jobs) == 0 {
		return c.JSON(fiber.Map{
			"success":    true,
			"jobs":       []posting.Job{},
			"total_jobs": 0,
			"message":    "No jobs found. Try different search criteria.",
		})
	}

	if req.CVFile != "" {
		profile, err := h.cvs.ProfileByFilename(c.Context(), req.CVFile)
		if err != nil {
			// Searching still works without a CV; scores just stay unset.
			logx.Warnf("Could not load CV %q for matching: %v", req.CVFile, err)
		} else {
			jobs = match.NewScorer(profile).ScoreBatch(jobs)
		}
	}

	if req.Filters != nil {
		jobs = rank.FilterAndRank(jobs, *req.Filters)
	}

	return c.JSON(fiber.Map{
		"success":         true,
		"jobs":            jobs,
		"total_jobs":      len(jobs),
		"filters_applied": req.Filters != nil,
	})
}

// GenerateCoverLetterRequest - DTO for the cover letter endpoint
type GenerateCoverLetterRequest struct {
	Job    posting.Job `json:"job" validate:"required"`
	CVFile string      `json:"cv_file,omitempty"`
	Tone   string      `json:"tone,omitempty"`
}

// GenerateCoverLetter writes a cover letter for a job, tailored to a
// previously uploaded CV when one is named
// POST /api/cover-letter
func (h *JobHandlers) GenerateCoverLetter(c *fiber.Ctx) error {
	var req GenerateCoverLetterRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if req.Tone == "" {
		req.Tone = "professional"
	}

	profile := &cv.Profile{}
	if req.CVFile != "" {
		loaded, err := h.cvs.ProfileByFilename(c.Context(), req.CVFile)
		if err != nil {
			logx.Warnf("Could not load CV %q for cover letter: %v", req.CVFile, err)
		} else {
			profile = loaded
		}
	}

	result := h.letters.Generate(c.Context(), profile, &req.Job, req.Tone)
	return c.JSON(result)
}

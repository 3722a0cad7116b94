package trackerapi

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jobmatchai/backend/jobsearch/tracker"
	"github.com/jobmatchai/backend/jobsearch/tracker/trackersrv"
	"github.com/jobmatchai/backend/pkg/kernel"
)

type TrackerHandlers struct {
	service *trackersrv.Service
}

func NewTrackerHandlers(service *trackersrv.Service) *TrackerHandlers {
	return &TrackerHandlers{service: service}
}

func (h *TrackerHandlers) RegisterRoutes(app *fiber.App) {
	apps := app.Group("/api/applications")

	apps.Post("/", h.TrackApplication)      // Record an application
	apps.Get("/", h.ListApplications)       // List all applications
	apps.Get("/export", h.ExportCSV)        // Export as CSV
	apps.Get("/stats", h.GetStats)          // Dashboard analytics
	apps.Post("/check", h.CheckApplied)     // Duplicate check
	apps.Put("/:id/status", h.UpdateStatus) // Status transition
}

// TrackApplication records a new application
// POST /api/applications
func (h *TrackerHandlers) TrackApplication(c *fiber.Ctx) error {
	var req tracker.TrackApplicationRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	resp, err := h.service.Track(c.Context(), req)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// ListApplications lists all tracked applications, newest first
// GET /api/applications
func (h *TrackerHandlers) ListApplications(c *fiber.Ctx) error {
	apps, err := h.service.List(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"success":      true,
		"applications": apps,
		"total":        len(apps),
	})
}

// UpdateStatus moves an application to a new status
// PUT /api/applications/:id/status
func (h *TrackerHandlers) UpdateStatus(c *fiber.Ctx) error {
	id := kernel.NewApplicationID(c.Params("id"))
	if id.IsEmpty() {
		return fiber.NewError(fiber.StatusBadRequest, "application id is required")
	}

	var req tracker.UpdateStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	if err := h.service.UpdateStatus(c.Context(), id, req.Status); err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"success": true,
		"status":  req.Status,
	})
}

// CheckApplied checks whether a job was already applied to
// POST /api/applications/check
func (h *TrackerHandlers) CheckApplied(c *fiber.Ctx) error {
	var req tracker.CheckAppliedRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	applied, err := h.service.HasApplied(c.Context(), req.Title, req.Company)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"success":     true,
		"has_applied": applied,
	})
}

// GetStats returns dashboard analytics
// GET /api/applications/stats
func (h *TrackerHandlers) GetStats(c *fiber.Ctx) error {
	stats, err := h.service.Stats(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"success": true,
		"stats":   stats,
	})
}

// ExportCSV downloads all applications as CSV
// GET /api/applications/export
func (h *TrackerHandlers) ExportCSV(c *fiber.Ctx) error {
	data, err := h.service.ExportCSV(c.Context())
	if err != nil {
		return err
	}

	c.Set(fiber.HeaderContentType, "text/csv")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="applications.csv"`)
	return c.Send(data)
}

package cvapi

import (
	"io"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/jobmatchai/backend/jobsearch/cv"
	"github.com/jobmatchai/backend/jobsearch/cv/cvsrv"
	"github.com/jobmatchai/backend/pkg/kernel"
)

type CVHandlers struct {
	service *cvsrv.Service
}

func NewCVHandlers(service *cvsrv.Service) *CVHandlers {
	return &CVHandlers{service: service}
}

func (h *CVHandlers) RegisterRoutes(app *fiber.App) {
	cvs := app.Group("/api/cv")

	cvs.Post("/upload", h.UploadCV)    // Parse, score and store a CV
	cvs.Post("/analyze", h.AnalyzeCV)  // ATS analysis with improvement advice
	cvs.Get("/uploads", h.ListUploads) // List recorded uploads
}

// UploadCV parses an uploaded CV, scores it, and records the upload
// POST /api/cv/upload
func (h *CVHandlers) UploadCV(c *fiber.Ctx) error {
	data, filename, err := readUploadedFile(c)
	if err != nil {
		return err
	}

	resp, err := h.service.UploadAndAnalyze(c.Context(), cv.UploadCVRequest{
		Filename: filename,
		Data:     data,
	})
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// AnalyzeCV returns an ATS analysis plus improvement advice for a CV
// POST /api/cv/analyze
func (h *CVHandlers) AnalyzeCV(c *fiber.Ctx) error {
	data, filename, err := readUploadedFile(c)
	if err != nil {
		return err
	}

	resp, err := h.service.AnalyzeWithAdvice(c.Context(), cv.AnalyzeCVRequest{
		Filename: filename,
		Data:     data,
		JobTitle: c.FormValue("job_title"),
	})
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// ListUploads lists recorded uploads, newest first
// GET /api/cv/uploads
func (h *CVHandlers) ListUploads(c *fiber.Ctx) error {
	page, _ := strconv.Atoi(c.Query("page", "1"))
	pageSize, _ := strconv.Atoi(c.Query("page_size", "20"))

	result, err := h.service.ListUploads(c.Context(), kernel.PaginationOptions{
		Page:     page,
		PageSize: pageSize,
	})
	if err != nil {
		return err
	}
	return c.JSON(result)
}

func readUploadedFile(c *fiber.Ctx) (data []byte, filename string, err error) {
	file, err := c.FormFile("file")
	if err != nil {
		return nil, "", fiber.NewError(fiber.StatusBadRequest, "file is required")
	}
	if file.Size > cvsrv.MaxFileSize {
		return nil, "", cv.ErrFileTooLarge().WithDetail("size", file.Size)
	}

	f, err := file.Open()
	if err != nil {
		return nil, "", fiber.NewError(fiber.StatusInternalServerError, "failed to open uploaded file")
	}
	defer f.Close()

	data, err = io.ReadAll(f)
	if err != nil {
		return nil, "", fiber.NewError(fiber.StatusInternalServerError, "failed to read uploaded file")
	}
	return data, file.Filename, nil
}

package cvsrv

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jobmatchai/backend/internal/pdf"
	"github.com/jobmatchai/backend/jobsearch/cv"
	"github.com/jobmatchai/backend/pkg/fsx"
	"github.com/jobmatchai/backend/pkg/kernel"
	"github.com/jobmatchai/backend/pkg/logx"
)

const MaxFileSize = 10 << 20 // 10 MB

type Service struct {
	repo  cv.UploadRepository
	files fsx.FileSystem
}

// NewService creates a new CV service
func NewService(repo cv.UploadRepository, files fsx.FileSystem) *Service {
	return &Service{
		repo:  repo,
		files: files,
	}
}

// ============================================================================
// Upload & Parse CV
// ============================================================================

// UploadAndAnalyze stores the uploaded document, parses it into a profile,
// scores it against the ATS rubric, and records the upload.
func (s *Service) UploadAndAnalyze(ctx context.Context, req cv.UploadCVRequest) (*cv.UploadCVResponse, error) {
	logx.Infof("Starting UploadAndAnalyze for Filename: %s", req.Filename)

	if len(req.Data) == 0 {
		return nil, cv.ErrEmptyFile().WithDetail("filename", req.Filename)
	}
	if len(req.Data) > MaxFileSize {
		return nil, cv.ErrFileTooLarge().
			WithDetail("filename", req.Filename).
			WithDetail("size", len(req.Data)).
			WithDetail("max_size", MaxFileSize)
	}

	ext, contentType, err := fileType(req.Filename)
	if err != nil {
		return nil, err
	}

	uploadID := kernel.NewUploadID(uuid.New().String())
	filePath := fmt.Sprintf("uploads/%s%s", uploadID, ext)
	if err := s.files.WriteFile(ctx, filePath, req.Data, contentType); err != nil {
		return nil, cv.ErrStorageFailed().
			WithDetail("filename", req.Filename).
			WithDetail("error", err.Error())
	}

	logx.Infof("File stored for Filename: %s, Path: %s", req.Filename, filePath)

	profile, err := s.parseDocument(ext, req.Data)
	if err != nil {
		return nil, cv.ErrParseFailed().
			WithDetail("filename", req.Filename).
			WithDetail("error", err.Error())
	}

	ats := AnalyzeATS(profile, nil)

	upload := &cv.Upload{
		ID:         uploadID,
		Filename:   req.Filename,
		FilePath:   filePath,
		ATSScore:   float64(ats.TotalScore),
		UploadedAt: time.Now().UTC(),
	}
	if err := s.repo.Create(ctx, upload); err != nil {
		// The analysis already succeeded; failing to record it should
		// not discard the result.
		logx.Warnf("Failed to record upload for Filename: %s: %v", req.Filename, err)
	}

	logx.Infof("CV analyzed for Filename: %s, ATS Score: %d", req.Filename, ats.TotalScore)
	return &cv.UploadCVResponse{
		Success:  true,
		Filename: req.Filename,
		Profile:  profile,
		ATS:      ats,
	}, nil
}

// AnalyzeWithAdvice parses a document and returns the ATS result together
// with improvement advice, without persisting anything.
func (s *Service) AnalyzeWithAdvice(ctx context.Context, req cv.AnalyzeCVRequest) (*cv.AnalyzeCVResponse, error) {
	if len(req.Data) == 0 {
		return nil, cv.ErrEmptyFile().WithDetail("filename", req.Filename)
	}

	ext, _, err := fileType(req.Filename)
	if err != nil {
		return nil, err
	}

	profile, err := s.parseDocument(ext, req.Data)
	if err != nil {
		return nil, cv.ErrParseFailed().
			WithDetail("filename", req.Filename).
			WithDetail("error", err.Error())
	}

	ats := AnalyzeATS(profile, nil)
	advice := GenerateAdvice(ats, profile, req.JobTitle)

	return &cv.AnalyzeCVResponse{
		Success: true,
		ATS:     ats,
		Advice:  advice,
	}, nil
}

// ProfileByFilename re-parses the latest stored upload for a filename. The
// job search flow uses it to score postings against a previously uploaded CV.
func (s *Service) ProfileByFilename(ctx context.Context, filename string) (*cv.Profile, error) {
	upload, err := s.repo.GetLatestByFilename(ctx, filename)
	if err != nil {
		return nil, err
	}

	data, err := s.files.ReadFile(ctx, upload.FilePath)
	if err != nil {
		return nil, cv.ErrStorageFailed().
			WithDetail("file_path", upload.FilePath).
			WithDetail("error", err.Error())
	}

	ext := strings.ToLower(filepath.Ext(upload.FilePath))
	profile, err := s.parseDocument(ext, data)
	if err != nil {
		return nil, cv.ErrParseFailed().
			WithDetail("filename", filename).
			WithDetail("error", err.Error())
	}
	return profile, nil
}

// ListUploads returns recorded uploads, newest first.
func (s *Service) ListUploads(ctx context.Context, pagination kernel.PaginationOptions) (*kernel.Paginated[cv.Upload], error) {
	return s.repo.List(ctx, pagination)
}

func (s *Service) parseDocument(ext string, data []byte) (*cv.Profile, error) {
	var text string
	var err error
	switch ext {
	case ".pdf":
		text, err = pdf.ExtractText(data)
	case ".docx":
		text, err = pdf.ExtractDocxText(data)
	default:
		return nil, fmt.Errorf("unsupported extension %q", ext)
	}
	if err != nil {
		return nil, err
	}
	return ExtractProfile(text), nil
}

func fileType(filename string) (ext, contentType string, err error) {
	ext = strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".pdf":
		return ext, "application/pdf", nil
	case ".docx":
		return ext, "application/vnd.openxmlformats-officedocument.wordprocessingml.document", nil
	default:
		return "", "", cv.ErrInvalidFileType().
			WithDetail("filename", filename).
			WithDetail("supported_formats", []string{"pdf", "docx"})
	}
}

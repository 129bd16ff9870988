package usecase

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"resume-builder/internal/domain"
	"resume-builder/internal/metrics"
	"resume-builder/internal/model"
	"resume-builder/internal/render"

	"github.com/google/uuid"
)

type ResumesRepo interface {
	FindByUser(ctx context.Context, userID string) (*domain.Resume, error)
	Upsert(ctx context.Context, r *domain.Resume) (*domain.Resume, error)
}

// Exporter prints a rendered HTML document to PDF.
type Exporter interface {
	RenderHTMLToPDF(ctx context.Context, html string) ([]byte, error)
}

type ResumeService struct {
	repo     ResumesRepo
	renderer *render.Renderer
	exporter Exporter
	metrics  *metrics.Metrics
	now      func() time.Time
}

func NewResumeService(repo ResumesRepo, renderer *render.Renderer, exporter Exporter, m *metrics.Metrics) *ResumeService {
	return &ResumeService{repo: repo, renderer: renderer, exporter: exporter, metrics: m, now: time.Now}
}

// Get returns the owner's resume, or nil when nothing was saved yet.
func (s *ResumeService) Get(ctx context.Context, userID string) (*domain.Resume, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		s.countFetch(metrics.ResultClientError)
		return nil, ErrMissingOwner
	}
	res, err := s.repo.FindByUser(ctx, userID)
	if err != nil {
		s.countFetch(metrics.ResultError)
		return nil, errors.Join(ErrPersistence, fmt.Errorf("fetch resume for %s: %w", userID, err))
	}
	s.countFetch(metrics.ResultOK)
	return res, nil
}

// Save creates the owner's resume or replaces the existing one with c.
func (s *ResumeService) Save(ctx context.Context, userID string, c model.Content) (*domain.Resume, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		s.countSave(metrics.ResultClientError)
		return nil, ErrMissingOwner
	}
	c = c.Clone()
	if err := c.Normalize(); err != nil {
		s.countSave(metrics.ResultClientError)
		return nil, err
	}

	now := s.now().UTC()
	saved, err := s.repo.Upsert(ctx, &domain.Resume{
		ID:        uuid.New(),
		UserID:    userID,
		Content:   c,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		s.countSave(metrics.ResultError)
		return nil, errors.Join(ErrPersistence, fmt.Errorf("save resume for %s: %w", userID, err))
	}
	s.countSave(metrics.ResultOK)
	return saved, nil
}

// Preview renders the stored resume. An empty variant uses the template
// saved with the resume.
func (s *ResumeService) Preview(ctx context.Context, userID string, variant model.Template) (string, error) {
	res, err := s.Get(ctx, userID)
	if err != nil {
		return "", err
	}
	if res == nil {
		return "", ErrNotFound
	}
	if variant == "" {
		variant = res.Template
	}
	return s.render(variant, res.Content, "html")
}

// RenderDraft renders unsaved content, for live preview while editing.
func (s *ResumeService) RenderDraft(c model.Content) (string, error) {
	c = c.Clone()
	if err := c.Normalize(); err != nil {
		return "", err
	}
	return s.render(c.Template, c, "html")
}

// Export renders the stored resume and prints it to PDF. It returns the
// document together with the owner's display name for the file name.
func (s *ResumeService) Export(ctx context.Context, userID string, variant model.Template) ([]byte, string, error) {
	if s.exporter == nil {
		return nil, "", fmt.Errorf("%w: no exporter configured", ErrExport)
	}
	res, err := s.Get(ctx, userID)
	if err != nil {
		return nil, "", err
	}
	if res == nil {
		return nil, "", ErrNotFound
	}
	if variant == "" {
		variant = res.Template
	}
	html, err := s.render(variant, res.Content, "pdf")
	if err != nil {
		return nil, "", err
	}

	pdf, err := s.exporter.RenderHTMLToPDF(ctx, html)
	if err != nil {
		return nil, "", errors.Join(ErrExport, err)
	}
	// validate basic PDF signature
	if !bytes.HasPrefix(pdf, []byte("%PDF")) {
		return nil, "", fmt.Errorf("%w: invalid PDF output (len=%d)", ErrExport, len(pdf))
	}
	return pdf, res.PersonalInfo.Name, nil
}

func (s *ResumeService) render(variant model.Template, c model.Content, format string) (string, error) {
	html, err := s.renderer.Render(variant, c)
	if err != nil {
		return "", err
	}
	if s.metrics != nil {
		s.metrics.Renders.WithLabelValues(string(variant), format).Inc()
	}
	return html, nil
}

func (s *ResumeService) countSave(result string) {
	if s.metrics != nil {
		s.metrics.Saves.WithLabelValues(result).Inc()
	}
}

func (s *ResumeService) countFetch(result string) {
	if s.metrics != nil {
		s.metrics.Fetches.WithLabelValues(result).Inc()
	}
}

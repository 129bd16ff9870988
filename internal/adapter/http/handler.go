package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"mime"
	"strings"

	"resume-builder/internal/model"
	"resume-builder/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	resumes *usecase.ResumeService
}

func NewHandler(s *usecase.ResumeService) *Handler {
	return &Handler{resumes: s}
}

// saveReq is the body of POST /api/resumes: the owner plus the whole draft.
type saveReq struct {
	UserID string `json:"userId"`
	model.Content
}

// GetResume handles GET /api/resumes?userId=.
func (h *Handler) GetResume(c *fiber.Ctx) error {
	res, err := h.resumes.Get(c.UserContext(), c.Query("userId"))
	if err != nil {
		return h.fail(c, err, "An error occurred while fetching resume")
	}
	return c.JSON(fiber.Map{"resume": res})
}

// SaveResume handles POST /api/resumes.
func (h *Handler) SaveResume(c *fiber.Ctx) error {
	req, err := parseSaveReq(c.Body())
	if err != nil {
		return h.fail(c, err, "")
	}
	res, err := h.resumes.Save(c.UserContext(), req.UserID, req.Content)
	if err != nil {
		return h.fail(c, err, "An error occurred while saving resume")
	}
	log.Info().Str("user_id", res.UserID).Str("resume_id", res.ID.String()).Msg("resume saved")
	return c.JSON(fiber.Map{"message": "Resume saved successfully", "resume": res})
}

// PreviewResume handles GET /api/resumes/preview?userId=&template=.
func (h *Handler) PreviewResume(c *fiber.Ctx) error {
	variant, err := queryTemplate(c)
	if err != nil {
		return h.fail(c, err, "")
	}
	html, err := h.resumes.Preview(c.UserContext(), c.Query("userId"), variant)
	if err != nil {
		return h.fail(c, err, "An error occurred while rendering resume")
	}
	c.Type("html", "utf-8")
	return c.SendString(html)
}

// PreviewDraft handles POST /api/resumes/preview: renders the posted draft
// without saving it. userId is not needed here.
func (h *Handler) PreviewDraft(c *fiber.Ctx) error {
	var body map[string]interface{}
	if err := json.Unmarshal(c.Body(), &body); err != nil {
		return h.fail(c, fmt.Errorf("%w: %v", usecase.ErrInvalidPayload, err), "")
	}
	if err := model.ValidateMap(body); err != nil {
		return h.fail(c, fmt.Errorf("%w: %v", usecase.ErrInvalidPayload, err), "")
	}
	var content model.Content
	if err := json.Unmarshal(c.Body(), &content); err != nil {
		return h.fail(c, fmt.Errorf("%w: %v", usecase.ErrInvalidPayload, err), "")
	}
	html, err := h.resumes.RenderDraft(content)
	if err != nil {
		return h.fail(c, err, "An error occurred while rendering resume")
	}
	c.Type("html", "utf-8")
	return c.SendString(html)
}

// ExportResume handles GET /api/resumes/export?userId=&template=.
func (h *Handler) ExportResume(c *fiber.Ctx) error {
	variant, err := queryTemplate(c)
	if err != nil {
		return h.fail(c, err, "")
	}
	pdf, name, err := h.resumes.Export(c.UserContext(), c.Query("userId"), variant)
	if err != nil {
		return h.fail(c, err, "An error occurred while exporting resume")
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, contentDisposition(exportFileName(name)))
	return c.Send(pdf)
}

// parseSaveReq checks the owner first so a request without one is rejected
// before any other validation.
func parseSaveReq(body []byte) (*saveReq, error) {
	var raw map[string]interface{}
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", usecase.ErrInvalidPayload, err)
	}
	if uid, _ := raw["userId"].(string); strings.TrimSpace(uid) == "" {
		return nil, usecase.ErrMissingOwner
	}
	if err := model.ValidateMap(raw); err != nil {
		return nil, fmt.Errorf("%w: %v", usecase.ErrInvalidPayload, err)
	}
	var req saveReq
	if err := json.Unmarshal(body, &req); err != nil {
		return nil, fmt.Errorf("%w: %v", usecase.ErrInvalidPayload, err)
	}
	return &req, nil
}

func queryTemplate(c *fiber.Ctx) (model.Template, error) {
	q := c.Query("template")
	if q == "" {
		return "", nil
	}
	return model.ParseTemplate(q)
}

func exportFileName(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		name = "resume"
	}
	return name + "-resume.pdf"
}

// contentDisposition keeps the file name as typed. Ctx.Attachment would
// cut it at the last slash and query-escape spaces.
func contentDisposition(filename string) string {
	if v := mime.FormatMediaType("attachment", map[string]string{"filename": filename}); v != "" {
		return v
	}
	return "attachment"
}

// fail maps err to a status and a message. Server errors are logged with
// their cause and answered with the generic serverMsg only.
func (h *Handler) fail(c *fiber.Ctx, err error, serverMsg string) error {
	switch {
	case errors.Is(err, usecase.ErrMissingOwner):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "User ID is required"})
	case usecase.IsClientError(err):
		log.Debug().Err(err).Str("path", c.Path()).Msg("rejected request")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, usecase.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Resume not found"})
	}
	log.Error().Err(err).Str("method", c.Method()).Str("path", c.Path()).Msg("request failed")
	if serverMsg == "" {
		serverMsg = "An error occurred"
	}
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": serverMsg})
}

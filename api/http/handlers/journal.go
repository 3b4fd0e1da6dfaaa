package handlers

import (
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"github.com/aryankushwaha2206-oss/MediAid-Ai/api/http/presenter"
	"github.com/aryankushwaha2206-oss/MediAid-Ai/pkg/journal"
)

// JournalHandler exposes the invocation journal to operators.
type JournalHandler struct {
	repo journal.Repository
	log  logrus.FieldLogger
}

func NewJournalHandler(repo journal.Repository, log logrus.FieldLogger) *JournalHandler {
	return &JournalHandler{repo: repo, log: log}
}

// List returns recent capability calls, newest first.
// @Summary List recent capability invocations
// @Tags    admin
// @Produce json
// @Param   capability query string false "Capability name, e.g. medical_ai_chat"
// @Param   limit  query int false "Page size (max 200)"
// @Param   offset query int false "Offset"
// @Security BearerAuth
// @Success 200 {object} map[string]any
// @Failure 401 {object} presenter.ErrorResponse
// @Failure 403 {object} presenter.ErrorResponse
// @Failure 500 {object} presenter.ErrorResponse
// @Router  /admin/invocations [get]
func (h *JournalHandler) List(c *fiber.Ctx) error {
	limit, offset := parseLimitOffset(c, 50)
	capability := strings.TrimSpace(c.Query("capability"))
	items, err := h.repo.ListRecent(c.UserContext(), capability, limit, offset)
	if err != nil {
		h.log.WithError(err).Error("journal: list failed")
		return presenter.Error(c, http.StatusInternalServerError, "failed to list invocations")
	}
	return presenter.JSON(c, http.StatusOK, fiber.Map{
		"items":  items,
		"limit":  limit,
		"offset": offset,
	})
}

package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"github.com/aryankushwaha2206-oss/MediAid-Ai/api/http/presenter"
	"github.com/aryankushwaha2206-oss/MediAid-Ai/pkg/boundary"
	"github.com/aryankushwaha2206-oss/MediAid-Ai/pkg/capability"
	"github.com/aryankushwaha2206-oss/MediAid-Ai/pkg/locale"
	"github.com/aryankushwaha2206-oss/MediAid-Ai/pkg/media"
	"github.com/aryankushwaha2206-oss/MediAid-Ai/pkg/report"
)

// CapabilityHandler serves the five health capabilities.
type CapabilityHandler struct {
	b        *boundary.Boundary
	locales  *locale.Catalog
	log      logrus.FieldLogger
	maxBytes int64
}

func NewCapabilityHandler(b *boundary.Boundary, locales *locale.Catalog, log logrus.FieldLogger, maxBytes int64) *CapabilityHandler {
	if maxBytes <= 0 {
		maxBytes = 10 << 20
	}
	return &CapabilityHandler{b: b, locales: locales, log: log, maxBytes: maxBytes}
}

// AnalyzeXRay explains an X-ray image.
// @Summary Analyze an X-ray image
// @Description Accepts {"photoDataUri": "data:image/...;base64,..."} or a multipart "file" field.
// @Tags    capabilities
// @Accept  json
// @Accept  multipart/form-data
// @Produce json
// @Param   body body boundary.XRayForm false "Image as data URI"
// @Param   file formData file false "Image file"
// @Success 200 {object} capability.XRayOutput
// @Failure 400 {object} presenter.ValidationResponse
// @Failure 502 {object} presenter.ErrorResponse
// @Router  /xray/analyze [post]
func (h *CapabilityHandler) AnalyzeXRay(c *fiber.Ctx) error {
	var (
		form boundary.XRayForm
		ok   bool
	)
	if isMultipart(c) {
		fh, data, err := uploadedFile(c, h.maxBytes)
		if err != nil {
			return h.uploadError(c, c.FormValue("language"), err)
		}
		form.PhotoDataURI = media.FromUpload(fh.Header.Get(fiber.HeaderContentType), data)
		form.Language = c.FormValue("language")
	} else if form, ok = decode[boundary.XRayForm](c); !ok {
		return h.badRequest(c)
	}
	name, code := h.language(c, form.Language)
	form.Language = name

	res, err := h.b.AnalyzeXRayImage(c.UserContext(), form)
	if err != nil {
		return h.modelError(c, code, capability.XRay.Name, err)
	}
	return presenter.Result(c, res)
}

// DetectEmergency flags descriptions that need emergency care.
// @Summary Detect a medical emergency
// @Description Invalid input is answered with {"isEmergency": false, "emergencyAdvice": ""}.
// @Tags    capabilities
// @Accept  json
// @Produce json
// @Param   body body boundary.EmergencyForm true "User description"
// @Success 200 {object} capability.EmergencyOutput
// @Failure 502 {object} presenter.ErrorResponse
// @Router  /emergency/detect [post]
func (h *CapabilityHandler) DetectEmergency(c *fiber.Ctx) error {
	form, ok := decode[boundary.EmergencyForm](c)
	if !ok {
		return h.badRequest(c)
	}
	name, code := h.language(c, form.Language)
	form.Language = name

	res, err := h.b.DetectEmergency(c.UserContext(), form)
	if err != nil {
		return h.modelError(c, code, capability.Emergency.Name, err)
	}
	return presenter.Result(c, res)
}

// InterpretReport explains a medical report in plain language.
// @Summary Interpret a medical report
// @Description Accepts {"reportText": "..."} or a multipart "file" field (pdf, docx, txt).
// @Tags    capabilities
// @Accept  json
// @Accept  multipart/form-data
// @Produce json
// @Param   body body boundary.ReportForm false "Report text"
// @Param   file formData file false "Report file"
// @Success 200 {object} capability.ReportOutput
// @Failure 400 {object} presenter.ValidationResponse
// @Failure 502 {object} presenter.ErrorResponse
// @Router  /reports/interpret [post]
func (h *CapabilityHandler) InterpretReport(c *fiber.Ctx) error {
	var (
		form boundary.ReportForm
		ok   bool
	)
	if isMultipart(c) {
		form.Language = c.FormValue("language")
		fh, data, err := uploadedFile(c, h.maxBytes)
		if err != nil {
			return h.uploadError(c, form.Language, err)
		}
		_, code := h.language(c, form.Language)
		if !report.Supported(fh.Filename) {
			return presenter.Invalid(c, h.locales.T(code, "errors.file_unsupported", nil))
		}
		text, err := report.ExtractText(fh.Filename, data)
		switch {
		case errors.Is(err, report.ErrEmptyDocument):
			return presenter.Invalid(c, h.locales.T(code, "errors.file_empty", nil))
		case err != nil:
			h.log.WithError(err).WithField("filename", fh.Filename).Info("report extraction failed")
			return presenter.Invalid(c, h.locales.T(code, "errors.file_unsupported", nil))
		}
		form.ReportText = text
	} else if form, ok = decode[boundary.ReportForm](c); !ok {
		return h.badRequest(c)
	}
	name, code := h.language(c, form.Language)
	form.Language = name

	res, err := h.b.InterpretMedicalReport(c.UserContext(), form)
	if err != nil {
		return h.modelError(c, code, capability.Report.Name, err)
	}
	return presenter.Result(c, res)
}

// Chat answers a health question after screening it for an emergency.
// @Summary Ask the medical assistant
// @Description Returns {"emergency": {...}} when the question describes an emergency, otherwise {"result": {...}}.
// @Tags    capabilities
// @Accept  json
// @Produce json
// @Param   body body boundary.ChatForm true "Question"
// @Success 200 {object} map[string]any
// @Failure 400 {object} presenter.ValidationResponse
// @Failure 502 {object} presenter.ErrorResponse
// @Router  /chat [post]
func (h *CapabilityHandler) Chat(c *fiber.Ctx) error {
	form, ok := decode[boundary.ChatForm](c)
	if !ok {
		return h.badRequest(c)
	}
	name, code := h.language(c, form.Language)
	form.Language = name

	t, err := h.b.ChatWithTriage(c.UserContext(), form)
	if err != nil {
		return h.modelError(c, code, capability.Chat.Name, err)
	}
	if t.Failed() {
		return presenter.Result(c, *t.Result)
	}
	return presenter.JSON(c, http.StatusOK, t)
}

// SymptomGuidance lists possible causes after screening for an emergency.
// @Summary Symptom-based guidance
// @Description Returns {"emergency": {...}} when the symptoms describe an emergency, otherwise {"result": {...}}.
// @Tags    capabilities
// @Accept  json
// @Accept  multipart/form-data
// @Produce json
// @Param   body body boundary.SymptomForm false "Symptoms"
// @Success 200 {object} map[string]any
// @Failure 400 {object} presenter.ValidationResponse
// @Failure 502 {object} presenter.ErrorResponse
// @Router  /symptoms/guidance [post]
func (h *CapabilityHandler) SymptomGuidance(c *fiber.Ctx) error {
	var (
		form boundary.SymptomForm
		ok   bool
	)
	if isMultipart(c) {
		form = boundary.SymptomForm{
			Symptoms: c.FormValue("symptoms"),
			Gender:   c.FormValue("gender"),
			Duration: c.FormValue("duration"),
			Severity: c.FormValue("severity"),
			Language: c.FormValue("language"),
		}
		if age := c.FormValue("age"); age != "" {
			form.Age = json.RawMessage(strconv.Quote(age))
		}
		if _, err := c.FormFile("file"); err == nil {
			fh, data, err := uploadedFile(c, h.maxBytes)
			if err != nil {
				return h.uploadError(c, form.Language, err)
			}
			form.PhotoDataURI = media.FromUpload(fh.Header.Get(fiber.HeaderContentType), data)
		}
	} else if form, ok = decode[boundary.SymptomForm](c); !ok {
		return h.badRequest(c)
	}
	name, code := h.language(c, form.Language)
	form.Language = name

	t, err := h.b.SymptomGuidanceWithTriage(c.UserContext(), form)
	if err != nil {
		return h.modelError(c, code, capability.Symptoms.Name, err)
	}
	if t.Failed() {
		return presenter.Result(c, *t.Result)
	}
	return presenter.JSON(c, http.StatusOK, t)
}

// decode reads an optional JSON body. It fails only when the body is not
// JSON at all. Well-formed JSON with wrongly typed fields yields an empty
// form, which the boundary answers with the capability's fallback.
func decode[T any](c *fiber.Ctx) (T, bool) {
	var form T
	body := c.Body()
	if len(body) == 0 {
		return form, true
	}
	err := json.Unmarshal(body, &form)
	var typeErr *json.UnmarshalTypeError
	switch {
	case err == nil:
		return form, true
	case errors.As(err, &typeErr):
		var empty T
		return empty, true
	default:
		return form, false
	}
}

func (h *CapabilityHandler) badRequest(c *fiber.Ctx) error {
	_, code := h.language(c, "")
	return presenter.Error(c, http.StatusBadRequest, h.locales.T(code, "errors.bad_request", nil))
}

// language returns the language name for the model and the locale code for
// messages. A request field wins over the Accept-Language header.
func (h *CapabilityHandler) language(c *fiber.Ctx, requested string) (name, code string) {
	requested = strings.TrimSpace(requested)
	code = h.locales.Match(c.Get(fiber.HeaderAcceptLanguage))
	if requested == "" {
		return h.locales.Resolve(code), code
	}
	if h.locales.Known(requested) {
		code = strings.ToLower(requested)
	}
	return h.locales.Resolve(requested), code
}

func (h *CapabilityHandler) uploadError(c *fiber.Ctx, requested string, err error) error {
	_, code := h.language(c, requested)
	if errors.Is(err, errTooLarge) {
		return presenter.Invalid(c, h.locales.T(code, "errors.file_too_large", map[string]string{
			"limit": strconv.FormatInt(h.maxBytes, 10),
		}))
	}
	return presenter.Invalid(c, h.locales.T(code, "errors.file_required", nil))
}

func (h *CapabilityHandler) modelError(c *fiber.Ctx, code, name string, err error) error {
	if errors.Is(err, capability.ErrInvalidImage) {
		return presenter.Invalid(c, boundary.MsgInvalidImage)
	}
	h.log.WithError(err).WithField("capability", name).Error("capability failed")
	return presenter.Error(c, http.StatusBadGateway, h.locales.T(code, "errors.try_again", nil))
}

package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/nefroclinica/clinic-system/internal/api/metrics"
	"github.com/nefroclinica/clinic-system/internal/core/domain"
	"github.com/nefroclinica/clinic-system/internal/core/ports"
)

// PatientHandler handles the CRUD endpoints of the patient resource. Role
// requirements are enforced upstream by the access-policy middleware; the
// handler records who performed each mutation.
type PatientHandler struct {
	service ports.PatientService
	logger  zerolog.Logger
}

func NewPatientHandler(service ports.PatientService, logger zerolog.Logger) *PatientHandler {
	return &PatientHandler{service: service, logger: logger}
}

// Create handles POST /api/pacientes.
//
// @Summary      Create a patient
// @Tags         pacientes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      domain.Patient  true  "Patient record"
// @Success      201   {object}  domain.Patient
// @Failure      400   {object}  map[string]string
// @Router       /pacientes [post]
func (h *PatientHandler) Create(c echo.Context) error {
	var patient domain.Patient
	if err := c.Bind(&patient); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	// Callers never control the record id or the QR payload.
	patient.ID = ""
	patient.QRCodeData = ""

	created, err := h.service.Create(c.Request().Context(), &patient)
	if err != nil {
		return err
	}

	metrics.PatientsCreatedTotal.Inc()
	if email, role, ok := principal(c); ok {
		h.logger.Info().
			Str("patient_id", created.ID).
			Str("by", email).
			Str("rol", string(role)).
			Msg("patient created")
	}
	return c.JSON(http.StatusCreated, created)
}

// List handles GET /api/pacientes.
//
// @Summary      List all patients
// @Tags         pacientes
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.Patient
// @Router       /pacientes [get]
func (h *PatientHandler) List(c echo.Context) error {
	patients, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, patients)
}

// Get handles GET /api/pacientes/:id.
//
// @Summary      Get a patient by id
// @Tags         pacientes
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Patient id"
// @Success      200  {object}  domain.Patient
// @Failure      404  {object}  map[string]string
// @Router       /pacientes/{id} [get]
func (h *PatientHandler) Get(c echo.Context) error {
	patient, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, patient)
}

// Update handles PUT /api/pacientes/:id with partial-merge semantics: only
// fields present in the payload overwrite the stored record.
//
// @Summary      Update a patient
// @Tags         pacientes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string          true  "Patient id"
// @Param        body  body      domain.Patient  true  "Fields to update"
// @Success      200   {object}  domain.Patient
// @Failure      404   {object}  map[string]string
// @Router       /pacientes/{id} [put]
func (h *PatientHandler) Update(c echo.Context) error {
	var incoming domain.Patient
	if err := c.Bind(&incoming); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	updated, err := h.service.Update(c.Request().Context(), c.Param("id"), &incoming)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, updated)
}

// Delete handles DELETE /api/pacientes/:id.
//
// @Summary      Delete a patient
// @Tags         pacientes
// @Security     BearerAuth
// @Param        id  path  string  true  "Patient id"
// @Success      204
// @Router       /pacientes/{id} [delete]
func (h *PatientHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	if email, role, ok := principal(c); ok {
		h.logger.Info().
			Str("patient_id", c.Param("id")).
			Str("by", email).
			Str("rol", string(role)).
			Msg("patient deleted")
	}
	return c.NoContent(http.StatusNoContent)
}

package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/nefroclinica/clinic-system/internal/core/ports"
)

const qrImageSize = 200

// QRHandler serves patient QR codes as PNG images.
type QRHandler struct {
	patients ports.PatientRepository
	encoder  ports.QREncoder
}

func NewQRHandler(patients ports.PatientRepository, encoder ports.QREncoder) *QRHandler {
	return &QRHandler{patients: patients, encoder: encoder}
}

// Get handles GET /api/qr/:id, returning the QR image for a patient. The
// image encodes the patient's QR payload URL; the patient must exist.
//
// @Summary      Get a patient's QR code image
// @Tags         qr
// @Produce      png
// @Security     BearerAuth
// @Param        id   path  string  true  "Patient id"
// @Success      200  {file}  binary
// @Failure      404  {object}  map[string]string
// @Router       /qr/{id} [get]
func (h *QRHandler) Get(c echo.Context) error {
	patient, err := h.patients.FindByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}

	content := patient.QRCodeData
	if content == "" {
		content = patient.ID
	}

	png, err := h.encoder.Encode(content, qrImageSize)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "qr generation failed")
	}
	return c.Blob(http.StatusOK, "image/png", png)
}

package handlers

import (
	"errors"
	"net/http"

	request "malharia_pdv/internal/adapter/http/dto/request"
	response "malharia_pdv/internal/adapter/http/dto/response"
	"malharia_pdv/internal/usecase"
	"malharia_pdv/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidAnnouncementPayload = pkg.NewDomainErrorSimple("INVALID_ANNOUNCEMENT_INPUT", "Invalid announcement payload", http.StatusBadRequest)

// AnnouncementHandler handles the Avisos board endpoints.

type AnnouncementHandler struct {
	usecase usecase.IAnnouncementUseCase
}

func NewAnnouncementHandler(uc usecase.IAnnouncementUseCase) *AnnouncementHandler {
	return &AnnouncementHandler{usecase: uc}
}

func (h *AnnouncementHandler) List(c *gin.Context) {
	list, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := mapAnnouncementError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromAnnouncements(list))
}

func (h *AnnouncementHandler) Create(c *gin.Context) {
	var payload request.CreateAnnouncementRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidAnnouncementPayload.HTTPStatus, errInvalidAnnouncementPayload.ToHTTPError())
		return
	}

	created, err := h.usecase.Create(c.Request.Context(), payload.Recipient, payload.WhatsApp, payload.Text)
	if err != nil {
		appErr := mapAnnouncementError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromAnnouncement(created))
}

func (h *AnnouncementHandler) Delete(c *gin.Context) {
	var payload request.DeleteAnnouncementRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidAnnouncementPayload.HTTPStatus, errInvalidAnnouncementPayload.ToHTTPError())
		return
	}

	if err := h.usecase.Delete(c.Request.Context(), int(payload.Row)); err != nil {
		appErr := mapAnnouncementError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

func mapAnnouncementError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidAnnouncement), errors.Is(err, usecase.ErrInvalidAnnouncementRow):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

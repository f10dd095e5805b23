package handlers

import (
	"net/http"

	response "malharia_pdv/internal/adapter/http/dto/response"
	"malharia_pdv/internal/usecase"
	"malharia_pdv/pkg"

	"github.com/gin-gonic/gin"
)

// ArchiveHandler exposes the archival statistics and the manual sweep
// trigger used to verify the automatic pass.

type ArchiveHandler struct {
	usecase usecase.IArchiveUseCase
}

func NewArchiveHandler(uc usecase.IArchiveUseCase) *ArchiveHandler {
	return &ArchiveHandler{usecase: uc}
}

func (h *ArchiveHandler) Stats(c *gin.Context) {
	stats, err := h.usecase.Stats(c.Request.Context())
	if err != nil {
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromArchiveStats(stats))
}

func (h *ArchiveHandler) RunSweep(c *gin.Context) {
	report, err := h.usecase.SweepReport(c.Request.Context())
	if err != nil {
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromSweepReport(report))
}

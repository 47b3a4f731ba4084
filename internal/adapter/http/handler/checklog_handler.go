package handler

import (
	"net/http"

	"breachguard-backend/internal/adapter/http/dto"
	"breachguard-backend/internal/core/ports"
	"breachguard-backend/pkg/apperror"
	"breachguard-backend/pkg/response"

	"github.com/gin-gonic/gin"
)

// CheckLogHandler handles the public breach and malware check endpoints.
type CheckLogHandler struct {
	checkSvc ports.CheckLogService
}

// NewCheckLogHandler creates a new CheckLogHandler.
func NewCheckLogHandler(checkSvc ports.CheckLogService) *CheckLogHandler {
	return &CheckLogHandler{checkSvc: checkSvc}
}

// CheckEmailBreach handles POST /be/email-breach/check.
func (h *CheckLogHandler) CheckEmailBreach(c *gin.Context) {
	var req dto.EmailBreachCheckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.ErrInvalidEmail())
		return
	}

	if err := h.checkSvc.RecordEmailCheck(c.Request.Context(), req.EmailAddress); err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.CheckAckResponse{OK: true})
}

// CheckMalwareScan handles POST /be/malware-scan/check.
func (h *CheckLogHandler) CheckMalwareScan(c *gin.Context) {
	var req dto.MalwareScanCheckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.ErrInvalidScanTarget())
		return
	}

	if _, err := h.checkSvc.RecordMalwareScan(c.Request.Context(), req.URLOrFileName, req.ScanType); err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.CheckAckResponse{OK: true})
}

// Stats handles GET /be/stats, the public aggregate counters.
func (h *CheckLogHandler) Stats(c *gin.Context) {
	stats, err := h.checkSvc.Stats(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

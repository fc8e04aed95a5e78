package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/bcalvareng-web/mindai-hub/internal/api/http/dto"
	"github.com/bcalvareng-web/mindai-hub/internal/license"
	"github.com/gin-gonic/gin"
)

type LicenseHandler struct {
	registry *license.Registry
}

func NewLicenseHandler(registry *license.Registry) *LicenseHandler {
	return &LicenseHandler{registry: registry}
}

// Validate checks a caller-supplied license key. A successful check
// stamps the record's last_used as a side effect.
func (h *LicenseHandler) Validate(c *gin.Context) {
	var req dto.ValidateLicenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ValidateLicenseResponse{
			Valid: false,
			Error: "Chave de licença inválida",
		})
		return
	}

	rec, err := h.registry.Validate(req.LicenseKey)
	if err != nil {
		switch {
		case errors.Is(err, license.ErrMalformedKey):
			c.JSON(http.StatusBadRequest, dto.ValidateLicenseResponse{
				Valid: false,
				Error: "Chave de licença inválida",
			})
		case errors.Is(err, license.ErrNotFound):
			c.JSON(http.StatusNotFound, dto.ValidateLicenseResponse{
				Valid: false,
				Error: "Licença não encontrada",
			})
		case errors.Is(err, license.ErrInactive):
			c.JSON(http.StatusForbidden, dto.ValidateLicenseResponse{
				Valid: false,
				Error: "Licença inativa",
			})
		default:
			slog.Error("License validation failed", "error", err)
			c.JSON(http.StatusInternalServerError, dto.ValidateLicenseResponse{
				Valid: false,
				Error: "Erro interno",
			})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ValidateLicenseResponse{
		Valid:   true,
		Plan:    rec.Plan,
		Message: "Licença válida",
	})
}

func (h *LicenseHandler) AdminList(c *gin.Context) {
	records := h.registry.List()

	licenses := make([]dto.LicenseInfo, len(records))
	for i, rec := range records {
		licenses[i] = toLicenseInfo(rec)
	}

	c.JSON(http.StatusOK, dto.AdminListResponse{
		Total:    len(licenses),
		Licenses: licenses,
	})
}

func (h *LicenseHandler) AdminUpdate(c *gin.Context) {
	var req dto.AdminUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rec, err := h.registry.Update(req.Key, license.Status(req.Status))
	if err != nil {
		switch {
		case errors.Is(err, license.ErrMissingKey):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Chave de licença não fornecida"})
		case errors.Is(err, license.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Licença não encontrada"})
		default:
			slog.Error("License update failed", "error", err, "key", req.Key)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro interno"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.AdminUpdateResponse{
		Message: "Licença atualizada",
		License: toLicenseInfo(rec),
	})
}

func toLicenseInfo(rec license.Record) dto.LicenseInfo {
	return dto.LicenseInfo{
		Key:       rec.Key,
		Status:    string(rec.Status),
		Plan:      rec.Plan,
		CreatedAt: rec.CreatedAt,
		LastUsed:  rec.LastUsed,
	}
}

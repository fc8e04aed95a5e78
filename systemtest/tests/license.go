package tests

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/bcalvareng-web/mindai-hub/internal/api/http/dto"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLicenseLifecycle(t *testing.T, router *gin.Engine, adminKey string) {
	t.Run("validate active key", func(t *testing.T) {
		body := dto.ValidateLicenseRequest{LicenseKey: "MINDAI-BETA-2024-DEMO1"}
		rr := doJSON(router, "POST", "/api/mindai/license/validate", body)

		assert.Equal(t, http.StatusOK, rr.Code)

		var resp dto.ValidateLicenseResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.True(t, resp.Valid)
		assert.Equal(t, "beta", resp.Plan)
		assert.Equal(t, "Licença válida", resp.Message)
	})

	t.Run("validate inactive key", func(t *testing.T) {
		body := dto.ValidateLicenseRequest{LicenseKey: "MINDAI-PRO-2024-TEST01"}
		rr := doJSON(router, "POST", "/api/mindai/license/validate", body)

		assert.Equal(t, http.StatusForbidden, rr.Code)

		var resp dto.ValidateLicenseResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.False(t, resp.Valid)
		assert.Equal(t, "Licença inativa", resp.Error)
	})

	t.Run("validate unknown key", func(t *testing.T) {
		body := dto.ValidateLicenseRequest{LicenseKey: "MINDAI-BETA-2024-GHOST"}
		rr := doJSON(router, "POST", "/api/mindai/license/validate", body)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("validate malformed key", func(t *testing.T) {
		body := dto.ValidateLicenseRequest{LicenseKey: "beta-2024"}
		rr := doJSON(router, "POST", "/api/mindai/license/validate", body)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("admin list shows seeds", func(t *testing.T) {
		rr := doJSONWithAuth(router, "GET", "/api/mindai/license/admin", nil, adminKey)

		assert.Equal(t, http.StatusOK, rr.Code)

		var resp dto.AdminListResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, 3, resp.Total)
		require.Len(t, resp.Licenses, 3)
		assert.Equal(t, "MINDAI-BETA-2024-DEMO1", resp.Licenses[0].Key)
		assert.Equal(t, "beta", resp.Licenses[0].Plan)
		assert.Equal(t, "MINDAI-PRO-2024-TEST01", resp.Licenses[2].Key)
		assert.Equal(t, "inactive", resp.Licenses[2].Status)
	})

	t.Run("last_used stamped after validation", func(t *testing.T) {
		rr := doJSONWithAuth(router, "GET", "/api/mindai/license/admin", nil, adminKey)
		require.Equal(t, http.StatusOK, rr.Code)

		var resp dto.AdminListResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.NotNil(t, resp.Licenses[0].LastUsed)
		assert.Nil(t, resp.Licenses[1].LastUsed)
	})

	t.Run("deactivate and reactivate", func(t *testing.T) {
		update := dto.AdminUpdateRequest{Key: "MINDAI-BETA-2024-DEMO2", Status: "inactive"}
		rr := doJSONWithAuth(router, "PUT", "/api/mindai/license/admin", update, adminKey)
		require.Equal(t, http.StatusOK, rr.Code)

		var updateResp dto.AdminUpdateResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &updateResp))
		assert.Equal(t, "Licença atualizada", updateResp.Message)
		assert.Equal(t, "inactive", updateResp.License.Status)

		body := dto.ValidateLicenseRequest{LicenseKey: "MINDAI-BETA-2024-DEMO2"}
		rr = doJSON(router, "POST", "/api/mindai/license/validate", body)
		assert.Equal(t, http.StatusForbidden, rr.Code)

		update.Status = "active"
		rr = doJSONWithAuth(router, "PUT", "/api/mindai/license/admin", update, adminKey)
		require.Equal(t, http.StatusOK, rr.Code)

		rr = doJSON(router, "POST", "/api/mindai/license/validate", body)
		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("update unknown key", func(t *testing.T) {
		update := dto.AdminUpdateRequest{Key: "MINDAI-BETA-2024-GHOST", Status: "active"}
		rr := doJSONWithAuth(router, "PUT", "/api/mindai/license/admin", update, adminKey)
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestAdminAuth(t *testing.T, router *gin.Engine, adminKey string) {
	t.Run("list without admin key", func(t *testing.T) {
		rr := doJSON(router, "GET", "/api/mindai/license/admin", nil)
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		assert.Contains(t, rr.Body.String(), "Chave de administrador ausente")
	})

	t.Run("list with wrong admin key", func(t *testing.T) {
		rr := doJSONWithAuth(router, "GET", "/api/mindai/license/admin", nil, "not-the-key")
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		assert.Contains(t, rr.Body.String(), "Chave de administrador inválida")
	})

	t.Run("update without admin key", func(t *testing.T) {
		update := dto.AdminUpdateRequest{Key: "MINDAI-BETA-2024-DEMO1", Status: "inactive"}
		rr := doJSON(router, "PUT", "/api/mindai/license/admin", update)
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("validate stays public", func(t *testing.T) {
		body := dto.ValidateLicenseRequest{LicenseKey: "MINDAI-BETA-2024-DEMO1"}
		rr := doJSON(router, "POST", "/api/mindai/license/validate", body)
		assert.Equal(t, http.StatusOK, rr.Code)
	})
}

func doJSON(router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	b, _ := json.Marshal(body)
	req := httptest.NewRequest(method, path, bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func doJSONWithAuth(router *gin.Engine, method, path string, body any, adminKey string) *httptest.ResponseRecorder {
	b, _ := json.Marshal(body)
	req := httptest.NewRequest(method, path, bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-admin-key", adminKey)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

package dto

import "time"

type ValidateLicenseRequest struct {
	LicenseKey string `json:"license_key"`
}

type ValidateLicenseResponse struct {
	Valid   bool   `json:"valid"`
	Plan    string `json:"plan,omitempty"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

type LicenseInfo struct {
	Key       string     `json:"key"`
	Status    string     `json:"status"`
	Plan      string     `json:"plan"`
	CreatedAt time.Time  `json:"created_at"`
	LastUsed  *time.Time `json:"last_used"`
}

type AdminListResponse struct {
	Total    int           `json:"total"`
	Licenses []LicenseInfo `json:"licenses"`
}

type AdminUpdateRequest struct {
	Key    string `json:"key"`
	Status string `json:"status"`
}

type AdminUpdateResponse struct {
	Message string      `json:"message"`
	License LicenseInfo `json:"license"`
}

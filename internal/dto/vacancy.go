package dto

import "github.com/boxstory/yk/internal/model"

// ── vacancy status ──

// UpdateStatusRequest status change. Status is matched case-insensitively;
// VacantDate is YYYY-MM-DD and is parsed by the ledger, which checks both
// fields again for non-HTTP callers.
type UpdateStatusRequest struct {
	Status     string `json:"status"      binding:"required,vacancy_status"`
	VacantDate string `json:"vacant_date" binding:"required"`
}

// StatusResponse ledger row view
type StatusResponse struct {
	ID         string `json:"id"`
	UnitID     string `json:"unit_id"`
	Status     string `json:"status"`
	VacantDate string `json:"vacant_date"`
	UpdatedAt  string `json:"updated_at"`
}

// NewStatusResponse maps a status row.
func NewStatusResponse(vs *model.VacancyStatus) StatusResponse {
	return StatusResponse{
		ID:         vs.VacancyStatusID,
		UnitID:     vs.UnitID,
		Status:     string(vs.Status),
		VacantDate: vs.VacantDate.Format(dateLayout),
		UpdatedAt:  vs.UpdatedAt.Format(timeLayout),
	}
}

// ── dashboard ──

// DashboardSummary per-bucket counts for one owner. Buckets holds every
// status plus UNLISTED, zero-filled.
type DashboardSummary struct {
	Properties int64            `json:"properties"`
	Units      int64            `json:"units"`
	Buckets    map[string]int64 `json:"buckets"`
}

// MarketRequest realtor market filter
type MarketRequest struct {
	Status string `form:"status" binding:"required"`
}

package dto

// DashboardStats is the aggregate snapshot served to the overview page.
type DashboardStats struct {
	TotalRequests        int64   `json:"total_requests"`
	PendingRequests      int64   `json:"pending_requests"`
	ActiveRequests       int64   `json:"active_requests"`
	CompletedRequests    int64   `json:"completed_requests"`
	AvailableConsultants int64   `json:"available_consultants"`
	TotalConsultants     int64   `json:"total_consultants"`
	AvgComplianceScore   float64 `json:"avg_compliance_score"`
	FeasibilityRate      float64 `json:"feasibility_rate"`
}

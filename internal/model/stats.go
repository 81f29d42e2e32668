package model

// Stats is the aggregate view shown on the dashboard.
type Stats struct {
	TotalUsers    int `json:"totalUsers"`
	ActiveUsers   int `json:"activeUsers"`
	NewUsersToday int `json:"newUsersToday"`
	TotalMessages int `json:"totalMessages"`
}

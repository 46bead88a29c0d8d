package model

// StoreStats is the admin dashboard summary. Revenue excludes cancelled
// orders.
type StoreStats struct {
	TotalProducts int     `json:"totalProducts"`
	TotalOrders   int     `json:"totalOrders"`
	TotalUsers    int     `json:"totalUsers"`
	TotalRevenue  float64 `json:"totalRevenue"`
}

package domain

type DashboardTotals struct {
	Customers    int64 `json:"customers"`
	Tools        int64 `json:"tools"`
	Reservations int64 `json:"reservations"`
}

type NameCount struct {
	Name  string `json:"name"`
	Total int64  `json:"total"`
}

type MonthCount struct {
	Month string `json:"month"`
	Total int64  `json:"total"`
}

package entity

// DashboardSummary is the figure set of the dashboard screen.
type DashboardSummary struct {
	TotalRevenue   Amount
	NewOrders      int
	TotalOrders    int
	Products       int
	ActiveProducts int
	LowStock       int
	Customers      int
	RecentOrders   []Order
	TopProducts    []Product
}

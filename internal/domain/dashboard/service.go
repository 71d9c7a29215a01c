package dashboard

import "context"

// DashboardService defines the interface for dashboard operations
type DashboardService interface {
	// GetDashboard fetches stats and identity concurrently and derives the view
	GetDashboard(ctx context.Context) (*View, error)
}

package service

import (
	"context"

	"github.com/wadoud17/maktabati-pos/internal/domain/entity"
	"github.com/wadoud17/maktabati-pos/internal/infrastructure/api"
)

// DashboardService composes the analytics view for the admin dashboard.
type DashboardService struct {
	analytics *api.Resource[entity.Analytics]
}

// NewDashboardService creates the dashboard view over the given client.
func NewDashboardService(client *api.Client) *DashboardService {
	return &DashboardService{
		analytics: api.NewResource[entity.Analytics](client, "/api/analytics"),
	}
}

// Summary fetches the analytics bundle.
func (s *DashboardService) Summary(ctx context.Context) (*entity.Analytics, error) {
	return s.analytics.Refetch(ctx)
}

// SummaryState exposes the underlying resource state for the screen.
func (s *DashboardService) SummaryState() (*entity.Analytics, bool, error) {
	return s.analytics.State()
}

// Stats are the headline figures shown above the charts.
type Stats struct {
	TotalProducts int
	ActiveClients int
	Revenue       float64
}

// ComputeStats derives the headline figures from the fetched lists. Revenue
// is the sum of the clients' lifetime spend.
func ComputeStats(products []entity.Product, clients []entity.Customer) Stats {
	var revenue float64
	for _, c := range clients {
		revenue += c.LifetimeSpend
	}
	return Stats{
		TotalProducts: len(products),
		ActiveClients: len(clients),
		Revenue:       revenue,
	}
}

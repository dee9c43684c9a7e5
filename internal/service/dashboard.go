package service

import (
	"context"

	"toolrental-backend/internal/repository"
)

const dashboardRankingSize = 5

type dashboardService struct {
	dashboardRepo repository.DashboardRepository
}

func NewDashboardService(dashboardRepo repository.DashboardRepository) DashboardService {
	return &dashboardService{dashboardRepo: dashboardRepo}
}

func (s *dashboardService) Summary(ctx context.Context) (*DashboardSummary, error) {
	totals, err := s.dashboardRepo.Totals(ctx)
	if err != nil {
		return nil, err
	}
	topTools, err := s.dashboardRepo.TopTools(ctx, dashboardRankingSize)
	if err != nil {
		return nil, err
	}
	topBrands, err := s.dashboardRepo.TopBrands(ctx, dashboardRankingSize)
	if err != nil {
		return nil, err
	}
	byCategory, err := s.dashboardRepo.ReservationsByCategory(ctx)
	if err != nil {
		return nil, err
	}
	byMonth, err := s.dashboardRepo.NewCustomersByMonth(ctx)
	if err != nil {
		return nil, err
	}

	return &DashboardSummary{
		Totals:                 *totals,
		TopTools:               topTools,
		TopBrands:              topBrands,
		ReservationsByCategory: byCategory,
		NewCustomersByMonth:    byMonth,
	}, nil
}

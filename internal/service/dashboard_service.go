package service

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/kisanmitra/backend/internal/domain"
)

// DashboardService serves the advisory dashboard cards
type DashboardService struct {
	repo DashboardRepository
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(repo DashboardRepository) *DashboardService {
	return &DashboardService{repo: repo}
}

// GetDashboardData fetches every card concurrently. Unlike single-card
// getters it fails as a whole if any card fails.
func (s *DashboardService) GetDashboardData(ctx context.Context) (domain.DashboardData, error) {
	var data domain.DashboardData
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() (err error) {
		data.FarmRisk, err = s.repo.FarmRisk(gctx)
		return wrap("farm risk", err)
	})
	g.Go(func() (err error) {
		data.Irrigation, err = s.repo.IrrigationGuidance(gctx)
		return wrap("irrigation guidance", err)
	})
	g.Go(func() (err error) {
		data.Market, err = s.repo.MarketTiming(gctx)
		return wrap("market timing", err)
	})
	g.Go(func() (err error) {
		data.YieldOutlook, err = s.repo.YieldOutlook(gctx)
		return wrap("yield outlook", err)
	})
	g.Go(func() (err error) {
		data.Schemes, err = s.repo.Schemes(gctx)
		return wrap("schemes", err)
	})
	g.Go(func() (err error) {
		data.Weather, err = s.repo.WeatherForecast(gctx)
		return wrap("weather forecast", err)
	})

	if err := g.Wait(); err != nil {
		return domain.DashboardData{}, err
	}
	return data, nil
}

// FarmRisk returns the risk card
func (s *DashboardService) FarmRisk(ctx context.Context) (domain.FarmRisk, error) {
	r, err := s.repo.FarmRisk(ctx)
	return r, wrap("farm risk", err)
}

// Irrigation returns the irrigation card
func (s *DashboardService) Irrigation(ctx context.Context) (domain.IrrigationGuidance, error) {
	g, err := s.repo.IrrigationGuidance(ctx)
	return g, wrap("irrigation guidance", err)
}

// Market returns the market timing card
func (s *DashboardService) Market(ctx context.Context) (domain.MarketTiming, error) {
	m, err := s.repo.MarketTiming(ctx)
	return m, wrap("market timing", err)
}

// YieldOutlook returns the yield outlook card
func (s *DashboardService) YieldOutlook(ctx context.Context) (domain.YieldOutlook, error) {
	y, err := s.repo.YieldOutlook(ctx)
	return y, wrap("yield outlook", err)
}

// WeatherForecast returns the seven-day forecast
func (s *DashboardService) WeatherForecast(ctx context.Context) ([]domain.WeatherForecast, error) {
	w, err := s.repo.WeatherForecast(ctx)
	return w, wrap("weather forecast", err)
}

// Health checks the underlying store
func (s *DashboardService) Health(ctx context.Context) error {
	return wrap("store health", s.repo.Health(ctx))
}

func wrap(what string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("dashboard: failed to fetch %s: %w", what, err)
}

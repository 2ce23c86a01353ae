package service

import (
	"context"
	"fmt"

	"github.com/kisanmitra/backend/internal/domain"
	"github.com/kisanmitra/backend/pkg/utils"
)

// RegionService serves the regional crop map
type RegionService struct {
	repo DashboardRepository
}

// NewRegionService creates a new region service
func NewRegionService(repo DashboardRepository) *RegionService {
	return &RegionService{repo: repo}
}

// States returns every state profile
func (s *RegionService) States(ctx context.Context) ([]domain.StateData, error) {
	states, err := s.repo.States(ctx)
	if err != nil {
		return nil, fmt.Errorf("regions: failed to list states: %w", err)
	}
	return states, nil
}

// State returns one state profile by id
func (s *RegionService) State(ctx context.Context, id string) (domain.StateData, error) {
	states, err := s.States(ctx)
	if err != nil {
		return domain.StateData{}, err
	}
	for _, st := range states {
		if st.ID == id {
			return st, nil
		}
	}
	return domain.StateData{}, fmt.Errorf("regions: %s: %w", id, ErrStateNotFound)
}

// Nearest returns the state whose reference point is closest to lat/lng
func (s *RegionService) Nearest(ctx context.Context, lat, lng float64) (domain.NearestState, error) {
	states, err := s.States(ctx)
	if err != nil {
		return domain.NearestState{}, err
	}
	if len(states) == 0 {
		return domain.NearestState{}, fmt.Errorf("regions: nearest to %.4f,%.4f: %w", lat, lng, ErrStateNotFound)
	}

	best := domain.NearestState{DistanceKm: -1}
	for _, st := range states {
		d := utils.Haversine(lat, lng, st.Coordinates.Lat, st.Coordinates.Lng)
		if best.DistanceKm < 0 || d < best.DistanceKm {
			best = domain.NearestState{State: st, DistanceKm: d}
		}
	}
	best.DistanceKm = utils.RoundTo(best.DistanceKm, 1)
	return best, nil
}

package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/kisanmitra/backend/internal/domain"
)

// SchemeFilter narrows the scheme list. Zero values match everything.
type SchemeFilter struct {
	Status   domain.SchemeStatus
	Category string
}

func (f SchemeFilter) matches(s domain.Scheme) bool {
	if f.Status != "" && s.Status != f.Status {
		return false
	}
	if f.Category != "" && !strings.EqualFold(s.Category, f.Category) {
		return false
	}
	return true
}

// SchemeService serves the scheme eligibility section
type SchemeService struct {
	repo DashboardRepository
}

// NewSchemeService creates a new scheme service
func NewSchemeService(repo DashboardRepository) *SchemeService {
	return &SchemeService{repo: repo}
}

// List returns the schemes matching filter, in store order
func (s *SchemeService) List(ctx context.Context, filter SchemeFilter) ([]domain.Scheme, error) {
	all, err := s.repo.Schemes(ctx)
	if err != nil {
		return nil, fmt.Errorf("schemes: failed to list: %w", err)
	}

	out := make([]domain.Scheme, 0, len(all))
	for _, sc := range all {
		if filter.matches(sc) {
			out = append(out, sc)
		}
	}
	return out, nil
}

// Get returns one scheme by id
func (s *SchemeService) Get(ctx context.Context, id string) (domain.Scheme, error) {
	all, err := s.repo.Schemes(ctx)
	if err != nil {
		return domain.Scheme{}, fmt.Errorf("schemes: failed to get %s: %w", id, err)
	}
	for _, sc := range all {
		if sc.ID == id {
			return sc, nil
		}
	}
	return domain.Scheme{}, fmt.Errorf("schemes: %s: %w", id, ErrSchemeNotFound)
}

package services

import (
	"context"
	"fmt"
	"math"
	"time"

	"cinephoria/internal/domain"
)

// RequiredReservations returns the reservation count needed for a hall to meet
// targetPercent of its capacity: ceil(capacity * targetPercent / 100). Ceiling
// guarantees the returned count meets or exceeds the target proportion. Targets
// above 100 are not clamped; clamping is caller policy.
func RequiredReservations(capacity int, targetPercent float64) int {
	if capacity <= 0 || targetPercent <= 0 {
		return 0
	}
	return int(math.Ceil(float64(capacity) * targetPercent / 100))
}

// TotalRequiredReservations sums RequiredReservations over all halls.
func TotalRequiredReservations(halls []*domain.Hall, targetPercent float64) int {
	total := 0
	for _, h := range halls {
		total += RequiredReservations(h.Capacity, targetPercent)
	}
	return total
}

// UtilizationRatio returns the accessible-seat fraction disabled/capacity,
// unrounded. The two-decimal percentage is a display concern only.
func UtilizationRatio(hall *domain.Hall) float64 {
	if hall.Capacity == 0 {
		return 0
	}
	return float64(hall.DisabledPlaces) / float64(hall.Capacity)
}

// UtilizationPercent returns UtilizationRatio as a percentage rounded to two
// decimals.
func UtilizationPercent(hall *domain.Hall) float64 {
	return math.Round(UtilizationRatio(hall)*10000) / 100
}

type occupancyService struct {
	catalog        domain.ResourceCatalog
	contextTimeout time.Duration
}

func NewOccupancyService(catalog domain.ResourceCatalog, timeout time.Duration) domain.OccupancyService {
	return &occupancyService{
		catalog:        catalog,
		contextTimeout: timeout,
	}
}

func (s *occupancyService) Report(ctx context.Context, targetPercent float64) (*domain.OccupancyReport, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	halls, err := s.catalog.ListHalls(ctx)
	if err != nil {
		return nil, fmt.Errorf("list halls: %w", err)
	}

	report := &domain.OccupancyReport{
		TargetPercent: targetPercent,
		Halls:         make([]domain.HallOccupancy, 0, len(halls)),
	}
	for _, h := range halls {
		report.Halls = append(report.Halls, domain.HallOccupancy{
			Hall:                 h,
			RequiredReservations: RequiredReservations(h.Capacity, targetPercent),
			UtilizationRatio:     UtilizationRatio(h),
			UtilizationPercent:   UtilizationPercent(h),
		})
		report.TotalCapacity += h.Capacity
	}
	report.TotalRequired = TotalRequiredReservations(halls, targetPercent)
	return report, nil
}

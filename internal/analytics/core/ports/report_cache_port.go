package ports

import (
	"context"

	"order-analytics-service/internal/analytics/core/domain"
)

// ReportCachePort memoizes derived reports per date-range key. The
// pipeline is idempotent, so a cached report is always as good as a
// recomputed one within the TTL.
type ReportCachePort interface {
	// GetReport returns (nil, false, nil) on a cache miss.
	GetReport(ctx context.Context, key string) (*domain.DashboardReport, bool, error)
	SetReport(ctx context.Context, key string, report *domain.DashboardReport) error
}

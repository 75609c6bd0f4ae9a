package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"order-analytics-service/internal/analytics/core/domain"
	"order-analytics-service/internal/analytics/core/ports"
)

// Reports are fully recomputed per selection anyway; the TTL only
// bounds staleness against dataset reloads.
const reportTTL = 5 * time.Minute

type ReportCache struct {
	client *goredis.Client
	ttl    time.Duration
}

func NewReportCache(client *goredis.Client) *ReportCache {
	return &ReportCache{client: client, ttl: reportTTL}
}

var _ ports.ReportCachePort = (*ReportCache)(nil)

func (c *ReportCache) GetReport(ctx context.Context, key string) (*domain.DashboardReport, bool, error) {
	raw, err := c.client.Get(ctx, reportKey(key)).Bytes()
	if errors.Is(err, goredis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	var report domain.DashboardReport
	if err := json.Unmarshal(raw, &report); err != nil {
		return nil, false, err
	}
	return &report, true, nil
}

func (c *ReportCache) SetReport(ctx context.Context, key string, report *domain.DashboardReport) error {
	raw, err := json.Marshal(report)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, reportKey(key), raw, c.ttl).Err()
}

func reportKey(key string) string {
	return "dashboard:report:" + key
}

package usecase

import (
	"context"
	"errors"
	"log"
	"time"

	"order-analytics-service/internal/analytics/core/domain"
	"order-analytics-service/internal/analytics/core/ports"
	datasetports "order-analytics-service/internal/dataset/core/ports"
)

const dateLayout = "2006-01-02"

var (
	ErrInvalidDate      = errors.New("invalid date, expected YYYY-MM-DD")
	ErrInvalidDateRange = errors.New("start date must not be after end date")
)

type GetDashboardInput struct {
	StartDate string // YYYY-MM-DD, inclusive
	EndDate   string // YYYY-MM-DD, inclusive
}

// DatasetBounds is the observed approval-date range, for the date-range
// selector.
type DatasetBounds struct {
	MinDate string
	MaxDate string
	HasData bool
}

type GetDashboardUseCase struct {
	reader datasetports.OrderReaderPort
	cache  ports.ReportCachePort // optional
}

func NewGetDashboardUseCase(reader datasetports.OrderReaderPort, cache ports.ReportCachePort) *GetDashboardUseCase {
	return &GetDashboardUseCase{reader: reader, cache: cache}
}

// Execute validates the date range, loads the dataset and runs the full
// derivation pipeline. A range outside the dataset's bounds yields a
// report with empty tables, not an error. Cache failures are soft: the
// report is recomputed.
func (uc *GetDashboardUseCase) Execute(ctx context.Context, in GetDashboardInput) (*domain.DashboardReport, error) {
	start, err := time.Parse(dateLayout, in.StartDate)
	if err != nil {
		return nil, ErrInvalidDate
	}
	end, err := time.Parse(dateLayout, in.EndDate)
	if err != nil {
		return nil, ErrInvalidDate
	}
	if start.After(end) {
		return nil, ErrInvalidDateRange
	}

	key := in.StartDate + ".." + in.EndDate

	if uc.cache != nil {
		cached, ok, err := uc.cache.GetReport(ctx, key)
		if err != nil {
			log.Printf("report cache get failed, recomputing: %v", err)
		} else if ok {
			return cached, nil
		}
	}

	orders, err := uc.reader.LoadOrders(ctx)
	if err != nil {
		return nil, err
	}

	report := domain.BuildReport(orders, start, end)

	if uc.cache != nil {
		if err := uc.cache.SetReport(ctx, key, report); err != nil {
			log.Printf("report cache set failed: %v", err)
		}
	}

	return report, nil
}

// Bounds reports the dataset's min/max approval dates.
func (uc *GetDashboardUseCase) Bounds(ctx context.Context) (DatasetBounds, error) {
	orders, err := uc.reader.LoadOrders(ctx)
	if err != nil {
		return DatasetBounds{}, err
	}

	min, max, ok := domain.ApprovalBounds(orders)
	if !ok {
		return DatasetBounds{}, nil
	}

	return DatasetBounds{
		MinDate: min.Format(dateLayout),
		MaxDate: max.Format(dateLayout),
		HasData: true,
	}, nil
}

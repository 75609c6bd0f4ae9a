package fiber

import (
	"context"
	"errors"
	"net/http"

	"order-analytics-service/internal/analytics/adapters/export"
	"order-analytics-service/internal/analytics/core/domain"
	"order-analytics-service/internal/analytics/core/usecase"

	"github.com/gofiber/fiber/v2"
)

type GetDashboardUseCase interface {
	Execute(ctx context.Context, in usecase.GetDashboardInput) (*domain.DashboardReport, error)
	Bounds(ctx context.Context) (usecase.DatasetBounds, error)
}

type ReportExporter interface {
	ExportReport(report *domain.DashboardReport) (export.Result, error)
}

type DashboardHandler struct {
	uc       GetDashboardUseCase
	exporter ReportExporter
}

func NewDashboardHandler(uc GetDashboardUseCase, exporter ReportExporter) *DashboardHandler {
	return &DashboardHandler{uc: uc, exporter: exporter}
}

// GetDashboard godoc
// @Summary Derived dashboard tables for a date range
// @Description Runs the aggregation pipeline over the dataset rows approved within [start, end]
// @Tags Dashboard
// @Produce json
// @Param start query string true "Start date (YYYY-MM-DD, inclusive)"
// @Param end query string true "End date (YYYY-MM-DD, inclusive)"
// @Success 200 {object} DashboardResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /dashboard [get]
func (h *DashboardHandler) GetDashboard(c *fiber.Ctx) error {
	in, ok := dateRangeInput(c)
	if !ok {
		return nil
	}

	report, err := h.uc.Execute(c.UserContext(), in)
	if err != nil {
		return mapUseCaseError(c, err)
	}

	return c.Status(http.StatusOK).JSON(toDashboardResponse(report))
}

// GetBounds godoc
// @Summary Observed approval-date range of the dataset
// @Description Feeds the date-range selector with the valid min/max dates
// @Tags Dashboard
// @Produce json
// @Success 200 {object} BoundsResponse
// @Failure 500 {object} ErrorResponse
// @Router /dashboard/bounds [get]
func (h *DashboardHandler) GetBounds(c *fiber.Ctx) error {
	bounds, err := h.uc.Bounds(c.UserContext())
	if err != nil {
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Error: "internal_server_error",
		})
	}

	return c.Status(http.StatusOK).JSON(BoundsResponse{
		MinDate: bounds.MinDate,
		MaxDate: bounds.MaxDate,
		HasData: bounds.HasData,
	})
}

// ExportDashboard godoc
// @Summary Export the derived tables for a date range as a JSON file
// @Tags Dashboard
// @Produce json
// @Param start query string true "Start date (YYYY-MM-DD, inclusive)"
// @Param end query string true "End date (YYYY-MM-DD, inclusive)"
// @Success 201 {object} ExportResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /dashboard/export [get]
func (h *DashboardHandler) ExportDashboard(c *fiber.Ctx) error {
	in, ok := dateRangeInput(c)
	if !ok {
		return nil
	}

	report, err := h.uc.Execute(c.UserContext(), in)
	if err != nil {
		return mapUseCaseError(c, err)
	}

	res, err := h.exporter.ExportReport(report)
	if err != nil {
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Error: "export_failed",
		})
	}

	return c.Status(http.StatusCreated).JSON(ExportResponse{
		ReportID: res.ReportID,
		Path:     res.Path,
	})
}

func dateRangeInput(c *fiber.Ctx) (usecase.GetDashboardInput, bool) {
	start := c.Query("start", "")
	end := c.Query("end", "")
	if start == "" || end == "" {
		_ = c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Error:   "missing_date_range",
			Message: "start and end are required",
		})
		return usecase.GetDashboardInput{}, false
	}
	return usecase.GetDashboardInput{StartDate: start, EndDate: end}, true
}

func mapUseCaseError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, usecase.ErrInvalidDate),
		errors.Is(err, usecase.ErrInvalidDateRange):
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Error:   "invalid_date_range",
			Message: err.Error(),
		})
	default:
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Error: "internal_server_error",
		})
	}
}

func toDashboardResponse(report *domain.DashboardReport) DashboardResponse {
	resp := DashboardResponse{
		StartDate: report.StartDate,
		EndDate:   report.EndDate,
		Products: ProductsResponse{
			Ranked:    make([]CategoryCountResponse, 0, len(report.Products)),
			MaxOrders: report.Products.MaxOrders(),
			MinOrders: report.Products.MinOrders(),
		},
		Reviews: ReviewsResponse{
			Counts: make([]ScoreCountResponse, 0, len(report.Reviews.Counts)),
			Mode:   report.Reviews.Mode,
		},
		CustomerCities: CityTableResponse{
			CountLabel: customerCountLabel,
			Rows:       toCityRows(report.CustomerCities),
		},
		SellerCities: CityTableResponse{
			CountLabel: sellerCountLabel,
			Rows:       toCityRows(report.SellerCities),
		},
		Payments: make([]PaymentTotalResponse, 0, len(report.Payments)),
		RFM:      make([]RFMRecordResponse, 0, len(report.RFM)),
		Segments: SegmentsResponse{
			TransactionTiers: toTierRows(report.Segments.TransactionTiers),
			PaymentTiers:     toTierRows(report.Segments.PaymentTiers),
			WeeklyOrders:     make([]WeeklyCountResponse, 0, len(report.Segments.WeeklyOrders)),
		},
	}

	for _, p := range report.Products {
		resp.Products.Ranked = append(resp.Products.Ranked, CategoryCountResponse{
			Category: p.Category,
			Orders:   p.Orders,
		})
	}
	for _, s := range report.Reviews.Counts {
		resp.Reviews.Counts = append(resp.Reviews.Counts, ScoreCountResponse{
			Score:  s.Score,
			Orders: s.Orders,
		})
	}
	for _, p := range report.Payments {
		resp.Payments = append(resp.Payments, PaymentTotalResponse{
			PaymentType: p.PaymentType,
			TotalValue:  p.TotalValue,
		})
	}
	for _, r := range report.RFM {
		resp.RFM = append(resp.RFM, RFMRecordResponse{
			CustomerID: r.CustomerID,
			Recency:    r.Recency,
			Frequency:  r.Frequency,
			Monetary:   r.Monetary,
		})
	}
	for _, w := range report.Segments.WeeklyOrders {
		resp.Segments.WeeklyOrders = append(resp.Segments.WeeklyOrders, WeeklyCountResponse{
			Week:   w.Week,
			Orders: w.Orders,
		})
	}

	return resp
}

func toCityRows(cities []domain.CityCount) []CityCountResponse {
	rows := make([]CityCountResponse, 0, len(cities))
	for _, c := range cities {
		rows = append(rows, CityCountResponse{City: c.City, Orders: c.Orders})
	}
	return rows
}

func toTierRows(tiers []domain.TierCount) []TierCountResponse {
	rows := make([]TierCountResponse, 0, len(tiers))
	for _, t := range tiers {
		rows = append(rows, TierCountResponse{Tier: t.Tier, Orders: t.Orders})
	}
	return rows
}

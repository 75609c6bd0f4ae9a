package fiber_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	httpadapter "order-analytics-service/internal/analytics/adapters/http/fiber"
	"order-analytics-service/internal/analytics/adapters/export"
	"order-analytics-service/internal/analytics/core/domain"
	"order-analytics-service/internal/analytics/core/usecase"

	"github.com/gofiber/fiber/v2"
)

// fakeDashboardUseCase fakes the interface the handler depends on.
type fakeDashboardUseCase struct {
	ExecuteFn func(ctx context.Context, in usecase.GetDashboardInput) (*domain.DashboardReport, error)
	BoundsFn  func(ctx context.Context) (usecase.DatasetBounds, error)
	lastInput usecase.GetDashboardInput
	called    bool
}

func (f *fakeDashboardUseCase) Execute(ctx context.Context, in usecase.GetDashboardInput) (*domain.DashboardReport, error) {
	f.called = true
	f.lastInput = in
	if f.ExecuteFn != nil {
		return f.ExecuteFn(ctx, in)
	}
	return &domain.DashboardReport{}, nil
}

func (f *fakeDashboardUseCase) Bounds(ctx context.Context) (usecase.DatasetBounds, error) {
	if f.BoundsFn != nil {
		return f.BoundsFn(ctx)
	}
	return usecase.DatasetBounds{}, nil
}

type fakeExporter struct {
	ExportFn func(report *domain.DashboardReport) (export.Result, error)
	called   bool
}

func (f *fakeExporter) ExportReport(report *domain.DashboardReport) (export.Result, error) {
	f.called = true
	if f.ExportFn != nil {
		return f.ExportFn(report)
	}
	return export.Result{}, nil
}

func setupApp(t *testing.T, uc httpadapter.GetDashboardUseCase, exp httpadapter.ReportExporter) *fiber.App {
	t.Helper()
	app := fiber.New()
	h := httpadapter.NewDashboardHandler(uc, exp)
	app.Get("/dashboard", h.GetDashboard)
	app.Get("/dashboard/bounds", h.GetBounds)
	app.Get("/dashboard/export", h.ExportDashboard)
	return app
}

func sampleReport() *domain.DashboardReport {
	return &domain.DashboardReport{
		StartDate: "2018-06-01",
		EndDate:   "2018-06-30",
		Products: domain.ProductPopularity{
			{Category: "toys", Orders: 3},
			{Category: "auto", Orders: 1},
		},
		Reviews: domain.ReviewBreakdown{
			Counts: []domain.ScoreCount{{Score: 5, Orders: 4}},
			Mode:   5,
		},
		CustomerCities: []domain.CityCount{{City: "sao paulo", Orders: 4}},
		SellerCities:   []domain.CityCount{{City: "campinas", Orders: 4}},
		Payments:       []domain.PaymentTotal{{PaymentType: "credit_card", TotalValue: 320.5}},
		RFM:            []domain.RFMRecord{{CustomerID: "c1", Recency: 5, Frequency: 2, Monetary: 80}},
		Segments: domain.Segmentation{
			TransactionTiers: []domain.TierCount{{Tier: domain.TierLow, Orders: 4}},
			PaymentTiers:     []domain.TierCount{{Tier: domain.TierMedium, Orders: 4}},
			WeeklyOrders:     []domain.WeeklyCount{{Week: 22, Orders: 4}},
		},
	}
}

func getJSON(t *testing.T, app *fiber.App, path string) (*http.Response, map[string]any) {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, path, nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test error: %v", err)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("failed to read response body: %v", err)
	}
	_ = resp.Body.Close()

	var parsed map[string]any
	if len(body) > 0 {
		if err := json.Unmarshal(body, &parsed); err != nil {
			t.Fatalf("invalid json response: %v (body: %s)", err, body)
		}
	}
	return resp, parsed
}

// ------------------------------------------------------------
// DASHBOARD
// ------------------------------------------------------------

func TestGetDashboard_Success(t *testing.T) {
	uc := &fakeDashboardUseCase{
		ExecuteFn: func(ctx context.Context, in usecase.GetDashboardInput) (*domain.DashboardReport, error) {
			if in.StartDate != "2018-06-01" || in.EndDate != "2018-06-30" {
				t.Fatalf("unexpected input: %+v", in)
			}
			return sampleReport(), nil
		},
	}

	app := setupApp(t, uc, &fakeExporter{})

	params := url.Values{}
	params.Set("start", "2018-06-01")
	params.Set("end", "2018-06-30")

	resp, body := getJSON(t, app, "/dashboard?"+params.Encode())
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.StatusCode)
	}
	if !uc.called {
		t.Fatalf("expected usecase to be called")
	}

	products := body["products"].(map[string]any)
	if int(products["max_orders"].(float64)) != 3 {
		t.Fatalf("expected max_orders=3, got %v", products["max_orders"])
	}
	if int(products["min_orders"].(float64)) != 1 {
		t.Fatalf("expected min_orders=1, got %v", products["min_orders"])
	}

	cities := body["customer_cities"].(map[string]any)
	if cities["count_label"] != "Number of Customers" {
		t.Fatalf("expected customer count label, got %v", cities["count_label"])
	}

	reviews := body["reviews"].(map[string]any)
	if int(reviews["mode"].(float64)) != 5 {
		t.Fatalf("expected mode=5, got %v", reviews["mode"])
	}
}

func TestGetDashboard_MissingParams(t *testing.T) {
	uc := &fakeDashboardUseCase{
		ExecuteFn: func(ctx context.Context, in usecase.GetDashboardInput) (*domain.DashboardReport, error) {
			t.Fatalf("usecase should not be called without a date range")
			return nil, nil
		},
	}

	app := setupApp(t, uc, &fakeExporter{})

	resp, body := getJSON(t, app, "/dashboard?start=2018-06-01")
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", resp.StatusCode)
	}
	if body["error"] != "missing_date_range" {
		t.Fatalf("expected error=missing_date_range, got %v", body["error"])
	}
}

func TestGetDashboard_ValidationErrors(t *testing.T) {
	tests := []struct {
		name    string
		ucError error
	}{
		{"invalid_date", usecase.ErrInvalidDate},
		{"invalid_range", usecase.ErrInvalidDateRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &fakeDashboardUseCase{
				ExecuteFn: func(ctx context.Context, in usecase.GetDashboardInput) (*domain.DashboardReport, error) {
					return nil, tt.ucError
				},
			}

			app := setupApp(t, uc, &fakeExporter{})

			resp, body := getJSON(t, app, "/dashboard?start=bad&end=worse")
			if resp.StatusCode != http.StatusBadRequest {
				t.Fatalf("expected status 400, got %d", resp.StatusCode)
			}
			if body["error"] != "invalid_date_range" {
				t.Fatalf("expected error=invalid_date_range, got %v", body["error"])
			}
		})
	}
}

func TestGetDashboard_InternalError(t *testing.T) {
	uc := &fakeDashboardUseCase{
		ExecuteFn: func(ctx context.Context, in usecase.GetDashboardInput) (*domain.DashboardReport, error) {
			return nil, errors.New("dataset unavailable")
		},
	}

	app := setupApp(t, uc, &fakeExporter{})

	resp, body := getJSON(t, app, "/dashboard?start=2018-06-01&end=2018-06-30")
	if resp.StatusCode != http.StatusInternalServerError {
		t.Fatalf("expected status 500, got %d", resp.StatusCode)
	}
	if body["error"] != "internal_server_error" {
		t.Fatalf("expected error=internal_server_error, got %v", body["error"])
	}
}

// ------------------------------------------------------------
// BOUNDS
// ------------------------------------------------------------

func TestGetBounds_Success(t *testing.T) {
	uc := &fakeDashboardUseCase{
		BoundsFn: func(ctx context.Context) (usecase.DatasetBounds, error) {
			return usecase.DatasetBounds{
				MinDate: "2017-01-05",
				MaxDate: "2018-08-29",
				HasData: true,
			}, nil
		},
	}

	app := setupApp(t, uc, &fakeExporter{})

	resp, body := getJSON(t, app, "/dashboard/bounds")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.StatusCode)
	}
	if body["min_date"] != "2017-01-05" || body["max_date"] != "2018-08-29" {
		t.Fatalf("unexpected bounds: %v", body)
	}
}

func TestGetBounds_Error(t *testing.T) {
	uc := &fakeDashboardUseCase{
		BoundsFn: func(ctx context.Context) (usecase.DatasetBounds, error) {
			return usecase.DatasetBounds{}, errors.New("dataset unavailable")
		},
	}

	app := setupApp(t, uc, &fakeExporter{})

	resp, _ := getJSON(t, app, "/dashboard/bounds")
	if resp.StatusCode != http.StatusInternalServerError {
		t.Fatalf("expected status 500, got %d", resp.StatusCode)
	}
}

// ------------------------------------------------------------
// EXPORT
// ------------------------------------------------------------

func TestExportDashboard_Success(t *testing.T) {
	uc := &fakeDashboardUseCase{
		ExecuteFn: func(ctx context.Context, in usecase.GetDashboardInput) (*domain.DashboardReport, error) {
			return sampleReport(), nil
		},
	}
	exp := &fakeExporter{
		ExportFn: func(report *domain.DashboardReport) (export.Result, error) {
			return export.Result{ReportID: "rid-1", Path: "/tmp/exports/dashboard_x.json"}, nil
		},
	}

	app := setupApp(t, uc, exp)

	resp, body := getJSON(t, app, "/dashboard/export?start=2018-06-01&end=2018-06-30")
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected status 201, got %d", resp.StatusCode)
	}
	if !exp.called {
		t.Fatalf("expected exporter to be called")
	}
	if body["report_id"] != "rid-1" {
		t.Fatalf("expected report_id=rid-1, got %v", body["report_id"])
	}
}

func TestExportDashboard_ExporterError(t *testing.T) {
	uc := &fakeDashboardUseCase{
		ExecuteFn: func(ctx context.Context, in usecase.GetDashboardInput) (*domain.DashboardReport, error) {
			return sampleReport(), nil
		},
	}
	exp := &fakeExporter{
		ExportFn: func(report *domain.DashboardReport) (export.Result, error) {
			return export.Result{}, errors.New("disk full")
		},
	}

	app := setupApp(t, uc, exp)

	resp, body := getJSON(t, app, "/dashboard/export?start=2018-06-01&end=2018-06-30")
	if resp.StatusCode != http.StatusInternalServerError {
		t.Fatalf("expected status 500, got %d", resp.StatusCode)
	}
	if body["error"] != "export_failed" {
		t.Fatalf("expected error=export_failed, got %v", body["error"])
	}
}

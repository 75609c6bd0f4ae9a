package csv

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"order-analytics-service/internal/dataset/core/domain"
	"order-analytics-service/internal/dataset/core/ports"
)

// timestampLayouts covers the formats seen in the dataset export.
var timestampLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02",
}

type OrderReader struct {
	path string
}

func NewOrderReader(path string) *OrderReader {
	return &OrderReader{path: path}
}

var _ ports.OrderReaderPort = (*OrderReader)(nil)

// LoadOrders reads the whole dataset file into memory. The header is
// validated against domain.RequiredColumns before any row is parsed; a
// missing column aborts the load. Unparseable timestamps become the zero
// time and the row is kept.
func (r *OrderReader) LoadOrders(ctx context.Context) ([]domain.Order, error) {
	f, err := os.Open(r.path)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()

	return r.parse(ctx, f)
}

func (r *OrderReader) parse(ctx context.Context, src io.Reader) ([]domain.Order, error) {
	cr := csv.NewReader(src)
	cr.ReuseRecord = true

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read dataset header: %w", err)
	}

	idx := make(map[string]int, len(header))
	for i, name := range header {
		idx[name] = i
	}
	for _, col := range domain.RequiredColumns {
		if _, ok := idx[col]; !ok {
			return nil, fmt.Errorf("dataset is missing required column %q", col)
		}
	}

	var orders []domain.Order
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read dataset row: %w", err)
		}

		orders = append(orders, domain.Order{
			OrderID:      rec[idx["order_id"]],
			CustomerID:   rec[idx["customer_id"]],
			ProductID:    rec[idx["product_id"]],
			SellerID:     rec[idx["seller_id"]],
			Category:     rec[idx["product_category_name_english"]],
			ReviewScore:  parseInt(rec[idx["review_score"]]),
			PaymentType:  rec[idx["payment_type"]],
			PaymentValue: parseFloat(rec[idx["payment_value"]]),
			Price:        parseFloat(rec[idx["price"]]),
			PurchasedAt:  parseTimestamp(rec[idx["order_purchase_timestamp"]]),
			ApprovedAt:   parseTimestamp(rec[idx["order_approved_at"]]),
			CustomerCity: rec[idx["customer_city"]],
			SellerCity:   rec[idx["seller_city"]],
		})
	}

	return orders, nil
}

func parseTimestamp(s string) time.Time {
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC()
		}
	}
	return time.Time{}
}

func parseInt(s string) int {
	// review_score is exported as "4" or "4.0" depending on the source
	n, err := strconv.Atoi(s)
	if err == nil {
		return n
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return int(f)
}

func parseFloat(s string) float64 {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return f
}

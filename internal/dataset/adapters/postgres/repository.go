package postgres

import (
	"context"
	"database/sql"

	"order-analytics-service/internal/dataset/core/domain"
	"order-analytics-service/internal/dataset/core/ports"
)

type RowScanner interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
	Close() error
}

type DB interface {
	QueryContext(ctx context.Context, query string, args ...any) (RowScanner, error)
}

type OrderRepository struct {
	db DB
}

func NewOrderRepository(db DB) *OrderRepository {
	return &OrderRepository{db: db}
}

var _ ports.OrderReaderPort = (*OrderRepository)(nil)

const selectOrdersSQL = `
SELECT
    order_id,
    customer_id,
    product_id,
    seller_id,
    product_category_name_english,
    review_score,
    payment_type,
    payment_value,
    price,
    order_purchase_timestamp,
    order_approved_at,
    customer_city,
    seller_city
FROM orders`

// LoadOrders reads the whole orders table. NULL timestamps map to the
// zero time, matching the CSV loader's missing-value marker.
func (r *OrderRepository) LoadOrders(ctx context.Context) ([]domain.Order, error) {
	rows, err := r.db.QueryContext(ctx, selectOrdersSQL)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []domain.Order
	for rows.Next() {
		var (
			o           domain.Order
			purchasedAt sql.NullTime
			approvedAt  sql.NullTime
		)

		if err := rows.Scan(
			&o.OrderID,
			&o.CustomerID,
			&o.ProductID,
			&o.SellerID,
			&o.Category,
			&o.ReviewScore,
			&o.PaymentType,
			&o.PaymentValue,
			&o.Price,
			&purchasedAt,
			&approvedAt,
			&o.CustomerCity,
			&o.SellerCity,
		); err != nil {
			return nil, err
		}

		if purchasedAt.Valid {
			o.PurchasedAt = purchasedAt.Time.UTC()
		}
		if approvedAt.Valid {
			o.ApprovedAt = approvedAt.Time.UTC()
		}

		orders = append(orders, o)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}

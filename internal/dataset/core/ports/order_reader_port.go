package ports

import (
	"context"

	"order-analytics-service/internal/dataset/core/domain"
)

type OrderReaderPort interface {
	LoadOrders(ctx context.Context) ([]domain.Order, error)
}

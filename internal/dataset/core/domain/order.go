package domain

import "time"

// Order is one row of the transactions dataset. An order with several
// line items repeats its order id, customer id and purchase timestamp
// across rows.
type Order struct {
	OrderID      string
	CustomerID   string
	ProductID    string
	SellerID     string
	Category     string
	ReviewScore  int
	PaymentType  string
	PaymentValue float64
	Price        float64
	PurchasedAt  time.Time // zero when the source value was unparseable
	ApprovedAt   time.Time // zero when the source value was unparseable
	CustomerCity string
	SellerCity   string
}

// RequiredColumns is the dataset schema contract. Loaders must reject a
// source that is missing any of these before handing rows to the core.
var RequiredColumns = []string{
	"order_id",
	"customer_id",
	"product_id",
	"seller_id",
	"product_category_name_english",
	"review_score",
	"payment_type",
	"payment_value",
	"price",
	"order_purchase_timestamp",
	"order_approved_at",
	"customer_city",
	"seller_city",
}

package domain

import "time"

// RFMReferenceDate anchors recency to the dataset's known time span so
// results stay reproducible. It must never be replaced by the system
// clock.
var RFMReferenceDate = time.Date(2018, 10, 20, 0, 0, 0, 0, time.UTC)

// Transaction-count tiers (order count per customer, inclusive upper
// bounds) and payment-value tiers (lower-bound-inclusive bin edges
// 0 / 100 / 500 / 1000).
const (
	TierLow      = "Low"
	TierMedium   = "Medium"
	TierHigh     = "High"
	TierVeryHigh = "Very High"
)

type CategoryCount struct {
	Category string `json:"category"`
	Orders   int    `json:"orders"`
}

// ProductPopularity is the ranked category table, descending by order
// count.
type ProductPopularity []CategoryCount

// MaxOrders returns the top category's order count, 0 when empty.
func (p ProductPopularity) MaxOrders() int {
	if len(p) == 0 {
		return 0
	}
	return p[0].Orders
}

// MinOrders returns the bottom category's order count, 0 when empty.
func (p ProductPopularity) MinOrders() int {
	if len(p) == 0 {
		return 0
	}
	return p[len(p)-1].Orders
}

type ScoreCount struct {
	Score  int `json:"score"`
	Orders int `json:"orders"`
}

// ReviewBreakdown holds the ranked score counts and the mode. Mode is 0
// for an empty input.
type ReviewBreakdown struct {
	Counts []ScoreCount `json:"counts"`
	Mode   int          `json:"mode"`
}

type CityCount struct {
	City   string `json:"city"`
	Orders int    `json:"orders"`
}

type PaymentTotal struct {
	PaymentType string  `json:"payment_type"`
	TotalValue  float64 `json:"total_value"`
}

// RFMRecord is one customer's recency/frequency/monetary segmentation
// row. Recency is -1 when the customer has no parseable purchase
// timestamp.
type RFMRecord struct {
	CustomerID string  `json:"customer_id"`
	Recency    int     `json:"recency"`
	Frequency  int     `json:"frequency"`
	Monetary   float64 `json:"monetary"`
}

type TierCount struct {
	Tier   string `json:"tier"`
	Orders int    `json:"orders"`
}

type WeeklyCount struct {
	Week   int `json:"week"`
	Orders int `json:"orders"`
}

// Segmentation bundles the categorizer's three chart tables.
type Segmentation struct {
	TransactionTiers []TierCount   `json:"transaction_tiers"`
	PaymentTiers     []TierCount   `json:"payment_tiers"`
	WeeklyOrders     []WeeklyCount `json:"weekly_orders"`
}

// DashboardReport is the full set of derived tables for one date-range
// selection, each in its contractual order, ready for chart binding.
type DashboardReport struct {
	StartDate      string            `json:"start_date"`
	EndDate        string            `json:"end_date"`
	Products       ProductPopularity `json:"products"`
	Reviews        ReviewBreakdown   `json:"reviews"`
	CustomerCities []CityCount       `json:"customer_cities"`
	SellerCities   []CityCount       `json:"seller_cities"`
	Payments       []PaymentTotal    `json:"payments"`
	RFM            []RFMRecord       `json:"rfm"`
	Segments       Segmentation      `json:"segments"`
}

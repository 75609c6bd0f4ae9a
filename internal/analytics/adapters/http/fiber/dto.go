package fiber

// Column labels for the two geographic tables, per the chart contract.
const (
	customerCountLabel = "Number of Customers"
	sellerCountLabel   = "Number of Sellers"
)

type CategoryCountResponse struct {
	Category string `json:"category"`
	Orders   int    `json:"orders"`
}

type ProductsResponse struct {
	Ranked    []CategoryCountResponse `json:"ranked"`
	MaxOrders int                     `json:"max_orders"`
	MinOrders int                     `json:"min_orders"`
}

type ScoreCountResponse struct {
	Score  int `json:"score"`
	Orders int `json:"orders"`
}

type ReviewsResponse struct {
	Counts []ScoreCountResponse `json:"counts"`
	Mode   int                  `json:"mode"`
}

type CityCountResponse struct {
	City   string `json:"city"`
	Orders int    `json:"orders"`
}

type CityTableResponse struct {
	CountLabel string              `json:"count_label"`
	Rows       []CityCountResponse `json:"rows"`
}

type PaymentTotalResponse struct {
	PaymentType string  `json:"payment_type"`
	TotalValue  float64 `json:"total_value"`
}

type RFMRecordResponse struct {
	CustomerID string  `json:"customer_id"`
	Recency    int     `json:"recency"`
	Frequency  int     `json:"frequency"`
	Monetary   float64 `json:"monetary"`
}

type TierCountResponse struct {
	Tier   string `json:"tier"`
	Orders int    `json:"orders"`
}

type WeeklyCountResponse struct {
	Week   int `json:"week"`
	Orders int `json:"orders"`
}

type SegmentsResponse struct {
	TransactionTiers []TierCountResponse   `json:"transaction_tiers"`
	PaymentTiers     []TierCountResponse   `json:"payment_tiers"`
	WeeklyOrders     []WeeklyCountResponse `json:"weekly_orders"`
}

type DashboardResponse struct {
	StartDate      string                 `json:"start_date"`
	EndDate        string                 `json:"end_date"`
	Products       ProductsResponse       `json:"products"`
	Reviews        ReviewsResponse        `json:"reviews"`
	CustomerCities CityTableResponse      `json:"customer_cities"`
	SellerCities   CityTableResponse      `json:"seller_cities"`
	Payments       []PaymentTotalResponse `json:"payments"`
	RFM            []RFMRecordResponse    `json:"rfm"`
	Segments       SegmentsResponse       `json:"segments"`
}

type BoundsResponse struct {
	MinDate string `json:"min_date,omitempty"`
	MaxDate string `json:"max_date,omitempty"`
	HasData bool   `json:"has_data"`
}

type ExportResponse struct {
	ReportID string `json:"report_id"`
	Path     string `json:"path"`
}

type ErrorResponse struct {
	Error   string `json:"error" example:"invalid_date_range"`
	Message string `json:"message" example:"start date must not be after end date"`
}

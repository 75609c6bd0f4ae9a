package domain

import (
	"sort"
	"time"

	dataset "order-analytics-service/internal/dataset/core/domain"
)

// FilterByApprovalDate keeps the rows whose approval timestamp falls
// within [start, end] at day granularity, inclusive on both ends. The
// input is never mutated. Rows with a missing approval timestamp can
// never match.
func FilterByApprovalDate(orders []dataset.Order, start, end time.Time) []dataset.Order {
	startDay := truncateToDay(start)
	endDay := truncateToDay(end)

	filtered := make([]dataset.Order, 0, len(orders))
	for _, o := range orders {
		if o.ApprovedAt.IsZero() {
			continue
		}
		day := truncateToDay(o.ApprovedAt)
		if day.Before(startDay) || day.After(endDay) {
			continue
		}
		filtered = append(filtered, o)
	}
	return filtered
}

// CountByCategory ranks categories by order count, descending, with
// category name ascending as the tie-break.
func CountByCategory(orders []dataset.Order) ProductPopularity {
	counts := make(map[string]int)
	for _, o := range orders {
		counts[o.Category]++
	}

	ranked := make(ProductPopularity, 0, len(counts))
	for category, n := range counts {
		ranked = append(ranked, CategoryCount{Category: category, Orders: n})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Orders != ranked[j].Orders {
			return ranked[i].Orders > ranked[j].Orders
		}
		return ranked[i].Category < ranked[j].Category
	})
	return ranked
}

// CountByReviewScore ranks review scores by order count, descending,
// lower score first on ties. The mode is the top-ranked score.
func CountByReviewScore(orders []dataset.Order) ReviewBreakdown {
	counts := make(map[int]int)
	for _, o := range orders {
		counts[o.ReviewScore]++
	}

	ranked := make([]ScoreCount, 0, len(counts))
	for score, n := range counts {
		ranked = append(ranked, ScoreCount{Score: score, Orders: n})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Orders != ranked[j].Orders {
			return ranked[i].Orders > ranked[j].Orders
		}
		return ranked[i].Score < ranked[j].Score
	})

	breakdown := ReviewBreakdown{Counts: ranked}
	if len(ranked) > 0 {
		breakdown.Mode = ranked[0].Score
	}
	return breakdown
}

// CountByCustomerCity ranks cities by order-row count, descending. A
// repeat customer counts once per order row; this is an
// order-volume-by-city metric, not a distinct-customer count.
func CountByCustomerCity(orders []dataset.Order) []CityCount {
	return countByCity(orders, func(o dataset.Order) string { return o.CustomerCity })
}

// CountBySellerCity is CountByCustomerCity over the seller city column.
func CountBySellerCity(orders []dataset.Order) []CityCount {
	return countByCity(orders, func(o dataset.Order) string { return o.SellerCity })
}

func countByCity(orders []dataset.Order, city func(dataset.Order) string) []CityCount {
	counts := make(map[string]int)
	for _, o := range orders {
		counts[city(o)]++
	}

	ranked := make([]CityCount, 0, len(counts))
	for c, n := range counts {
		ranked = append(ranked, CityCount{City: c, Orders: n})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Orders != ranked[j].Orders {
			return ranked[i].Orders > ranked[j].Orders
		}
		return ranked[i].City < ranked[j].City
	})
	return ranked
}

// SumByPaymentType totals payment value per payment type. Types absent
// from the input are absent from the output. Rows come out in
// payment-type order so identical inputs yield identical tables; any
// presentation ordering is applied downstream.
func SumByPaymentType(orders []dataset.Order) []PaymentTotal {
	totals := make(map[string]float64)
	for _, o := range orders {
		totals[o.PaymentType] += o.PaymentValue
	}

	out := make([]PaymentTotal, 0, len(totals))
	for paymentType, total := range totals {
		out = append(out, PaymentTotal{PaymentType: paymentType, TotalValue: total})
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].PaymentType < out[j].PaymentType
	})
	return out
}

// BuildRFM computes one recency/frequency/monetary row per distinct
// customer id. Recency is whole days from the customer's latest parseable
// purchase timestamp to RFMReferenceDate; frequency is the order-row
// count; monetary is the item-price sum. The three aggregations are
// assembled by customer-id key, never by positional index.
func BuildRFM(orders []dataset.Order) []RFMRecord {
	lastPurchase := make(map[string]time.Time)
	frequency := make(map[string]int)
	monetary := make(map[string]float64)

	for _, o := range orders {
		frequency[o.CustomerID]++
		monetary[o.CustomerID] += o.Price

		if o.PurchasedAt.IsZero() {
			continue
		}
		if last, ok := lastPurchase[o.CustomerID]; !ok || o.PurchasedAt.After(last) {
			lastPurchase[o.CustomerID] = o.PurchasedAt
		}
	}

	records := make([]RFMRecord, 0, len(frequency))
	for customerID, freq := range frequency {
		rec := RFMRecord{
			CustomerID: customerID,
			Recency:    -1,
			Frequency:  freq,
			Monetary:   monetary[customerID],
		}
		if last, ok := lastPurchase[customerID]; ok {
			rec.Recency = int(RFMReferenceDate.Sub(last) / (24 * time.Hour))
		}
		records = append(records, rec)
	}

	sort.Slice(records, func(i, j int) bool {
		return records[i].CustomerID < records[j].CustomerID
	})
	return records
}

// Categorize buckets every customer by transaction count and every
// order row by payment value, and derives the weekly order series from
// the purchase timestamp. Customer tiers are joined back onto rows by
// customer id, so each of a customer's order rows carries that
// customer's tier. Rows with a missing purchase timestamp are excluded
// from the weekly series but still counted in both tier tables.
func Categorize(orders []dataset.Order) Segmentation {
	perCustomer := make(map[string]int)
	for _, o := range orders {
		perCustomer[o.CustomerID]++
	}

	customerTier := make(map[string]string, len(perCustomer))
	for customerID, n := range perCustomer {
		customerTier[customerID] = TransactionTier(n)
	}

	txnTiers := make(map[string]int)
	payTiers := make(map[string]int)
	weekly := make(map[int]int)

	for _, o := range orders {
		txnTiers[customerTier[o.CustomerID]]++
		payTiers[PaymentTier(o.PaymentValue)]++

		if o.PurchasedAt.IsZero() {
			continue
		}
		_, week := o.PurchasedAt.ISOWeek()
		weekly[week]++
	}

	weeks := make([]WeeklyCount, 0, len(weekly))
	for week, n := range weekly {
		weeks = append(weeks, WeeklyCount{Week: week, Orders: n})
	}
	sort.Slice(weeks, func(i, j int) bool {
		return weeks[i].Week < weeks[j].Week
	})

	return Segmentation{
		TransactionTiers: tierTable(txnTiers, []string{TierLow, TierMedium, TierHigh}),
		PaymentTiers:     tierTable(payTiers, []string{TierLow, TierMedium, TierHigh, TierVeryHigh}),
		WeeklyOrders:     weeks,
	}
}

// TransactionTier maps an order count to its tier: <=5 Low, <=20
// Medium, above High.
func TransactionTier(count int) string {
	switch {
	case count <= 5:
		return TierLow
	case count <= 20:
		return TierMedium
	default:
		return TierHigh
	}
}

// PaymentTier buckets a payment value over the right-open bins
// [0,100), [100,500), [500,1000), [1000,inf). A value of exactly 100
// lands in Medium.
func PaymentTier(value float64) string {
	switch {
	case value < 100:
		return TierLow
	case value < 500:
		return TierMedium
	case value < 1000:
		return TierHigh
	default:
		return TierVeryHigh
	}
}

// tierTable emits tiers in threshold order, omitting empty tiers so an
// empty input produces an empty table.
func tierTable(counts map[string]int, order []string) []TierCount {
	out := make([]TierCount, 0, len(counts))
	for _, tier := range order {
		if n, ok := counts[tier]; ok {
			out = append(out, TierCount{Tier: tier, Orders: n})
		}
	}
	return out
}

// BuildReport runs the whole pipeline for one date-range selection:
// filter, then every aggregator over the filtered rows. Identical
// inputs yield identical reports.
func BuildReport(orders []dataset.Order, start, end time.Time) *DashboardReport {
	filtered := FilterByApprovalDate(orders, start, end)

	return &DashboardReport{
		StartDate:      start.Format("2006-01-02"),
		EndDate:        end.Format("2006-01-02"),
		Products:       CountByCategory(filtered),
		Reviews:        CountByReviewScore(filtered),
		CustomerCities: CountByCustomerCity(filtered),
		SellerCities:   CountBySellerCity(filtered),
		Payments:       SumByPaymentType(filtered),
		RFM:            BuildRFM(filtered),
		Segments:       Categorize(filtered),
	}
}

// ApprovalBounds reports the dataset's observed approval-date range for
// the date-range selector. ok is false when no row has a parseable
// approval timestamp.
func ApprovalBounds(orders []dataset.Order) (min, max time.Time, ok bool) {
	for _, o := range orders {
		if o.ApprovedAt.IsZero() {
			continue
		}
		day := truncateToDay(o.ApprovedAt)
		if !ok {
			min, max, ok = day, day, true
			continue
		}
		if day.Before(min) {
			min = day
		}
		if day.After(max) {
			max = day
		}
	}
	return min, max, ok
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

package entities

// ProviderStats aggregates a provider's completed orders.
// TotalEarnings sums final prices (base price when a final price was never
// fixed). AverageRating is 0 when no completed order carries a rating.
type ProviderStats struct {
	TotalEarnings   int64
	AverageRating   float64
	RatingsCount    int64
	CompletedOrders int64
	RatingBreakdown map[int]int64
}

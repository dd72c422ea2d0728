package constant

// Subscription tiers. Unrecognized values fall back to PlanFree everywhere.
const (
	PlanFree    = "FREE"
	PlanPremium = "PREMIUM"
	PlanPro     = "PRO"
)

// DailyReviewLimits maps a plan to its code reviews per calendar day.
var DailyReviewLimits = map[string]int{
	PlanFree:    5,
	PlanPremium: 50,
	PlanPro:     1000,
}

// PlanPrices maps a purchasable plan to its price in INR minor units (paise).
var PlanPrices = map[string]int64{
	PlanPremium: 49900,
	PlanPro:     99900,
}

const (
	SubscriptionStatusActive   = "active"
	SubscriptionStatusInactive = "inactive"

	// SubscriptionDays is how long one successful payment keeps a plan active.
	SubscriptionDays = 30
)

// DailyLimitFor resolves the review quota for a plan, defaulting to the free tier.
func DailyLimitFor(plan string) int {
	if limit, ok := DailyReviewLimits[plan]; ok {
		return limit
	}
	return DailyReviewLimits[PlanFree]
}

// PriceFor returns the order amount for a purchasable plan.
func PriceFor(plan string) (int64, bool) {
	price, ok := PlanPrices[plan]
	return price, ok
}

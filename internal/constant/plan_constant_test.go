package constant

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDailyLimitFor(t *testing.T) {
	tests := []struct {
		name string
		plan string
		want int
	}{
		{name: "free plan", plan: PlanFree, want: 5},
		{name: "premium plan", plan: PlanPremium, want: 50},
		{name: "pro plan", plan: PlanPro, want: 1000},
		{name: "unknown plan falls back to free", plan: "ENTERPRISE", want: 5},
		{name: "empty plan falls back to free", plan: "", want: 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DailyLimitFor(tt.plan))
		})
	}
}

func TestPriceFor(t *testing.T) {
	price, ok := PriceFor(PlanPremium)
	assert.True(t, ok)
	assert.Equal(t, int64(49900), price)

	price, ok = PriceFor(PlanPro)
	assert.True(t, ok)
	assert.Equal(t, int64(99900), price)

	_, ok = PriceFor(PlanFree)
	assert.False(t, ok, "the free tier is not purchasable")

	_, ok = PriceFor("ENTERPRISE")
	assert.False(t, ok)
}

func TestIsSupportedReviewLanguage(t *testing.T) {
	assert.Len(t, SupportedReviewLanguages, 12)

	assert.True(t, IsSupportedReviewLanguage("go"))
	assert.True(t, IsSupportedReviewLanguage("typescript"))
	assert.True(t, IsSupportedReviewLanguage("Python"), "match is case insensitive")
	assert.False(t, IsSupportedReviewLanguage("cobol"))
	assert.False(t, IsSupportedReviewLanguage(""))
}

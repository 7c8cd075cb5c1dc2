package pricing

import (
	"fmt"

	"github.com/shopspring/decimal"
)

var (
	lowUtilizationRatio  = decimal.NewFromFloat(0.7)
	highUtilizationRatio = decimal.NewFromFloat(1.2)
	maxReductionPercent  = decimal.NewFromInt(30)
	maxIncreasePercent   = decimal.NewFromInt(20)
	reductionFactor      = decimal.NewFromInt(50)
	increaseFactor       = decimal.NewFromInt(30)
)

type Suggestion struct {
	CurrentPrice      Money
	SuggestedPrice    Money
	AdjustmentPercent decimal.Decimal
	Reason            string
}

// SuggestPrice proposes a price from utilization ratios (0.0 to 1.0).
// Below 70% of target it cuts up to 30%, above 120% it raises up to 20%.
func SuggestPrice(current, target decimal.Decimal, price Money) Suggestion {
	s := Suggestion{CurrentPrice: price, SuggestedPrice: price, AdjustmentPercent: decimal.Zero}

	switch {
	case current.LessThan(target.Mul(lowUtilizationRatio)):
		cut := decimal.Min(maxReductionPercent, target.Sub(current).Mul(reductionFactor))
		s.AdjustmentPercent = cut.Neg()
		s.Reason = fmt.Sprintf("Reduce price by %s%% to increase utilization", cut.StringFixed(1))
	case current.GreaterThan(target.Mul(highUtilizationRatio)):
		raise := decimal.Min(maxIncreasePercent, current.Sub(target).Mul(increaseFactor))
		s.AdjustmentPercent = raise
		s.Reason = fmt.Sprintf("Increase price by %s%% due to high demand", raise.StringFixed(1))
	default:
		s.Reason = "Current pricing is optimal"
		return s
	}

	factor := hundred.Add(s.AdjustmentPercent).Div(hundred)
	s.SuggestedPrice = NewMoney(decimal.NewFromInt(price.Minor()).Mul(factor).Round(0).IntPart())
	return s
}

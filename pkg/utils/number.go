package utils

import "github.com/shopspring/decimal"

// Percent devolve part/total*100 arredondado em duas casas; zero quando total é zero
func Percent(part, total int64) float64 {
	if total == 0 {
		return 0
	}

	return decimal.NewFromInt(part).
		Mul(decimal.NewFromInt(100)).
		DivRound(decimal.NewFromInt(total), 2).
		InexactFloat64()
}

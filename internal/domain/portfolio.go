package domain

import (
	"github.com/shopspring/decimal"
)

// Portfolio is the user's trading state: cash on hand and shares of the one
// simulated asset. Cash is kept to two decimal places.
type Portfolio struct {
	Cash        decimal.Decimal `json:"cash"`
	SharesOwned int64           `json:"sharesOwned"`
}

// DefaultStartingCash seeds a fresh portfolio when no saved state exists.
var DefaultStartingCash = decimal.NewFromInt(10000)

func NewPortfolio() *Portfolio {
	return &Portfolio{
		Cash:        DefaultStartingCash,
		SharesOwned: 0,
	}
}

func (p Portfolio) DeepCopy() *Portfolio {
	return &Portfolio{
		Cash:        p.Cash,
		SharesOwned: p.SharesOwned,
	}
}

// TotalValue is cash plus the market value of held shares at the given price.
func (p Portfolio) TotalValue(price decimal.Decimal) decimal.Decimal {
	return p.Cash.Add(price.Mul(decimal.NewFromInt(p.SharesOwned)))
}

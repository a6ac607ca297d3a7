package repoargs

import "github.com/shopspring/decimal"

// AdjustBalance относительное изменение баланса счета. Отрицательная Delta - списание.
type AdjustBalance struct {
	UserID int64
	Delta  decimal.Decimal
}

package repoargs

import (
	"time"

	"github.com/shopspring/decimal"
)

// PurchasableItem строка объединенной выборки лот + победившая ставка + счет покупателя.
// Это снимок состояния на момент чтения, до каких-либо мутаций.
type PurchasableItem struct {
	NumBids      int64
	CurrentPrice decimal.Decimal
	EndDate      time.Time
	BidID        int64
	BuyerID      int64
	BuyerBalance decimal.Decimal
}

type CloseItem struct {
	ItemID    int64
	SellerID  int64
	UpdatedAt time.Time
}

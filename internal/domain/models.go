package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Item лот аукциона. Идентифицируется составным ключом (ID, SellerID).
type Item struct {
	ID           int64
	SellerID     int64
	NumBids      int64
	CurrentPrice decimal.Decimal
	EndDate      time.Time
	Status       ItemStatusType
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// WinningBid максимальная принятая ставка по лоту. Для данного сервиса - read only,
// записи создаются транзакциями торгов.
type WinningBid struct {
	BidID     int64
	ItemID    int64
	SellerID  int64
	BuyerID   int64
	Amount    decimal.Decimal
	CreatedAt time.Time
}

type Account struct {
	ID        int64
	Balance   decimal.Decimal
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Purchase запись о выкупе лота. Иммутабельна после создания.
type Purchase struct {
	ID        int64
	BidID     int64
	ItemID    int64
	SellerID  int64
	CreatedAt time.Time
}

// UserItem связь покупателя с лотом. После выкупа ссылается на Purchase.
type UserItem struct {
	UserID     int64
	ItemID     int64
	SellerID   int64
	PurchaseID *int64
	BidID      *int64
	CreatedAt  time.Time
}

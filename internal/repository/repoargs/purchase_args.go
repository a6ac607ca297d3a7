package repoargs

import "time"

type PurchaseCreate struct {
	ID       int64
	BidID    int64
	ItemID   int64
	SellerID int64
	Date     time.Time
}

// LinkPurchase привязывает существующую запись user_items к созданной записи о выкупе.
type LinkPurchase struct {
	UserID     int64
	ItemID     int64
	SellerID   int64
	PurchaseID int64
	BidID      int64
}

package domain

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

var (
	ErrRecordNotFound = errors.New("record not found")
	ErrDuplicateKey   = errors.New("duplicate key")
	ErrUnknown        = errors.New("unknown error")

	// ErrNoPurchasableItem лот не найден, принадлежит другому продавцу, не в статусе
	// WAITING_FOR_PURCHASE или без определившегося победителя. Эти случаи намеренно
	// не различаются: для вызывающей стороны это один и тот же отказ предусловия,
	// в том числе сигнал "лот уже выкуплен".
	ErrNoPurchasableItem = errors.New("no purchasable item")

	// ErrIntegrityViolation по ключу (item, seller) нашлось больше одной строки
	// с победившей ставкой. Данные повреждены выше по потоку, сервис не чинит их сам.
	ErrIntegrityViolation = errors.New("integrity violation: multiple winning bids")
)

// InsufficientFundsError средств покупателя (баланс + кредит) не хватает на выкуп.
// Несет цену, баланс и кредит для диагностики.
type InsufficientFundsError struct {
	Price   decimal.Decimal
	Balance decimal.Decimal
	Credit  decimal.Decimal
}

func (e *InsufficientFundsError) Error() string {
	return fmt.Sprintf(
		"buyer does not have enough money to purchase item [price=%s, balance=%s, credit=%s]",
		e.Price, e.Balance, e.Credit,
	)
}

// Package ident выводит идентификаторы дочерних записей лота из id самого лота.
//
// Каждому лоту отведено ElementsPerItem последовательных значений; дочерняя запись
// получает id = itemID*ElementsPerItem + element. Пока element лежит в интервале
// [0, ElementsPerItem), разным парам (itemID, element) соответствуют разные id,
// то есть коллизии между лотами исключены без центрального счетчика. Функция чистая:
// одинаковые аргументы всегда дают одинаковый id, что позволяет вызывающей стороне
// распознавать повторные попытки выкупа.
package ident

import (
	"fmt"
	"math"
)

// ElementsPerItem количество id, зарезервированных под дочерние записи одного лота.
const ElementsPerItem int64 = 256

// PurchaseElement фиксированный дискриминатор записи о выкупе: выкуп у лота один.
const PurchaseElement int64 = 1

// ElementID возвращает детерминированный id дочерней записи лота.
// Ошибка возвращается при element вне [0, ElementsPerItem), отрицательном itemID
// или переполнении int64.
func ElementID(itemID, element int64) (int64, error) {
	if element < 0 || element >= ElementsPerItem {
		return 0, fmt.Errorf("element %d is out of range [0, %d)", element, ElementsPerItem)
	}
	if itemID < 0 || itemID > (math.MaxInt64-element)/ElementsPerItem {
		return 0, fmt.Errorf("item id %d is out of range", itemID)
	}
	return itemID*ElementsPerItem + element, nil
}

// PurchaseID возвращает id записи о выкупе для лота itemID.
func PurchaseID(itemID int64) (int64, error) {
	return ElementID(itemID, PurchaseElement)
}

package orders

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// DiscountReasonPOTD labels promotional lines in order_items.
const DiscountReasonPOTD = "Pizza of the Day"

var hundred = decimal.NewFromInt(100)

// PriceLines prices each requested line against the table and sums the order
// total. Rounding is half-up to 2 decimals per line, before summation, so the
// persisted total always equals the sum of the persisted line totals.
//
// The promo discount applies only to Box lines of the promoted item.
// OrderID is left zero on the returned lines; the repository fills it in.
func PriceLines(table PriceTable, items []LineItem, promo *Promo) ([]OrderLine, decimal.Decimal, error) {
	if len(items) == 0 {
		return nil, decimal.Zero, ErrEmptyOrder
	}

	lines := make([]OrderLine, 0, len(items))
	total := decimal.Zero
	for _, it := range items {
		prices, ok := table[it.ItemID]
		if !ok {
			return nil, decimal.Zero, fmt.Errorf("%w: item_id %d", ErrItemNotFound, it.ItemID)
		}

		var unit decimal.Decimal
		switch it.OrderType {
		case OrderTypeBox:
			unit = prices.Box
		case OrderTypeSlice:
			unit = prices.Slice
		default:
			return nil, decimal.Zero, fmt.Errorf("order_type must be %q or %q, got %q",
				OrderTypeBox, OrderTypeSlice, it.OrderType)
		}
		if unit.Sign() <= 0 {
			return nil, decimal.Zero, fmt.Errorf("%w: %s of item_id %d",
				ErrFormUnavailable, it.OrderType, it.ItemID)
		}

		gross := unit.Mul(decimal.NewFromInt(int64(it.Quantity)))
		pct := decimal.Zero
		amount := decimal.Zero
		var reason *string
		if promo != nil && promo.Percent.IsPositive() &&
			it.OrderType == OrderTypeBox && it.ItemID == promo.ItemID {
			pct = promo.Percent
			amount = gross.Mul(pct).Div(hundred).Round(2)
			r := DiscountReasonPOTD
			reason = &r
		}
		lineTotal := gross.Sub(amount).Round(2)

		lines = append(lines, OrderLine{
			ItemID:          it.ItemID,
			OrderType:       it.OrderType,
			Quantity:        it.Quantity,
			UnitPrice:       unit,
			DiscountPercent: pct,
			DiscountAmount:  amount,
			LineTotal:       lineTotal,
			DiscountReason:  reason,
		})
		total = total.Add(lineTotal)
	}
	return lines, total.Round(2), nil
}

package catalog

import "github.com/shopspring/decimal"

// MenuItem is one row of the menu catalog. A zero BoxPrice or SlicePrice
// means the item is not sold in that form.
type MenuItem struct {
	ItemID     int64           `json:"item_id"`
	Name       string          `json:"name"`
	Category   string          `json:"category"`
	Size       string          `json:"size"`
	BoxPrice   decimal.Decimal `json:"box_price"`
	SlicePrice decimal.Decimal `json:"slice_price"`
}

type Store struct {
	StoreID int64  `json:"store_id"`
	City    string `json:"city"`
}

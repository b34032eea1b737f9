package models

import "github.com/shopspring/decimal"

// Product is a row of PRODUCT.
type Product struct {
	ID        NullString          `json:"P_ID"`
	Name      NullString          `json:"P_Name"`
	Category  NullString          `json:"Category"`
	UnitPrice decimal.NullDecimal `json:"Unit_price"`
}

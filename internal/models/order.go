package models

import "encoding/json"

// ProductionOrder is a row of PRODUCTION_ORDER.
type ProductionOrder struct {
	ID        NullString `json:"Order_ID"`
	OrderDate NullString `json:"Order_date"`
	DueDate   NullString `json:"Due_date"`
	Priority  NullString `json:"Priority"`
	Status    NullString `json:"Status"`
	Qty       NullInt64  `json:"Qty"`
}

// OrderPriority is the confirmation row read back after priorities are recomputed.
type OrderPriority struct {
	OrderID  NullString `json:"Order_ID"`
	Qty      NullInt64  `json:"Qty"`
	Priority NullString `json:"Priority"`
}

// MarshalJSON renders the row positionally as [Order_ID, Qty, Priority],
// the shape a plain cursor returns.
func (p OrderPriority) MarshalJSON() ([]byte, error) {
	return json.Marshal([]any{p.OrderID, p.Qty, p.Priority})
}

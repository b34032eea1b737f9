package models

// Machine is a row of MACHINE. Status is a free-text label such as "Working".
type Machine struct {
	ID           NullString `json:"M_ID"`
	Name         NullString `json:"Name"`
	Model        NullString `json:"Model"`
	Manufacturer NullString `json:"Manufacturer"`
	PurchaseDate NullString `json:"Purchase_date"`
	Status       NullString `json:"Status"`
}

package models

// Factory is a row of FACTORY.
type Factory struct {
	ID          NullString `json:"F_ID"`
	Name        NullString `json:"F_Name"`
	Address     NullString `json:"Address"`
	Phone       NullString `json:"Ph_no"`
	ManagerName NullString `json:"Manager_name"`
}

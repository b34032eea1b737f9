package models

import "github.com/shopspring/decimal"

// Employee is a row of EMPLOYEE.
type Employee struct {
	ID        NullString          `json:"E_ID"`
	FirstName NullString          `json:"FName"`
	LastName  NullString          `json:"LName"`
	Email     NullString          `json:"Email"`
	Position  NullString          `json:"Position"`
	Category  NullString          `json:"Category"`
	Salary    decimal.NullDecimal `json:"Salary"`
	HireDate  NullString          `json:"Hire_date"`
}

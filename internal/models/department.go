package models

import "github.com/shopspring/decimal"

// Department is a row of DEPARTMENT.
type Department struct {
	ID     NullString          `json:"Dept_ID"`
	Name   NullString          `json:"Dept_name"`
	Budget decimal.NullDecimal `json:"Budget"`
}

// Employment is a row of the EMPLOYS association table.
type Employment struct {
	EmployeeID   string `json:"E_ID"`
	DepartmentID string `json:"Dept_ID"`
}

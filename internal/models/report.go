package models

import "github.com/shopspring/decimal"

// EmployeeReportRow is one row of the employee/department/order join report.
type EmployeeReportRow struct {
	EmployeeID           NullString          `json:"E_ID"`
	FullName             NullString          `json:"FullName"`
	Email                NullString          `json:"Email"`
	Position             NullString          `json:"Position"`
	Department           NullString          `json:"Department"`
	DepartmentBudget     decimal.NullDecimal `json:"DepartmentBudget"`
	Salary               decimal.NullDecimal `json:"Salary"`
	HireDate             NullString          `json:"Hire_date"`
	OrdersInvolved       int64               `json:"OrdersInvolved"`
	TotalQuantityHandled decimal.NullDecimal `json:"TotalQuantityHandled"`
}

type OrderCount struct {
	TotalOrders int64 `json:"total_orders"`
}

type DuplicateEmail struct {
	Email NullString `json:"Email"`
}

type DepartmentName struct {
	DepartmentName NullString `json:"department_name"`
}

type ProductQuantity struct {
	TotalQuantity decimal.NullDecimal `json:"total_quantity"`
}

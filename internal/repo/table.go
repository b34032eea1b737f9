package repo

import (
	"strings"

	"github.com/rogerio-castellano/factory-management/internal/models"
)

// Table describes how an entity maps onto its SQL table. Columns lists the
// non-key columns in the positional order used by INSERT and UPDATE.
type Table[T any] struct {
	Name    string
	Key     string
	Columns []string

	// fields returns pointers to the key followed by Columns, usable both as
	// Scan destinations and as statement arguments.
	fields func(*T) []any
	key    func(T) models.NullString
}

// KeyOf returns the primary-key value of row. It is not Valid when unset.
func (t Table[T]) KeyOf(row T) models.NullString {
	return t.key(row)
}

func (t Table[T]) allColumns() string {
	return t.Key + ", " + strings.Join(t.Columns, ", ")
}

func (t Table[T]) listSQL() string {
	return "SELECT " + t.allColumns() + " FROM " + t.Name + " ORDER BY " + t.Key
}

func (t Table[T]) getSQL() string {
	return "SELECT " + t.allColumns() + " FROM " + t.Name + " WHERE " + t.Key + " = ?"
}

func (t Table[T]) insertSQL() string {
	marks := strings.TrimSuffix(strings.Repeat("?, ", len(t.Columns)+1), ", ")
	return "INSERT INTO " + t.Name + " (" + t.allColumns() + ") VALUES (" + marks + ")"
}

func (t Table[T]) updateSQL() string {
	sets := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		sets[i] = c + "=?"
	}
	return "UPDATE " + t.Name + " SET " + strings.Join(sets, ", ") + " WHERE " + t.Key + "=?"
}

func (t Table[T]) deleteSQL() string {
	return "DELETE FROM " + t.Name + " WHERE " + t.Key + " = ?"
}

var EmployeeTable = Table[models.Employee]{
	Name:    "EMPLOYEE",
	Key:     "E_ID",
	Columns: []string{"FName", "LName", "Email", "Position", "Category", "Salary", "Hire_date"},
	fields: func(e *models.Employee) []any {
		return []any{&e.ID, &e.FirstName, &e.LastName, &e.Email, &e.Position, &e.Category, &e.Salary, &e.HireDate}
	},
	key: func(e models.Employee) models.NullString { return e.ID },
}

var DepartmentTable = Table[models.Department]{
	Name:    "DEPARTMENT",
	Key:     "Dept_ID",
	Columns: []string{"Dept_name", "Budget"},
	fields: func(d *models.Department) []any {
		return []any{&d.ID, &d.Name, &d.Budget}
	},
	key: func(d models.Department) models.NullString { return d.ID },
}

var FactoryTable = Table[models.Factory]{
	Name:    "FACTORY",
	Key:     "F_ID",
	Columns: []string{"F_Name", "Address", "Ph_no", "Manager_name"},
	fields: func(f *models.Factory) []any {
		return []any{&f.ID, &f.Name, &f.Address, &f.Phone, &f.ManagerName}
	},
	key: func(f models.Factory) models.NullString { return f.ID },
}

var MachineTable = Table[models.Machine]{
	Name:    "MACHINE",
	Key:     "M_ID",
	Columns: []string{"Name", "Model", "Manufacturer", "Purchase_date", "Status"},
	fields: func(m *models.Machine) []any {
		return []any{&m.ID, &m.Name, &m.Model, &m.Manufacturer, &m.PurchaseDate, &m.Status}
	},
	key: func(m models.Machine) models.NullString { return m.ID },
}

var ProductTable = Table[models.Product]{
	Name:    "PRODUCT",
	Key:     "P_ID",
	Columns: []string{"P_Name", "Category", "Unit_price"},
	fields: func(p *models.Product) []any {
		return []any{&p.ID, &p.Name, &p.Category, &p.UnitPrice}
	},
	key: func(p models.Product) models.NullString { return p.ID },
}

var OrderTable = Table[models.ProductionOrder]{
	Name:    "PRODUCTION_ORDER",
	Key:     "Order_ID",
	Columns: []string{"Order_date", "Due_date", "Priority", "Status", "Qty"},
	fields: func(o *models.ProductionOrder) []any {
		return []any{&o.ID, &o.OrderDate, &o.DueDate, &o.Priority, &o.Status, &o.Qty}
	},
	key: func(o models.ProductionOrder) models.NullString { return o.ID },
}

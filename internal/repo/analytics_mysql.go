package repo

import (
	"context"
	"database/sql"

	"github.com/rogerio-castellano/factory-management/internal/db"
	"github.com/rogerio-castellano/factory-management/internal/models"
)

// The order join matches employees to orders by comparing E_ID with
// Order_ID, so the order aggregates are empty unless ids collide.
const employeeReportLegacySQL = `
	SELECT
	  e.E_ID,
	  CONCAT(e.FName, ' ', e.LName) as FullName,
	  e.Email,
	  e.Position,
	  d.Dept_name as Department,
	  d.Budget as DepartmentBudget,
	  e.Salary,
	  e.Hire_date,
	  COUNT(DISTINCT po.Order_ID) as OrdersInvolved,
	  SUM(po.Qty) as TotalQuantityHandled
	FROM EMPLOYEE e
	LEFT JOIN EMPLOYS emp ON e.E_ID = emp.E_ID
	LEFT JOIN DEPARTMENT d ON emp.Dept_ID = d.Dept_ID
	LEFT JOIN PRODUCTION_ORDER po ON e.E_ID = po.Order_ID OR 1=0
	GROUP BY e.E_ID, e.FName, e.LName, e.Email, e.Position, d.Dept_name, d.Budget, e.Salary, e.Hire_date
	ORDER BY e.E_ID`

const employeeReportSQL = `
	SELECT
	  e.E_ID,
	  CONCAT(e.FName, ' ', e.LName) as FullName,
	  e.Email,
	  e.Position,
	  d.Dept_name as Department,
	  d.Budget as DepartmentBudget,
	  e.Salary,
	  e.Hire_date,
	  0 as OrdersInvolved,
	  NULL as TotalQuantityHandled
	FROM EMPLOYEE e
	LEFT JOIN EMPLOYS emp ON e.E_ID = emp.E_ID
	LEFT JOIN DEPARTMENT d ON emp.Dept_ID = d.Dept_ID
	ORDER BY e.E_ID`

const ordersAboveAverageSQL = `SELECT Order_ID, Order_date, Due_date, Priority, Status, Qty FROM PRODUCTION_ORDER WHERE Qty > (SELECT AVG(Qty) FROM PRODUCTION_ORDER)`

const countOrdersSQL = `SELECT COUNT(*) as total_orders FROM PRODUCTION_ORDER`

type MySQLAnalyticsRepository struct {
	db              *sql.DB
	legacyOrderJoin bool
}

// NewMySQLAnalyticsRepository returns the reporting repository. With
// legacyOrderJoin set, the employee report keeps the original order join.
func NewMySQLAnalyticsRepository(db *sql.DB, legacyOrderJoin bool) *MySQLAnalyticsRepository {
	return &MySQLAnalyticsRepository{db: db, legacyOrderJoin: legacyOrderJoin}
}

func (r *MySQLAnalyticsRepository) EmployeeReport(ctx context.Context) ([]models.EmployeeReportRow, error) {
	query := employeeReportSQL
	if r.legacyOrderJoin {
		query = employeeReportLegacySQL
	}

	conn, err := db.Acquire(ctx, r.db)
	if err != nil {
		return nil, err
	}
	defer conn.Close()

	rows, err := conn.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	report := []models.EmployeeReportRow{}
	for rows.Next() {
		var row models.EmployeeReportRow
		err := rows.Scan(&row.EmployeeID, &row.FullName, &row.Email, &row.Position, &row.Department,
			&row.DepartmentBudget, &row.Salary, &row.HireDate, &row.OrdersInvolved, &row.TotalQuantityHandled)
		if err != nil {
			return nil, err
		}
		report = append(report, row)
	}
	return report, rows.Err()
}

func (r *MySQLAnalyticsRepository) OrdersAboveAverage(ctx context.Context) ([]models.ProductionOrder, error) {
	conn, err := db.Acquire(ctx, r.db)
	if err != nil {
		return nil, err
	}
	defer conn.Close()

	return queryOrders(ctx, conn, ordersAboveAverageSQL)
}

func (r *MySQLAnalyticsRepository) CountOrders(ctx context.Context) (models.OrderCount, error) {
	var count models.OrderCount

	conn, err := db.Acquire(ctx, r.db)
	if err != nil {
		return count, err
	}
	defer conn.Close()

	err = conn.QueryRowContext(ctx, countOrdersSQL).Scan(&count.TotalOrders)
	return count, err
}

func queryOrders(ctx context.Context, conn *sql.Conn, query string, args ...any) ([]models.ProductionOrder, error) {
	rows, err := conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := []models.ProductionOrder{}
	for rows.Next() {
		var o models.ProductionOrder
		if err := rows.Scan(OrderTable.fields(&o)...); err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, rows.Err()
}

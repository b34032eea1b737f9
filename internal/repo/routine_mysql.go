package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/rogerio-castellano/factory-management/internal/db"
	"github.com/rogerio-castellano/factory-management/internal/models"
)

const (
	overdueOrdersSQL   = `SELECT Order_ID, Order_date, Due_date, Priority, Status, Qty FROM PRODUCTION_ORDER WHERE Due_date < CURDATE() AND Status <> 'Completed' LIMIT 1`
	duplicateEmailsSQL = `SELECT Email FROM EMPLOYEE GROUP BY LOWER(Email) HAVING COUNT(*) > 1`
	topOrdersByQtySQL  = `SELECT Order_ID, Qty, Priority FROM PRODUCTION_ORDER ORDER BY Qty DESC LIMIT 10`
)

type MySQLRoutineRepository struct {
	db *sql.DB
	// interpolate splices function inputs into the statement text instead
	// of binding them. Callers can inject SQL through it.
	interpolate bool
}

func NewMySQLRoutineRepository(db *sql.DB, interpolate bool) *MySQLRoutineRepository {
	return &MySQLRoutineRepository{db: db, interpolate: interpolate}
}

func (r *MySQLRoutineRepository) OverdueOrders(ctx context.Context) ([]models.ProductionOrder, error) {
	conn, err := db.Acquire(ctx, r.db)
	if err != nil {
		return nil, err
	}
	defer conn.Close()

	return queryOrders(ctx, conn, overdueOrdersSQL)
}

func (r *MySQLRoutineRepository) DuplicateEmails(ctx context.Context) ([]models.DuplicateEmail, error) {
	conn, err := db.Acquire(ctx, r.db)
	if err != nil {
		return nil, err
	}
	defer conn.Close()

	rows, err := conn.QueryContext(ctx, duplicateEmailsSQL)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	emails := []models.DuplicateEmail{}
	for rows.Next() {
		var e models.DuplicateEmail
		if err := rows.Scan(&e.Email); err != nil {
			return nil, err
		}
		emails = append(emails, e)
	}
	return emails, rows.Err()
}

func (r *MySQLRoutineRepository) DepartmentByEmployee(ctx context.Context, employeeID string) (*models.DepartmentName, error) {
	var res models.DepartmentName
	query, args := r.functionCall("get_department_by_emp", "department_name", employeeID)
	if err := r.scalar(ctx, query, args, &res.DepartmentName); err != nil {
		return nil, err
	}
	return &res, nil
}

func (r *MySQLRoutineRepository) TotalQuantityByProduct(ctx context.Context, productID string) (*models.ProductQuantity, error) {
	var res models.ProductQuantity
	query, args := r.functionCall("total_qty_by_product", "total_quantity", productID)
	if err := r.scalar(ctx, query, args, &res.TotalQuantity); err != nil {
		return nil, err
	}
	return &res, nil
}

// functionCall builds SELECT fn(input) as alias. fn and alias are constants
// of this package.
func (r *MySQLRoutineRepository) functionCall(fn, alias, input string) (string, []any) {
	if r.interpolate {
		return fmt.Sprintf("SELECT %s('%s') as %s", fn, input, alias), nil
	}
	return fmt.Sprintf("SELECT %s(?) as %s", fn, alias), []any{input}
}

func (r *MySQLRoutineRepository) scalar(ctx context.Context, query string, args []any, dest any) error {
	conn, err := db.Acquire(ctx, r.db)
	if err != nil {
		return err
	}
	defer conn.Close()

	err = conn.QueryRowContext(ctx, query, args...).Scan(dest)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	return err
}

func (r *MySQLRoutineRepository) AssignMachineToFactory(ctx context.Context, machineID, factoryID string) error {
	conn, err := db.Acquire(ctx, r.db)
	if err != nil {
		return err
	}
	defer conn.Close()

	return callProcedure(ctx, conn, "CALL assign_machine_to_factory(?, ?)", machineID, factoryID)
}

// UpdatePriorityByQuantity recomputes priorities and reads back the ten
// largest orders on the same connection.
func (r *MySQLRoutineRepository) UpdatePriorityByQuantity(ctx context.Context) ([]models.OrderPriority, error) {
	conn, err := db.Acquire(ctx, r.db)
	if err != nil {
		return nil, err
	}
	defer conn.Close()

	if err := callProcedure(ctx, conn, "CALL update_priority_based_on_qty()"); err != nil {
		return nil, err
	}

	rows, err := conn.QueryContext(ctx, topOrdersByQtySQL)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	sample := []models.OrderPriority{}
	for rows.Next() {
		var o models.OrderPriority
		if err := rows.Scan(&o.OrderID, &o.Qty, &o.Priority); err != nil {
			return nil, err
		}
		sample = append(sample, o)
	}
	return sample, rows.Err()
}

func callProcedure(ctx context.Context, conn *sql.Conn, query string, args ...any) error {
	tx, err := conn.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return errors.Join(err, fmt.Errorf("rollback failed: %w", rbErr))
		}
		return err
	}
	return tx.Commit()
}

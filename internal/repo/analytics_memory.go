package repo

import (
	"context"
	"sync"

	"github.com/rogerio-castellano/factory-management/internal/models"
	"github.com/shopspring/decimal"
)

// InMemoryEmployments stands in for the EMPLOYS association table.
type InMemoryEmployments struct {
	mu    sync.RWMutex
	links []models.Employment
}

func (e *InMemoryEmployments) Add(link models.Employment) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.links = append(e.links, link)
}

func (e *InMemoryEmployments) List() []models.Employment {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return append([]models.Employment(nil), e.links...)
}

func (e *InMemoryEmployments) Clear() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.links = nil
}

// InMemoryAnalyticsRepository computes the reports over the in-memory
// entity repositories.
type InMemoryAnalyticsRepository struct {
	employees   EmployeeRepository
	departments DepartmentRepository
	orders      OrderRepository
	employments *InMemoryEmployments

	mu              sync.RWMutex
	legacyOrderJoin bool
}

func NewInMemoryAnalyticsRepository(legacyOrderJoin bool) *InMemoryAnalyticsRepository {
	return &InMemoryAnalyticsRepository{legacyOrderJoin: legacyOrderJoin}
}

func (r *InMemoryAnalyticsRepository) SetRepositories(employees EmployeeRepository, departments DepartmentRepository, orders OrderRepository, employments *InMemoryEmployments) {
	r.employees = employees
	r.departments = departments
	r.orders = orders
	r.employments = employments
}

func (r *InMemoryAnalyticsRepository) SetLegacyOrderJoin(legacy bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.legacyOrderJoin = legacy
}

func (r *InMemoryAnalyticsRepository) EmployeeReport(ctx context.Context) ([]models.EmployeeReportRow, error) {
	employees, err := r.employees.List(ctx)
	if err != nil {
		return nil, err
	}
	orders, err := r.orders.List(ctx)
	if err != nil {
		return nil, err
	}

	employments := r.employments.List()

	r.mu.RLock()
	legacy := r.legacyOrderJoin
	r.mu.RUnlock()

	report := []models.EmployeeReportRow{}
	for _, e := range employees {
		base := models.EmployeeReportRow{
			EmployeeID: e.ID,
			FullName:   concatName(e.FirstName, e.LastName),
			Email:      e.Email,
			Position:   e.Position,
			Salary:     e.Salary,
			HireDate:   e.HireDate,
		}
		if legacy {
			base.OrdersInvolved, base.TotalQuantityHandled = ordersMatching(orders, e.ID.String)
		}

		var depts []*models.Department
		for _, link := range employments {
			if link.EmployeeID != e.ID.String {
				continue
			}
			d, err := r.departments.GetByID(ctx, link.DepartmentID)
			if err != nil {
				depts = append(depts, nil)
				continue
			}
			depts = append(depts, &d)
		}
		if len(depts) == 0 {
			depts = append(depts, nil)
		}

		for _, d := range depts {
			row := base
			if d != nil {
				row.Department = d.Name
				row.DepartmentBudget = d.Budget
			}
			report = append(report, row)
		}
	}
	return report, nil
}

// ordersMatching mirrors the join condition e.E_ID = po.Order_ID.
func ordersMatching(orders []models.ProductionOrder, employeeID string) (int64, decimal.NullDecimal) {
	var count int64
	var total decimal.NullDecimal
	for _, o := range orders {
		if !o.ID.Valid || o.ID.String != employeeID {
			continue
		}
		count++
		if o.Qty.Valid {
			total = decimal.NewNullDecimal(total.Decimal.Add(decimal.NewFromInt(o.Qty.Int64)))
		}
	}
	return count, total
}

// concatName follows CONCAT semantics: any NULL argument yields NULL.
func concatName(first, last models.NullString) models.NullString {
	if !first.Valid || !last.Valid {
		return models.NullString{}
	}
	return models.NewNullString(first.String + " " + last.String)
}

func (r *InMemoryAnalyticsRepository) OrdersAboveAverage(ctx context.Context) ([]models.ProductionOrder, error) {
	orders, err := r.orders.List(ctx)
	if err != nil {
		return nil, err
	}

	var sum, n int64
	for _, o := range orders {
		if o.Qty.Valid {
			sum += o.Qty.Int64
			n++
		}
	}

	result := []models.ProductionOrder{}
	if n == 0 {
		return result, nil
	}
	avg := decimal.NewFromInt(sum).Div(decimal.NewFromInt(n))
	for _, o := range orders {
		if o.Qty.Valid && decimal.NewFromInt(o.Qty.Int64).GreaterThan(avg) {
			result = append(result, o)
		}
	}
	return result, nil
}

func (r *InMemoryAnalyticsRepository) CountOrders(ctx context.Context) (models.OrderCount, error) {
	orders, err := r.orders.List(ctx)
	if err != nil {
		return models.OrderCount{}, err
	}
	return models.OrderCount{TotalOrders: int64(len(orders))}, nil
}

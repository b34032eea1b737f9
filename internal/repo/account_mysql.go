package repo

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/rogerio-castellano/factory-management/internal/db"
	"github.com/rogerio-castellano/factory-management/internal/models"
)

const listAccountsSQL = `SELECT User, Host FROM mysql.user WHERE User NOT IN ('mysql.session','mysql.sys','root') ORDER BY User`

type MySQLAccountRepository struct {
	db *sql.DB
}

func NewMySQLAccountRepository(db *sql.DB) *MySQLAccountRepository {
	return &MySQLAccountRepository{db: db}
}

func (r *MySQLAccountRepository) List(ctx context.Context) ([]models.Account, error) {
	conn, err := db.Acquire(ctx, r.db)
	if err != nil {
		return nil, err
	}
	defer conn.Close()

	accounts, err := listAccounts(ctx, conn)
	if err != nil {
		return nil, err
	}
	for i := range accounts {
		accounts[i].Grants = showGrants(ctx, conn, accounts[i].User, accounts[i].Host)
	}
	return accounts, nil
}

func listAccounts(ctx context.Context, conn *sql.Conn) ([]models.Account, error) {
	rows, err := conn.QueryContext(ctx, listAccountsSQL)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	accounts := []models.Account{}
	for rows.Next() {
		var a models.Account
		if err := rows.Scan(&a.User, &a.Host); err != nil {
			return nil, err
		}
		accounts = append(accounts, a)
	}
	return accounts, rows.Err()
}

// showGrants returns the account's grant statements. Lookup failures yield
// no grants. SHOW GRANTS cannot be parameterized; user and host come from
// mysql.user.
func showGrants(ctx context.Context, conn *sql.Conn, user, host string) []string {
	grants := []string{}

	rows, err := conn.QueryContext(ctx, fmt.Sprintf("SHOW GRANTS FOR '%s'@'%s'", user, host))
	if err != nil {
		return grants
	}
	defer rows.Close()

	for rows.Next() {
		var g string
		if err := rows.Scan(&g); err != nil {
			return []string{}
		}
		grants = append(grants, g)
	}
	return grants
}

func (r *MySQLAccountRepository) Execute(ctx context.Context, statements []string) error {
	conn, err := db.Acquire(ctx, r.db)
	if err != nil {
		return err
	}
	defer conn.Close()

	for _, stmt := range statements {
		if _, err := conn.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}

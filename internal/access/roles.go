// Package access renders the account and grant statements for the three
// role bundles and infers an account's role back from its grants.
package access

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

type Role string

const (
	Admin    Role = "admin"
	Operator Role = "operator"
	Analyst  Role = "analyst"
	Custom   Role = "custom"
)

// CoreTables are the entity tables the operator bundle grants CRUD on.
var CoreTables = []string{"EMPLOYEE", "DEPARTMENT", "FACTORY", "MACHINE", "PRODUCT", "PRODUCTION_ORDER"}

var (
	analystFunctions  = []string{"get_department_by_emp", "total_qty_by_product"}
	analystProcedures = []string{"assign_machine_to_factory", "update_priority_based_on_qty"}
)

var usernameRe = regexp.MustCompile(`^[A-Za-z0-9_]{3,30}$`)

var (
	ErrInvalidUsername = errors.New("Username must be 3-30 chars, letters/numbers/underscore only")
	ErrInvalidPassword = errors.New("Password must be at least 6 characters")
	ErrInvalidRole     = errors.New("Role must be one of: admin, operator, analyst")
)

const minPasswordLength = 6

// Request is a validated account creation request.
type Request struct {
	Username string
	Password string
	Role     Role
}

// NewRequest normalizes and validates the raw input. Username and role are
// checked against allow-lists before they are used as SQL identifiers.
func NewRequest(username, password, role string) (Request, error) {
	username = strings.TrimSpace(username)
	if !usernameRe.MatchString(username) {
		return Request{}, ErrInvalidUsername
	}
	if utf8.RuneCountInString(password) < minPasswordLength {
		return Request{}, ErrInvalidPassword
	}

	r := Role(strings.ToLower(strings.TrimSpace(role)))
	switch r {
	case Admin, Operator, Analyst:
	default:
		return Request{}, ErrInvalidRole
	}

	return Request{Username: username, Password: password, Role: r}, nil
}

// Statements renders the CREATE USER, GRANT and FLUSH statements for req on
// schema. The password is spliced into the CREATE USER text as a quoted
// literal; MySQL account statements accept no bound parameters.
func Statements(req Request, schema string) []string {
	account := fmt.Sprintf("'%s'@'%%'", req.Username)

	stmts := []string{
		fmt.Sprintf("CREATE USER IF NOT EXISTS %s IDENTIFIED BY '%s'", account, req.Password),
	}

	switch req.Role {
	case Admin:
		stmts = append(stmts, fmt.Sprintf("GRANT ALL PRIVILEGES ON `%s`.* TO %s ", schema, account))
	case Operator:
		for _, t := range CoreTables {
			stmts = append(stmts, fmt.Sprintf("GRANT SELECT, INSERT, UPDATE, DELETE ON `%s`.`%s` TO %s ", schema, t, account))
		}
	case Analyst:
		stmts = append(stmts, fmt.Sprintf("GRANT SELECT ON `%s`.* TO %s ", schema, account))
		for _, fn := range analystFunctions {
			stmts = append(stmts, fmt.Sprintf("GRANT EXECUTE ON FUNCTION `%s`.`%s` TO %s ", schema, fn, account))
		}
		for _, proc := range analystProcedures {
			stmts = append(stmts, fmt.Sprintf("GRANT EXECUTE ON PROCEDURE `%s`.`%s` TO %s ", schema, proc, account))
		}
	}

	return append(stmts, "FLUSH PRIVILEGES")
}

// DetectRole classifies an account by matching its SHOW GRANTS output
// against the three bundles, most privileged first.
func DetectRole(grants []string, schema string) Role {
	joined := strings.Join(grants, "\n")

	if strings.Contains(joined, fmt.Sprintf("GRANT ALL PRIVILEGES ON `%s`.*", schema)) ||
		strings.Contains(joined, fmt.Sprintf("GRANT ALL PRIVILEGES ON %s.*", schema)) {
		return Admin
	}

	if hasCRUDOnCoreTables(grants, schema) {
		return Operator
	}

	schemaWide := strings.Contains(joined, fmt.Sprintf("ON `%s`.*", schema)) ||
		strings.Contains(joined, fmt.Sprintf("ON %s.*", schema))
	if (strings.Contains(joined, "GRANT SELECT ON") && schemaWide) || strings.Contains(joined, "GRANT EXECUTE ON") {
		return Analyst
	}

	return Custom
}

func hasCRUDOnCoreTables(grants []string, schema string) bool {
	for _, t := range CoreTables {
		target := fmt.Sprintf("ON `%s`.`%s`", schema, t)
		found := false
		for _, g := range grants {
			if strings.Contains(g, target) && containsAny(g, "INSERT", "UPDATE", "DELETE", "SELECT") {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

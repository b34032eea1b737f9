package models

// Account is a database login as listed in mysql.user.
type Account struct {
	User   string   `json:"user"`
	Host   string   `json:"host"`
	Role   string   `json:"role"`
	Grants []string `json:"grants"`
}

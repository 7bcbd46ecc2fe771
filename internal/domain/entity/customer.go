package entity

import "time"

// Customer cliente de la empresa (receptor de facturas).
type Customer struct {
	ID        string
	CompanyID string
	Name      string
	RNC       string // RNC o cédula; vacío para consumidor final
	Email     string
	Phone     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

package entity

import "time"

// Company representa una empresa/tenant del sistema (emisora de facturas).
type Company struct {
	ID        string
	Name      string
	RNC       string // RNC de la empresa emisora
	Address   string
	Phone     string
	Email     string
	Status    string // active, suspended, inactive
	CreatedAt time.Time
	UpdatedAt time.Time
}

package dto

import "time"

// CreateSequenceRequest body para POST /api/ncf-sequences: registra un rango
// de numeración autorizado por la DGII.
type CreateSequenceRequest struct {
	Tipo        string `json:"tipo"`
	Prefix      string `json:"prefix"`
	FinalNumber int64  `json:"final_number"`
	// CurrentValue permite migrar un rango ya parcialmente consumido.
	CurrentValue int64      `json:"current_value,omitempty"`
	ExpiryDate   *time.Time `json:"expiry_date,omitempty"`
}

// SequenceResponse secuencia en respuestas.
type SequenceResponse struct {
	ID           string     `json:"id"`
	Tipo         string     `json:"tipo"`
	Prefix       string     `json:"prefix"`
	FinalNumber  int64      `json:"final_number"`
	CurrentValue int64      `json:"current_value"`
	Remaining    int64      `json:"remaining"`
	IsActive     bool       `json:"is_active"`
	ExpiryDate   *time.Time `json:"expiry_date,omitempty"`
}

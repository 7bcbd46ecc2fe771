package dto

// CreateCompanyRequest body para POST /api/companies (alta de empresa emisora).
type CreateCompanyRequest struct {
	Name    string `json:"name"`
	RNC     string `json:"rnc"`
	Address string `json:"address,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Email   string `json:"email,omitempty"`
}

// CompanyResponse empresa en respuestas.
type CompanyResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	RNC     string `json:"rnc"`
	Address string `json:"address,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Email   string `json:"email,omitempty"`
	Status  string `json:"status"`
}

package domain

type Phone struct {
	ID         int32   `json:"id"`
	Number     string  `json:"number"`
	AltNumber  *string `json:"alt_number,omitempty"`
	CustomerID string  `json:"customer_id"`
}

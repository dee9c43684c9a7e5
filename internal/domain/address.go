package domain

type Address struct {
	ID         int32  `json:"id"`
	Street     string `json:"street"`
	Number     int32  `json:"number"`
	District   string `json:"district"`
	City       string `json:"city"`
	State      string `json:"state"`
	ZipCode    string `json:"zip_code"`
	CustomerID string `json:"customer_id"`
}

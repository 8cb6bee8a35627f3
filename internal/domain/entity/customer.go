package entity

// Customer represents a client record as served by the backend.
type Customer struct {
	ID            int     `json:"id"`
	Name          string  `json:"name"`
	NationalID    string  `json:"cin"`
	BirthDate     string  `json:"dateNaiss"`
	Phone         string  `json:"phone"`
	Email         string  `json:"email"`
	Address       string  `json:"address"`
	LifetimeSpend float64 `json:"chiffre"`
}

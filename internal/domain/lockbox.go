package domain

// Lockbox holds the combination for the equipment lockbox at one campus
// location. The password is handed to a borrower on successful checkout.
type Lockbox struct {
	ID        int32  `json:"id"`
	Campus    string `json:"campus"`
	Location  string `json:"location"`
	Password  string `json:"password"`
	UpdatedBy string `json:"updated_by"`
	UpdatedOn string `json:"updated_on"`
}

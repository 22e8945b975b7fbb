package entities

// PaymentLine is one outsourcing/expense row attached to a project.
//
// Amount is an integer in the smallest currency unit and must be >= 0.

type PaymentLine struct {
	ID       string `json:"id"`
	Payee    string `json:"payee"`
	Category string `json:"category"`
	Amount   int64  `json:"amount"`
}

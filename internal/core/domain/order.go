package domain

import "fmt"

// Order is an append-only checkout record. Products are snapshots taken at
// checkout time.
type Order struct {
	Username   string    `json:"username" validate:"required"`
	Products   []Product `json:"products"`
	TotalPrice float64   `json:"totalPrice"`
}

// Receipt confirms a checkout.
type Receipt struct {
	Order Order
	Total float64
}

// FormattedTotal renders the total with two decimals. The stored total is
// never rounded.
func (r Receipt) FormattedTotal() string {
	return fmt.Sprintf("%.2f", r.Total)
}

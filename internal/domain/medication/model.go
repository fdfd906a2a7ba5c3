// Package medication holds the medicine inventory.
package medication

import "errors"

// ErrInsufficientStock is returned by Deduct when the stock cannot cover the
// requested quantity.
var ErrInsufficientStock = errors.New("insufficient stock")

// Medicine is a stocked inventory item.
type Medicine struct {
	ID              int     `json:"id"`
	Name            string  `json:"name"`
	Price           float64 `json:"price"`
	QuantityInStock int     `json:"quantity_in_stock"`
	ExpiryDate      string  `json:"expiry_date"`
}

func NewMedicine(id int, name string, price float64, quantity int, expiryDate string) *Medicine {
	return &Medicine{
		ID:              id,
		Name:            name,
		Price:           price,
		QuantityInStock: quantity,
		ExpiryDate:      expiryDate,
	}
}

// CheckAvailability reports whether at least required units are in stock.
func (m *Medicine) CheckAvailability(required int) bool {
	return m.QuantityInStock >= required
}

// UpdateStock adds delta to the stock and returns the new quantity. A
// negative delta larger than the stock leaves the quantity negative.
func (m *Medicine) UpdateStock(delta int) int {
	m.QuantityInStock += delta
	return m.QuantityInStock
}

// Deduct removes quantity units if they are available.
func (m *Medicine) Deduct(quantity int) error {
	if !m.CheckAvailability(quantity) {
		return ErrInsufficientStock
	}
	m.UpdateStock(-quantity)
	return nil
}

// LineCost is the charge for quantity units at the current price.
func (m *Medicine) LineCost(quantity int) float64 {
	return m.Price * float64(quantity)
}

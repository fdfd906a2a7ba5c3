// Package billing holds patient bills and their payment state.
package billing

import "math"

// PaymentStatus is the settlement state of a bill.
type PaymentStatus string

const (
	StatusUnpaid PaymentStatus = "Unpaid"
	StatusPaid   PaymentStatus = "Paid"
)

// ServiceLine is one billed service.
type ServiceLine struct {
	Description string  `json:"description"`
	Cost        float64 `json:"cost"`
}

// MedicineLine is one billed medicine dispensation.
type MedicineLine struct {
	MedicineID int     `json:"medicine_id"`
	Quantity   int     `json:"quantity"`
	UnitPrice  float64 `json:"unit_price"`
}

// Cost is the line total.
func (l MedicineLine) Cost() float64 {
	return l.UnitPrice * float64(l.Quantity)
}

// Billing is a patient's bill. TotalAmount is the sum of every line ever
// added; lines are never removed.
type Billing struct {
	ID              int            `json:"id"`
	PatientID       int            `json:"patient_id"`
	TotalAmount     float64        `json:"total_amount"`
	PaymentStatus   PaymentStatus  `json:"payment_status"`
	ServicesAvailed []ServiceLine  `json:"services_availed,omitempty"`
	Medicines       []MedicineLine `json:"medicines,omitempty"`
}

// PaymentResult reports the outcome of one payment attempt. Exactly one of
// Change or Shortfall is meaningful, selected by Paid.
type PaymentResult struct {
	Paid      bool
	Change    float64
	Shortfall float64
}

func NewBilling(id, patientID int) *Billing {
	return &Billing{ID: id, PatientID: patientID, PaymentStatus: StatusUnpaid}
}

func (b *Billing) IsPaid() bool {
	return b.PaymentStatus == StatusPaid
}

// AddService appends a service line. Negative costs are accepted.
func (b *Billing) AddService(description string, cost float64) {
	b.ServicesAvailed = append(b.ServicesAvailed, ServiceLine{Description: description, Cost: cost})
	b.TotalAmount += cost
}

// AddMedicine appends a medicine line costing price × quantity.
func (b *Billing) AddMedicine(medicineID, quantity int, price float64) {
	line := MedicineLine{MedicineID: medicineID, Quantity: quantity, UnitPrice: price}
	b.Medicines = append(b.Medicines, line)
	b.TotalAmount += line.Cost()
}

// ProcessPayment settles the bill when amount covers TotalAmount. Both are
// compared in whole cents. A short payment changes nothing and is not
// credited against later attempts.
func (b *Billing) ProcessPayment(amount float64) PaymentResult {
	paid, due := cents(amount), cents(b.TotalAmount)
	if paid >= due {
		b.PaymentStatus = StatusPaid
		return PaymentResult{Paid: true, Change: float64(paid-due) / 100}
	}
	return PaymentResult{Shortfall: float64(due-paid) / 100}
}

func cents(v float64) int64 {
	return int64(math.Round(v * 100))
}

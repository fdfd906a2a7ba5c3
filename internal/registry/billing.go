package registry

import (
	"fmt"

	"github.com/ehr/hospital/internal/domain/billing"
	"github.com/ehr/hospital/internal/platform/sequence"
)

// CreateBill always opens a new unpaid bill, even when the patient already
// has one. The patient is not required to exist.
func (r *Registry) CreateBill(patientID int) *billing.Billing {
	b := billing.NewBilling(r.ids.Next(sequence.Billing), patientID)
	r.bills = append(r.bills, b)
	r.logger.Debug().Int("bill_id", b.ID).Int("patient_id", patientID).Msg("bill created")
	return b
}

// FindPatientBill returns the patient's first unpaid bill by insertion order.
func (r *Registry) FindPatientBill(patientID int) (*billing.Billing, bool) {
	for _, b := range r.bills {
		if b.PatientID == patientID && !b.IsPaid() {
			return b, true
		}
	}
	return nil, false
}

func (r *Registry) Bills() []*billing.Billing {
	return append([]*billing.Billing(nil), r.bills...)
}

// BillService charges a service to the patient's open bill.
func (r *Registry) BillService(patientID int, description string, cost float64) (*billing.Billing, error) {
	b, ok := r.FindPatientBill(patientID)
	if !ok {
		return nil, ErrNoUnpaidBill
	}
	b.AddService(description, cost)
	r.logger.Debug().Int("bill_id", b.ID).Str("service", description).Float64("cost", cost).Msg("service billed")
	return b, nil
}

// DispenseMedicine charges quantity units of a medicine to the patient's
// open bill and takes them out of stock. Nothing changes when the stock
// cannot cover the quantity.
func (r *Registry) DispenseMedicine(patientID, medicineID, quantity int) (*billing.Billing, error) {
	b, ok := r.FindPatientBill(patientID)
	if !ok {
		return nil, ErrNoUnpaidBill
	}
	m, ok := r.FindMedicine(medicineID)
	if !ok {
		return nil, ErrMedicineNotFound
	}
	if err := m.Deduct(quantity); err != nil {
		r.logger.Warn().Int("medicine_id", medicineID).Int("requested", quantity).
			Int("in_stock", m.QuantityInStock).Msg("dispense refused")
		return nil, fmt.Errorf("%s: %w", m.Name, err)
	}
	b.AddMedicine(medicineID, quantity, m.Price)
	r.logger.Debug().Int("bill_id", b.ID).Int("medicine_id", medicineID).Int("quantity", quantity).Msg("medicine billed")
	return b, nil
}

// PayBill applies a payment to the patient's open bill. A payment below the
// total leaves the bill unpaid and is not credited.
func (r *Registry) PayBill(patientID int, amount float64) (*billing.Billing, billing.PaymentResult, error) {
	b, ok := r.FindPatientBill(patientID)
	if !ok {
		return nil, billing.PaymentResult{}, ErrNoUnpaidBill
	}
	res := b.ProcessPayment(amount)
	if !res.Paid {
		r.logger.Warn().Int("bill_id", b.ID).Float64("amount", amount).Float64("shortfall", res.Shortfall).Msg("insufficient payment")
		return b, res, nil
	}
	r.logger.Info().Int("bill_id", b.ID).Float64("amount", amount).Float64("change", res.Change).Msg("bill paid")
	return b, res, nil
}

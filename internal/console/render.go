package console

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/ehr/hospital/internal/domain/billing"
	"github.com/ehr/hospital/internal/domain/clinical"
	"github.com/ehr/hospital/internal/domain/facility"
	"github.com/ehr/hospital/internal/domain/identity"
	"github.com/ehr/hospital/internal/domain/medication"
	"github.com/ehr/hospital/internal/domain/scheduling"
	"github.com/ehr/hospital/internal/registry"
)

const separator = "------------------------"

// Renderer prints entities as plain text blocks. Money is formatted with
// the locale's digit grouping behind a fixed currency symbol.
type Renderer struct {
	w      io.Writer
	p      *message.Printer
	symbol string
}

func NewRenderer(w io.Writer, tag language.Tag, currencySymbol string) *Renderer {
	return &Renderer{w: w, p: message.NewPrinter(tag), symbol: currencySymbol}
}

// Money formats an amount with two decimals.
func (r *Renderer) Money(v float64) string {
	return r.symbol + r.p.Sprintf("%.2f", v)
}

func (r *Renderer) line(format string, args ...interface{}) {
	fmt.Fprintf(r.w, format+"\n", args...)
}

func (r *Renderer) profile(p identity.Profile) {
	r.line("ID: %d", p.ID)
	r.line("Name: %s", p.Name)
	r.line("Age: %d", p.Age)
	r.line("Gender: %s", p.Gender)
	r.line("Address: %s", p.Address)
	r.line("Contact: %s", p.ContactNumber)
}

func (r *Renderer) staff(s identity.Staff) {
	r.profile(s.Profile)
	r.line("Salary: %s", r.Money(s.Salary))
	r.line("Department: %s", s.Department)
	r.line("Join Date: %s", s.JoinDate)
}

func (r *Renderer) Patient(p *identity.Patient) {
	r.line("Role: Patient")
	r.profile(p.Profile)
	r.line("Blood Group: %s", p.BloodGroup)
	r.line("Assigned Doctor ID: %d", p.AssignedDoctorID)
	if p.HasRoom() {
		r.line("Room: %d", p.RoomID)
	} else {
		r.line("Room: Not assigned")
	}
	if len(p.Diseases) > 0 {
		r.line("Diseases: %s", strings.Join(p.Diseases, ", "))
	}
}

func (r *Renderer) Doctor(d *identity.Doctor) {
	r.line("Role: Doctor")
	r.staff(d.Staff)
	r.line("Specialization: %s", d.Specialization)
	r.line("License: %s", d.LicenseNumber)
	if len(d.AvailableSlots) > 0 {
		r.line("Available Slots: %s", strings.Join(d.AvailableSlots, ", "))
	}
}

func (r *Renderer) Nurse(n *identity.Nurse) {
	r.line("Role: Nurse")
	r.staff(n.Staff)
	r.line("Shift: %s", n.ShiftTime)
	r.line("Qualification: %s", n.Qualification)
	if n.AssistingDoctorID != nil {
		r.line("Assisting Doctor ID: %d", *n.AssistingDoctorID)
	}
	if len(n.MonitoredPatientIDs) > 0 {
		ids := make([]string, len(n.MonitoredPatientIDs))
		for i, id := range n.MonitoredPatientIDs {
			ids[i] = fmt.Sprint(id)
		}
		r.line("Monitoring Patients: %s", strings.Join(ids, ", "))
	}
}

func (r *Renderer) Member(m registry.Member) {
	switch m.Kind {
	case identity.KindPatient:
		r.Patient(m.Patient)
	case identity.KindDoctor:
		r.Doctor(m.Doctor)
	case identity.KindNurse:
		r.Nurse(m.Nurse)
	}
}

func (r *Renderer) Medicine(m *medication.Medicine) {
	r.line("Medicine ID: %d", m.ID)
	r.line("Name: %s", m.Name)
	r.line("Price: %s", r.Money(m.Price))
	r.line("Quantity: %d", m.QuantityInStock)
	r.line("Expiry Date: %s", m.ExpiryDate)
}

func (r *Renderer) Room(room *facility.Room) {
	r.line("Room ID: %d", room.ID)
	r.line("Type: %s", room.Type)
	r.line("Status: %s", room.Status)
	if !room.IsVacant() {
		r.line("Patient ID: %d", room.PatientID)
	}
}

func (r *Renderer) Bill(b *billing.Billing) {
	r.line("Bill ID: %d", b.ID)
	r.line("Patient ID: %d", b.PatientID)
	for _, s := range b.ServicesAvailed {
		r.line("  Service: %s - %s", s.Description, r.Money(s.Cost))
	}
	for _, m := range b.Medicines {
		r.line("  Medicine %d x%d @ %s = %s", m.MedicineID, m.Quantity, r.Money(m.UnitPrice), r.Money(m.Cost()))
	}
	r.line("Total Amount: %s", r.Money(b.TotalAmount))
	r.line("Status: %s", b.PaymentStatus)
}

func (r *Renderer) Appointment(a *scheduling.Appointment) {
	r.line("Appointment ID: %d", a.ID)
	r.line("Patient ID: %d", a.PatientID)
	r.line("Doctor ID: %d", a.DoctorID)
	r.line("Date/Time: %s", a.DateTime)
	r.line("Status: %s", a.Status)
	if a.DiagnosisNotes != "" {
		r.line("Notes: %s", a.DiagnosisNotes)
	}
}

func (r *Renderer) Prescription(rx *clinical.Prescription) {
	r.line("Prescription ID: %d", rx.ID)
	r.line("Doctor ID: %d", rx.DoctorID)
	r.line("Date: %s", rx.DateIssued)
	for _, l := range rx.Lines() {
		r.line("  - %s (%s)", l.Medication, l.Dosage)
	}
}

func (r *Renderer) MedicalRecord(rec *clinical.MedicalRecord) {
	r.line("Record ID: %d", rec.ID)
	r.line("Doctor ID: %d", rec.DoctorID)
	r.line("Diagnosis: %s", rec.Diagnosis)
	r.line("Treatment Plan: %s", rec.TreatmentPlan)
	for _, t := range rec.TestReports {
		r.line("  Test: %s", t)
	}
}

// List prints each item followed by a separator, or empty when there are none.
func List[T any](r *Renderer, items []T, empty string, render func(T)) {
	if len(items) == 0 {
		r.line("%s", empty)
		return
	}
	for _, it := range items {
		render(it)
		r.line(separator)
	}
}

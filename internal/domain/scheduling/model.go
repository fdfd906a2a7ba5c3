// Package scheduling holds appointments and their status transitions.
package scheduling

import "errors"

// Status is the lifecycle state of an appointment.
type Status string

const (
	StatusPending   Status = "Pending"
	StatusCompleted Status = "Completed"
	StatusCancelled Status = "Cancelled"
)

// ErrNotPending is returned when completing an appointment that is missing
// or no longer pending.
var ErrNotPending = errors.New("appointment not found or not pending")

// Appointment is a visit booked by a patient with a doctor. DateTime is free
// text as entered (DD/MM/YYYY HH:MM by convention).
type Appointment struct {
	ID             int    `json:"id"`
	PatientID      int    `json:"patient_id"`
	DoctorID       int    `json:"doctor_id"`
	DateTime       string `json:"date_time"`
	Status         Status `json:"status"`
	DiagnosisNotes string `json:"diagnosis_notes,omitempty"`
}

// NewAppointment returns a pending appointment. No check is made that the
// doctor exists or that the slot is free.
func NewAppointment(id, patientID, doctorID int, dateTime string) *Appointment {
	return &Appointment{
		ID:        id,
		PatientID: patientID,
		DoctorID:  doctorID,
		DateTime:  dateTime,
		Status:    StatusPending,
	}
}

func (a *Appointment) IsPending() bool {
	return a.Status == StatusPending
}

// Complete moves a pending appointment to Completed and attaches notes.
func (a *Appointment) Complete(notes string) error {
	if !a.IsPending() {
		return ErrNotPending
	}
	a.Status = StatusCompleted
	a.DiagnosisNotes = notes
	return nil
}

// Cancel moves the appointment to Cancelled from any state, including
// Completed.
func (a *Appointment) Cancel() {
	a.Status = StatusCancelled
}

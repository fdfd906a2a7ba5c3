package registry

import (
	"github.com/ehr/hospital/internal/domain/clinical"
	"github.com/ehr/hospital/internal/domain/scheduling"
	"github.com/ehr/hospital/internal/platform/sequence"
)

// -- Appointments --

// ScheduleAppointment books an appointment for a patient. The doctor is not
// required to exist and no double-booking check is made; when the doctor is
// registered the appointment is also linked on the doctor's side.
func (r *Registry) ScheduleAppointment(patientID, doctorID int, dateTime string) (*scheduling.Appointment, error) {
	p, ok := r.FindPatient(patientID)
	if !ok {
		return nil, ErrPatientNotFound
	}
	a := scheduling.NewAppointment(r.ids.Next(sequence.Appointment), patientID, doctorID, dateTime)
	r.appointments = append(r.appointments, a)
	p.LinkAppointment(a.ID)
	if d, ok := r.FindDoctor(doctorID); ok {
		d.LinkAppointment(a.ID)
	}
	r.logger.Debug().Int("appointment_id", a.ID).Int("patient_id", patientID).
		Int("doctor_id", doctorID).Str("date_time", dateTime).Msg("appointment scheduled")
	return a, nil
}

func (r *Registry) FindAppointment(id int) (*scheduling.Appointment, bool) {
	for _, a := range r.appointments {
		if a.ID == id {
			return a, true
		}
	}
	return nil, false
}

// CompleteAppointment completes one of the doctor's pending appointments.
func (r *Registry) CompleteAppointment(doctorID, appointmentID int, notes string) error {
	d, ok := r.FindDoctor(doctorID)
	if !ok {
		return ErrDoctorNotFound
	}
	a, ok := r.FindAppointment(appointmentID)
	if !ok || !d.HasAppointment(appointmentID) {
		r.logger.Warn().Int("doctor_id", doctorID).Int("appointment_id", appointmentID).Msg("appointment not linked to doctor")
		return scheduling.ErrNotPending
	}
	if err := a.Complete(notes); err != nil {
		r.logger.Warn().Int("appointment_id", appointmentID).Str("status", string(a.Status)).Msg("complete refused")
		return err
	}
	r.logger.Debug().Int("appointment_id", appointmentID).Int("doctor_id", doctorID).Msg("appointment completed")
	return nil
}

// CancelAppointment moves an appointment to Cancelled from any status.
func (r *Registry) CancelAppointment(appointmentID int) error {
	a, ok := r.FindAppointment(appointmentID)
	if !ok {
		return ErrAppointmentNotFound
	}
	a.Cancel()
	r.logger.Debug().Int("appointment_id", appointmentID).Msg("appointment cancelled")
	return nil
}

// CancelPatientAppointment cancels one of the patient's own appointments.
// An appointment booked for someone else reports ErrAppointmentNotFound.
func (r *Registry) CancelPatientAppointment(patientID, appointmentID int) error {
	p, ok := r.FindPatient(patientID)
	if !ok {
		return ErrPatientNotFound
	}
	if !p.HasAppointment(appointmentID) {
		r.logger.Warn().Int("patient_id", patientID).Int("appointment_id", appointmentID).Msg("appointment not linked to patient")
		return ErrAppointmentNotFound
	}
	return r.CancelAppointment(appointmentID)
}

// PatientAppointments resolves the patient's appointment IDs in booking order.
func (r *Registry) PatientAppointments(patientID int) ([]*scheduling.Appointment, error) {
	p, ok := r.FindPatient(patientID)
	if !ok {
		return nil, ErrPatientNotFound
	}
	return r.resolveAppointments(p.AppointmentIDs), nil
}

// DoctorAppointments resolves the doctor's appointment IDs in booking order.
func (r *Registry) DoctorAppointments(doctorID int) ([]*scheduling.Appointment, error) {
	d, ok := r.FindDoctor(doctorID)
	if !ok {
		return nil, ErrDoctorNotFound
	}
	return r.resolveAppointments(d.AppointmentIDs), nil
}

func (r *Registry) resolveAppointments(ids []int) []*scheduling.Appointment {
	out := make([]*scheduling.Appointment, 0, len(ids))
	for _, id := range ids {
		if a, ok := r.FindAppointment(id); ok {
			out = append(out, a)
		}
	}
	return out
}

// -- Prescriptions --

// AddPrescription attaches an empty prescription to the patient. An empty
// date is stored as clinical.DefaultDateIssued.
func (r *Registry) AddPrescription(patientID, doctorID int, dateIssued string) (*clinical.Prescription, error) {
	p, ok := r.FindPatient(patientID)
	if !ok {
		return nil, ErrPatientNotFound
	}
	rx := clinical.NewPrescription(r.ids.Next(sequence.Prescription), patientID, doctorID, dateIssued)
	p.AddPrescription(rx)
	r.logger.Debug().Int("prescription_id", rx.ID).Int("patient_id", patientID).Int("doctor_id", doctorID).Msg("prescription added")
	return rx, nil
}

// AddMedication appends a medication line to one of the patient's prescriptions.
func (r *Registry) AddMedication(patientID, prescriptionID int, medication, dosage string) error {
	p, ok := r.FindPatient(patientID)
	if !ok {
		return ErrPatientNotFound
	}
	rx, ok := p.Prescription(prescriptionID)
	if !ok {
		return ErrPrescriptionNotFound
	}
	rx.AddMedication(medication, dosage)
	r.logger.Debug().Int("prescription_id", prescriptionID).Str("medication", medication).Msg("medication added")
	return nil
}

// PrescribeMedication issues a one-line prescription from a doctor.
func (r *Registry) PrescribeMedication(doctorID, patientID int, medication, dosage string) (*clinical.Prescription, error) {
	rx, err := r.AddPrescription(patientID, doctorID, "")
	if err != nil {
		return nil, err
	}
	rx.AddMedication(medication, dosage)
	return rx, nil
}

// -- Medical records --

func (r *Registry) AddMedicalRecord(patientID, doctorID int, diagnosis, treatmentPlan string) (*clinical.MedicalRecord, error) {
	p, ok := r.FindPatient(patientID)
	if !ok {
		return nil, ErrPatientNotFound
	}
	rec := clinical.NewMedicalRecord(r.ids.Next(sequence.MedicalRecord), patientID, doctorID, diagnosis, treatmentPlan)
	p.AddMedicalRecord(rec)
	r.logger.Debug().Int("record_id", rec.ID).Int("patient_id", patientID).Int("doctor_id", doctorID).Msg("medical record added")
	return rec, nil
}

func (r *Registry) medicalRecord(patientID, recordID int) (*clinical.MedicalRecord, error) {
	p, ok := r.FindPatient(patientID)
	if !ok {
		return nil, ErrPatientNotFound
	}
	rec, ok := p.MedicalRecord(recordID)
	if !ok {
		return nil, ErrMedicalRecordNotFound
	}
	return rec, nil
}

func (r *Registry) AddTestResult(patientID, recordID int, result string) error {
	rec, err := r.medicalRecord(patientID, recordID)
	if err != nil {
		return err
	}
	rec.AddTestResult(result)
	r.logger.Debug().Int("record_id", recordID).Msg("test result recorded")
	return nil
}

func (r *Registry) UpdateTreatmentPlan(patientID, recordID int, plan string) error {
	rec, err := r.medicalRecord(patientID, recordID)
	if err != nil {
		return err
	}
	rec.UpdateTreatmentPlan(plan)
	r.logger.Debug().Int("record_id", recordID).Msg("treatment plan updated")
	return nil
}

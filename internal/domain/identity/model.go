// Package identity holds the people the hospital registers: patients,
// doctors and nurses, and the profile fields they share.
package identity

import (
	"github.com/ehr/hospital/internal/domain/clinical"
)

// Kind tags which role a registered person plays.
type Kind string

const (
	KindPatient Kind = "Patient"
	KindDoctor  Kind = "Doctor"
	KindNurse   Kind = "Nurse"
)

// NoRoom is the room reference held by a patient who is not admitted.
const NoRoom = -1

// Profile holds the attributes every registered person carries. The ID is
// supplied by the caller and is not checked for uniqueness.
type Profile struct {
	ID            int    `json:"id"`
	Name          string `json:"name"`
	Age           int    `json:"age"`
	Gender        string `json:"gender"`
	Address       string `json:"address"`
	ContactNumber string `json:"contact_number"`
}

// UpdateContactInfo replaces the address and contact number.
func (p *Profile) UpdateContactInfo(address, contact string) {
	p.Address = address
	p.ContactNumber = contact
}

// Staff is the employment record shared by doctors and nurses.
type Staff struct {
	Profile
	Salary     float64 `json:"salary"`
	Department string  `json:"department"`
	JoinDate   string  `json:"join_date"`
}

// Patient is a registered patient. Appointments live in the registry's
// appointment store and are referenced here by ID; prescriptions and
// medical records are owned by the patient.
type Patient struct {
	Profile
	BloodGroup       string                    `json:"blood_group"`
	Diseases         []string                  `json:"diseases,omitempty"`
	AssignedDoctorID int                       `json:"assigned_doctor_id"`
	RoomID           int                       `json:"room_id"`
	AppointmentIDs   []int                     `json:"appointment_ids,omitempty"`
	Prescriptions    []*clinical.Prescription  `json:"prescriptions,omitempty"`
	MedicalRecords   []*clinical.MedicalRecord `json:"medical_records,omitempty"`
}

// NewPatient returns a patient with no room assigned.
func NewPatient(profile Profile, bloodGroup string, assignedDoctorID int) *Patient {
	return &Patient{
		Profile:          profile,
		BloodGroup:       bloodGroup,
		AssignedDoctorID: assignedDoctorID,
		RoomID:           NoRoom,
	}
}

// AddDisease appends a diagnosed condition. Repeats are kept.
func (p *Patient) AddDisease(disease string) {
	p.Diseases = append(p.Diseases, disease)
}

// AssignRoom sets the patient's side of the occupancy link only. Use
// registry.AssignPatientToRoom to update the room as well.
func (p *Patient) AssignRoom(roomID int) {
	p.RoomID = roomID
}

// DischargeFromRoom clears the patient's side of the occupancy link only.
func (p *Patient) DischargeFromRoom() {
	p.RoomID = NoRoom
}

// HasRoom reports whether the patient references a room.
func (p *Patient) HasRoom() bool {
	return p.RoomID != NoRoom
}

// LinkAppointment records an appointment ID against the patient.
func (p *Patient) LinkAppointment(id int) {
	p.AppointmentIDs = append(p.AppointmentIDs, id)
}

// HasAppointment reports whether the appointment is linked to the patient.
func (p *Patient) HasAppointment(id int) bool {
	for _, a := range p.AppointmentIDs {
		if a == id {
			return true
		}
	}
	return false
}

// AddPrescription attaches a prescription to the patient.
func (p *Patient) AddPrescription(rx *clinical.Prescription) {
	p.Prescriptions = append(p.Prescriptions, rx)
}

// AddMedicalRecord attaches a medical record to the patient.
func (p *Patient) AddMedicalRecord(rec *clinical.MedicalRecord) {
	p.MedicalRecords = append(p.MedicalRecords, rec)
}

// Prescription returns the patient's prescription with the given ID.
func (p *Patient) Prescription(id int) (*clinical.Prescription, bool) {
	for _, rx := range p.Prescriptions {
		if rx.ID == id {
			return rx, true
		}
	}
	return nil, false
}

// MedicalRecord returns the patient's medical record with the given ID.
func (p *Patient) MedicalRecord(id int) (*clinical.MedicalRecord, bool) {
	for _, rec := range p.MedicalRecords {
		if rec.ID == id {
			return rec, true
		}
	}
	return nil, false
}

// Doctor is a staff member who sees patients.
type Doctor struct {
	Staff
	Specialization string   `json:"specialization"`
	LicenseNumber  string   `json:"license_number"`
	AvailableSlots []string `json:"available_slots,omitempty"`
	AppointmentIDs []int    `json:"appointment_ids,omitempty"`
}

// NewDoctor returns a doctor with no slots or appointments.
func NewDoctor(staff Staff, specialization, licenseNumber string) *Doctor {
	return &Doctor{Staff: staff, Specialization: specialization, LicenseNumber: licenseNumber}
}

// AddAvailableSlot appends a free time slot. Slots are not parsed.
func (d *Doctor) AddAvailableSlot(slot string) {
	d.AvailableSlots = append(d.AvailableSlots, slot)
}

// LinkAppointment records an appointment ID against the doctor.
func (d *Doctor) LinkAppointment(id int) {
	d.AppointmentIDs = append(d.AppointmentIDs, id)
}

// HasAppointment reports whether the appointment is linked to the doctor.
func (d *Doctor) HasAppointment(id int) bool {
	for _, a := range d.AppointmentIDs {
		if a == id {
			return true
		}
	}
	return false
}

// Nurse is a staff member working a shift.
type Nurse struct {
	Staff
	ShiftTime           string `json:"shift_time"`
	Qualification       string `json:"qualification"`
	AssistingDoctorID   *int   `json:"assisting_doctor_id,omitempty"`
	MonitoredPatientIDs []int  `json:"monitored_patient_ids,omitempty"`
}

// NewNurse returns a nurse who is not assisting anyone.
func NewNurse(staff Staff, shiftTime, qualification string) *Nurse {
	return &Nurse{Staff: staff, ShiftTime: shiftTime, Qualification: qualification}
}

// AssistDoctor records the doctor the nurse is assisting. The doctor is not
// looked up.
func (n *Nurse) AssistDoctor(doctorID int) {
	n.AssistingDoctorID = &doctorID
}

// MonitorPatient adds a patient to the nurse's watch list. Repeats are kept.
func (n *Nurse) MonitorPatient(patientID int) {
	n.MonitoredPatientIDs = append(n.MonitoredPatientIDs, patientID)
}

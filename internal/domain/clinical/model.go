// Package clinical holds prescriptions and medical records.
package clinical

// DefaultDateIssued is recorded when a prescription is issued without a date.
const DefaultDateIssued = "Current Date"

// Prescription is a list of medications paired with dosage instructions.
type Prescription struct {
	ID          int      `json:"id"`
	PatientID   int      `json:"patient_id"`
	DoctorID    int      `json:"doctor_id"`
	Medications []string `json:"medications,omitempty"`
	Dosages     []string `json:"dosages,omitempty"`
	DateIssued  string   `json:"date_issued"`
}

// MedicationLine pairs one medication with its dosage.
type MedicationLine struct {
	Medication string
	Dosage     string
}

func NewPrescription(id, patientID, doctorID int, dateIssued string) *Prescription {
	if dateIssued == "" {
		dateIssued = DefaultDateIssued
	}
	return &Prescription{ID: id, PatientID: patientID, DoctorID: doctorID, DateIssued: dateIssued}
}

// AddMedication appends to both lists so they stay the same length.
func (p *Prescription) AddMedication(medication, dosage string) {
	p.Medications = append(p.Medications, medication)
	p.Dosages = append(p.Dosages, dosage)
}

// Lines returns the medications zipped with their dosages.
func (p *Prescription) Lines() []MedicationLine {
	n := len(p.Medications)
	if len(p.Dosages) < n {
		n = len(p.Dosages)
	}
	lines := make([]MedicationLine, 0, n)
	for i := 0; i < n; i++ {
		lines = append(lines, MedicationLine{Medication: p.Medications[i], Dosage: p.Dosages[i]})
	}
	return lines
}

// MedicalRecord captures one diagnosis, its treatment plan and any test
// results gathered for it.
type MedicalRecord struct {
	ID            int      `json:"id"`
	PatientID     int      `json:"patient_id"`
	DoctorID      int      `json:"doctor_id"`
	Diagnosis     string   `json:"diagnosis"`
	TreatmentPlan string   `json:"treatment_plan"`
	TestReports   []string `json:"test_reports,omitempty"`
}

func NewMedicalRecord(id, patientID, doctorID int, diagnosis, plan string) *MedicalRecord {
	return &MedicalRecord{
		ID:            id,
		PatientID:     patientID,
		DoctorID:      doctorID,
		Diagnosis:     diagnosis,
		TreatmentPlan: plan,
	}
}

func (r *MedicalRecord) AddTestResult(result string) {
	r.TestReports = append(r.TestReports, result)
}

func (r *MedicalRecord) UpdateTreatmentPlan(plan string) {
	r.TreatmentPlan = plan
}

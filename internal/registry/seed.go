package registry

import (
	"github.com/ehr/hospital/internal/domain/facility"
	"github.com/ehr/hospital/internal/domain/identity"
)

// Sample person IDs loaded by Seed.
const (
	SamplePatientID = 101
	SampleDoctorID  = 201
	SampleNurseID   = 301
)

// Seed loads the fixed sample data: one patient, doctor and nurse, two
// medicines and one room of each type.
func Seed(r *Registry) {
	r.AddPatient(identity.NewPatient(identity.Profile{
		ID:            SamplePatientID,
		Name:          "John Smith",
		Age:           35,
		Gender:        "Male",
		Address:       "123 Main St",
		ContactNumber: "555-1234",
	}, "O+", SampleDoctorID))

	r.AddDoctor(identity.NewDoctor(identity.Staff{
		Profile: identity.Profile{
			ID:            SampleDoctorID,
			Name:          "Dr. Sarah Johnson",
			Age:           45,
			Gender:        "Female",
			Address:       "456 Oak Ave",
			ContactNumber: "555-5678",
		},
		Salary:     150000,
		Department: "Cardiology",
		JoinDate:   "01/01/2010",
	}, "Cardiologist", "MD12345"))

	r.AddNurse(identity.NewNurse(identity.Staff{
		Profile: identity.Profile{
			ID:            SampleNurseID,
			Name:          "Emily Davis",
			Age:           28,
			Gender:        "Female",
			Address:       "789 Pine Rd",
			ContactNumber: "555-9012",
		},
		Salary:     65000,
		Department: "Cardiology",
		JoinDate:   "15/06/2018",
	}, "Day", "RN"))

	r.AddMedicine(r.NewMedicine("Paracetamol", 5.99, 100, "01/01/2025"))
	r.AddMedicine(r.NewMedicine("Ibuprofen", 8.50, 75, "01/06/2024"))

	for _, t := range []string{facility.TypeGeneral, facility.TypeICU, facility.TypePrivate} {
		r.AddRoom(r.NewRoom(t))
	}
	r.logger.Info().Int("persons", len(r.persons)).Int("medicines", len(r.medicines)).
		Int("rooms", len(r.rooms)).Msg("sample data loaded")
}

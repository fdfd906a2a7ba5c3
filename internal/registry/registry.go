// Package registry is the in-memory hospital system. It owns every
// top-level collection and the identifier allocator, and it is the only
// place where operations that touch two entities at once are performed.
//
// A Registry is not safe for concurrent use.
package registry

import (
	"errors"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/ehr/hospital/internal/domain/billing"
	"github.com/ehr/hospital/internal/domain/facility"
	"github.com/ehr/hospital/internal/domain/identity"
	"github.com/ehr/hospital/internal/domain/medication"
	"github.com/ehr/hospital/internal/domain/scheduling"
	"github.com/ehr/hospital/internal/platform/sequence"
)

var (
	ErrPatientNotFound        = errors.New("patient not found")
	ErrDoctorNotFound         = errors.New("doctor not found")
	ErrNurseNotFound          = errors.New("nurse not found")
	ErrMedicineNotFound       = errors.New("medicine not found")
	ErrRoomNotFound           = errors.New("room not found")
	ErrAppointmentNotFound    = errors.New("appointment not found")
	ErrPrescriptionNotFound   = errors.New("prescription not found")
	ErrMedicalRecordNotFound  = errors.New("medical record not found")
	ErrNoAvailableRoom        = errors.New("no available room of that type")
	ErrPatientAlreadyAdmitted = errors.New("patient is already assigned to a room")
	ErrPatientNotAdmitted     = errors.New("patient is not assigned to any room")
	ErrNoUnpaidBill           = errors.New("no unpaid bill found for this patient")
)

// Member is one entry of the person roster. Exactly one of Patient, Doctor
// or Nurse is set, selected by Kind.
type Member struct {
	Kind    identity.Kind     `json:"kind"`
	Patient *identity.Patient `json:"patient,omitempty"`
	Doctor  *identity.Doctor  `json:"doctor,omitempty"`
	Nurse   *identity.Nurse   `json:"nurse,omitempty"`
}

// Profile returns the shared person attributes of the member.
func (m Member) Profile() identity.Profile {
	switch m.Kind {
	case identity.KindPatient:
		return m.Patient.Profile
	case identity.KindDoctor:
		return m.Doctor.Profile
	case identity.KindNurse:
		return m.Nurse.Profile
	}
	return identity.Profile{}
}

// Registry holds all entities for the lifetime of the process. Nothing is
// ever removed; only status fields change.
type Registry struct {
	id           uuid.UUID
	ids          *sequence.Allocator
	persons      []Member
	medicines    []*medication.Medicine
	rooms        []*facility.Room
	bills        []*billing.Billing
	appointments []*scheduling.Appointment
	logger       zerolog.Logger
}

// New returns an empty registry with its own identifier space.
func New(logger zerolog.Logger) *Registry {
	id := uuid.New()
	return &Registry{
		id:     id,
		ids:    sequence.NewAllocator(),
		logger: logger.With().Str("registry_id", id.String()).Logger(),
	}
}

// ID distinguishes registries in logs.
func (r *Registry) ID() uuid.UUID { return r.id }

// -- Persons --

// AddPatient appends to the roster. Duplicate IDs are accepted; lookups
// return the first match.
func (r *Registry) AddPatient(p *identity.Patient) {
	r.persons = append(r.persons, Member{Kind: identity.KindPatient, Patient: p})
	r.logger.Debug().Int("patient_id", p.ID).Msg("patient registered")
}

func (r *Registry) AddDoctor(d *identity.Doctor) {
	r.persons = append(r.persons, Member{Kind: identity.KindDoctor, Doctor: d})
	r.logger.Debug().Int("doctor_id", d.ID).Msg("doctor registered")
}

func (r *Registry) AddNurse(n *identity.Nurse) {
	r.persons = append(r.persons, Member{Kind: identity.KindNurse, Nurse: n})
	r.logger.Debug().Int("nurse_id", n.ID).Msg("nurse registered")
}

// FindPatient returns the first registered patient with the given ID.
func (r *Registry) FindPatient(id int) (*identity.Patient, bool) {
	for _, m := range r.persons {
		if m.Kind == identity.KindPatient && m.Patient.ID == id {
			return m.Patient, true
		}
	}
	return nil, false
}

// FindDoctor returns the first registered doctor with the given ID.
func (r *Registry) FindDoctor(id int) (*identity.Doctor, bool) {
	for _, m := range r.persons {
		if m.Kind == identity.KindDoctor && m.Doctor.ID == id {
			return m.Doctor, true
		}
	}
	return nil, false
}

// FindNurse returns the first registered nurse with the given ID.
func (r *Registry) FindNurse(id int) (*identity.Nurse, bool) {
	for _, m := range r.persons {
		if m.Kind == identity.KindNurse && m.Nurse.ID == id {
			return m.Nurse, true
		}
	}
	return nil, false
}

// Persons returns the roster in registration order.
func (r *Registry) Persons() []Member {
	out := make([]Member, len(r.persons))
	copy(out, r.persons)
	return out
}

// UpdateContactInfo updates the first person of the given kind and ID.
func (r *Registry) UpdateContactInfo(kind identity.Kind, id int, address, contact string) error {
	var profile *identity.Profile
	switch kind {
	case identity.KindPatient:
		if p, ok := r.FindPatient(id); ok {
			profile = &p.Profile
		}
	case identity.KindDoctor:
		if d, ok := r.FindDoctor(id); ok {
			profile = &d.Profile
		}
	case identity.KindNurse:
		if n, ok := r.FindNurse(id); ok {
			profile = &n.Profile
		}
	}
	if profile == nil {
		return notFoundFor(kind)
	}
	profile.UpdateContactInfo(address, contact)
	r.logger.Debug().Str("kind", string(kind)).Int("person_id", id).Msg("contact info updated")
	return nil
}

func notFoundFor(kind identity.Kind) error {
	switch kind {
	case identity.KindDoctor:
		return ErrDoctorNotFound
	case identity.KindNurse:
		return ErrNurseNotFound
	}
	return ErrPatientNotFound
}

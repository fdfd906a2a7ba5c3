// Package facility holds hospital rooms and their occupancy.
package facility

import "errors"

// Status is the occupancy state of a room.
type Status string

const (
	StatusVacant   Status = "Vacant"
	StatusOccupied Status = "Occupied"
)

// Common room types. Any other free-text type is accepted.
const (
	TypeGeneral = "General"
	TypeICU     = "ICU"
	TypePrivate = "Private"
)

// NoPatient is the patient reference held by a vacant room.
const NoPatient = -1

var (
	ErrRoomOccupied = errors.New("room is already occupied")
	ErrRoomVacant   = errors.New("room is already vacant")
)

// Room is a bed space. PatientID is NoPatient iff Status is Vacant.
type Room struct {
	ID        int    `json:"id"`
	Type      string `json:"type"`
	Status    Status `json:"status"`
	PatientID int    `json:"patient_id"`
}

// NewRoom returns a vacant room of the given type.
func NewRoom(id int, roomType string) *Room {
	return &Room{ID: id, Type: roomType, Status: StatusVacant, PatientID: NoPatient}
}

func (r *Room) IsVacant() bool {
	return r.Status == StatusVacant
}

// AssignPatient occupies a vacant room. An occupied room is left untouched.
func (r *Room) AssignPatient(patientID int) error {
	if !r.IsVacant() {
		return ErrRoomOccupied
	}
	r.PatientID = patientID
	r.Status = StatusOccupied
	return nil
}

// Vacate frees an occupied room and returns the patient who held it.
func (r *Room) Vacate() (int, error) {
	if r.IsVacant() {
		return NoPatient, ErrRoomVacant
	}
	prev := r.PatientID
	r.PatientID = NoPatient
	r.Status = StatusVacant
	return prev, nil
}

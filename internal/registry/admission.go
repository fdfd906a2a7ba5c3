package registry

import (
	"fmt"

	"github.com/ehr/hospital/internal/domain/facility"
)

// AssignPatientToRoom links a patient and a vacant room on both sides, or
// changes neither.
func (r *Registry) AssignPatientToRoom(patientID, roomID int) error {
	p, ok := r.FindPatient(patientID)
	if !ok {
		return ErrPatientNotFound
	}
	room, ok := r.FindRoom(roomID)
	if !ok {
		return ErrRoomNotFound
	}
	if p.HasRoom() {
		return fmt.Errorf("patient %d in room %d: %w", patientID, p.RoomID, ErrPatientAlreadyAdmitted)
	}
	if err := room.AssignPatient(patientID); err != nil {
		r.logger.Warn().Int("patient_id", patientID).Int("room_id", roomID).
			Int("occupant_id", room.PatientID).Msg("room assignment refused")
		return fmt.Errorf("room %d: %w", roomID, err)
	}
	p.AssignRoom(room.ID)
	r.logger.Debug().Int("patient_id", patientID).Int("room_id", roomID).Msg("patient assigned to room")
	return nil
}

// AdmitPatient places a patient in the first vacant room of roomType.
func (r *Registry) AdmitPatient(patientID int, roomType string) (*facility.Room, error) {
	if _, ok := r.FindPatient(patientID); !ok {
		return nil, ErrPatientNotFound
	}
	room, ok := r.FindAvailableRoom(roomType)
	if !ok {
		return nil, fmt.Errorf("%s: %w", roomType, ErrNoAvailableRoom)
	}
	if err := r.AssignPatientToRoom(patientID, room.ID); err != nil {
		return nil, err
	}
	return room, nil
}

// DischargePatient vacates the patient's room and clears the patient's room
// reference. A room that no longer points at this patient is left as is.
// The freed room ID is returned.
func (r *Registry) DischargePatient(patientID int) (int, error) {
	p, ok := r.FindPatient(patientID)
	if !ok {
		return 0, ErrPatientNotFound
	}
	if !p.HasRoom() {
		return 0, ErrPatientNotAdmitted
	}
	roomID := p.RoomID
	if room, ok := r.FindRoom(roomID); ok && !room.IsVacant() && room.PatientID == patientID {
		if _, err := room.Vacate(); err != nil {
			return 0, err
		}
	} else {
		r.logger.Warn().Int("patient_id", patientID).Int("room_id", roomID).
			Msg("room does not reference patient; clearing patient side only")
	}
	p.DischargeFromRoom()
	r.logger.Debug().Int("patient_id", patientID).Int("room_id", roomID).Msg("patient discharged")
	return roomID, nil
}

package facility

import (
	"errors"
	"testing"
)

func TestNewRoom_Vacant(t *testing.T) {
	r := NewRoom(1, TypeICU)
	if !r.IsVacant() {
		t.Error("expected new room to be vacant")
	}
	if r.PatientID != NoPatient {
		t.Errorf("PatientID = %d, want %d", r.PatientID, NoPatient)
	}
}

func TestRoom_AssignPatient(t *testing.T) {
	r := NewRoom(1, TypeGeneral)
	if err := r.AssignPatient(101); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.Status != StatusOccupied {
		t.Errorf("Status = %s, want %s", r.Status, StatusOccupied)
	}
	if r.PatientID != 101 {
		t.Errorf("PatientID = %d, want 101", r.PatientID)
	}
}

func TestRoom_SecondAssignKeepsFirstPatient(t *testing.T) {
	r := NewRoom(1, TypeGeneral)
	_ = r.AssignPatient(101)
	err := r.AssignPatient(102)
	if !errors.Is(err, ErrRoomOccupied) {
		t.Fatalf("err = %v, want ErrRoomOccupied", err)
	}
	if r.PatientID != 101 {
		t.Errorf("PatientID = %d, want 101", r.PatientID)
	}
}

func TestRoom_Vacate(t *testing.T) {
	r := NewRoom(1, TypePrivate)
	_ = r.AssignPatient(101)
	prev, err := r.Vacate()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if prev != 101 {
		t.Errorf("Vacate() patient = %d, want 101", prev)
	}
	if !r.IsVacant() || r.PatientID != NoPatient {
		t.Errorf("room = %+v, want vacant with no patient", r)
	}
}

func TestRoom_VacateVacantIsRefused(t *testing.T) {
	r := NewRoom(1, TypePrivate)
	if _, err := r.Vacate(); !errors.Is(err, ErrRoomVacant) {
		t.Errorf("err = %v, want ErrRoomVacant", err)
	}
}

package registry

import (
	"github.com/ehr/hospital/internal/domain/facility"
	"github.com/ehr/hospital/internal/domain/medication"
	"github.com/ehr/hospital/internal/platform/sequence"
)

// -- Medicines --

// NewMedicine constructs a medicine numbered from this registry's medicine
// sequence. It is not added until AddMedicine is called.
func (r *Registry) NewMedicine(name string, price float64, quantity int, expiryDate string) *medication.Medicine {
	return medication.NewMedicine(r.ids.Next(sequence.Medicine), name, price, quantity, expiryDate)
}

func (r *Registry) AddMedicine(m *medication.Medicine) {
	r.medicines = append(r.medicines, m)
	r.logger.Debug().Int("medicine_id", m.ID).Str("name", m.Name).Msg("medicine added")
}

// FindMedicine returns the first medicine with the given ID.
func (r *Registry) FindMedicine(id int) (*medication.Medicine, bool) {
	for _, m := range r.medicines {
		if m.ID == id {
			return m, true
		}
	}
	return nil, false
}

// UpdateStock applies delta to a medicine's stock and returns the new
// quantity. The stock is allowed to go negative.
func (r *Registry) UpdateStock(medicineID, delta int) (int, error) {
	m, ok := r.FindMedicine(medicineID)
	if !ok {
		return 0, ErrMedicineNotFound
	}
	qty := m.UpdateStock(delta)
	ev := r.logger.Debug()
	if qty < 0 {
		ev = r.logger.Warn()
	}
	ev.Int("medicine_id", medicineID).Int("delta", delta).Int("quantity", qty).Msg("stock updated")
	return qty, nil
}

func (r *Registry) Medicines() []*medication.Medicine {
	return append([]*medication.Medicine(nil), r.medicines...)
}

// -- Rooms --

// NewRoom constructs a vacant room numbered from this registry's room
// sequence. It is not added until AddRoom is called.
func (r *Registry) NewRoom(roomType string) *facility.Room {
	return facility.NewRoom(r.ids.Next(sequence.Room), roomType)
}

func (r *Registry) AddRoom(room *facility.Room) {
	r.rooms = append(r.rooms, room)
	r.logger.Debug().Int("room_id", room.ID).Str("type", room.Type).Msg("room added")
}

// FindRoom returns the first room with the given ID.
func (r *Registry) FindRoom(id int) (*facility.Room, bool) {
	for _, room := range r.rooms {
		if room.ID == id {
			return room, true
		}
	}
	return nil, false
}

// FindAvailableRoom returns the first vacant room of the given type in
// insertion order. Type matching is exact.
func (r *Registry) FindAvailableRoom(roomType string) (*facility.Room, bool) {
	for _, room := range r.rooms {
		if room.Type == roomType && room.IsVacant() {
			return room, true
		}
	}
	return nil, false
}

func (r *Registry) Rooms() []*facility.Room {
	return append([]*facility.Room(nil), r.rooms...)
}

// Package sequence allocates per-kind monotonic integer identifiers.
//
// An Allocator is owned by whoever owns the entities it numbers, so two
// registries never share an ID space.
package sequence

// Kind names an entity family that draws identifiers from its own counter.
type Kind string

const (
	Appointment   Kind = "appointment"
	Prescription  Kind = "prescription"
	MedicalRecord Kind = "medical_record"
	Medicine      Kind = "medicine"
	Room          Kind = "room"
	Billing       Kind = "billing"
)

// Kinds lists every kind an Allocator numbers.
var Kinds = []Kind{Appointment, Prescription, MedicalRecord, Medicine, Room, Billing}

// Sequencer hands out 1, 2, 3, ... with no gaps and no reuse.
// The zero value is ready to use. Not safe for concurrent use.
type Sequencer struct {
	last int
}

// Next returns the next identifier.
func (s *Sequencer) Next() int {
	s.last++
	return s.last
}

// Allocator holds one Sequencer per Kind.
type Allocator struct {
	seqs map[Kind]*Sequencer
}

// NewAllocator returns an Allocator whose counters all start at 1.
func NewAllocator() *Allocator {
	a := &Allocator{seqs: make(map[Kind]*Sequencer, len(Kinds))}
	for _, k := range Kinds {
		a.seqs[k] = &Sequencer{}
	}
	return a
}

// Next returns the next identifier for kind. Unknown kinds get a fresh
// counter on first use.
func (a *Allocator) Next(kind Kind) int {
	s, ok := a.seqs[kind]
	if !ok {
		s = &Sequencer{}
		a.seqs[kind] = s
	}
	return s.Next()
}

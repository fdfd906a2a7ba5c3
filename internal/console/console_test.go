package console

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/ehr/hospital/internal/domain/facility"
	"github.com/ehr/hospital/internal/domain/identity"
	"github.com/ehr/hospital/internal/platform/auth"
	"github.com/ehr/hospital/internal/registry"
)

type fixture struct {
	reg   *registry.Registry
	users *auth.Store
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	reg := registry.New(zerolog.Nop())
	registry.Seed(reg)
	users := auth.NewStore(zerolog.Nop())
	require.NoError(t, users.SeedDemoUsers("pw"))
	return &fixture{reg: reg, users: users}
}

func (f *fixture) run(t *testing.T, lines ...string) string {
	t.Helper()
	var out bytes.Buffer
	in := strings.NewReader(strings.Join(lines, "\n") + "\n")
	c := New(f.reg, f.users, in, &out, Options{HospitalName: "Test Hospital", CurrencySymbol: "$"}, zerolog.Nop())
	require.NoError(t, c.Run(context.Background()))
	return out.String()
}

func TestExit(t *testing.T) {
	out := newFixture(t).run(t, "0")
	assert.Contains(t, out, "Test Hospital")
	assert.Contains(t, out, "Exiting system. Goodbye!")
}

func TestInvalidMainChoice(t *testing.T) {
	out := newFixture(t).run(t, "9", "0")
	assert.Contains(t, out, "Invalid choice!")
}

func TestEndOfInputStopsCleanly(t *testing.T) {
	// Input ends inside a nested submenu.
	out := newFixture(t).run(t, "3", "6")
	assert.Contains(t, out, "Inventory Management")
	assert.NotContains(t, out, "Goodbye")
}

func TestRunHonoursCancelledContext(t *testing.T) {
	f := newFixture(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	var out bytes.Buffer
	c := New(f.reg, f.users, strings.NewReader("0\n"), &out, Options{}, zerolog.Nop())
	assert.ErrorIs(t, c.Run(ctx), context.Canceled)
}

func TestRunReturnsWhenCancelledMidPrompt(t *testing.T) {
	f := newFixture(t)
	pr, pw := io.Pipe()
	t.Cleanup(func() { pw.Close() })

	var out bytes.Buffer
	c := New(f.reg, f.users, pr, &out, Options{}, zerolog.Nop())
	ctx, cancel := context.WithCancel(context.Background())
	errc := make(chan error, 1)
	go func() { errc <- c.Run(ctx) }()

	// The reader has consumed the line once Write returns; the console is
	// now waiting on the quick access prompt or about to.
	_, err := pw.Write([]byte("3\n"))
	require.NoError(t, err)
	cancel()

	select {
	case err := <-errc:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestLongInputLine(t *testing.T) {
	out := newFixture(t).run(t, strings.Repeat("x", 100*1024), "0")
	assert.Contains(t, out, "Invalid choice!")
	assert.Contains(t, out, "Exiting system. Goodbye!")
}

func TestOversizedInputLineIsReported(t *testing.T) {
	f := newFixture(t)
	var out bytes.Buffer
	in := strings.NewReader(strings.Repeat("x", maxLineSize+1) + "\n0\n")
	c := New(f.reg, f.users, in, &out, Options{}, zerolog.Nop())
	err := c.Run(context.Background())
	assert.ErrorIs(t, err, bufio.ErrTooLong)
	assert.NotContains(t, out.String(), "Goodbye")
}

// ---------------------------------------------------------------------------
// Login and dashboards
// ---------------------------------------------------------------------------

func TestLoginDoctorDashboard(t *testing.T) {
	f := newFixture(t)
	out := f.run(t,
		"1", "doctor", "pw",
		"201",
		"1", // view profile
		"0", // logout
		"0",
	)
	assert.Contains(t, out, "Logged in as Doctor")
	assert.Contains(t, out, "Doctor Dashboard")
	assert.Contains(t, out, "Dr. Sarah Johnson")
	assert.Contains(t, out, "Salary: $150,000.00")
	assert.Contains(t, out, "Logged out successfully.")
	assert.Zero(t, f.users.ActiveSessions())
}

func TestLoginInvalid(t *testing.T) {
	f := newFixture(t)
	out := f.run(t, "1", "doctor", "wrong", "0")
	assert.Contains(t, out, "Invalid username or password!")
	assert.NotContains(t, out, "Dashboard")
}

func TestLoginUnknownPersonID(t *testing.T) {
	out := newFixture(t).run(t, "1", "nurse", "pw", "999", "0")
	assert.Contains(t, out, "Nurse not found!")
	assert.Contains(t, out, "Logged out successfully.")
}

func TestResetPasswordThenLogin(t *testing.T) {
	f := newFixture(t)
	out := f.run(t,
		"2", "patient", "fresh",
		"2", "ghost", "x",
		"1", "patient", "fresh", "101", "0",
		"0",
	)
	assert.Contains(t, out, "Password reset successfully.")
	assert.Contains(t, out, "User not found!")
	assert.Contains(t, out, "Logged in as Patient")
}

func TestAdminRegistersDoctor(t *testing.T) {
	f := newFixture(t)
	f.run(t,
		"1", "admin", "pw",
		"2", "1", // register staff, doctor
		"202", "Dr. Lee", "50", "Male", "1 Elm St", "555-1111",
		"120000", "Neurology", "02/02/2015", "Neurologist", "MD999",
		"0", "0",
	)
	d, ok := f.reg.FindDoctor(202)
	require.True(t, ok)
	assert.Equal(t, "Neurologist", d.Specialization)
	assert.InDelta(t, 120000.0, d.Salary, 1e-9)
}

func TestPatientDashboardUpdateContact(t *testing.T) {
	f := newFixture(t)
	out := f.run(t,
		"1", "patient", "pw", "101",
		"2", "9 New Rd", "555-7777",
		"0", "0",
	)
	assert.Contains(t, out, "Contact information updated!")
	p, _ := f.reg.FindPatient(101)
	assert.Equal(t, "9 New Rd", p.Address)
}

// ---------------------------------------------------------------------------
// Quick access
// ---------------------------------------------------------------------------

func TestBillingFlow(t *testing.T) {
	f := newFixture(t)
	out := f.run(t,
		"3", "7",
		"1", "101",
		"2", "101", "X-Ray", "120",
		"2", "101", "Consultation", "50",
		"4", "101", "100",
		"4", "101", "170",
		"0", "0", "0",
	)
	assert.Contains(t, out, "Service added. Bill total: $170.00")
	assert.Contains(t, out, "Insufficient payment. Remaining: $70.00")
	assert.Contains(t, out, "Payment successful! Change: $0.00")

	bills := f.reg.Bills()
	require.Len(t, bills, 1)
	assert.True(t, bills[0].IsPaid())
}

func TestDispenseMedicineFlow(t *testing.T) {
	f := newFixture(t)
	out := f.run(t,
		"3", "7",
		"3", "101", "1", "1", // no bill yet
		"1", "101",
		"3", "101", "2", "100", // more than stock
		"3", "101", "2", "2",
		"0", "0", "0",
	)
	assert.Contains(t, out, "no unpaid bill found for this patient")
	assert.Contains(t, out, "Insufficient stock!")
	assert.Contains(t, out, "Medicine added to bill. Bill total: $17.00")

	m, _ := f.reg.FindMedicine(2)
	assert.Equal(t, 73, m.QuantityInStock)
}

func TestAppointmentFlow(t *testing.T) {
	f := newFixture(t)
	out := f.run(t,
		"3",
		"3", "101", "1", "201", "10/06/2024 09:00", "0",
		"4", "201", "3", "1", "Stable", "3", "1", "Again", "2", "0",
		"0", "0",
	)
	assert.Contains(t, out, "Appointment scheduled with ID: 1")
	assert.Contains(t, out, "Appointment marked as completed.")
	assert.Contains(t, out, "Error: appointment not found or not pending")
	assert.Contains(t, out, "Notes: Stable")

	a, ok := f.reg.FindAppointment(1)
	require.True(t, ok)
	assert.Equal(t, "Stable", a.DiagnosisNotes)
}

func TestCancelOtherPatientsAppointment(t *testing.T) {
	f := newFixture(t)
	f.reg.AddPatient(identity.NewPatient(identity.Profile{ID: 102, Name: "Other"}, "B+", 0))
	a, err := f.reg.ScheduleAppointment(102, registry.SampleDoctorID, "11/06/2024 10:00")
	require.NoError(t, err)
	id := strconv.Itoa(a.ID)

	out := f.run(t,
		"3", "3",
		"101", "3", id, "0", // patient 101 tries to cancel 102's booking
		"3", "102", "3", id, "0",
		"0", "0",
	)
	assert.Contains(t, out, "Error: appointment not found")
	assert.Contains(t, out, "Appointment cancelled.")
	assert.Equal(t, "Cancelled", string(a.Status))
}

func TestAddMedicationToPrescription(t *testing.T) {
	f := newFixture(t)
	rx, err := f.reg.AddPrescription(registry.SamplePatientID, registry.SampleDoctorID, "")
	require.NoError(t, err)

	out := f.run(t,
		"3", "4", "201",
		"5", "101", strconv.Itoa(rx.ID), "Ibuprofen", "200mg",
		"5", "101", "999", "x", "y",
		"0", "0", "0",
	)
	assert.Contains(t, out, "Medication added to prescription.")
	assert.Contains(t, out, "Error: prescription not found")

	lines := rx.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, "Ibuprofen", lines[0].Medication)
	assert.Equal(t, "200mg", lines[0].Dosage)
}

func TestRoomFlow(t *testing.T) {
	f := newFixture(t)
	out := f.run(t,
		"3", "8",
		"2", "101", "1",
		"2", "101", "2",
		"3", "101",
		"3", "101",
		"0", "0", "0",
	)
	assert.Contains(t, out, "Patient 101 assigned to room 1")
	assert.Contains(t, out, "already assigned to a room")
	assert.Contains(t, out, "Patient 101 discharged from room 1")
	assert.Contains(t, out, "patient is not assigned to any room")

	room, _ := f.reg.FindRoom(1)
	assert.Equal(t, facility.StatusVacant, room.Status)
}

func TestAdmitByType(t *testing.T) {
	f := newFixture(t)
	out := f.run(t, "3", "3", "101", "7", "ICU", "0", "0", "0")
	assert.Contains(t, out, "Patient 101 assigned to room 2")
	p, _ := f.reg.FindPatient(101)
	assert.Equal(t, 2, p.RoomID)
}

func TestInventoryFlow(t *testing.T) {
	f := newFixture(t)
	out := f.run(t,
		"3", "6",
		"1", "Amoxicillin", "12.25", "40", "01/01/2026",
		"2", "3", "-10",
		"3", "3", "31",
		"0", "0", "0",
	)
	assert.Contains(t, out, "Medicine added successfully! ID: 3")
	assert.Contains(t, out, "Stock updated. New quantity: 30")
	assert.Contains(t, out, "Amoxicillin is not available in that quantity (30 in stock).")
}

func TestNurseOperations(t *testing.T) {
	f := newFixture(t)
	f.run(t, "3", "5", "301", "1", "201", "2", "101", "0", "0", "0")

	n, ok := f.reg.FindNurse(301)
	require.True(t, ok)
	require.NotNil(t, n.AssistingDoctorID)
	assert.Equal(t, 201, *n.AssistingDoctorID)
	assert.Equal(t, []int{101}, n.MonitoredPatientIDs)
}

func TestPersonMenuUnknownID(t *testing.T) {
	out := newFixture(t).run(t, "3", "4", "999", "0", "0")
	assert.Contains(t, out, "Doctor not found!")
}

func TestInvalidNumber(t *testing.T) {
	out := newFixture(t).run(t, "3", "7", "1", "abc", "0", "0", "0")
	assert.Contains(t, out, "Invalid number!")
}

// ---------------------------------------------------------------------------
// Rendering
// ---------------------------------------------------------------------------

func TestRendererMoney(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(&buf, language.AmericanEnglish, "$")
	assert.Equal(t, "$150,000.00", r.Money(150000))
	assert.Equal(t, "$5.99", r.Money(5.99))
}

func TestListEmpty(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(&buf, language.AmericanEnglish, "$")
	List(r, []*facility.Room(nil), "No rooms available.", r.Room)
	assert.Equal(t, "No rooms available.\n", buf.String())
}

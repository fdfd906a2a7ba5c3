package console

import (
	"context"
	"errors"

	"github.com/ehr/hospital/internal/domain/identity"
	"github.com/ehr/hospital/internal/platform/auth"
)

func (c *Console) login(ctx context.Context) {
	username, ok := c.ask("\nEnter username: ")
	if !ok {
		return
	}
	password, ok := c.ask("Enter password: ")
	if !ok {
		return
	}
	sess, err := c.users.Login(username, password)
	if err != nil {
		c.println("\nInvalid username or password!")
		return
	}
	c.printf("\nLogged in as %s\n", sess.Role)
	c.dashboard(ctx, sess)
	if err := c.users.Logout(sess.ID); err != nil {
		c.logger.Warn().Err(err).Str("session_id", sess.ID.String()).Msg("logout")
	}
	c.println("\nLogged out successfully.")
}

func (c *Console) resetPassword() {
	username, ok := c.ask("\nEnter username: ")
	if !ok {
		return
	}
	password, ok := c.ask("Enter new password: ")
	if !ok {
		return
	}
	err := c.users.ResetPassword(username, password)
	if errors.Is(err, auth.ErrUserNotFound) {
		c.println("\nUser not found!")
		return
	}
	if err != nil {
		c.fail(err)
		return
	}
	c.println("\nPassword reset successfully.")
}

// dashboard shows the menu for the session's role. Clinical roles first
// identify themselves by ID.
func (c *Console) dashboard(ctx context.Context, sess *auth.Session) {
	if sess.Role == auth.RoleAdmin {
		c.adminDashboard(ctx, sess)
		return
	}

	kind := roleKind(sess.Role)
	id, ok := c.askInt("Enter your " + kindLabel(kind) + " ID: ")
	if !ok {
		return
	}
	if !c.exists(kind, id) {
		c.printf("\n%s not found!\n", kindLabel(kind))
		return
	}

	items := []menuItem{
		{"View My Profile", func() { c.showProfile(kind, id) }},
		{"Update Contact Information", func() { c.updateContact(kind, id) }},
	}
	switch kind {
	case identity.KindDoctor:
		items = append(items,
			menuItem{"View Appointments", func() { c.showDoctorAppointments(id) }},
			menuItem{"Complete Appointment", func() { c.completeAppointment(id) }},
			menuItem{"Prescribe Medication", func() { c.prescribeMedication(id) }},
			menuItem{"Create Medical Record", func() { c.createMedicalRecord(id) }},
		)
	case identity.KindNurse:
		items = append(items,
			menuItem{"Assist Doctor", func() { c.assistDoctor(id) }},
			menuItem{"Monitor Patient", func() { c.monitorPatient(id) }},
			menuItem{"View Room Assignments", c.showRoomAssignments},
		)
	case identity.KindPatient:
		items = append(items,
			menuItem{"Book Appointment", func() { c.bookAppointment(id) }},
			menuItem{"View Medical History", func() { c.showMedicalHistory(id) }},
			menuItem{"View Prescriptions", func() { c.showPrescriptions(id) }},
			menuItem{"Pay Bill", func() { c.payBill(id) }},
		)
	}
	c.menu(ctx, string(sess.Role)+" Dashboard", "Logout", items)
}

func (c *Console) adminDashboard(ctx context.Context, sess *auth.Session) {
	c.menu(ctx, "Admin Dashboard", "Logout", []menuItem{
		{"View My Profile", func() { c.printf("\nUsername: %s\nRole: %s\n", sess.Username, sess.Role) }},
		{"Register New Staff", c.registerStaff},
		{"View All Records", c.showAllRecords},
		{"Inventory Management", func() { c.inventoryMenu(ctx) }},
		{"Billing Management", func() { c.billingMenu(ctx) }},
		{"Room Management", func() { c.roomMenu(ctx) }},
	})
}

func roleKind(role auth.Role) identity.Kind {
	switch role {
	case auth.RoleDoctor:
		return identity.KindDoctor
	case auth.RoleNurse:
		return identity.KindNurse
	}
	return identity.KindPatient
}

func (c *Console) exists(kind identity.Kind, id int) bool {
	var ok bool
	switch kind {
	case identity.KindPatient:
		_, ok = c.reg.FindPatient(id)
	case identity.KindDoctor:
		_, ok = c.reg.FindDoctor(id)
	case identity.KindNurse:
		_, ok = c.reg.FindNurse(id)
	}
	return ok
}

// -- Quick access --

func (c *Console) quickAccess(ctx context.Context) {
	c.menu(ctx, "Quick Access", "Back to Main Menu", []menuItem{
		{"Register New Patient", c.registerPatient},
		{"View All Records", c.showAllRecords},
		{"Patient Operations", func() { c.personMenu(ctx, identity.KindPatient) }},
		{"Doctor Operations", func() { c.personMenu(ctx, identity.KindDoctor) }},
		{"Nurse Operations", func() { c.personMenu(ctx, identity.KindNurse) }},
		{"Inventory Management", func() { c.inventoryMenu(ctx) }},
		{"Billing Management", func() { c.billingMenu(ctx) }},
		{"Room Management", func() { c.roomMenu(ctx) }},
	})
}

func (c *Console) personMenu(ctx context.Context, kind identity.Kind) {
	label := kindLabel(kind)
	id, ok := c.askInt("\nEnter " + label + " ID: ")
	if !ok {
		return
	}
	if !c.exists(kind, id) {
		c.printf("\n%s not found!\n", label)
		return
	}

	var items []menuItem
	switch kind {
	case identity.KindPatient:
		items = []menuItem{
			{"Book Appointment", func() { c.bookAppointment(id) }},
			{"View Appointments", func() { c.showPatientAppointments(id) }},
			{"Cancel Appointment", func() { c.cancelAppointment(id) }},
			{"Add Disease", func() { c.addDisease(id) }},
			{"View Medical History", func() { c.showMedicalHistory(id) }},
			{"View Prescriptions", func() { c.showPrescriptions(id) }},
			{"Admit to Room", func() { c.admitPatient(id) }},
			{"Discharge from Room", func() { c.dischargePatient(id) }},
			{"Update Contact Information", func() { c.updateContact(kind, id) }},
		}
	case identity.KindDoctor:
		items = []menuItem{
			{"Add Available Slot", func() { c.addAvailableSlot(id) }},
			{"View Appointments", func() { c.showDoctorAppointments(id) }},
			{"Complete Appointment", func() { c.completeAppointment(id) }},
			{"Prescribe Medication", func() { c.prescribeMedication(id) }},
			{"Add Medication to Prescription", c.addMedicationToPrescription},
			{"Create Medical Record", func() { c.createMedicalRecord(id) }},
			{"Record Test Result", c.recordTestResult},
			{"Update Treatment Plan", c.updateTreatmentPlan},
			{"Update Contact Information", func() { c.updateContact(kind, id) }},
		}
	case identity.KindNurse:
		items = []menuItem{
			{"Assist Doctor", func() { c.assistDoctor(id) }},
			{"Monitor Patient", func() { c.monitorPatient(id) }},
			{"View Profile", func() { c.showProfile(kind, id) }},
			{"Update Contact Information", func() { c.updateContact(kind, id) }},
		}
	}
	c.menu(ctx, label+" Operations", "Back", items)
}

func (c *Console) inventoryMenu(ctx context.Context) {
	c.menu(ctx, "Inventory Management", "Back", []menuItem{
		{"Add New Medicine", c.addMedicine},
		{"Update Stock", c.updateStock},
		{"Check Availability", c.checkAvailability},
		{"View All Medicines", c.showMedicines},
	})
}

func (c *Console) billingMenu(ctx context.Context) {
	c.menu(ctx, "Billing Management", "Back", []menuItem{
		{"Create New Bill", c.createBill},
		{"Add Service", c.addService},
		{"Add Medicine", c.dispenseMedicine},
		{"Process Payment", c.processPayment},
		{"View All Bills", c.showBills},
	})
}

func (c *Console) roomMenu(ctx context.Context) {
	c.menu(ctx, "Room Management", "Back", []menuItem{
		{"Add New Room", c.addRoom},
		{"Assign Patient to Room", c.assignRoom},
		{"Discharge Patient", c.dischargeFromRoom},
		{"View All Rooms", c.showRooms},
	})
}

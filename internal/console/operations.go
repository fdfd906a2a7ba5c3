package console

import (
	"errors"

	"github.com/ehr/hospital/internal/domain/identity"
	"github.com/ehr/hospital/internal/domain/medication"
	"github.com/ehr/hospital/internal/registry"
)

// -- Registration --

func (c *Console) readProfile(role string) (identity.Profile, bool) {
	var p identity.Profile
	var ok bool
	if p.ID, ok = c.askInt("Enter " + role + " ID: "); !ok {
		return p, false
	}
	if p.Name, ok = c.ask("Enter Full Name: "); !ok {
		return p, false
	}
	if p.Age, ok = c.askInt("Enter Age: "); !ok {
		return p, false
	}
	if p.Gender, ok = c.ask("Enter Gender: "); !ok {
		return p, false
	}
	if p.Address, ok = c.ask("Enter Address: "); !ok {
		return p, false
	}
	p.ContactNumber, ok = c.ask("Enter Contact Number: ")
	return p, ok
}

func (c *Console) readStaff(role string) (identity.Staff, bool) {
	var s identity.Staff
	var ok bool
	if s.Profile, ok = c.readProfile(role); !ok {
		return s, false
	}
	if s.Salary, ok = c.askFloat("Enter Salary: "); !ok {
		return s, false
	}
	if s.Department, ok = c.ask("Enter Department: "); !ok {
		return s, false
	}
	s.JoinDate, ok = c.ask("Enter Join Date (DD/MM/YYYY): ")
	return s, ok
}

func (c *Console) registerPatient() {
	profile, ok := c.readProfile("Patient")
	if !ok {
		return
	}
	blood, ok := c.ask("Enter Blood Group: ")
	if !ok {
		return
	}
	doctorID, ok := c.askInt("Enter Assigned Doctor ID: ")
	if !ok {
		return
	}
	c.reg.AddPatient(identity.NewPatient(profile, blood, doctorID))
	c.done("Patient registered successfully!")
}

func (c *Console) registerDoctor() {
	staff, ok := c.readStaff("Doctor")
	if !ok {
		return
	}
	spec, ok := c.ask("Enter Specialization: ")
	if !ok {
		return
	}
	license, ok := c.ask("Enter License Number: ")
	if !ok {
		return
	}
	c.reg.AddDoctor(identity.NewDoctor(staff, spec, license))
	c.done("Doctor registered successfully!")
}

func (c *Console) registerNurse() {
	staff, ok := c.readStaff("Nurse")
	if !ok {
		return
	}
	shift, ok := c.ask("Enter Shift Time: ")
	if !ok {
		return
	}
	qual, ok := c.ask("Enter Qualification: ")
	if !ok {
		return
	}
	c.reg.AddNurse(identity.NewNurse(staff, shift, qual))
	c.done("Nurse registered successfully!")
}

func (c *Console) registerStaff() {
	choice, ok := c.ask("\n1. Register Doctor\n2. Register Nurse\nChoice: ")
	if !ok {
		return
	}
	switch choice {
	case "1":
		c.registerDoctor()
	case "2":
		c.registerNurse()
	default:
		c.println("\nInvalid choice!")
	}
}

// -- Profiles --

func (c *Console) showProfile(kind identity.Kind, id int) {
	c.println("")
	switch kind {
	case identity.KindPatient:
		if p, ok := c.reg.FindPatient(id); ok {
			c.render.Patient(p)
			return
		}
	case identity.KindDoctor:
		if d, ok := c.reg.FindDoctor(id); ok {
			c.render.Doctor(d)
			return
		}
	case identity.KindNurse:
		if n, ok := c.reg.FindNurse(id); ok {
			c.render.Nurse(n)
			return
		}
	}
	c.printf("%s not found!\n", kindLabel(kind))
}

func (c *Console) updateContact(kind identity.Kind, id int) {
	address, ok := c.ask("Enter new address: ")
	if !ok {
		return
	}
	contact, ok := c.ask("Enter new contact number: ")
	if !ok {
		return
	}
	if err := c.reg.UpdateContactInfo(kind, id, address, contact); err != nil {
		c.fail(err)
		return
	}
	c.done("Contact information updated!")
}

func kindLabel(kind identity.Kind) string {
	return string(kind)
}

func (c *Console) showAllRecords() {
	c.header("All Persons")
	List(c.render, c.reg.Persons(), "No persons registered.", c.render.Member)
	c.showMedicines()
	c.showRooms()
	c.showBills()
}

// -- Patient actions --

func (c *Console) bookAppointment(patientID int) {
	doctorID, ok := c.askInt("Enter Doctor ID: ")
	if !ok {
		return
	}
	when, ok := c.ask("Enter Date/Time (DD/MM/YYYY HH:MM): ")
	if !ok {
		return
	}
	a, err := c.reg.ScheduleAppointment(patientID, doctorID, when)
	if err != nil {
		c.fail(err)
		return
	}
	c.printf("\nAppointment scheduled with ID: %d\n", a.ID)
}

func (c *Console) showPatientAppointments(patientID int) {
	appts, err := c.reg.PatientAppointments(patientID)
	if err != nil {
		c.fail(err)
		return
	}
	c.println("")
	List(c.render, appts, "No appointments scheduled.", c.render.Appointment)
}

func (c *Console) cancelAppointment(patientID int) {
	id, ok := c.askInt("Enter Appointment ID: ")
	if !ok {
		return
	}
	if err := c.reg.CancelPatientAppointment(patientID, id); err != nil {
		c.fail(err)
		return
	}
	c.done("Appointment cancelled.")
}

func (c *Console) addDisease(patientID int) {
	p, ok := c.reg.FindPatient(patientID)
	if !ok {
		c.fail(registry.ErrPatientNotFound)
		return
	}
	disease, ok := c.ask("Enter Disease: ")
	if !ok {
		return
	}
	p.AddDisease(disease)
	c.done("Disease added.")
}

func (c *Console) showMedicalHistory(patientID int) {
	p, ok := c.reg.FindPatient(patientID)
	if !ok {
		c.fail(registry.ErrPatientNotFound)
		return
	}
	c.println("")
	List(c.render, p.MedicalRecords, "No medical records.", c.render.MedicalRecord)
}

func (c *Console) showPrescriptions(patientID int) {
	p, ok := c.reg.FindPatient(patientID)
	if !ok {
		c.fail(registry.ErrPatientNotFound)
		return
	}
	c.println("")
	List(c.render, p.Prescriptions, "No prescriptions.", c.render.Prescription)
}

func (c *Console) admitPatient(patientID int) {
	roomType, ok := c.ask("Enter Room Type (General/ICU/Private): ")
	if !ok {
		return
	}
	room, err := c.reg.AdmitPatient(patientID, roomType)
	if err != nil {
		c.fail(err)
		return
	}
	c.printf("\nPatient %d assigned to room %d\n", patientID, room.ID)
}

func (c *Console) dischargePatient(patientID int) {
	roomID, err := c.reg.DischargePatient(patientID)
	if err != nil {
		c.fail(err)
		return
	}
	c.printf("\nPatient %d discharged from room %d\n", patientID, roomID)
}

func (c *Console) payBill(patientID int) {
	b, ok := c.reg.FindPatientBill(patientID)
	if !ok {
		c.fail(registry.ErrNoUnpaidBill)
		return
	}
	c.printf("\nAmount due: %s\n", c.render.Money(b.TotalAmount))
	amount, ok := c.askFloat("Enter payment amount: ")
	if !ok {
		return
	}
	_, res, err := c.reg.PayBill(patientID, amount)
	if err != nil {
		c.fail(err)
		return
	}
	if res.Paid {
		c.printf("\nPayment successful! Change: %s\n", c.render.Money(res.Change))
		return
	}
	c.printf("\nInsufficient payment. Remaining: %s\n", c.render.Money(res.Shortfall))
}

// -- Doctor actions --

func (c *Console) addAvailableSlot(doctorID int) {
	d, ok := c.reg.FindDoctor(doctorID)
	if !ok {
		c.fail(registry.ErrDoctorNotFound)
		return
	}
	slot, ok := c.ask("Enter Available Time Slot: ")
	if !ok {
		return
	}
	d.AddAvailableSlot(slot)
	c.done("Slot added.")
}

func (c *Console) showDoctorAppointments(doctorID int) {
	appts, err := c.reg.DoctorAppointments(doctorID)
	if err != nil {
		c.fail(err)
		return
	}
	c.println("")
	List(c.render, appts, "No appointments scheduled.", c.render.Appointment)
}

func (c *Console) completeAppointment(doctorID int) {
	id, ok := c.askInt("Enter Appointment ID: ")
	if !ok {
		return
	}
	notes, ok := c.ask("Enter Diagnosis Notes: ")
	if !ok {
		return
	}
	if err := c.reg.CompleteAppointment(doctorID, id, notes); err != nil {
		c.fail(err)
		return
	}
	c.done("Appointment marked as completed.")
}

func (c *Console) prescribeMedication(doctorID int) {
	patientID, ok := c.askInt("Enter Patient ID: ")
	if !ok {
		return
	}
	med, ok := c.ask("Enter Medication: ")
	if !ok {
		return
	}
	dosage, ok := c.ask("Enter Dosage: ")
	if !ok {
		return
	}
	rx, err := c.reg.PrescribeMedication(doctorID, patientID, med, dosage)
	if err != nil {
		c.fail(err)
		return
	}
	c.printf("\nPrescription %d issued.\n", rx.ID)
}

func (c *Console) addMedicationToPrescription() {
	patientID, ok := c.askInt("Enter Patient ID: ")
	if !ok {
		return
	}
	rxID, ok := c.askInt("Enter Prescription ID: ")
	if !ok {
		return
	}
	med, ok := c.ask("Enter Medication: ")
	if !ok {
		return
	}
	dosage, ok := c.ask("Enter Dosage: ")
	if !ok {
		return
	}
	if err := c.reg.AddMedication(patientID, rxID, med, dosage); err != nil {
		c.fail(err)
		return
	}
	c.done("Medication added to prescription.")
}

func (c *Console) createMedicalRecord(doctorID int) {
	patientID, ok := c.askInt("Enter Patient ID: ")
	if !ok {
		return
	}
	diagnosis, ok := c.ask("Enter Diagnosis: ")
	if !ok {
		return
	}
	plan, ok := c.ask("Enter Treatment Plan: ")
	if !ok {
		return
	}
	rec, err := c.reg.AddMedicalRecord(patientID, doctorID, diagnosis, plan)
	if err != nil {
		c.fail(err)
		return
	}
	c.printf("\nMedical record %d created.\n", rec.ID)
}

func (c *Console) recordTestResult() {
	patientID, ok := c.askInt("Enter Patient ID: ")
	if !ok {
		return
	}
	recordID, ok := c.askInt("Enter Record ID: ")
	if !ok {
		return
	}
	result, ok := c.ask("Enter Test Result: ")
	if !ok {
		return
	}
	if err := c.reg.AddTestResult(patientID, recordID, result); err != nil {
		c.fail(err)
		return
	}
	c.done("Test result recorded.")
}

func (c *Console) updateTreatmentPlan() {
	patientID, ok := c.askInt("Enter Patient ID: ")
	if !ok {
		return
	}
	recordID, ok := c.askInt("Enter Record ID: ")
	if !ok {
		return
	}
	plan, ok := c.ask("Enter New Treatment Plan: ")
	if !ok {
		return
	}
	if err := c.reg.UpdateTreatmentPlan(patientID, recordID, plan); err != nil {
		c.fail(err)
		return
	}
	c.done("Treatment plan updated.")
}

// -- Nurse actions --

func (c *Console) assistDoctor(nurseID int) {
	n, ok := c.reg.FindNurse(nurseID)
	if !ok {
		c.fail(registry.ErrNurseNotFound)
		return
	}
	doctorID, ok := c.askInt("Enter Doctor ID to assist: ")
	if !ok {
		return
	}
	n.AssistDoctor(doctorID)
	c.printf("\nNurse %s is now assisting doctor %d\n", n.Name, doctorID)
}

func (c *Console) monitorPatient(nurseID int) {
	n, ok := c.reg.FindNurse(nurseID)
	if !ok {
		c.fail(registry.ErrNurseNotFound)
		return
	}
	patientID, ok := c.askInt("Enter Patient ID to monitor: ")
	if !ok {
		return
	}
	n.MonitorPatient(patientID)
	c.printf("\nNurse %s is now monitoring patient %d\n", n.Name, patientID)
}

func (c *Console) showRoomAssignments() {
	c.println("")
	occupied := false
	for _, room := range c.reg.Rooms() {
		if room.IsVacant() {
			continue
		}
		occupied = true
		c.printf("Room %d (%s): patient %d\n", room.ID, room.Type, room.PatientID)
	}
	if !occupied {
		c.println("No rooms are occupied.")
	}
}

// -- Inventory --

func (c *Console) addMedicine() {
	name, ok := c.ask("Enter Medicine Name: ")
	if !ok {
		return
	}
	price, ok := c.askFloat("Enter Price: ")
	if !ok {
		return
	}
	qty, ok := c.askInt("Enter Quantity: ")
	if !ok {
		return
	}
	expiry, ok := c.ask("Enter Expiry Date (DD/MM/YYYY): ")
	if !ok {
		return
	}
	m := c.reg.NewMedicine(name, price, qty, expiry)
	c.reg.AddMedicine(m)
	c.printf("\nMedicine added successfully! ID: %d\n", m.ID)
}

func (c *Console) askMedicine() (*medication.Medicine, bool) {
	id, ok := c.askInt("Enter Medicine ID: ")
	if !ok {
		return nil, false
	}
	m, ok := c.reg.FindMedicine(id)
	if !ok {
		c.fail(registry.ErrMedicineNotFound)
		return nil, false
	}
	return m, true
}

func (c *Console) updateStock() {
	m, ok := c.askMedicine()
	if !ok {
		return
	}
	delta, ok := c.askInt("Enter quantity change (+/-): ")
	if !ok {
		return
	}
	qty, err := c.reg.UpdateStock(m.ID, delta)
	if err != nil {
		c.fail(err)
		return
	}
	c.printf("\nStock updated. New quantity: %d\n", qty)
}

func (c *Console) checkAvailability() {
	m, ok := c.askMedicine()
	if !ok {
		return
	}
	qty, ok := c.askInt("Enter required quantity: ")
	if !ok {
		return
	}
	if m.CheckAvailability(qty) {
		c.printf("\n%s is available (%d in stock).\n", m.Name, m.QuantityInStock)
		return
	}
	c.printf("\n%s is not available in that quantity (%d in stock).\n", m.Name, m.QuantityInStock)
}

func (c *Console) showMedicines() {
	c.header("Medicines")
	List(c.render, c.reg.Medicines(), "No medicines in inventory.", c.render.Medicine)
}

// -- Billing --

func (c *Console) createBill() {
	patientID, ok := c.askInt("Enter Patient ID: ")
	if !ok {
		return
	}
	b := c.reg.CreateBill(patientID)
	c.printf("\nNew bill %d created for patient %d\n", b.ID, patientID)
}

func (c *Console) addService() {
	patientID, ok := c.askInt("Enter Patient ID: ")
	if !ok {
		return
	}
	desc, ok := c.ask("Enter Service Description: ")
	if !ok {
		return
	}
	cost, ok := c.askFloat("Enter Cost: ")
	if !ok {
		return
	}
	b, err := c.reg.BillService(patientID, desc, cost)
	if err != nil {
		c.fail(err)
		return
	}
	c.printf("\nService added. Bill total: %s\n", c.render.Money(b.TotalAmount))
}

func (c *Console) dispenseMedicine() {
	patientID, ok := c.askInt("Enter Patient ID: ")
	if !ok {
		return
	}
	medID, ok := c.askInt("Enter Medicine ID: ")
	if !ok {
		return
	}
	qty, ok := c.askInt("Enter Quantity: ")
	if !ok {
		return
	}
	b, err := c.reg.DispenseMedicine(patientID, medID, qty)
	if errors.Is(err, medication.ErrInsufficientStock) {
		c.done("Insufficient stock!")
		return
	}
	if err != nil {
		c.fail(err)
		return
	}
	c.printf("\nMedicine added to bill. Bill total: %s\n", c.render.Money(b.TotalAmount))
}

func (c *Console) processPayment() {
	patientID, ok := c.askInt("Enter Patient ID: ")
	if !ok {
		return
	}
	c.payBill(patientID)
}

func (c *Console) showBills() {
	c.header("Bills")
	List(c.render, c.reg.Bills(), "No billing records.", c.render.Bill)
}

// -- Rooms --

func (c *Console) addRoom() {
	roomType, ok := c.ask("Enter Room Type (General/ICU/Private): ")
	if !ok {
		return
	}
	room := c.reg.NewRoom(roomType)
	c.reg.AddRoom(room)
	c.printf("\nRoom added successfully! ID: %d\n", room.ID)
}

func (c *Console) assignRoom() {
	patientID, ok := c.askInt("Enter Patient ID: ")
	if !ok {
		return
	}
	roomID, ok := c.askInt("Enter Room ID: ")
	if !ok {
		return
	}
	if err := c.reg.AssignPatientToRoom(patientID, roomID); err != nil {
		c.fail(err)
		return
	}
	c.printf("\nPatient %d assigned to room %d\n", patientID, roomID)
}

func (c *Console) dischargeFromRoom() {
	patientID, ok := c.askInt("Enter Patient ID: ")
	if !ok {
		return
	}
	c.dischargePatient(patientID)
}

func (c *Console) showRooms() {
	c.header("Rooms")
	List(c.render, c.reg.Rooms(), "No rooms available.", c.render.Room)
}

package model

import (
	"github.com/carelink-lab/carelink/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

// PatientData is the full set of display data for one patient. Its YAML
// form is the provisional schema of the backend response.
type PatientData struct {
	Profile       PatientProfile  `yaml:"profile"`
	SummaryCards  []SummaryCard   `yaml:"summary_cards"`
	Appointments  []Appointment   `yaml:"appointments"`
	LabResults    []LabResult     `yaml:"lab_results"`
	Prescriptions []Prescription  `yaml:"prescriptions"`
	Records       []MedicalRecord `yaml:"records"`
}

// Validate validates the patient data
func (d *PatientData) Validate() error {
	if err := d.Profile.Validate(); err != nil {
		return goerr.Wrap(ErrInvalidPatientData, "invalid profile", goerr.V("cause", err.Error()))
	}

	for i, card := range d.SummaryCards {
		if card.Title == "" {
			return goerr.Wrap(ErrInvalidPatientData, "summary card title is empty", goerr.V("index", i))
		}
	}

	for i, appt := range d.Appointments {
		if !appt.Status.IsValid() {
			return goerr.Wrap(ErrInvalidPatientData, "invalid appointment status",
				goerr.V("index", i),
				goerr.V("status", appt.Status))
		}
		if appt.Doctor == "" {
			return goerr.Wrap(ErrInvalidPatientData, "appointment doctor is empty", goerr.V("index", i))
		}
	}

	for i, result := range d.LabResults {
		if !result.Status.IsValid() {
			return goerr.Wrap(ErrInvalidPatientData, "invalid lab result status",
				goerr.V("index", i),
				goerr.V("status", result.Status))
		}
		if result.Test == "" {
			return goerr.Wrap(ErrInvalidPatientData, "lab test name is empty", goerr.V("index", i))
		}
	}

	for i, rx := range d.Prescriptions {
		if !rx.Status.IsValid() {
			return goerr.Wrap(ErrInvalidPatientData, "invalid prescription status",
				goerr.V("index", i),
				goerr.V("status", rx.Status))
		}
		if rx.Refills < 0 {
			return goerr.Wrap(ErrInvalidPatientData, "negative refill count",
				goerr.V("index", i),
				goerr.V("refills", rx.Refills))
		}
	}

	for i, rec := range d.Records {
		if rec.Title == "" {
			return goerr.Wrap(ErrInvalidPatientData, "record title is empty", goerr.V("index", i))
		}
	}

	if err := uniqueIDs("summary_cards", d.SummaryCards, func(v SummaryCard) types.RecordID { return v.ID }); err != nil {
		return err
	}
	if err := uniqueIDs("appointments", d.Appointments, func(v Appointment) types.RecordID { return v.ID }); err != nil {
		return err
	}
	if err := uniqueIDs("lab_results", d.LabResults, func(v LabResult) types.RecordID { return v.ID }); err != nil {
		return err
	}
	if err := uniqueIDs("prescriptions", d.Prescriptions, func(v Prescription) types.RecordID { return v.ID }); err != nil {
		return err
	}
	if err := uniqueIDs("records", d.Records, func(v MedicalRecord) types.RecordID { return v.ID }); err != nil {
		return err
	}

	return nil
}

// uniqueIDs rejects two records of one list sharing an ID. Records without an
// ID are skipped; AssignIDs gives them fresh ones.
func uniqueIDs[T any](list string, items []T, id func(T) types.RecordID) error {
	seen := make(map[types.RecordID]bool, len(items))
	for i, item := range items {
		v := id(item)
		if v == "" {
			continue
		}
		if seen[v] {
			return goerr.Wrap(ErrInvalidPatientData, "duplicate record id",
				goerr.V("list", list),
				goerr.V("index", i),
				goerr.V("id", v))
		}
		seen[v] = true
	}
	return nil
}

// AssignIDs gives a display key to every record loaded without one
func (d *PatientData) AssignIDs() {
	for i := range d.SummaryCards {
		if d.SummaryCards[i].ID == "" {
			d.SummaryCards[i].ID = types.NewRecordID()
		}
	}
	for i := range d.Appointments {
		if d.Appointments[i].ID == "" {
			d.Appointments[i].ID = types.NewRecordID()
		}
	}
	for i := range d.LabResults {
		if d.LabResults[i].ID == "" {
			d.LabResults[i].ID = types.NewRecordID()
		}
	}
	for i := range d.Prescriptions {
		if d.Prescriptions[i].ID == "" {
			d.Prescriptions[i].ID = types.NewRecordID()
		}
	}
	for i := range d.Records {
		if d.Records[i].ID == "" {
			d.Records[i].ID = types.NewRecordID()
		}
	}
}

// Clone returns a deep copy of the patient data
func (d *PatientData) Clone() *PatientData {
	return &PatientData{
		Profile:       d.Profile,
		SummaryCards:  append([]SummaryCard(nil), d.SummaryCards...),
		Appointments:  append([]Appointment(nil), d.Appointments...),
		LabResults:    append([]LabResult(nil), d.LabResults...),
		Prescriptions: append([]Prescription(nil), d.Prescriptions...),
		Records:       append([]MedicalRecord(nil), d.Records...),
	}
}

package model

import (
	"time"

	"github.com/carelink-lab/carelink/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

// PatientProfile identifies the patient the dashboard is rendered for
type PatientProfile struct {
	ID    types.PatientID `yaml:"id" firestore:"id"`
	Name  string          `yaml:"name" firestore:"name"`
	Email string          `yaml:"email,omitempty" firestore:"email"`
}

// Validate validates the profile
func (p *PatientProfile) Validate() error {
	if err := p.ID.Validate(); err != nil {
		return err
	}
	if p.Name == "" {
		return goerr.New("patient name is empty", goerr.V("id", p.ID))
	}
	return nil
}

// SummaryCard is a headline figure on the dashboard
type SummaryCard struct {
	ID     types.RecordID `yaml:"id,omitempty" firestore:"id"`
	Title  string         `yaml:"title" firestore:"title"`
	Value  string         `yaml:"value" firestore:"value"`
	Detail string         `yaml:"detail,omitempty" firestore:"detail"`
	Icon   string         `yaml:"icon,omitempty" firestore:"icon"`
}

// Appointment is a scheduled visit
type Appointment struct {
	ID        types.RecordID          `yaml:"id,omitempty" firestore:"id"`
	Doctor    string                  `yaml:"doctor" firestore:"doctor"`
	Specialty string                  `yaml:"specialty,omitempty" firestore:"specialty"`
	Date      time.Time               `yaml:"date" firestore:"date"`
	Time      string                  `yaml:"time,omitempty" firestore:"time"`
	Location  string                  `yaml:"location,omitempty" firestore:"location"`
	Status    types.AppointmentStatus `yaml:"status" firestore:"status"`
}

// IsUpcoming reports whether the appointment can still be rescheduled or cancelled
func (a Appointment) IsUpcoming() bool {
	return a.Status == types.AppointmentUpcoming
}

// LabResult is a single row of the lab results table
type LabResult struct {
	ID     types.RecordID        `yaml:"id,omitempty" firestore:"id"`
	Test   string                `yaml:"test" firestore:"test"`
	Date   time.Time             `yaml:"date" firestore:"date"`
	Result string                `yaml:"result" firestore:"result"`
	Range  string                `yaml:"range,omitempty" firestore:"range"`
	Status types.LabResultStatus `yaml:"status" firestore:"status"`
}

// Prescription is a medication prescribed to the patient
type Prescription struct {
	ID           types.RecordID           `yaml:"id,omitempty" firestore:"id"`
	Medication   string                   `yaml:"medication" firestore:"medication"`
	Dosage       string                   `yaml:"dosage,omitempty" firestore:"dosage"`
	Frequency    string                   `yaml:"frequency,omitempty" firestore:"frequency"`
	PrescribedBy string                   `yaml:"prescribed_by,omitempty" firestore:"prescribed_by"`
	PrescribedAt time.Time                `yaml:"prescribed_at" firestore:"prescribed_at"`
	Refills      int                      `yaml:"refills" firestore:"refills"`
	Status       types.PrescriptionStatus `yaml:"status" firestore:"status"`
}

// IsActive reports whether the prescription can still be refilled
func (p Prescription) IsActive() bool {
	return p.Status == types.PrescriptionActive
}

// MedicalRecord is an entry of the medical records list
type MedicalRecord struct {
	ID       types.RecordID `yaml:"id,omitempty" firestore:"id"`
	Title    string         `yaml:"title" firestore:"title"`
	Kind     string         `yaml:"kind,omitempty" firestore:"kind"`
	Provider string         `yaml:"provider,omitempty" firestore:"provider"`
	Date     time.Time      `yaml:"date" firestore:"date"`
}

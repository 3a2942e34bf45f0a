package model

import (
	"github.com/carelink-lab/carelink/pkg/domain/types"
)

// Page is the data of one patient page: the shell, the header and the
// records shown in its content region
type Page struct {
	Path    types.Path
	Title   string
	Patient PatientProfile
	Shell   ShellView

	SummaryCards  []SummaryCard
	Appointments  []Appointment
	LabResults    []LabResult
	Prescriptions []Prescription
	Records       []MedicalRecord
}

// RoleOption is a role entry of the role selection page
type RoleOption struct {
	Role      types.Role
	Label     string
	Available bool
	Href      string
}

// RoleSelection is the data of the role selection page
type RoleSelection struct {
	Options []RoleOption
	Notice  string
}

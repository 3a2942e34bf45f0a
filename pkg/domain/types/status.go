package types

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	AppointmentUpcoming  AppointmentStatus = "Upcoming"
	AppointmentCompleted AppointmentStatus = "Completed"
	AppointmentCancelled AppointmentStatus = "Cancelled"
)

// String returns the string representation of the status
func (s AppointmentStatus) String() string {
	return string(s)
}

// IsValid checks if the status is valid
func (s AppointmentStatus) IsValid() bool {
	switch s {
	case AppointmentUpcoming, AppointmentCompleted, AppointmentCancelled:
		return true
	default:
		return false
	}
}

// LabResultStatus represents the status of a lab result
type LabResultStatus string

const (
	LabResultNormal   LabResultStatus = "Normal"
	LabResultAbnormal LabResultStatus = "Abnormal"
	LabResultPending  LabResultStatus = "Pending"
)

// String returns the string representation of the status
func (s LabResultStatus) String() string {
	return string(s)
}

// IsValid checks if the status is valid
func (s LabResultStatus) IsValid() bool {
	switch s {
	case LabResultNormal, LabResultAbnormal, LabResultPending:
		return true
	default:
		return false
	}
}

// PrescriptionStatus represents the status of a prescription
type PrescriptionStatus string

const (
	PrescriptionActive  PrescriptionStatus = "Active"
	PrescriptionExpired PrescriptionStatus = "Expired"
)

// String returns the string representation of the status
func (s PrescriptionStatus) String() string {
	return string(s)
}

// IsValid checks if the status is valid
func (s PrescriptionStatus) IsValid() bool {
	switch s {
	case PrescriptionActive, PrescriptionExpired:
		return true
	default:
		return false
	}
}

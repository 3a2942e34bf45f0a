package model

import (
	"github.com/carelink-lab/carelink/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

// NavItem is a single navigable destination shown in the sidebar
type NavItem struct {
	Label string
	Path  types.Path
	Icon  string
}

// PatientNavItems returns the patient sidebar menu in display order
func PatientNavItems() []NavItem {
	return []NavItem{
		{Label: "Dashboard", Path: types.PathDashboard, Icon: "home"},
		{Label: "Medical Records", Path: types.PathRecords, Icon: "file-text"},
		{Label: "Prescriptions", Path: types.PathPrescriptions, Icon: "pill"},
		{Label: "Lab Results", Path: types.PathLabResults, Icon: "flask"},
		{Label: "Appointments", Path: types.PathAppointments, Icon: "calendar"},
	}
}

// ValidateNavItems checks that every item has a label and a path, and that
// no two items share a path
func ValidateNavItems(items []NavItem) error {
	seen := make(map[types.Path]bool, len(items))
	for i, item := range items {
		if item.Label == "" {
			return goerr.New("nav item label is empty", goerr.V("index", i))
		}
		if item.Path == "" {
			return goerr.New("nav item path is empty", goerr.V("index", i))
		}
		if seen[item.Path] {
			return goerr.New("duplicate nav item path", goerr.V("path", item.Path))
		}
		seen[item.Path] = true
	}
	return nil
}

// PageTitle returns the header title of a page
func PageTitle(path types.Path) string {
	for _, item := range PatientNavItems() {
		if item.Path == path {
			return item.Label
		}
	}
	switch path {
	case types.PathRoleSelection:
		return "Select your role"
	default:
		return "CareLink"
	}
}

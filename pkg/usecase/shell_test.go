package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/carelink-lab/carelink/pkg/domain/model"
	"github.com/carelink-lab/carelink/pkg/domain/types"
	"github.com/carelink-lab/carelink/pkg/usecase"
	"github.com/m-mizutani/gt"
)

func TestShellApply(t *testing.T) {
	ctx := context.Background()
	uc := usecase.NewShell(model.PatientNavItems())

	testCases := []struct {
		name     string
		event    model.ShellEvent
		expected string
	}{
		{
			name:     "menu open from closed",
			event:    model.ShellEvent{Kind: model.ShellEventMenuOpen, From: types.PathDashboard, State: types.SidebarClosed},
			expected: "/patient/dashboard?sidebar=open",
		},
		{
			name:     "menu open while open",
			event:    model.ShellEvent{Kind: model.ShellEventMenuOpen, From: types.PathDashboard, State: types.SidebarOpen},
			expected: "/patient/dashboard?sidebar=open",
		},
		{
			name:     "backdrop close",
			event:    model.ShellEvent{Kind: model.ShellEventClose, From: types.PathAppointments, State: types.SidebarOpen},
			expected: "/patient/appointments",
		},
		{
			name:     "close while closed",
			event:    model.ShellEvent{Kind: model.ShellEventClose, From: types.PathAppointments, State: types.SidebarClosed},
			expected: "/patient/appointments",
		},
		{
			name:     "nav item from open sidebar",
			event:    model.ShellEvent{Kind: model.ShellEventNavigate, From: types.PathDashboard, State: types.SidebarOpen, Target: types.PathPrescriptions},
			expected: "/patient/prescriptions",
		},
		{
			name:     "logout",
			event:    model.ShellEvent{Kind: model.ShellEventLogout, From: types.PathRecords, State: types.SidebarOpen},
			expected: "/",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			nav, err := uc.Apply(ctx, tc.event)
			gt.NoError(t, err).Required()
			gt.Equal(t, nav.URL(), tc.expected)
		})
	}
}

func TestShellApplyRejectsForeignPages(t *testing.T) {
	uc := usecase.NewShell(model.PatientNavItems())

	_, err := uc.Apply(context.Background(), model.ShellEvent{
		Kind: model.ShellEventMenuOpen,
		From: types.PathRoleSelection,
	})
	gt.Error(t, err)
	gt.True(t, errors.Is(err, model.ErrNotShellPage))

	_, err = uc.Apply(context.Background(), model.ShellEvent{
		Kind:   model.ShellEventNavigate,
		From:   types.PathDashboard,
		Target: "https://evil.example.com",
	})
	gt.Error(t, err)
	gt.True(t, errors.Is(err, model.ErrUnknownNavTarget))
}

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

func TestOnboardingRegister(t *testing.T) {
	nav := usecase.NewOnboarding().Register(context.Background())
	gt.Equal(t, nav.URL(), "/role-selection")
}

func TestOnboardingSelectRole(t *testing.T) {
	ctx := context.Background()
	uc := usecase.NewOnboarding()

	t.Run("no role renders every option", func(t *testing.T) {
		page, nav, err := uc.SelectRole(ctx, "")
		gt.NoError(t, err).Required()
		gt.V(t, nav).Nil()
		gt.Equal(t, len(page.Options), len(types.Roles))
		gt.Equal(t, page.Notice, "")

		for _, opt := range page.Options {
			gt.Equal(t, opt.Available, opt.Role == types.RolePatient)
		}
		gt.Equal(t, page.Options[0].Href, "/role-selection?role=patient")
	})

	t.Run("patient goes to the dashboard", func(t *testing.T) {
		page, nav, err := uc.SelectRole(ctx, "patient")
		gt.NoError(t, err).Required()
		gt.V(t, page).Nil()
		gt.V(t, nav).NotNil()
		gt.Equal(t, nav.URL(), "/patient/dashboard")
	})

	t.Run("role without portal shows a notice", func(t *testing.T) {
		page, nav, err := uc.SelectRole(ctx, "doctor")
		gt.NoError(t, err).Required()
		gt.V(t, nav).Nil()
		gt.S(t, page.Notice).Contains("Doctor")
	})

	t.Run("unknown role", func(t *testing.T) {
		_, _, err := uc.SelectRole(ctx, "nurse")
		gt.Error(t, err)
		gt.True(t, errors.Is(err, model.ErrUnknownRole))
	})
}

package cli

import (
	"context"
	"io"
	"log/slog"
	"os"
	"slices"

	"github.com/carelink-lab/carelink/pkg/cli/config"
	"github.com/carelink-lab/carelink/pkg/domain/model"
	"github.com/carelink-lab/carelink/pkg/domain/types"
	"github.com/carelink-lab/carelink/pkg/usecase"
	"github.com/carelink-lab/carelink/pkg/view"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
	g "maragu.dev/gomponents"
)

func cmdRender() *cli.Command {
	var (
		path         string
		sidebarOpen  bool
		output       string
		portalCfg    config.Portal
		fixtureCfg   config.Fixture
		firestoreCfg config.Firestore
	)

	flags := slices.Concat(
		[]cli.Flag{
			&cli.StringFlag{
				Name:        "path",
				Usage:       "Route to render",
				Value:       types.PathDashboard.String(),
				Destination: &path,
			},
			&cli.BoolFlag{
				Name:        "sidebar",
				Usage:       "Render with the sidebar open",
				Destination: &sidebarOpen,
			},
			&cli.StringFlag{
				Name:        "output",
				Aliases:     []string{"o"},
				Usage:       "Output file (stdout if empty)",
				Destination: &output,
			},
		},
		portalCfg.Flags(),
		fixtureCfg.Flags(),
		firestoreCfg.Flags(),
	)

	return &cli.Command{
		Name:  "render",
		Usage: "Render a page to HTML without starting the server",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			repo, err := firestoreCfg.Configure(ctx, &fixtureCfg)
			if err != nil {
				return err
			}
			defer repo.Close()

			portalUC, err := portalCfg.Configure(repo, model.PatientNavItems())
			if err != nil {
				return err
			}

			state := types.SidebarClosed
			if sidebarOpen {
				state = state.Open()
			}

			node, err := renderNode(ctx, portalUC, types.Path(path), state)
			if err != nil {
				return err
			}

			var w io.Writer = os.Stdout
			if output != "" {
				f, err := os.Create(output)
				if err != nil {
					return goerr.Wrap(err, "failed to create output file", goerr.V("path", output))
				}
				defer f.Close()
				w = f
			}

			if err := node.Render(w); err != nil {
				return goerr.Wrap(err, "failed to render page", goerr.V("path", path))
			}

			ctxlog.From(ctx).Debug("Page rendered",
				slog.String("path", path),
				slog.String("sidebar", state.String()),
				slog.String("output", output),
			)
			return nil
		},
	}
}

func renderNode(ctx context.Context, portal usecase.PortalUseCase, path types.Path, state types.SidebarState) (g.Node, error) {
	switch path {
	case types.PathRoot:
		return view.Landing(), nil
	case types.PathRoleSelection:
		page, _, err := usecase.NewOnboarding().SelectRole(ctx, "")
		if err != nil {
			return nil, err
		}
		return view.RoleSelection(page), nil
	}

	page, err := portal.Page(ctx, path, state)
	if err != nil {
		return nil, err
	}
	return view.Page(page), nil
}

package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/bnema/honkbreach/internal/adapters/desktop/memory"
	"github.com/bnema/honkbreach/internal/adapters/host/scripted"
	"github.com/bnema/honkbreach/internal/adapters/render/glitch"
	"github.com/bnema/honkbreach/internal/adapters/render/report"
	scenariotoml "github.com/bnema/honkbreach/internal/adapters/repo/toml"
	"github.com/bnema/honkbreach/internal/application"
	"github.com/bnema/honkbreach/internal/domain"
	"github.com/bnema/honkbreach/internal/ports"
	"github.com/spf13/cobra"
)

const (
	replayDesktopMemory     = "memory"
	replayDesktopConfigured = "configured"
)

type replayOptions struct {
	scenario  string
	desktop   string
	asJSON    bool
	allFrames bool
}

func newReplayCmd(app *app) *cobra.Command {
	var opts replayOptions

	cmd := &cobra.Command{
		Use:   "replay",
		Short: "Drive the prank through a scripted scenario and report what it did",
		RunE: func(cmd *cobra.Command, _ []string) error {
			scenario, err := scenariotoml.NewScenarioRepository(app.fs).Load(opts.scenario)
			if err != nil {
				return fmt.Errorf("load scenario: %w", err)
			}

			var (
				desktop ports.DesktopSettings
				fake    *memory.Gateway
			)
			switch opts.desktop {
			case replayDesktopMemory:
				fake = memory.NewGateway(scenario.Desktop)
				desktop = fake
			case replayDesktopConfigured:
				desktop, err = app.desktopGateway()
				if err != nil {
					return err
				}
			default:
				return fmt.Errorf("unknown --desktop %q (want %s or %s)", opts.desktop, replayDesktopMemory, replayDesktopConfigured)
			}

			assets, err := app.assetStore()
			if err != nil {
				return err
			}

			host := scripted.NewHost(scenario, app.now())
			prank, err := application.NewPrank(application.Deps{
				Lookup:   host,
				Input:    host,
				Clock:    host,
				Desktop:  desktop,
				Assets:   assets,
				Renderer: glitch.NewRenderer(nil),
				Exiter:   host,
				Logger:   app.logger.Named("prank"),
			})
			if err != nil {
				return err
			}
			prank.Init(host)

			recorder := application.NewReplayRecorder(scenario.Name, prank)
			if err := host.Run(cmd.Context(), func(frame scripted.FrameResult) {
				recorder.Record(frame.Index, frame.At, frame.Actor, frame.Exited)
			}); err != nil {
				return fmt.Errorf("replay %q: %w", scenario.Name, err)
			}

			var final domain.WallpaperSettings
			if fake != nil {
				final = fake.Displayed()
			} else if final, err = desktop.Read(cmd.Context()); err != nil {
				return fmt.Errorf("read final desktop: %w", err)
			}

			return writeReplayOutput(cmd, app, recorder.Result(final), fake, opts)
		},
	}

	cmd.Flags().StringVar(&opts.scenario, "scenario", "", "scenario TOML file")
	cmd.Flags().StringVar(&opts.desktop, "desktop", replayDesktopMemory, "desktop settings to hijack: memory (seeded from the scenario) or configured")
	cmd.Flags().BoolVar(&opts.asJSON, "json", false, "print the replay result as JSON")
	cmd.Flags().BoolVar(&opts.allFrames, "frames", false, "list every frame, not only transitions")
	_ = cmd.MarkFlagRequired("scenario")

	return cmd
}

func writeReplayOutput(cmd *cobra.Command, app *app, result application.ReplayResult, fake *memory.Gateway, opts replayOptions) error {
	if opts.asJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}

	renderOpts := report.RenderOptions{Frames: opts.allFrames}
	if fake != nil {
		renderOpts.Calls = &report.DesktopCalls{
			Reads:    fake.Reads(),
			Writes:   len(fake.Writes()),
			Notifies: fake.Notifies(),
		}
	}

	rendered, err := app.reportRenderer(result, renderOpts)
	if err != nil {
		return fmt.Errorf("render replay: %w", err)
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
	return err
}

package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/bnema/honkbreach/internal/adapters/host/live"
	"github.com/bnema/honkbreach/internal/adapters/input"
	"github.com/bnema/honkbreach/internal/adapters/render/glitch"
	"github.com/bnema/honkbreach/internal/application"
	"github.com/bnema/honkbreach/internal/domain"
	"github.com/bnema/honkbreach/internal/ports"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// The decoy never moves, so its limits only need to keep speed and
// acceleration below the thresholds.
var decoyParameters = domain.ActorParameters{MaxRunSpeed: 200, MaxChargedAcceleration: 2300}

// cancelExiter ends the live loop instead of the process so deferred cleanup
// still runs.
type cancelExiter struct {
	cancel    context.CancelFunc
	requested bool
}

func (e *cancelExiter) Exit(int) {
	e.requested = true
	e.cancel()
}

func newRunCmd(app *app) *cobra.Command {
	var (
		anchor   []float64
		interval time.Duration
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the prank live against a decoy anchored on screen (Windows only)",
		Long:  "run polls the mouse and keyboard every frame. Three quick clicks near the anchor hijack the desktop for nine seconds; Escape restores it and quits.",
		PreRunE: func(_ *cobra.Command, _ []string) error {
			if len(anchor) != 2 {
				return fmt.Errorf("--anchor needs exactly two values, got %d", len(anchor))
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger := app.logger.Named("run")

			sampler, err := input.SystemSampler()
			if err != nil {
				return fmt.Errorf("live input: %w", err)
			}
			poller := input.NewPoller(sampler, logger.Named("input"))

			desktop, err := app.desktopGateway()
			if err != nil {
				return err
			}
			assets, err := app.assetStore()
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()
			ctx, cancel := context.WithCancel(ctx)
			defer cancel()

			host, err := live.NewHost(live.Config{
				Interval: interval,
				Actor: domain.ActorSnapshot{
					CurrentTask: -1,
					Position:    domain.Vec2{X: anchor[0], Y: anchor[1]},
					Parameters:  decoyParameters,
				},
			}, poller, logger.Named("host"))
			if err != nil {
				return err
			}

			exiter := &cancelExiter{cancel: cancel}
			prank, err := application.NewPrank(application.Deps{
				Lookup:   host,
				Input:    poller,
				Clock:    ports.SystemClock{},
				Desktop:  desktop,
				Assets:   assets,
				Renderer: glitch.NewRenderer(nil),
				Exiter:   exiter,
				Logger:   app.logger.Named("prank"),
			})
			if err != nil {
				return err
			}
			prank.Init(host)

			runErr := host.Run(ctx)

			if err := prank.Takeover().ForceNormal(context.WithoutCancel(ctx)); err != nil {
				logger.Warn("restore on shutdown", zap.Error(err))
			}

			if exiter.requested || errors.Is(runErr, context.Canceled) {
				return nil
			}
			return runErr
		},
	}

	cmd.Flags().Float64SliceVar(&anchor, "anchor", []float64{960, 540}, "decoy position in screen pixels: x,y")
	cmd.Flags().DurationVar(&interval, "interval", live.DefaultFrameInterval, "frame interval")

	return cmd
}

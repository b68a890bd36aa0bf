package cmd

import (
	"github.com/bnema/honkbreach/internal/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	cfg := viper.New()
	app := &app{}

	rootCmd := &cobra.Command{
		Use:           "honk",
		Short:         "honk: a desktop-hijack prank mod for a roaming desktop pet",
		Long:          "honk swaps the desktop wallpaper for a fake breach screen while the pet is agitated and puts the original back when it calms down. Escape always restores the desktop and quits.",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			return app.wire(cfg)
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			app.close()
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.String("log-level", "warn", "log level (debug, info, warn, error)")
	flags.Bool("log-dev", false, "human readable console logs")
	_ = cfg.BindPFlag(config.LogLevelKey, flags.Lookup("log-level"))
	_ = cfg.BindPFlag(config.LogDevelopmentKey, flags.Lookup("log-dev"))

	rootCmd.AddCommand(
		newVersionCmd(),
		newAssetCmd(app),
		newReplayCmd(app),
		newRestoreCmd(app),
		newRunCmd(app),
	)

	return rootCmd
}

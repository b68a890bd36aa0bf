package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newAssetCmd(app *app) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "asset",
		Short: "Make sure the fake breach wallpaper exists and print its path",
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := app.assetStore()
			if err != nil {
				return err
			}

			ensure := store.Ensure
			if force {
				ensure = store.Regenerate
			}

			path, err := runAssetSpinner(cmd.Context(), cmd.ErrOrStderr(), ensure)
			if err != nil {
				return fmt.Errorf("prepare fake wallpaper: %w", err)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), path)
			return err
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "regenerate the image even if it already exists")

	return cmd
}

package cmd

import (
	"fmt"

	"github.com/bnema/honkbreach/internal/domain"
	"github.com/spf13/cobra"
)

func newRestoreCmd(app *app) *cobra.Command {
	var settings domain.WallpaperSettings

	cmd := &cobra.Command{
		Use:   "restore",
		Short: "Write explicit wallpaper settings, for recovering a hijacked desktop by hand",
		RunE: func(cmd *cobra.Command, _ []string) error {
			desktop, err := app.desktopGateway()
			if err != nil {
				return err
			}

			if err := desktop.Write(cmd.Context(), settings); err != nil {
				return fmt.Errorf("write wallpaper settings: %w", err)
			}
			if err := desktop.Notify(cmd.Context()); err != nil {
				return fmt.Errorf("refresh desktop: %w", err)
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "restored %s (style %s, tile %s)\n", settings.Path, settings.Style, settings.Tile)
			return err
		},
	}

	cmd.Flags().StringVar(&settings.Path, "path", "", "wallpaper image path")
	cmd.Flags().StringVar(&settings.Style, "style", domain.DefaultWallpaperStyle, "WallpaperStyle value")
	cmd.Flags().StringVar(&settings.Tile, "tile", domain.DefaultTileWallpaper, "TileWallpaper value")
	_ = cmd.MarkFlagRequired("path")

	return cmd
}

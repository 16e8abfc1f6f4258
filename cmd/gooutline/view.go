package main

import (
	"github.com/philipparndt/gooutline/internal/app"
	"github.com/philipparndt/gooutline/internal/config"
	"github.com/philipparndt/gooutline/pkg/watcher"
	"github.com/spf13/cobra"
)

var viewCmd = &cobra.Command{
	Use:   "view",
	Short: "Open the interactive viewer (default)",
	Long:  "Open a window with the sphere scene. Hovering a sphere outlines it. The outline section of the config file is reloaded on change.",
	Args:  cobra.NoArgs,
	RunE:  runView,
}

func init() {
	rootCmd.AddCommand(viewCmd)
}

func runView(cmd *cobra.Command, args []string) error {
	sess, err := openSession(cmd)
	if err != nil {
		return err
	}

	style, params, err := sess.Outline(outlineFlagsChanged(cmd))
	if err != nil {
		return err
	}

	reloads := watcher.NewQueue[config.OutlineConfig]()
	fw, err := sess.Loader.WatchOutline(reloads, sess.Logger)
	if err != nil {
		sess.Logger.Info("config hot reload disabled", "path", sess.Loader.Path(), "error", err)
		reloads = nil
	} else {
		defer fw.Close()
	}

	result, err := app.Run(app.Options{
		Config:  sess.Config,
		Style:   style,
		Params:  params,
		Reloads: reloads,
		Logger:  sess.Logger,
	})
	if err != nil {
		return err
	}

	sess.Persist(result.Style, result.Params)
	return nil
}

package cmd

import "github.com/spf13/cobra"

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "ow",
		Short:         "openwin (ow): pick the editor window that should open a path",
		Long:          "ow keeps a snapshot of open editor windows and decides, for a file or folder, whether an existing window should take it, a new window should open on a discovered project root, or a plain new window is needed.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	app, err := wireApp()
	if err != nil {
		rootCmd.RunE = func(_ *cobra.Command, _ []string) error {
			return err
		}
		return rootCmd
	}

	rootCmd.AddCommand(
		newVersionCmd(),
		newResolveCmd(app),
		newSettingsRootCmd(app),
		newWindowCmd(app),
		newWatchCmd(app),
	)

	return rootCmd
}

package cmd

import (
	"fmt"

	"github.com/bnema/openwin/internal/application"
	"github.com/bnema/openwin/internal/domain"
	"github.com/spf13/cobra"
)

type resolveFlags struct {
	context        string
	newWindow      bool
	reuseWindow    bool
	userHome       string
	settingsFolder string
	casePolicy     string
	output         string
}

func (f *resolveFlags) bind(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.context, "context", string(domain.OpenContextCLI), "request origin: desktop, cli, dock, api, menu or dialog")
	cmd.Flags().BoolVar(&f.newWindow, "new-window", false, "force a new window")
	cmd.Flags().BoolVar(&f.reuseWindow, "reuse-window", false, "prefer an open window over a discovered settings root")
	cmd.Flags().StringVar(&f.userHome, "user-home", "", "user home directory (defaults to the configured one)")
	cmd.Flags().StringVar(&f.settingsFolder, "settings-folder", "", "settings folder name (defaults to the configured one)")
	cmd.Flags().StringVar(&f.casePolicy, "case-policy", "", "path comparison: auto, sensitive or insensitive")
	cmd.Flags().StringVarP(&f.output, "output", "o", outputText, "output format: text, json or yaml")
	cmd.MarkFlagsMutuallyExclusive("new-window", "reuse-window")
}

func (f *resolveFlags) command(filePath string) (application.ResolveCommand, error) {
	openContext, err := domain.ParseOpenContext(f.context)
	if err != nil {
		return application.ResolveCommand{}, err
	}

	return application.ResolveCommand{
		FilePath:           filePath,
		Context:            openContext,
		NewWindow:          f.newWindow,
		ReuseWindow:        f.reuseWindow,
		UserHome:           f.userHome,
		SettingsFolderName: f.settingsFolder,
	}, nil
}

func newResolveCmd(app *app) *cobra.Command {
	flags := &resolveFlags{}

	cmd := &cobra.Command{
		Use:   "resolve [path]",
		Short: "Decide which window should open a path",
		Long:  "Prints whether an open window should take the path, a new window should open on a discovered settings root, or a plain new window is needed. Without a path the most recently focused window is chosen.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateOutput(flags.output); err != nil {
				return err
			}

			var filePath string
			if len(args) == 1 {
				filePath = args[0]
			}

			request, err := flags.command(filePath)
			if err != nil {
				return err
			}

			svc, err := app.service(flags.casePolicy)
			if err != nil {
				return err
			}

			decision, err := svc.Resolve(cmd.Context(), request)
			if err != nil {
				return fmt.Errorf("resolve window: %w", err)
			}

			return writeDecisionOutput(cmd, app, decision, flags.output)
		},
	}
	flags.bind(cmd)

	return cmd
}

func newSettingsRootCmd(app *app) *cobra.Command {
	var (
		userHome       string
		settingsFolder string
		casePolicy     string
	)

	cmd := &cobra.Command{
		Use:   "settings-root <file>",
		Short: "Print the nearest folder above a file that carries editor settings",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := app.service(casePolicy)
			if err != nil {
				return err
			}

			root, ok := svc.FindSettingsRoot(args[0], userHome, settingsFolder)
			if !ok {
				return fmt.Errorf("no settings folder found above %s", args[0])
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), root)
			return err
		},
	}

	cmd.Flags().StringVar(&userHome, "user-home", "", "user home directory (defaults to the configured one)")
	cmd.Flags().StringVar(&settingsFolder, "settings-folder", "", "settings folder name (defaults to the configured one)")
	cmd.Flags().StringVar(&casePolicy, "case-policy", "", "path comparison: auto, sensitive or insensitive")

	return cmd
}

package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/bnema/openwin/internal/application"
	"github.com/bnema/openwin/internal/domain"
	"github.com/spf13/cobra"
)

func newWindowCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "window",
		Short: "Manage the open window snapshot",
	}

	cmd.AddCommand(
		newWindowListCmd(app),
		newWindowAddCmd(app),
		newWindowFocusCmd(app),
		newWindowRemoveCmd(app),
		newWindowMatchCmd(app),
	)

	return cmd
}

func newWindowListCmd(app *app) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recorded windows",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := validateOutput(output); err != nil {
				return err
			}

			windows, err := app.windows.List(cmd.Context())
			if err != nil {
				return err
			}

			return writeWindowsOutput(cmd, app, windows, output)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", outputText, "output format: text, json or yaml")

	return cmd
}

func newWindowAddCmd(app *app) *cobra.Command {
	var (
		id               string
		folder           string
		file             string
		workspaceID      string
		workspaceConfig  string
		extensionDevPath string
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record an open window",
		Long:  "Records a window and marks it as the most recently focused one. A random id is assigned when --id is omitted.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			request := application.AddWindowCommand{
				ID:               domain.WindowID(id),
				Folder:           folder,
				File:             file,
				ExtensionDevPath: extensionDevPath,
			}
			if strings.TrimSpace(workspaceID) != "" || strings.TrimSpace(workspaceConfig) != "" {
				request.Workspace = &domain.WorkspaceID{
					ID:         strings.TrimSpace(workspaceID),
					ConfigPath: workspaceConfig,
				}
			}

			window, err := app.windows.Add(cmd.Context(), request)
			if err != nil {
				return fmt.Errorf("add window: %w", err)
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "added window %s (%s)\n", window.ID, window.Label())
			return err
		},
	}

	cmd.Flags().StringVar(&id, "id", "", "window id")
	cmd.Flags().StringVar(&folder, "folder", "", "folder open in the window")
	cmd.Flags().StringVar(&file, "file", "", "file open in the window")
	cmd.Flags().StringVar(&workspaceID, "workspace", "", "workspace id open in the window")
	cmd.Flags().StringVar(&workspaceConfig, "workspace-config", "", "workspace configuration file")
	cmd.Flags().StringVar(&extensionDevPath, "extension-dev-path", "", "extension development path of the window")

	return cmd
}

func newWindowFocusCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "focus <id>",
		Short: "Mark a window as the most recently focused one",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			window, err := app.windows.Focus(cmd.Context(), domain.WindowID(args[0]))
			if err != nil {
				return windowError(args[0], err)
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "focused window %s\n", window.ID)
			return err
		},
	}
}

func newWindowRemoveCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:     "remove <id>",
		Aliases: []string{"rm"},
		Short:   "Forget a window",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.windows.Remove(cmd.Context(), domain.WindowID(args[0])); err != nil {
				return windowError(args[0], err)
			}

			_, err := fmt.Fprintf(cmd.OutOrStdout(), "removed window %s\n", args[0])
			return err
		},
	}
}

func newWindowMatchCmd(app *app) *cobra.Command {
	var (
		folder           string
		workspace        string
		extensionDevPath string
		path             string
		casePolicy       string
	)

	cmd := &cobra.Command{
		Use:   "match",
		Short: "Find the window that has exactly this folder, workspace or extension path open",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var query application.MatchQuery
			switch {
			case cmd.Flags().Changed("folder"):
				query = application.MatchQuery{Kind: application.MatchFolder, Value: folder}
			case cmd.Flags().Changed("workspace"):
				query = application.MatchQuery{Kind: application.MatchWorkspace, Value: workspace}
			case cmd.Flags().Changed("extension-dev-path"):
				query = application.MatchQuery{Kind: application.MatchExtensionDevelopment, Value: extensionDevPath}
			default:
				query = application.MatchQuery{Kind: application.MatchWorkspaceOrFolder, Value: path}
			}

			svc, err := app.service(casePolicy)
			if err != nil {
				return err
			}

			window, err := svc.Match(cmd.Context(), query)
			if err != nil {
				if errors.Is(err, domain.ErrWindowNotFound) {
					return fmt.Errorf("no window matches %s %q", query.Kind, query.Value)
				}
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", window.ID, window.Label())
			return err
		},
	}

	cmd.Flags().StringVar(&folder, "folder", "", "folder path")
	cmd.Flags().StringVar(&workspace, "workspace", "", "workspace id")
	cmd.Flags().StringVar(&extensionDevPath, "extension-dev-path", "", "extension development path")
	cmd.Flags().StringVar(&path, "path", "", "workspace configuration file or folder path")
	cmd.Flags().StringVar(&casePolicy, "case-policy", "", "path comparison: auto, sensitive or insensitive")
	cmd.MarkFlagsMutuallyExclusive("folder", "workspace", "extension-dev-path", "path")
	cmd.MarkFlagsOneRequired("folder", "workspace", "extension-dev-path", "path")

	return cmd
}

func windowError(id string, err error) error {
	if errors.Is(err, domain.ErrWindowNotFound) {
		return fmt.Errorf("window %q not found", id)
	}

	return err
}

package cmd

import (
	"encoding/json"
	"fmt"
	"time"

	resolutionrender "github.com/bnema/openwin/internal/adapters/render/resolution"
	"github.com/bnema/openwin/internal/application"
	"github.com/bnema/openwin/internal/domain"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

const (
	outputText = "text"
	outputJSON = "json"
	outputYAML = "yaml"
)

type windowOutput struct {
	ID               string `json:"id" yaml:"id"`
	Folder           string `json:"folder,omitempty" yaml:"folder,omitempty"`
	File             string `json:"file,omitempty" yaml:"file,omitempty"`
	WorkspaceID      string `json:"workspace_id,omitempty" yaml:"workspace_id,omitempty"`
	WorkspaceConfig  string `json:"workspace_config,omitempty" yaml:"workspace_config,omitempty"`
	ExtensionDevPath string `json:"extension_dev_path,omitempty" yaml:"extension_dev_path,omitempty"`
	FocusedAt        string `json:"focused_at,omitempty" yaml:"focused_at,omitempty"`
}

type decisionOutput struct {
	FilePath string        `json:"file_path,omitempty" yaml:"file_path,omitempty"`
	Context  string        `json:"context" yaml:"context"`
	Kind     string        `json:"kind" yaml:"kind"`
	Window   *windowOutput `json:"window,omitempty" yaml:"window,omitempty"`
	Folder   string        `json:"folder,omitempty" yaml:"folder,omitempty"`
	Windows  int           `json:"windows" yaml:"windows"`
}

func toWindowOutput(window domain.WindowRecord) windowOutput {
	out := windowOutput{
		ID:               string(window.ID),
		Folder:           window.Folder,
		File:             window.File,
		ExtensionDevPath: window.ExtensionDevPath,
	}
	if window.Workspace != nil {
		out.WorkspaceID = window.Workspace.ID
		out.WorkspaceConfig = window.Workspace.ConfigPath
	}
	if !window.FocusedAt.IsZero() {
		out.FocusedAt = window.FocusedAt.Format(time.RFC3339Nano)
	}

	return out
}

func toDecisionOutput(decision application.Decision) decisionOutput {
	out := decisionOutput{
		FilePath: decision.Request.FilePath,
		Context:  string(decision.Request.Context),
		Kind:     string(decision.Resolution.Kind),
		Folder:   decision.Resolution.Folder,
		Windows:  decision.Windows,
	}
	if decision.Resolution.Kind == domain.ResolutionExistingWindow {
		window := toWindowOutput(decision.Resolution.Window)
		out.Window = &window
	}

	return out
}

func validateOutput(format string) error {
	switch format {
	case outputText, outputJSON, outputYAML:
		return nil
	default:
		return fmt.Errorf("unsupported output format %q (want text, json or yaml)", format)
	}
}

func writeStructured(cmd *cobra.Command, format string, value any) error {
	switch format {
	case outputJSON:
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(value)
	case outputYAML:
		enc := yaml.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent(2)
		if err := enc.Encode(value); err != nil {
			return err
		}
		return enc.Close()
	default:
		return validateOutput(format)
	}
}

func writeDecisionOutput(cmd *cobra.Command, app *app, decision application.Decision, format string) error {
	if format != outputText {
		return writeStructured(cmd, format, toDecisionOutput(decision))
	}

	rendered, err := app.renderDecision(decision, resolutionrender.RenderOptions{Now: app.now()})
	if err != nil {
		return fmt.Errorf("render decision: %w", err)
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
	return err
}

func writeWindowsOutput(cmd *cobra.Command, app *app, windows []domain.WindowRecord, format string) error {
	if format != outputText {
		out := make([]windowOutput, 0, len(windows))
		for _, window := range windows {
			out = append(out, toWindowOutput(window))
		}
		return writeStructured(cmd, format, out)
	}

	rendered, err := app.renderWindows(windows, resolutionrender.RenderOptions{Now: app.now()})
	if err != nil {
		return fmt.Errorf("render windows: %w", err)
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
	return err
}

package main

import (
	"errors"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/pageprice/internal/tui"
)

var errNotTerminal = errors.New("stdout is not a terminal")

func runWidget(cmd *cobra.Command, flags *rootFlags) error {
	if !isTerminal(cmd.OutOrStdout()) {
		return newCommandError("launch widget", "checking terminal", errNotTerminal, "Run 'pageprice quote --tier N' for non-interactive output.")
	}

	// Logging to the terminal would corrupt the widget, so it is silent unless --log-file is set.
	pricing, log, closeLog, err := setup(flags, io.Discard, "widget", "launch widget")
	if err != nil {
		return err
	}
	defer closeLog()

	model, err := tui.NewModel(pricing, log)
	if err != nil {
		log.Error(err, "widget setup failed")
		return newCommandError("launch widget", "building widget", err, "Check that the catalog's default tier exists.")
	}

	log.Info("widget started", "tiers", pricing.Table.Len(), "initial_tier", pricing.InitialTier)

	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithInput(cmd.InOrStdin()), tea.WithOutput(cmd.OutOrStdout()))
	final, err := program.Run()
	if err != nil {
		log.Error(err, "widget execution failed")
		return fmt.Errorf("failed to run widget: %w", err)
	}

	if m, ok := final.(tui.Model); ok && m.Err() != nil {
		return fmt.Errorf("widget stopped: %w", m.Err())
	}

	log.Info("widget closed")
	return nil
}

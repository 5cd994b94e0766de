package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"go.trai.ch/anvil/internal/app"
	"go.trai.ch/anvil/internal/core/domain"
	"go.trai.ch/anvil/internal/ui/style"
)

func (c *CLI) newTargetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "targets",
		Short: "List the targets of the project",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts := options(cmd)
			targets, err := c.app.Targets(cmd.Context(), opts)
			if err != nil {
				return err
			}
			if opts.JSON {
				return writeJSON(cmd.OutOrStdout(), targets)
			}
			return writeTargets(cmd.OutOrStdout(), targets)
		},
	}
}

func (c *CLI) newTypesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "types",
		Short: "List the registered types by role",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts := options(cmd)
			types, err := c.app.Types(cmd.Context(), opts)
			if err != nil {
				return err
			}
			if opts.JSON {
				return writeJSON(cmd.OutOrStdout(), types)
			}
			return writeTypes(cmd.OutOrStdout(), types)
		},
	}
}

func (c *CLI) newHistoryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "history",
		Short: "Show the last recorded outcome of every target",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts := options(cmd)
			records, err := c.app.History(cmd.Context(), opts)
			if err != nil {
				return err
			}
			if opts.JSON {
				return writeJSON(cmd.OutOrStdout(), records)
			}
			return writeHistory(cmd.OutOrStdout(), records)
		},
	}
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeTargets(w io.Writer, targets []app.TargetInfo) error {
	width := 0
	for _, t := range targets {
		width = max(width, lipgloss.Width(t.Name))
	}
	name := lipgloss.NewStyle().Width(width + 2)

	var b strings.Builder
	for _, t := range targets {
		marker := "  "
		if t.Default {
			marker = style.Arrow + " "
		}
		line := marker + name.Render(t.Name)

		var details []string
		if t.Description != "" {
			details = append(details, t.Description)
		}
		if len(t.Depends) > 0 {
			details = append(details, style.Muted("depends: "+strings.Join(t.Depends, ", ")))
		}
		if t.Condition != "" {
			details = append(details, style.Muted(t.Condition))
		}
		line += strings.Join(details, "  ")
		b.WriteString(strings.TrimRight(line, " ") + "\n")
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func writeTypes(w io.Writer, types []app.TypeInfo) error {
	var b strings.Builder
	for _, t := range types {
		if len(t.Names) == 0 {
			continue
		}
		b.WriteString(style.Heading(t.Role) + "\n")
		for _, n := range t.Names {
			b.WriteString("  " + n + "\n")
		}
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func writeHistory(w io.Writer, records []domain.TargetRecord) error {
	if len(records) == 0 {
		_, err := fmt.Fprintln(w, "No recorded runs.")
		return err
	}

	var b strings.Builder
	for _, r := range records {
		icon := style.Check
		switch r.Status {
		case domain.TargetStatusFailed:
			icon = style.Cross
		case domain.TargetStatusSkipped:
			icon = style.Skip
		}
		fmt.Fprintf(&b, "%s %s->%s  %s  %s  %s\n", icon, r.Project, r.Target, r.Status,
			r.Duration.Round(time.Millisecond), style.Muted(r.Started.Format(time.RFC3339)))
		if r.Error != "" {
			fmt.Fprintf(&b, "    %s\n", r.Error)
		}
	}
	_, err := io.WriteString(w, b.String())
	return err
}

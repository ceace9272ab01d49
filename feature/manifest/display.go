package manifest

import (
	"fmt"
	"io"

	"figma-asset-downloader/core/reconcile"

	"github.com/charmbracelet/lipgloss"
)

var (
	red   = lipgloss.Color("9")
	green = lipgloss.Color("10")

	headerStyle        = lipgloss.NewStyle().Bold(true)
	missingHeaderStyle = headerStyle.Foreground(red)
	newHeaderStyle     = headerStyle.Foreground(green)
	missingStyle       = lipgloss.NewStyle().Foreground(red)
	newStyle           = lipgloss.NewStyle().Foreground(green)
	cleanStyle         = newHeaderStyle
)

// Display writes a human readable report: one header per nonempty group followed by its entries.
func Display(w io.Writer, report reconcile.Report) {
	if report.IsClean() {
		fmt.Fprintln(w, cleanStyle.Render("All assets match the manifest"))
		return
	}

	if report.HasMissing() {
		fmt.Fprintln(w, missingHeaderStyle.Render(fmt.Sprintf("There are some assets missing (%d)", len(report.Missing))))
		for _, asset := range report.Missing {
			fmt.Fprintln(w, "    "+missingStyle.Render(asset))
		}
	}

	if report.HasNew() {
		fmt.Fprintln(w, newHeaderStyle.Render(fmt.Sprintf("There are some new assets (%d)", len(report.New))))
		for _, asset := range report.New {
			fmt.Fprintln(w, "    "+newStyle.Render(asset))
		}
	}
}

// DisplayPlan writes the follow-up actions of a plan.
func DisplayPlan(w io.Writer, plan *reconcile.Plan) {
	if len(plan.Actions) == 0 {
		return
	}
	fmt.Fprintln(w, headerStyle.Render(fmt.Sprintf("Planned Actions (%d):", len(plan.Actions))))
	for _, action := range plan.Actions {
		fmt.Fprintf(w, "    %-8s %s\n", action.Type, action.Path)
	}
}

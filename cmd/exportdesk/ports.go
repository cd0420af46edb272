package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/atlasfreight/exportdesk/internal/cli"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

func portsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ports",
		Short: "List the monitored ports used for risk assessment",
		RunE:  runPorts,
	}
}

func runPorts(_ *cobra.Command, _ []string) error {
	fmt.Println(cli.FormatTitle("Monitored Ports")) //nolint:forbidigo // User-facing output
	fmt.Println()                                   //nolint:forbidigo // User-facing output

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	defer func() { _ = w.Flush() }()

	headerStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
	fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
		headerStyle.Render("ID"),
		headerStyle.Render("Name"),
		headerStyle.Render("Latitude"),
		headerStyle.Render("Longitude"))

	for _, port := range monitoredPorts() {
		fmt.Fprintf(w, "%s\t%s\t%.4f\t%.4f\n",
			port.ID, port.Name, port.Latitude, port.Longitude)
	}

	return nil
}

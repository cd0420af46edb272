package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/atlasfreight/exportdesk/internal/catalog"
	"github.com/atlasfreight/exportdesk/internal/cli"
	"github.com/atlasfreight/exportdesk/internal/compliance"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

func documentsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "documents",
		Short: "Browse the compliance document catalog",
	}

	cmd.AddCommand(documentsListCmd())

	return cmd
}

func documentsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all compliance document definitions",
		RunE:  runDocumentsList,
	}
}

func runDocumentsList(_ *cobra.Command, _ []string) error {
	fmt.Println(cli.FormatTitle("Document Catalog")) //nolint:forbidigo // User-facing output
	fmt.Println()                                    //nolint:forbidigo // User-facing output

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	defer func() { _ = w.Flush() }()

	headerStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
	fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
		headerStyle.Render("ID"),
		headerStyle.Render("Label"),
		headerStyle.Render("Authority"),
		headerStyle.Render("Urgency"),
		headerStyle.Render("Days"),
		headerStyle.Render("Required Fields"))

	for _, doc := range catalog.Documents() {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\t%d\n",
			doc.DocumentID,
			doc.Label,
			doc.IssuingAuthority,
			string(doc.Urgency),
			doc.EstimatedProcessingDays,
			len(compliance.RequiredFields(doc.DocumentID)))
	}

	return nil
}

package main

import (
	"fmt"
	"log/slog"
	"os"
	"text/tabwriter"

	"github.com/atlasfreight/exportdesk/internal/cli"
	"github.com/atlasfreight/exportdesk/internal/compliance"
	"github.com/atlasfreight/exportdesk/internal/model"
	"github.com/atlasfreight/exportdesk/internal/sheets"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

func checklistCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "checklist <hs-code> <market>",
		Short: "Derive the compliance document checklist for an HS code and market",
		Long: `Derive the documents a shipment needs for the given HS code and destination
market. Malformed HS codes produce the universal baseline rather than an
error.

Markets: EU, UK, USA, GCC (other values get the baseline documents only).`,
		Args: cobra.ExactArgs(2),
		RunE: runChecklist,
	}

	cmd.Flags().Bool("export-sheets", false, "export the checklist to Google Sheets")

	return cmd
}

func runChecklist(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	hsCode, market := args[0], args[1]
	exportSheets, _ := cmd.Flags().GetBool("export-sheets")

	checklist := compliance.DeriveChecklist(hsCode, market)

	fmt.Println(cli.FormatTitle(fmt.Sprintf("Checklist for %s → %s", hsCode, market))) //nolint:forbidigo // User-facing output
	fmt.Println()                                                                      //nolint:forbidigo // User-facing output

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)

	headerStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
	fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
		headerStyle.Render("Document"),
		headerStyle.Render("Authority"),
		headerStyle.Render("Urgency"),
		headerStyle.Render("Days"),
		headerStyle.Render("Reason"))

	for _, doc := range checklist {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%s\n",
			doc.Definition.Label,
			doc.Definition.IssuingAuthority,
			string(doc.Definition.Urgency),
			doc.Definition.EstimatedProcessingDays,
			doc.Reason)
	}

	if err := w.Flush(); err != nil {
		return fmt.Errorf("failed to flush table: %w", err)
	}

	for _, doc := range checklist {
		if doc.SectorNote != "" {
			fmt.Println(cli.SubtleStyle.Render(fmt.Sprintf("  note (%s): %s", doc.Definition.Abbreviation, doc.SectorNote))) //nolint:forbidigo // User-facing output
		}
	}

	if !exportSheets {
		return nil
	}

	config := sheets.DefaultConfig()
	if err := config.LoadFromEnv(); err != nil {
		return fmt.Errorf("sheets export not configured: %w", err)
	}

	writer, err := sheets.NewWriter(ctx, config, slog.Default())
	if err != nil {
		return fmt.Errorf("failed to create sheets writer: %w", err)
	}

	shipment := &model.Shipment{
		Description: fmt.Sprintf("ad-hoc checklist %s → %s", hsCode, market),
		HSCode:      hsCode,
		Market:      market,
	}

	statuses := make(map[string]model.DocumentStatus, len(checklist))
	for _, doc := range checklist {
		statuses[doc.Definition.DocumentID] = compliance.ComputeStatus(doc.Definition.DocumentID, shipment.Fields, false)
	}

	if err := writer.Write(ctx, shipment, checklist, statuses); err != nil {
		return fmt.Errorf("failed to export checklist: %w", err)
	}

	fmt.Println(cli.FormatSuccess("Checklist exported to Google Sheets")) //nolint:forbidigo // User-facing output

	return nil
}

package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/atlasfreight/exportdesk/internal/catalog"
	"github.com/atlasfreight/exportdesk/internal/cli"
	"github.com/atlasfreight/exportdesk/internal/common"
	"github.com/atlasfreight/exportdesk/internal/compliance"
	"github.com/atlasfreight/exportdesk/internal/model"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

func statusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Track per-document completion status for a shipment",
	}

	cmd.AddCommand(statusShowCmd())
	cmd.AddCommand(statusFileCmd())

	return cmd
}

func statusShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <shipment-id>",
		Short: "Show the document checklist and completion status of a shipment",
		Args:  cobra.ExactArgs(1),
		RunE:  runStatusShow,
	}
}

func runStatusShow(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid shipment id %q: %w", args[0], err)
	}

	store, err := initStorage(ctx)
	if err != nil {
		return fmt.Errorf("failed to initialize storage: %w", err)
	}
	defer func() {
		if closeErr := store.Close(); closeErr != nil {
			slog.Error("failed to close storage", "error", closeErr)
		}
	}()

	shipment, err := store.GetShipment(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to load shipment: %w", err)
	}

	filed, err := store.FiledDocuments(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to load filed flags: %w", err)
	}

	checklist := compliance.DeriveChecklist(shipment.HSCode, shipment.Market)

	fmt.Println(cli.FormatTitle(fmt.Sprintf("Shipment %d — %s", shipment.ID, shipment.Description))) //nolint:forbidigo // User-facing output
	fmt.Println()                                                                                     //nolint:forbidigo // User-facing output

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	defer func() { _ = w.Flush() }()

	headerStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
	fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
		headerStyle.Render("Document"),
		headerStyle.Render("ID"),
		headerStyle.Render("Status"),
		headerStyle.Render("Required Fields"))

	for _, doc := range checklist {
		documentID := doc.Definition.DocumentID
		status := compliance.ComputeStatus(documentID, shipment.Fields, filed[documentID])

		fmt.Fprintf(w, "%s\t%s\t%s\t%d\n",
			doc.Definition.Label,
			documentID,
			renderStatus(status),
			len(compliance.RequiredFields(documentID)))
	}

	return nil
}

func renderStatus(status model.DocumentStatus) string {
	switch status {
	case model.StatusFiled:
		return cli.SuccessStyle.Render(string(status))
	case model.StatusReady:
		return cli.InfoStyle.Render(string(status))
	case model.StatusDraft:
		return cli.WarningStyle.Render(string(status))
	default:
		return cli.ErrorStyle.Render(string(status))
	}
}

func statusFileCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "file <shipment-id> <document-id>",
		Short: "Mark a document as filed (sticky; field edits never demote it)",
		Args:  cobra.ExactArgs(2),
		RunE:  runStatusFile,
	}
}

func runStatusFile(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid shipment id %q: %w", args[0], err)
	}
	documentID := args[1]

	if catalog.DocumentByID(documentID) == nil {
		return fmt.Errorf("%w: %s", common.ErrUnknownDocument, documentID)
	}

	store, err := initStorage(ctx)
	if err != nil {
		return fmt.Errorf("failed to initialize storage: %w", err)
	}
	defer func() {
		if closeErr := store.Close(); closeErr != nil {
			slog.Error("failed to close storage", "error", closeErr)
		}
	}()

	if _, err := store.GetShipment(ctx, id); err != nil {
		return fmt.Errorf("failed to load shipment: %w", err)
	}

	if err := store.MarkFiled(ctx, id, documentID); err != nil {
		return fmt.Errorf("failed to mark document filed: %w", err)
	}

	fmt.Println(cli.FormatSuccess(fmt.Sprintf("Document %s marked filed for shipment %d", documentID, id))) //nolint:forbidigo // User-facing output

	return nil
}

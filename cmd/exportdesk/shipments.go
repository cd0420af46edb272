package main

import (
	"fmt"
	"log/slog"
	"os"
	"text/tabwriter"

	"github.com/atlasfreight/exportdesk/internal/cli"
	"github.com/atlasfreight/exportdesk/internal/model"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

func shipmentsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "shipments",
		Short: "Manage export shipments",
	}

	cmd.AddCommand(shipmentsAddCmd())
	cmd.AddCommand(shipmentsListCmd())

	return cmd
}

func shipmentsAddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add <description>",
		Short: "Record a new shipment",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runShipmentsAdd,
	}

	cmd.Flags().String("hs-code", "", "chosen HS code")
	cmd.Flags().String("market", "", "destination market (EU, UK, USA, GCC, ...)")
	cmd.Flags().String("exporter-name", "", "exporter name")
	cmd.Flags().String("exporter-address", "", "exporter address")
	cmd.Flags().String("exporter-city", "", "exporter city")
	cmd.Flags().String("exporter-country", "", "exporter country")
	cmd.Flags().String("consignee-name", "", "consignee name")
	cmd.Flags().String("consignee-country", "", "consignee country")
	cmd.Flags().Float64("quantity", 0, "shipment quantity")
	cmd.Flags().Float64("unit-price", 0, "unit price")

	return cmd
}

func runShipmentsAdd(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	store, err := initStorage(ctx)
	if err != nil {
		return fmt.Errorf("failed to initialize storage: %w", err)
	}
	defer func() {
		if closeErr := store.Close(); closeErr != nil {
			slog.Error("failed to close storage", "error", closeErr)
		}
	}()

	hsCode, _ := cmd.Flags().GetString("hs-code")
	market, _ := cmd.Flags().GetString("market")
	quantity, _ := cmd.Flags().GetFloat64("quantity")
	unitPrice, _ := cmd.Flags().GetFloat64("unit-price")

	getString := func(name string) string {
		v, _ := cmd.Flags().GetString(name)
		return v
	}

	description := args[0]
	for _, arg := range args[1:] {
		description += " " + arg
	}

	shipment := &model.Shipment{
		Description: description,
		HSCode:      hsCode,
		Market:      market,
		Fields: model.FieldCompletionContext{
			Exporter: model.Party{
				Name:    getString("exporter-name"),
				Address: getString("exporter-address"),
				City:    getString("exporter-city"),
				Country: getString("exporter-country"),
			},
			Consignee: model.Party{
				Name:    getString("consignee-name"),
				Country: getString("consignee-country"),
			},
			Quantity:  quantity,
			UnitPrice: unitPrice,
		},
	}

	id, err := store.SaveShipment(ctx, shipment)
	if err != nil {
		return fmt.Errorf("failed to save shipment: %w", err)
	}

	fmt.Println(cli.FormatSuccess(fmt.Sprintf("Shipment %d recorded", id))) //nolint:forbidigo // User-facing output

	return nil
}

func shipmentsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List recorded shipments",
		RunE:  runShipmentsList,
	}
}

func runShipmentsList(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	store, err := initStorage(ctx)
	if err != nil {
		return fmt.Errorf("failed to initialize storage: %w", err)
	}
	defer func() {
		if closeErr := store.Close(); closeErr != nil {
			slog.Error("failed to close storage", "error", closeErr)
		}
	}()

	shipments, err := store.ListShipments(ctx)
	if err != nil {
		return fmt.Errorf("failed to list shipments: %w", err)
	}

	if len(shipments) == 0 {
		fmt.Println(cli.InfoStyle.Render("No shipments recorded. Use 'exportdesk shipments add' to create one.")) //nolint:forbidigo // User-facing output
		return nil
	}

	fmt.Println(cli.FormatTitle("Shipments")) //nolint:forbidigo // User-facing output
	fmt.Println()                             //nolint:forbidigo // User-facing output

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	defer func() { _ = w.Flush() }()

	headerStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
	fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
		headerStyle.Render("ID"),
		headerStyle.Render("Description"),
		headerStyle.Render("HS Code"),
		headerStyle.Render("Market"),
		headerStyle.Render("Created"))

	for _, shipment := range shipments {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n",
			shipment.ID,
			shipment.Description,
			shipment.HSCode,
			shipment.Market,
			shipment.CreatedAt.Format("2006-01-02"))
	}

	return nil
}

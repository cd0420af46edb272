package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/atlasfreight/exportdesk/internal/catalog"
	"github.com/atlasfreight/exportdesk/internal/cli"
	"github.com/atlasfreight/exportdesk/internal/common"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

func tariffsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tariffs",
		Short: "Browse the tariff reference catalog",
	}

	cmd.AddCommand(tariffsListCmd())
	cmd.AddCommand(tariffsShowCmd())

	return cmd
}

func tariffsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all tariff catalog entries",
		RunE:  runTariffsList,
	}
}

func runTariffsList(_ *cobra.Command, _ []string) error {
	fmt.Println(cli.FormatTitle("Tariff Catalog")) //nolint:forbidigo // User-facing output
	fmt.Println()                                  //nolint:forbidigo // User-facing output

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	defer func() { _ = w.Flush() }()

	headerStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
	fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
		headerStyle.Render("HS Code"),
		headerStyle.Render("Description"),
		headerStyle.Render("Category"),
		headerStyle.Render("Duty %"),
		headerStyle.Render("Tax %"),
		headerStyle.Render("Risk"))

	for _, entry := range catalog.Tariffs() {
		fmt.Fprintf(w, "%s\t%s\t%s\t%.1f\t%.1f\t%s\n",
			entry.HSCode,
			entry.ShortDescription,
			entry.Category,
			entry.DutyRatePercent,
			entry.TaxRatePercent,
			string(entry.RiskTag))
	}

	return nil
}

func tariffsShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <hs-code>",
		Short: "Show one tariff catalog entry in detail",
		Args:  cobra.ExactArgs(1),
		RunE:  runTariffsShow,
	}
}

func runTariffsShow(_ *cobra.Command, args []string) error {
	entry := catalog.TariffByHSCode(args[0])
	if entry == nil {
		return fmt.Errorf("%w: %s", common.ErrUnknownTariff, args[0])
	}

	content := fmt.Sprintf(
		"%s\n\nCategory: %s / %s\nDuty: %.1f%%  Tax: %.1f%%\nRisk: %s\nKeywords: %s\nLikely origin ports: %s",
		entry.LongDescription,
		entry.Category, entry.Subcategory,
		entry.DutyRatePercent, entry.TaxRatePercent,
		string(entry.RiskTag),
		strings.Join(entry.Keywords, ", "),
		strings.Join(entry.LikelyOriginPorts, ", "),
	)

	fmt.Println(cli.RenderBox(entry.HSCode+" — "+entry.ShortDescription, content)) //nolint:forbidigo // User-facing output

	return nil
}

package main

import (
	"fmt"
	"math/rand"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/atlasfreight/exportdesk/internal/catalog"
	"github.com/atlasfreight/exportdesk/internal/classify"
	"github.com/atlasfreight/exportdesk/internal/cli"
	"github.com/atlasfreight/exportdesk/internal/model"
	"github.com/atlasfreight/exportdesk/internal/tui"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

func classifyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "classify <description>",
		Short: "Rank tariff classification candidates for a product description",
		Long: `Score every tariff catalog entry against a free-text product description
plus optional category hints, and show the ranked candidates.

With --interactive the candidates open in a picker so one can be selected.`,
		Args: cobra.MinimumNArgs(1),
		RunE: runClassify,
	}

	cmd.Flags().String("category", "", "category hint (e.g. \"Food & Agriculture\")")
	cmd.Flags().String("subcategory", "", "subcategory hint (e.g. \"Edible Oils\")")
	cmd.Flags().Int("limit", classify.DefaultLimit, "maximum candidates to show")
	cmd.Flags().Bool("interactive", false, "pick a candidate interactively")
	cmd.Flags().Bool("jitter", false, "apply display jitter to confidences")

	return cmd
}

func runClassify(cmd *cobra.Command, args []string) error {
	category, _ := cmd.Flags().GetString("category")
	subcategory, _ := cmd.Flags().GetString("subcategory")
	limit, _ := cmd.Flags().GetInt("limit")
	interactive, _ := cmd.Flags().GetBool("interactive")
	jitter, _ := cmd.Flags().GetBool("jitter")

	query := model.ClassificationQuery{
		Category:            category,
		Subcategory:         subcategory,
		FreeTextDescription: strings.Join(args, " "),
	}

	matches := classify.Rank(query, catalog.Tariffs(), limit)
	if len(matches) == 0 {
		fmt.Println(cli.InfoStyle.Render("No tariff candidates matched. Try a longer description or a category hint.")) //nolint:forbidigo // User-facing output
		return nil
	}

	if interactive {
		choice, err := tui.PickMatch(matches)
		if err != nil {
			return err
		}
		if choice == nil {
			fmt.Println(cli.InfoStyle.Render("No classification selected.")) //nolint:forbidigo // User-facing output
			return nil
		}
		fmt.Println(cli.FormatSuccess(fmt.Sprintf("Selected %s — %s", choice.Entry.HSCode, choice.Entry.ShortDescription))) //nolint:forbidigo // User-facing output
		return nil
	}

	// Display confidences are decided after ranking; jitter never reorders.
	display := make([]int, len(matches))
	for i, match := range matches {
		display[i] = match.Confidence
	}
	if jitter {
		rng := rand.New(rand.NewSource(time.Now().UnixNano())) // #nosec G404 -- cosmetic display wobble
		display = classify.DisplayConfidences(matches, rng)
	}

	fmt.Println(cli.FormatTitle("Tariff Candidates")) //nolint:forbidigo // User-facing output
	fmt.Println()                                     //nolint:forbidigo // User-facing output

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	defer func() { _ = w.Flush() }()

	headerStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
	fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
		headerStyle.Render("HS Code"),
		headerStyle.Render("Description"),
		headerStyle.Render("Category"),
		headerStyle.Render("Confidence"),
		headerStyle.Render("Risk"))

	for i, match := range matches {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d%%\t%s\n",
			match.Entry.HSCode,
			match.Entry.ShortDescription,
			match.Entry.Category,
			display[i],
			string(match.Entry.RiskTag))
	}

	if err := w.Flush(); err != nil {
		return fmt.Errorf("failed to flush table: %w", err)
	}

	if top := matches.Top(); top != nil {
		summary := cli.FormatInfo(fmt.Sprintf("Best candidate: %s (%s)", top.Entry.HSCode, top.Entry.ShortDescription))
		rates := cli.SubtleStyle.Render(fmt.Sprintf("  duty %.1f%%, tax %.1f%%", top.Entry.DutyRatePercent, top.Entry.TaxRatePercent))
		fmt.Printf("\n%s\n%s\n", summary, rates) //nolint:forbidigo // User-facing output
	}

	return nil
}

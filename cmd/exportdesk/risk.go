package main

import (
	"fmt"
	"log/slog"
	"os"
	"text/tabwriter"
	"time"

	"github.com/atlasfreight/exportdesk/internal/cli"
	"github.com/atlasfreight/exportdesk/internal/common"
	"github.com/atlasfreight/exportdesk/internal/model"
	"github.com/atlasfreight/exportdesk/internal/risk"
	"github.com/atlasfreight/exportdesk/internal/weather"
	"github.com/charmbracelet/lipgloss"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func riskCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "risk",
		Short: "Compute the E-Factor shipping-cost risk multiplier from live port weather",
		Long: `Fetch current weather for every monitored port, aggregate the samples into
the E-Factor cost multiplier, and show the auditable contribution breakdown.

If no port yields a sample the command fails: a silent default multiplier
would understate real risk.`,
		RunE: runRiskAssess,
	}

	cmd.Flags().Bool("save", false, "record the assessment in the audit history")

	cmd.AddCommand(riskHistoryCmd())

	return cmd
}

func runRiskAssess(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	save, _ := cmd.Flags().GetBool("save")

	ports := monitoredPorts()
	client := weather.NewHTTPClient(viper.GetString("weather.base_url"))

	bar := progressbar.NewOptions(len(ports),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionShowCount(),
		progressbar.OptionSetWidth(40),
		progressbar.OptionSetDescription("[cyan][bold]Fetching port weather...[reset]"),
	)

	samples := make([]model.PortWeatherSample, 0, len(ports))
	for _, port := range ports {
		sample, err := client.FetchPort(ctx, port)
		if err != nil {
			slog.Warn("failed to fetch weather for port", "port", port.ID, "error", err)
		} else {
			samples = append(samples, sample)
		}
		_ = bar.Add(1)
	}
	fmt.Fprintln(os.Stderr)

	assessment, err := risk.ComputeRisk(samples)
	if err != nil {
		return common.NewUserError("risk unavailable, calculation blocked", err)
	}

	printAssessment(&assessment)

	if save {
		store, err := initStorage(ctx)
		if err != nil {
			return fmt.Errorf("failed to initialize storage: %w", err)
		}
		defer func() {
			if closeErr := store.Close(); closeErr != nil {
				slog.Error("failed to close storage", "error", closeErr)
			}
		}()

		if err := store.SaveRiskAssessment(ctx, &assessment); err != nil {
			return fmt.Errorf("failed to save assessment: %w", err)
		}
		fmt.Println(cli.FormatSuccess("Assessment recorded in audit history")) //nolint:forbidigo // User-facing output
	}

	return nil
}

func printAssessment(assessment *model.RiskAssessment) {
	content := fmt.Sprintf(
		"Multiplier: %.4f\nCongestion tier: %s\nStorm tier: %s\n\nBase: %.4f\nWind: %.4f\nCongestion: %.4f\nEstimated delay: %.1f days",
		assessment.Multiplier,
		string(assessment.PortCongestionTier),
		string(assessment.StormRiskTier),
		assessment.Breakdown.BaseCoefficient,
		assessment.Breakdown.WindContribution,
		assessment.Breakdown.CongestionContribution,
		assessment.Breakdown.EstimatedDelayDays,
	)

	fmt.Println(cli.RenderBox(cli.StormIcon+" E-Factor", content)) //nolint:forbidigo // User-facing output

	for _, sample := range assessment.Samples {
		alert := ""
		if sample.HasStormAlert {
			alert = " " + cli.WarningIcon
		}
		fmt.Println(cli.SubtleStyle.Render(fmt.Sprintf("  %s: wind %.1f kn, visibility %.0f m, %.1f °C%s", //nolint:forbidigo // User-facing output
			sample.PortID, sample.WindSpeedKnots, sample.VisibilityMeters, sample.TemperatureCelsius, alert)))
	}
}

func riskHistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recorded risk assessments",
		RunE:  runRiskHistory,
	}

	cmd.Flags().Int("limit", 20, "maximum assessments to show")

	return cmd
}

func runRiskHistory(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	limit, _ := cmd.Flags().GetInt("limit")

	store, err := initStorage(ctx)
	if err != nil {
		return fmt.Errorf("failed to initialize storage: %w", err)
	}
	defer func() {
		if closeErr := store.Close(); closeErr != nil {
			slog.Error("failed to close storage", "error", closeErr)
		}
	}()

	assessments, err := store.ListRiskAssessments(ctx, limit)
	if err != nil {
		return fmt.Errorf("failed to list assessments: %w", err)
	}

	if len(assessments) == 0 {
		fmt.Println(cli.InfoStyle.Render("No assessments recorded. Use 'exportdesk risk --save' to record one.")) //nolint:forbidigo // User-facing output
		return nil
	}

	fmt.Println(cli.FormatTitle("Risk Assessment History")) //nolint:forbidigo // User-facing output
	fmt.Println()                                           //nolint:forbidigo // User-facing output

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	defer func() { _ = w.Flush() }()

	headerStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
	fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
		headerStyle.Render("Computed"),
		headerStyle.Render("Multiplier"),
		headerStyle.Render("Congestion"),
		headerStyle.Render("Storm"),
		headerStyle.Render("Delay Days"))

	for _, assessment := range assessments {
		fmt.Fprintf(w, "%s\t%.4f\t%s\t%s\t%.1f\n",
			assessment.ComputedAt.Format(time.RFC3339),
			assessment.Multiplier,
			string(assessment.PortCongestionTier),
			string(assessment.StormRiskTier),
			assessment.Breakdown.EstimatedDelayDays)
	}

	return nil
}

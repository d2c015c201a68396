package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/Veraticus/dataact/internal/cli"
	"github.com/Veraticus/dataact/internal/common"
	"github.com/Veraticus/dataact/internal/model"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

func showCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <company>",
		Short: "Show one company's terms and contract clauses",
		Long: `Show everything the benchmark records for one company: its approach,
termination fee, refund policy and notice period, followed by the contract
clauses the rating is based on.

The name is matched exactly first, then case-insensitively.`,
		Example: `  dataact show Mural
  dataact show "google cloud"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ds, err := loadDataset(cmd.Context())
			if err != nil {
				return err
			}

			company, ok := findCompany(ds.Companies, args[0])
			if !ok {
				return common.NewUserError(fmt.Sprintf("No company named %q in the benchmark", args[0]), common.ErrNotFound)
			}
			return writeCompany(cmd.OutOrStdout(), company)
		},
	}
}

func findCompany(companies []model.Company, name string) (model.Company, bool) {
	for _, c := range companies {
		if c.Name == name {
			return c, true
		}
	}
	for _, c := range companies {
		if strings.EqualFold(c.Name, name) {
			return c, true
		}
	}
	return model.Company{}, false
}

func writeCompany(out io.Writer, c model.Company) error {
	labelStyle := cli.BoldStyle.Width(18)
	wrap := lipgloss.NewStyle().Width(76)

	var b strings.Builder
	fmt.Fprintf(&b, "%s  %s\n\n", cli.TitleStyle.UnsetMargins().Render(c.Name), cli.FormatApproach(c.Approach))
	fmt.Fprintf(&b, "%s %s\n", labelStyle.Render("Termination Fee"), c.DisplayTerminationFee())
	fmt.Fprintf(&b, "%s %s\n", labelStyle.Render("Refund Policy"), c.DisplayRefundPolicy())
	fmt.Fprintf(&b, "%s %s\n", labelStyle.Render("Notice Period"), c.NoticePeriod())
	if c.KeyFeatures != "" {
		fmt.Fprintf(&b, "%s %s\n", labelStyle.Render("Key Features"), c.KeyFeatures)
	}
	if c.TermsURL != "" {
		fmt.Fprintf(&b, "%s %s\n", labelStyle.Render("Terms"), c.TermsURL)
	}
	fmt.Fprintf(&b, "\n%s\n", wrap.Render(c.DisplayDetails()))

	fmt.Fprintf(&b, "\n%s\n", cli.TitleStyle.Render(cli.DocumentIcon+" Contract Clauses"))
	for _, item := range c.SpecificClauses.Items() {
		label := cli.BoldStyle.Render(item.Icon + " " + item.Label)
		if item.Transition {
			label = cli.InfoStyle.Bold(true).Render(item.Icon + " " + item.Label)
		}
		fmt.Fprintf(&b, "%s\n%s\n\n", label, wrap.PaddingLeft(3).Render(item.Text))
	}

	_, err := io.WriteString(out, strings.TrimRight(b.String(), "\n")+"\n")
	return err
}

package commands

import (
	"fmt"
	"os"

	"homeservices_crm/internal/domain/pricing"
	"homeservices_crm/internal/infrastructure/config"

	"github.com/spf13/cobra"
)

type rootOptions struct {
	pricingFile string
	jsonOutput  bool
}

// NewRootCommand builds the crmctl command tree.
func NewRootCommand() *cobra.Command {
	opts := &rootOptions{}
	root := &cobra.Command{
		Use:   "crmctl",
		Short: "Pricing tools for the home services CRM",
		Long: `crmctl works against the same pricing table the API serves.

Examples:
  crmctl validate-pricing --file config/pricing.yaml
  crmctl quote --height 10 --width 12 --insulation closed_cell
  crmctl pricing-defaults > pricing.yaml`,
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVar(&opts.pricingFile, "pricing", os.Getenv("PRICING_FILE"), "Pricing file (default: built-in table)")
	root.PersistentFlags().BoolVar(&opts.jsonOutput, "json", false, "Output in JSON format")

	root.AddCommand(
		newValidatePricingCommand(),
		newQuoteCommand(opts),
		newPricingDefaultsCommand(),
	)
	return root
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func (o *rootOptions) table() (*pricing.Table, error) {
	if o.pricingFile == "" {
		t := pricing.DefaultTable()
		return t, t.Validate()
	}
	return config.LoadTable(o.pricingFile)
}

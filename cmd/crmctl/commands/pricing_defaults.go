package commands

import (
	"homeservices_crm/internal/domain/pricing"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func newPricingDefaultsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "pricing-defaults",
		Short: "Print the built-in pricing table as YAML",
		Long: `Print the table the API uses when PRICING_FILE is unset, as a starting
point for a custom pricing file.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			enc := yaml.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent(2)
			defer enc.Close()
			return enc.Encode(pricing.DefaultTable())
		},
	}
}

package commands

import (
	"homeservices_crm/cmd/crmctl/output"
	"homeservices_crm/internal/domain/entities"
	"homeservices_crm/internal/infrastructure/config"

	"github.com/spf13/cobra"
)

func newValidatePricingCommand() *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "validate-pricing",
		Short: "Check a pricing file before deploying it",
		Long: `Load a pricing file the way the API does and report the first problem.

A file that fails here would be rejected by a running service's hot reload,
which keeps serving the previous table.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := config.LoadTable(file)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			output.Success(w, "%s is valid", file)
			output.KeyValue(w, "materials", len(t.Insulation.Materials))
			output.KeyValue(w, "building types", len(t.Markup.Tiers))
			output.KeyValue(w, "markup range", formatRange(t.Markup.PercentageMin, t.Markup.PercentageMax))
			output.KeyValue(w, "auto-approval", t.Approval.AutoApprovalThreshold)
			output.KeyValue(w, "lead sources", len(t.LeadSources))
			for _, st := range entities.ServiceTypes {
				output.KeyValue(w, "minimum "+string(st), t.MinimumJobValues[st])
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "Pricing file to validate (required)")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

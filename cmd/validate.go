package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/papapumpkin/orrery/internal/catalog"
	"github.com/papapumpkin/orrery/internal/config"
	"github.com/papapumpkin/orrery/internal/ui"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check that every catalog planet has the data a session needs",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		c, err := catalog.Resolve(cfg.Catalog)
		if err != nil {
			return err
		}

		errs := c.Validate()
		ui.New(cmd.OutOrStdout(), cfg.Color).ValidationResult(c, errs)
		if len(errs) > 0 {
			return fmt.Errorf("catalog %s has %d validation error(s)", c.Name(), len(errs))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

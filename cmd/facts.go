package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/papapumpkin/orrery/internal/catalog"
	"github.com/papapumpkin/orrery/internal/config"
	"github.com/papapumpkin/orrery/internal/planet"
	"github.com/papapumpkin/orrery/internal/session"
)

var factsCmd = &cobra.Command{
	Use:   "facts <planet>",
	Short: "Print the facts for one planet without the interactive menu",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		c, err := catalog.Resolve(cfg.Catalog)
		if err != nil {
			return err
		}

		sys := c.SolarSystem()
		p, ok := sys.Find(args[0])
		if !ok {
			return fmt.Errorf("no planet named %q in %s", args[0], sys.Name)
		}
		session.PrintFacts(cmd.OutOrStdout(), p, planet.Facts(), cfg.FactWidth)
		return session.PrintYears(cmd.OutOrStdout(), sys, p)
	},
}

func init() {
	rootCmd.AddCommand(factsCmd)
}

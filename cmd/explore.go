package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/papapumpkin/orrery/internal/catalog"
	"github.com/papapumpkin/orrery/internal/config"
	"github.com/papapumpkin/orrery/internal/logging"
	"github.com/papapumpkin/orrery/internal/planet"
	"github.com/papapumpkin/orrery/internal/session"
)

// runExplore runs the interactive session over the command's stdin and stdout.
// Choosing Exit or declining to add planets is a normal, successful end.
func runExplore(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	log := logging.New(cmd.ErrOrStderr(), cfg)

	c, err := catalog.Resolve(cfg.Catalog)
	if err != nil {
		return err
	}
	log.Debug("catalog loaded", "source", c.Name(), "system", c.System.Name, "planets", len(c.Planets))

	s := session.New(c.SolarSystem(), planet.Facts(), cmd.InOrStdin(), cmd.OutOrStdout(), session.Options{
		FactWidth: cfg.FactWidth,
		Logger:    log,
	})
	outcome, err := s.Run(cmd.Context())
	if err != nil {
		return err
	}
	log.Info("session ended", "outcome", outcome.String())
	return nil
}

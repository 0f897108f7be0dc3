package cmd

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/papapumpkin/orrery/internal/catalog"
	"github.com/papapumpkin/orrery/internal/config"
	"github.com/papapumpkin/orrery/internal/ui"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "List the planets in the active catalog",
	Long: "List the planets in the active catalog and report validation problems.\n" +
		"With --watch, the catalog file is re-read and re-checked every time it changes.",
	Args: cobra.NoArgs,
	RunE: runCatalog,
}

func init() {
	catalogCmd.Flags().Bool("watch", false, "re-check the catalog file whenever it changes")
	rootCmd.AddCommand(catalogCmd)
}

func runCatalog(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	printer := ui.New(cmd.OutOrStdout(), cfg.Color)

	c, err := catalog.Resolve(cfg.Catalog)
	if err != nil {
		return err
	}
	printer.CatalogSummary(c)
	printer.ValidationResult(c, c.Validate())

	if watch, _ := cmd.Flags().GetBool("watch"); watch {
		if cfg.Catalog == "" {
			return errors.New("--watch needs a catalog file (set --catalog)")
		}
		return watchCatalog(cmd, printer, cfg.Catalog)
	}
	return nil
}

// watchCatalog reprints the catalog after every change until interrupted.
func watchCatalog(cmd *cobra.Command, printer *ui.Printer, path string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	w, err := catalog.NewWatcher(path)
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	if err := w.Start(); err != nil {
		return fmt.Errorf("failed to watch %s: %w", path, err)
	}
	defer w.Stop()

	printer.Info(fmt.Sprintf("watching %s (ctrl-c to stop)", path))
	for {
		select {
		case <-ctx.Done():
			return nil
		case r, ok := <-w.Reloads:
			if !ok {
				return nil
			}
			if r.Err != nil {
				printer.Error(r.Err.Error())
				continue
			}
			printer.CatalogSummary(r.Catalog)
			printer.ValidationResult(r.Catalog, r.Catalog.Validate())
		}
	}
}

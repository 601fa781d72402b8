package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joseph-ayodele/specials-tracker/internal/repository"
)

var initDBStore string

var initDBCmd = &cobra.Command{
	Use:   "init-db",
	Short: "Create the specials table and index (postgres, sqlite)",
	RunE:  runInitDB,
}

func init() {
	initDBCmd.Flags().StringVar(&initDBStore, "store", "", "Store driver (overrides STORE_DRIVER)")
}

func runInitDB(cmd *cobra.Command, _ []string) error {
	if initDBStore != "" {
		cfg.Store.Driver = initDBStore
	}
	if err := cfg.ValidateStore(); err != nil {
		return err
	}
	store, closeStore, err := openStore(cmd.Context(), cfg, logger)
	if err != nil {
		return err
	}
	defer closeStore()

	si, ok := store.(repository.SchemaInitializer)
	if !ok {
		return fmt.Errorf("store driver %q does not manage its schema; create the specials table in the project dashboard", cfg.Store.Driver)
	}
	if err := si.EnsureSchema(cmd.Context()); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "specials table ready (%s)\n", cfg.Store.Driver)
	return nil
}

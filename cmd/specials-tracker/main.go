// specials-tracker harvests daily specials from venue web pages, PDFs and menu
// images, extracts them with a language model, and replaces each venue's rows
// in the specials table.
//
// Usage:
//
//	specials-tracker run [--venues=configs/venues.yaml] [--store=postgres|sqlite|supabase] [--inmem] [--workers=N]
//	specials-tracker extract <url> [--kind=web|pdf|image]
//	specials-tracker init-db
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Command reindex rebuilds the product search index from the content
// service. Deployments run it after content publishes and on a schedule as a
// convergence safety net; re-runs are idempotent.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	storefront "github.com/goliatone/go-storefront"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		log.Fatalf("reindex: %v", err)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("reindex", flag.ExitOnError)
	envFile := fs.String("env-file", "", "Optional dotenv file loaded before reading STOREFRONT_* variables")
	locales := fs.String("locales", "", "Comma separated locales to index (defaults to configured locales)")
	timeout := fs.Duration("timeout", 10*time.Minute, "Overall run deadline")
	invalidate := fs.Bool("invalidate-cache", false, "Flush the content read cache before indexing")

	if err := fs.Parse(args); err != nil {
		return err
	}

	var cfg storefront.Config
	if *envFile != "" {
		cfg = storefront.ConfigFromEnv(*envFile)
	} else {
		cfg = storefront.ConfigFromEnv()
	}

	module, err := storefront.New(cfg)
	if err != nil {
		return fmt.Errorf("bootstrap module: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	if *invalidate {
		if err := module.InvalidateContent(ctx, "reindex"); err != nil {
			return fmt.Errorf("invalidate content cache: %w", err)
		}
	}

	if err := module.Reindex(ctx, splitLocales(*locales)...); err != nil {
		return fmt.Errorf("execute reindex command: %w", err)
	}
	return nil
}

func splitLocales(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	locales := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			locales = append(locales, trimmed)
		}
	}
	return locales
}

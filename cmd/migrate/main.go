package main

import (
	"context"
	"flag"
	"log/slog"
	"os"

	"tembea/internal/pkg/config"

	"ariga.io/atlas-go-sdk/atlasexec"
)

// Applies the migrations directory against the configured database using the
// atlas CLI. Run with -dir to point somewhere other than ./migrations.
func main() {
	dir := flag.String("dir", "migrations", "migrations directory")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	client, err := atlasexec.NewClient(".", "atlas")
	if err != nil {
		slog.Error("failed to init atlas client", "error", err)
		os.Exit(1)
	}

	res, err := client.MigrateApply(context.Background(), &atlasexec.MigrateApplyParams{
		URL:    cfg.DB.BuildDSN(),
		DirURL: "file://" + *dir,
	})
	if err != nil {
		slog.Error("migration failed", "error", err)
		os.Exit(1)
	}

	slog.Info("migrations applied",
		"target", res.Target,
		"pending", len(res.Pending),
		"applied", len(res.Applied),
	)
}

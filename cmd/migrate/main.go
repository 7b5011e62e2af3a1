package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"text/tabwriter"
	"time"

	"gorm.io/gorm"

	"github.com/mesa-app/mesa/internal/config"
	"github.com/mesa-app/mesa/internal/database"
	"github.com/mesa-app/mesa/internal/database/models"
	"github.com/mesa-app/mesa/internal/database/repository"
	"github.com/mesa-app/mesa/internal/database/service"
	"github.com/mesa-app/mesa/internal/logger"
)

const usage = `Usage: %s <command>

Commands:
  up       apply all pending migrations
  down     roll back the most recent migration
  status   list migrations and whether they are applied
  version  print the current schema version
  seed     apply migrations, then load the demo user and restaurant
`

func main() {
	flag.Usage = func() {
		_, _ = fmt.Fprintf(os.Stderr, usage, os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	cfg := config.LoadConfig()
	appLogger := logger.New(cfg)

	db, err := database.ConnectDatabase(cfg, appLogger)
	if err != nil {
		appLogger.Error("❌ Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer database.Close(db)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	if err := run(ctx, flag.Arg(0), db, cfg.DatabaseDriver, os.Stdout, appLogger); err != nil {
		appLogger.Error("❌ Command failed", "command", flag.Arg(0), "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, command string, db *gorm.DB, driver string, out io.Writer, logger *slog.Logger) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}

	migrator, err := database.NewMigrator(sqlDB, driver, logger)
	if err != nil {
		return err
	}

	switch command {
	case "up":
		applied, err := migrator.Up(ctx)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "applied %d migration(s)\n", applied)

	case "down":
		return migrator.Down(ctx)

	case "status":
		statuses, err := migrator.Status(ctx)
		if err != nil {
			return err
		}
		w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "VERSION\tSTATE\tAPPLIED AT")
		for _, s := range statuses {
			appliedAt := "-"
			if !s.AppliedAt.IsZero() {
				appliedAt = s.AppliedAt.Format(time.RFC3339)
			}
			fmt.Fprintf(w, "%d\t%s\t%s\n", s.Source.Version, s.State, appliedAt)
		}
		return w.Flush()

	case "version":
		version, err := migrator.Version(ctx)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "%d\n", version)

	case "seed":
		if _, err := migrator.Up(ctx); err != nil {
			return err
		}
		return seed(ctx, db, out, logger)

	default:
		return fmt.Errorf("unknown command %q", command)
	}

	return nil
}

func seed(ctx context.Context, db *gorm.DB, out io.Writer, logger *slog.Logger) error {
	svc := service.NewSeedService(
		repository.NewUserRepository(db),
		repository.NewEntityRepository[models.User](db),
		repository.NewEntityRepository[models.Restaurant](db),
		logger,
	)

	summary, err := svc.Seed(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Users (%d):\n", len(summary.Users))
	for _, u := range summary.Users {
		fmt.Fprintf(out, "  %d\t%s\t%s\n", u.ID, u.DisplayName(), u.Email)
	}
	fmt.Fprintf(out, "Restaurants (%d):\n", len(summary.Restaurants))
	for _, r := range summary.Restaurants {
		cuisine := ""
		if r.CuisineType != nil {
			cuisine = *r.CuisineType
		}
		fmt.Fprintf(out, "  %d\t%s\t%s\n", r.ID, r.Name, cuisine)
	}
	return nil
}

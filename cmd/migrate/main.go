package main

import (
	"fmt"
	"os"
	"strconv"

	"token-arena/internal/config"
	"token-arena/internal/database"
	"token-arena/internal/logger"

	"github.com/joho/godotenv"
)

const usage = "usage: migrate [up|down|status] [steps]"

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to load config:", err)
		os.Exit(1)
	}
	log := logger.New(cfg.Log)

	if err := run(cfg.Database.DatabaseURL(), os.Args[1:]); err != nil {
		log.Fatal().Err(err).Msg("Migration error")
	}
}

func run(url string, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf(usage)
	}

	switch args[0] {
	case "up":
		if err := database.MigrateUp(url); err != nil {
			return err
		}
		fmt.Println("migrations applied")
		return nil
	case "down":
		steps := 1
		if len(args) > 1 {
			n, err := strconv.Atoi(args[1])
			if err != nil || n <= 0 {
				return fmt.Errorf("steps must be a positive integer: %q", args[1])
			}
			steps = n
		}
		if err := database.MigrateDown(url, steps); err != nil {
			return err
		}
		fmt.Printf("rolled back %d migration(s)\n", steps)
		return nil
	case "status":
		status, err := database.GetMigrationStatus(url)
		if err != nil {
			return err
		}
		if !status.Applied {
			fmt.Println("no migrations applied")
			return nil
		}
		fmt.Printf("version: %d, dirty: %t\n", status.Version, status.Dirty)
		return nil
	default:
		return fmt.Errorf("unknown migration command %q; %s", args[0], usage)
	}
}

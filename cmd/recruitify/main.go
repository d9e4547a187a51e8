package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"

	"github.com/idilsaglam/recruitify/internal/api"
	"github.com/idilsaglam/recruitify/internal/cli"
	"github.com/idilsaglam/recruitify/internal/ui"
)

func main() {
	// .env is optional; flags and RECRUITIFY_API still work without it.
	_ = godotenv.Load()

	baseDefault := os.Getenv("RECRUITIFY_API")
	if baseDefault == "" {
		baseDefault = api.DefaultBaseURL
	}

	// Root flags (apply to every subcommand)
	apiBase := flag.String("api", baseDefault, "Recruitify API base URL")
	timeout := flag.Duration("timeout", 10*time.Second, "per-request timeout")
	theme := flag.String("theme", "classic", "theme: classic|neon|mono")
	noColor := flag.Bool("no-color", false, "disable colored output")
	verbose := flag.Bool("v", false, "debug logging")
	flag.Parse()

	ui.SetTheme(*theme)
	ui.SetColorForcing(false, *noColor)

	log.SetFormatter(&log.TextFormatter{})
	log.SetOutput(os.Stderr)
	if *verbose {
		log.SetLevel(log.DebugLevel)
	} else {
		log.SetLevel(log.WarnLevel)
	}

	// Hand the remaining args to the CLI runner.
	args := flag.Args()
	if len(args) == 0 {
		cli.PrintHelp()
		os.Exit(2)
	}

	// Log lines would tear the alt-screen frames apart.
	if args[0] == "browse" && !*verbose {
		log.SetOutput(io.Discard)
	}

	code := cli.Run(args, cli.Options{
		BaseURL: *apiBase,
		Timeout: *timeout,
	})
	if code != 0 {
		fmt.Fprintln(os.Stderr)
	}
	os.Exit(code)
}

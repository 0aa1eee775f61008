package main

import (
	"fmt"
	"os"

	"github.com/mrlokans/bookshop/internal/cli"
	"github.com/mrlokans/bookshop/internal/config"
	"github.com/mrlokans/bookshop/internal/entrypoint"
)

// Version information - set at build time via ldflags
var (
	Version = "dev"
	Commit  = "unknown"
)

type subcommand interface {
	ParseFlags(args []string) error
	Run() error
}

func main() {
	command := "run"
	args := []string{}
	if len(os.Args) >= 2 {
		command = os.Args[1]
		args = os.Args[2:]
	}

	cfg := config.NewConfig()

	switch command {
	case "run":
		execute(cli.NewRunCommand(cfg), args)

	case "load":
		execute(cli.NewLoadCommand(cfg), args)

	case "report":
		execute(cli.NewReportCommand(cfg), args)

	case "serve":
		if err := entrypoint.Run(cfg, Version); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

	case "version":
		fmt.Printf("bookshop %s (%s)\n", Version, Commit)

	case "-h", "--help", "help":
		printUsage()

	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}
}

func execute(cmd subcommand, args []string) {
	if err := cmd.ParseFlags(args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := cmd.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Fprintf(os.Stderr, "Usage: %s <command> [options]\n\n", os.Args[0])
	fmt.Fprintf(os.Stderr, "Commands:\n")
	fmt.Fprintf(os.Stderr, "  run       Reset the store, load the data file and print a publisher report (default)\n")
	fmt.Fprintf(os.Stderr, "  load      Reset the store and load the data file\n")
	fmt.Fprintf(os.Stderr, "  report    Print a publisher report from the existing store\n")
	fmt.Fprintf(os.Stderr, "  serve     Start the HTTP API\n")
	fmt.Fprintf(os.Stderr, "  version   Print version information\n")
	fmt.Fprintf(os.Stderr, "\nConfiguration is read from the environment and an optional .env file\n")
	fmt.Fprintf(os.Stderr, "(DSN, DB_LOG_LEVEL, DATA_FILE, BOOK_TITLES_PER_PUBLISHER, PORT, HOST, AUDIT_DIR).\n")
	fmt.Fprintf(os.Stderr, "\nUse '%s <command> -h' for help on a specific command.\n", os.Args[0])
}

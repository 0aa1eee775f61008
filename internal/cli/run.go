package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/mrlokans/bookshop/internal/config"
	"github.com/mrlokans/bookshop/internal/loader"
)

// RunCommand resets the store, loads a data file and prints the sales
// report for one publisher. It is the default command.
type RunCommand struct {
	DataFile  string
	DSN       string
	Publisher string

	// PublisherSet is true when -publisher was given, even as an empty string.
	PublisherSet bool

	Stdin  io.Reader
	Stdout io.Writer

	cfg *config.Config
}

func NewRunCommand(cfg *config.Config) *RunCommand {
	return &RunCommand{
		cfg:    cfg,
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
	}
}

func (cmd *RunCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("run", flag.ExitOnError)

	fs.StringVar(&cmd.DataFile, "file", cmd.cfg.Loader.DataFile, "Path to the JSON data file")
	fs.StringVar(&cmd.DSN, "dsn", cmd.cfg.Database.DSN, "Store connection string")
	fs.StringVar(&cmd.Publisher, "publisher", "", "Publisher name or part of it (prompted for if omitted)")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s run [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Drop and recreate every table, load the data file and print the\n")
		fmt.Fprintf(os.Stderr, "sales report for a publisher.\n\n")
		fmt.Fprintf(os.Stderr, "WARNING: all existing data in the store is deleted.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s run -file ./data/tests_data.json\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s run -publisher pushkin\n", os.Args[0])
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	fs.Visit(func(f *flag.Flag) {
		if f.Name == "publisher" {
			cmd.PublisherSet = true
		}
	})

	if cmd.DataFile == "" {
		return fmt.Errorf("required flag -file not provided")
	}

	return nil
}

func (cmd *RunCommand) Run() error {
	ctx := context.Background()

	db, store, err := openStore(cmd.cfg, cmd.DSN)
	if err != nil {
		return err
	}
	defer db.Close()

	l := loader.NewLoader(store, func(msg string) {
		fmt.Fprintln(cmd.Stdout, msg)
	})
	if _, err := l.LoadFile(ctx, cmd.DataFile); err != nil {
		return fmt.Errorf("failed to load %s: %w", cmd.DataFile, err)
	}

	publisher := normalizePublisher(cmd.Publisher)
	if !cmd.PublisherSet {
		publisher, err = askPublisher(cmd.Stdin, cmd.Stdout)
		if err != nil {
			return err
		}
	}

	return printReport(ctx, cmd.Stdout, store, publisher)
}

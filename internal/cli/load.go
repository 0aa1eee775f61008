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

// LoadCommand resets the store and loads a data file without reporting.
type LoadCommand struct {
	DataFile string
	DSN      string

	Stdout io.Writer

	cfg *config.Config
}

func NewLoadCommand(cfg *config.Config) *LoadCommand {
	return &LoadCommand{cfg: cfg, Stdout: os.Stdout}
}

func (cmd *LoadCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("load", flag.ExitOnError)

	fs.StringVar(&cmd.DataFile, "file", cmd.cfg.Loader.DataFile, "Path to the JSON data file")
	fs.StringVar(&cmd.DSN, "dsn", cmd.cfg.Database.DSN, "Store connection string")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s load [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Drop and recreate every table, then load the data file.\n")
		fmt.Fprintf(os.Stderr, "Records are applied in file order; duplicates are reported and skipped.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	if cmd.DataFile == "" {
		return fmt.Errorf("required flag -file not provided")
	}

	return nil
}

func (cmd *LoadCommand) Run() error {
	ctx := context.Background()

	db, store, err := openStore(cmd.cfg, cmd.DSN)
	if err != nil {
		return err
	}
	defer db.Close()

	l := loader.NewLoader(store, func(msg string) {
		fmt.Fprintln(cmd.Stdout, msg)
	})
	result, err := l.LoadFile(ctx, cmd.DataFile)
	if err != nil {
		return fmt.Errorf("failed to load %s: %w", cmd.DataFile, err)
	}

	fmt.Fprintf(cmd.Stdout, "Records applied: %d\n", result.Applied)
	fmt.Fprintf(cmd.Stdout, "Records skipped: %d\n", result.Skipped)
	return nil
}

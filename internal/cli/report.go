package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/mrlokans/bookshop/internal/config"
)

// ReportCommand prints the sales report against an existing store.
type ReportCommand struct {
	DSN          string
	Publisher    string
	PublisherSet bool

	Stdin  io.Reader
	Stdout io.Writer

	cfg *config.Config
}

func NewReportCommand(cfg *config.Config) *ReportCommand {
	return &ReportCommand{
		cfg:    cfg,
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
	}
}

func (cmd *ReportCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("report", flag.ExitOnError)

	fs.StringVar(&cmd.DSN, "dsn", cmd.cfg.Database.DSN, "Store connection string")
	fs.StringVar(&cmd.Publisher, "publisher", "", "Publisher name or part of it (prompted for if omitted)")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s report [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Print every sale of the matching publishers' books. The store is\n")
		fmt.Fprintf(os.Stderr, "not reset; missing tables are created empty.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	fs.Visit(func(f *flag.Flag) {
		if f.Name == "publisher" {
			cmd.PublisherSet = true
		}
	})

	return nil
}

func (cmd *ReportCommand) Run() error {
	db, store, err := openStore(cmd.cfg, cmd.DSN)
	if err != nil {
		return err
	}
	defer db.Close()

	publisher := normalizePublisher(cmd.Publisher)
	if !cmd.PublisherSet {
		publisher, err = askPublisher(cmd.Stdin, cmd.Stdout)
		if err != nil {
			return err
		}
	}

	return printReport(context.Background(), cmd.Stdout, store, publisher)
}

package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/mrlokans/bookshop/internal/config"
	"github.com/mrlokans/bookshop/internal/database"
	"github.com/mrlokans/bookshop/internal/database/catalog"
	"github.com/mrlokans/bookshop/internal/report"
	"github.com/mrlokans/bookshop/internal/services"
)

// PublisherPrompt is printed before reading the publisher from stdin.
const PublisherPrompt = "Enter publisher: "

var errNoPublisher = errors.New("no publisher entered")

func openStore(cfg *config.Config, dsn string) (*database.Database, *services.Store, error) {
	db, err := database.NewDatabase(dsn, cfg.Database.LogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	store := services.NewStore(db, catalog.WithBookTitlesPerPublisher(cfg.Catalog.BookTitlesPerPublisher))
	return db, store, nil
}

// askPublisher prompts on out and reads one line from in. The answer is
// trimmed and lowercased; an empty line matches every publisher.
func askPublisher(in io.Reader, out io.Writer) (string, error) {
	fmt.Fprint(out, PublisherPrompt)

	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("failed to read publisher: %w", err)
		}
		if line == "" {
			return "", errNoPublisher
		}
	}
	return normalizePublisher(line), nil
}

func normalizePublisher(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func printReport(ctx context.Context, out io.Writer, reader services.ReportReader, publisher string) error {
	rows, err := reader.PublisherSales(ctx, publisher)
	if err != nil {
		return fmt.Errorf("failed to build report: %w", err)
	}
	return report.Write(out, publisher, rows)
}

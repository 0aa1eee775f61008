// Package loader rebuilds the store from a JSON data file.
//
// # Data File Format
//
// A data file is a JSON array of records, each tagged with its kind:
//
//	[
//	  {"kind": "publisher", "fields": {"name": "A. Pushkin"}},
//	  {"kind": "book",      "fields": {"title": "Ruslan and Ludmila", "id_publisher": 1}},
//	  {"kind": "shop",      "fields": {"name": "Bookshop"}},
//	  {"kind": "stock",     "fields": {"id_shop": 1, "id_book": 1, "count": 10}},
//	  {"kind": "sale",      "fields": {"price": 450, "id_stock": 1, "count": 1}}
//	]
//
// Records are replayed in file order, so parents must come before the rows
// that reference them. The loader does not reorder anything.
//
// # Flow
//
//	file → Decode → []Record → ResetSchema → Record.Apply (in order) → Result
package loader

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/mrlokans/bookshop/internal/services"
)

// Mutator is the set of store operations a data file can drive.
type Mutator interface {
	services.CatalogWriter
	services.SaleRecorder
	services.SchemaResetter
}

// Result counts what happened to the records of one load.
type Result struct {
	Applied int
	Skipped int
}

// Loader replays data files into a store.
type Loader struct {
	store  Mutator
	notify func(msg string)
}

// NewLoader creates a loader. Skipped records are reported through notify;
// a nil notify logs them.
func NewLoader(store Mutator, notify func(msg string)) *Loader {
	if notify == nil {
		notify = func(msg string) {
			log.Print(msg)
		}
	}
	return &Loader{store: store, notify: notify}
}

// LoadFile opens path and loads it.
func (l *Loader) LoadFile(ctx context.Context, path string) (Result, error) {
	file, err := os.Open(path)
	if err != nil {
		return Result{}, fmt.Errorf("failed to open data file: %w", err)
	}
	defer file.Close()

	return l.Load(ctx, file)
}

// Load decodes r, resets the schema and replays every record. A file that
// fails to decode leaves the store untouched.
func (l *Loader) Load(ctx context.Context, r io.Reader) (Result, error) {
	records, err := Decode(r)
	if err != nil {
		return Result{}, err
	}

	if err := l.store.ResetSchema(ctx); err != nil {
		return Result{}, err
	}

	return l.Replay(ctx, records)
}

// Replay applies records in order without resetting the store. Duplicates
// and rejected sales are reported and skipped; any other error stops the
// replay.
func (l *Loader) Replay(ctx context.Context, records []Record) (Result, error) {
	var result Result
	for i, record := range records {
		err := record.Apply(ctx, l.store)
		if err == nil {
			result.Applied++
			continue
		}

		if msg, ok := services.Notice(err); ok {
			l.notify(msg)
			result.Skipped++
			continue
		}

		return result, fmt.Errorf("record %d (%s): %w", i+1, record.Kind(), err)
	}

	log.Printf("Loaded %d records, skipped %d", result.Applied, result.Skipped)
	return result, nil
}

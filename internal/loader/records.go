package loader

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
	"github.com/shopspring/decimal"
)

// Kind is the record discriminator in a data file.
type Kind string

const (
	KindPublisher Kind = "publisher"
	KindBook      Kind = "book"
	KindShop      Kind = "shop"
	KindStock     Kind = "stock"
	KindSale      Kind = "sale"
)

var ErrUnknownKind = errors.New("unknown record kind")

// Record is one decoded entry of a data file. The concrete types are
// PublisherRecord, BookRecord, ShopRecord, StockRecord and SaleRecord.
type Record interface {
	Kind() Kind
	Apply(ctx context.Context, m Mutator) error
}

type PublisherRecord struct {
	Name string `json:"name" validate:"required,notblank,max=50"`
}

type BookRecord struct {
	Title       string `json:"title" validate:"required,notblank,max=50"`
	PublisherID uint   `json:"id_publisher" validate:"required"`
}

type ShopRecord struct {
	Name string `json:"name" validate:"required,notblank,max=30"`
}

type StockRecord struct {
	ShopID uint `json:"id_shop" validate:"required"`
	BookID uint `json:"id_book" validate:"required"`
	Count  int  `json:"count" validate:"gte=0"`
}

type SaleRecord struct {
	Price   decimal.Decimal `json:"price" validate:"gte=0"`
	StockID uint            `json:"id_stock" validate:"required"`
	Count   int             `json:"count" validate:"gt=0"`
}

func (PublisherRecord) Kind() Kind { return KindPublisher }
func (BookRecord) Kind() Kind      { return KindBook }
func (ShopRecord) Kind() Kind      { return KindShop }
func (StockRecord) Kind() Kind     { return KindStock }
func (SaleRecord) Kind() Kind      { return KindSale }

func (r PublisherRecord) Apply(ctx context.Context, m Mutator) error {
	_, err := m.AddPublisher(ctx, r.Name)
	return err
}

func (r BookRecord) Apply(ctx context.Context, m Mutator) error {
	_, err := m.AddBook(ctx, r.Title, r.PublisherID)
	return err
}

func (r ShopRecord) Apply(ctx context.Context, m Mutator) error {
	_, err := m.AddShop(ctx, r.Name)
	return err
}

func (r StockRecord) Apply(ctx context.Context, m Mutator) error {
	_, err := m.AddStock(ctx, r.ShopID, r.BookID, r.Count)
	return err
}

func (r SaleRecord) Apply(ctx context.Context, m Mutator) error {
	_, err := m.AddSale(ctx, r.Price, r.StockID, r.Count)
	return err
}

// envelope is the on-disk shape of a record. "model" is accepted as an alias
// of "kind" so fixture files in the {"model", "pk", "fields"} layout load too.
type envelope struct {
	Kind   Kind            `json:"kind"`
	Model  Kind            `json:"model"`
	Fields json.RawMessage `json:"fields"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterCustomTypeFunc(func(field reflect.Value) any {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			return d.InexactFloat64()
		}
		return nil
	}, decimal.Decimal{})
	// Blank names would pass required and only fail in the store, after
	// the reset.
	if err := v.RegisterValidation("notblank", validators.NotBlank); err != nil {
		panic(err)
	}
	v.RegisterStructValidation(func(sl validator.StructLevel) {
		sale := sl.Current().Interface().(SaleRecord)
		if !sale.Price.Equal(sale.Price.Round(2)) {
			sl.ReportError(sale.Price, "Price", "Price", "cents", "")
		}
	}, SaleRecord{})
	return v
}

// Decode reads a JSON array of records and validates every one of them.
// Nothing is returned unless the whole file is well formed.
func Decode(r io.Reader) ([]Record, error) {
	var envelopes []envelope
	if err := json.NewDecoder(r).Decode(&envelopes); err != nil {
		return nil, fmt.Errorf("failed to parse data file: %w", err)
	}

	records := make([]Record, 0, len(envelopes))
	for i, env := range envelopes {
		record, err := decodeRecord(env)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i+1, err)
		}
		records = append(records, record)
	}
	return records, nil
}

func decodeRecord(env envelope) (Record, error) {
	kind := env.Kind
	if kind == "" {
		kind = env.Model
	}

	var record Record
	var err error
	switch kind {
	case KindPublisher:
		record, err = decodeFields[PublisherRecord](env.Fields)
	case KindBook:
		record, err = decodeFields[BookRecord](env.Fields)
	case KindShop:
		record, err = decodeFields[ShopRecord](env.Fields)
	case KindStock:
		record, err = decodeFields[StockRecord](env.Fields)
	case KindSale:
		record, err = decodeFields[SaleRecord](env.Fields)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", kind, err)
	}
	return record, nil
}

func decodeFields[T Record](raw json.RawMessage) (T, error) {
	var fields T
	if len(raw) == 0 {
		return fields, errors.New("fields are missing")
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&fields); err != nil {
		return fields, fmt.Errorf("invalid fields: %w", err)
	}
	if err := validate.Struct(fields); err != nil {
		return fields, fmt.Errorf("invalid fields: %w", err)
	}
	return fields, nil
}

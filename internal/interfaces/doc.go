// Package interfaces documents the core abstractions used throughout the application.
//
// # Interface Categories
//
// ## Data Access Interfaces
//
//   - CatalogWriter: guarded inserts of publishers, books, shops and stock (internal/services/interfaces.go)
//   - SaleRecorder: sale plus stock decrement (internal/services/interfaces.go)
//   - ReportReader: the publisher sales report (internal/services/interfaces.go)
//   - SchemaResetter: drop and recreate every table (internal/services/interfaces.go)
//
// services.Store implements all four over one database handle.
//
// ## Bulk Loading
//
//   - Mutator: the store operations a data file can drive (internal/loader/loader.go)
//   - Record: one decoded data file entry (internal/loader/records.go)
//
// ## HTTP Surface
//
//   - Store, Pinger, Auditor: controller dependencies (internal/http/stores.go)
//
// # Adding a New Record Kind
//
//  1. Add the model to internal/entities and to entities.Models(), parents first.
//
//  2. Add a guarded Add* method in internal/database/catalog:
//
//     func (r *Repository) AddAuthor(ctx context.Context, name string) (*entities.Author, error) {
//         dup := &DuplicateError{Kind: KindAuthor, Key: strconv.Quote(name)}
//         return author, insertUnique(ctx, r.db, author, authorIsFree(name), dup)
//     }
//
//  3. Expose it on CatalogWriter and services.Store.
//
//  4. Add the record type in internal/loader/records.go:
//
//     type AuthorRecord struct {
//         Name string `json:"name" validate:"required,max=50"`
//     }
//
//     var _ loader.Record = loader.AuthorRecord{}
//
//  5. Add a case to decodeRecord and, if users should see it, to services.Notice.
//
// # Compile-Time Interface Checks
//
// All implementations should include compile-time checks to ensure they satisfy
// their interfaces. This catches missing methods at compile time rather than runtime:
//
//	var _ SomeInterface = (*MyImplementation)(nil)
//
// See checks.go.
package interfaces

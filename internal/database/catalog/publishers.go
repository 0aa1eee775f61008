package catalog

import (
	"context"
	"strconv"

	"gorm.io/gorm"

	"github.com/mrlokans/bookshop/internal/entities"
)

// CheckPublisher reports whether no publisher with this name exists, ignoring case.
func (r *Repository) CheckPublisher(ctx context.Context, name string) (bool, error) {
	return publisherIsFree(name)(r.db.WithContext(ctx))
}

// AddPublisher inserts a publisher unless one with the same name exists.
func (r *Repository) AddPublisher(ctx context.Context, name string) (*entities.Publisher, error) {
	name, err := cleanName("name", name)
	if err != nil {
		return nil, err
	}

	publisher := &entities.Publisher{Name: name}
	dup := &DuplicateError{Kind: KindPublisher, Key: strconv.Quote(name)}
	if err := insertUnique(ctx, r.db, publisher, publisherIsFree(name), dup); err != nil {
		return nil, err
	}
	return publisher, nil
}

// GetPublisherByID retrieves a publisher by its ID.
func (r *Repository) GetPublisherByID(ctx context.Context, id uint) (*entities.Publisher, error) {
	var publisher entities.Publisher
	if err := r.db.WithContext(ctx).First(&publisher, id).Error; err != nil {
		return nil, err
	}
	return &publisher, nil
}

// GetAllPublishers returns all publishers ordered by ID.
func (r *Repository) GetAllPublishers(ctx context.Context) ([]entities.Publisher, error) {
	var publishers []entities.Publisher
	err := r.db.WithContext(ctx).Order("id ASC").Find(&publishers).Error
	return publishers, err
}

func publisherIsFree(name string) guard {
	return func(tx *gorm.DB) (bool, error) {
		return nameIsFree(tx, &entities.Publisher{}, "name", name)
	}
}

package catalog

import (
	"context"
	"strconv"

	"gorm.io/gorm"

	"github.com/mrlokans/bookshop/internal/entities"
)

// CheckShop reports whether no shop with this name exists, ignoring case.
func (r *Repository) CheckShop(ctx context.Context, name string) (bool, error) {
	return shopIsFree(name)(r.db.WithContext(ctx))
}

// AddShop inserts a shop unless one with the same name exists.
func (r *Repository) AddShop(ctx context.Context, name string) (*entities.Shop, error) {
	name, err := cleanName("name", name)
	if err != nil {
		return nil, err
	}

	shop := &entities.Shop{Name: name}
	dup := &DuplicateError{Kind: KindShop, Key: strconv.Quote(name)}
	if err := insertUnique(ctx, r.db, shop, shopIsFree(name), dup); err != nil {
		return nil, err
	}
	return shop, nil
}

// GetAllShops returns all shops ordered by ID.
func (r *Repository) GetAllShops(ctx context.Context) ([]entities.Shop, error) {
	var shops []entities.Shop
	err := r.db.WithContext(ctx).Order("id ASC").Find(&shops).Error
	return shops, err
}

func shopIsFree(name string) guard {
	return func(tx *gorm.DB) (bool, error) {
		return nameIsFree(tx, &entities.Shop{}, "name", name)
	}
}

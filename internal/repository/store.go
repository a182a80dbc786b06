package repository

import (
	"context"

	"gorm.io/gorm"
)

// Store hands out repositories bound to one *gorm.DB handle. Inside Transaction the
// handle is the transaction, so every repository obtained from the callback's Store
// participates in it.
type Store struct {
	db *gorm.DB
}

// NewStore creates a new store
func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// DB returns the underlying handle
func (s *Store) DB() *gorm.DB {
	return s.db
}

// WithContext returns a store whose queries carry ctx
func (s *Store) WithContext(ctx context.Context) *Store {
	return &Store{db: s.db.WithContext(ctx)}
}

// Transaction runs fn inside a database transaction. Returning an error from fn rolls back.
func (s *Store) Transaction(ctx context.Context, fn func(tx *Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&Store{db: tx})
	})
}

func (s *Store) Components() ComponentRepositoryInterface {
	return NewComponentRepository(s.db)
}

func (s *Store) Locations() LocationRepositoryInterface {
	return NewLocationRepository(s.db)
}

func (s *Store) Projects() ProjectRepositoryInterface {
	return NewProjectRepository(s.db)
}

func (s *Store) ProjectItems() ProjectItemRepositoryInterface {
	return NewProjectItemRepository(s.db)
}

func (s *Store) Suppliers() SupplierRepositoryInterface {
	return NewSupplierRepository(s.db)
}

func (s *Store) SupplierOffers() SupplierOfferRepositoryInterface {
	return NewSupplierOfferRepository(s.db)
}

func (s *Store) Transactions() InventoryTransactionRepositoryInterface {
	return NewInventoryTransactionRepository(s.db)
}

// Package orderstore is the client for the external order table. Orders are
// write-only from the storefront's point of view: once inserted, ownership is
// with the remote store and nothing is kept locally.
package orderstore

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/walkinit/storefront/internal/models"
)

type Order struct {
	ID              uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	CustomerName    string  `gorm:"not null"                 json:"customer_name"`
	CustomerEmail   string  `gorm:"not null"                 json:"customer_email"`
	ShippingAddress string  `gorm:"not null"                 json:"shipping_address"`
	City            string  `gorm:"not null"                 json:"city"`
	Zip             string  `gorm:"not null"                 json:"zip"`
	TotalAmount     float64 `gorm:"not null"                 json:"total_amount"`
	Items           string  `gorm:"type:jsonb;not null"      json:"items"`
	Status          string  `gorm:"not null"                 json:"status"`
	CreatedAt       string  `gorm:"not null"                 json:"created_at"`
}

func (Order) TableName() string { return "orders" }

// StatusPaid is the fixed status marker: there is no real payment
// authorization, submission implies the mock payment succeeded.
const StatusPaid = "Paid"

// Store is the narrow interface consumed by checkout: one atomic insert,
// success or error, nothing partial.
type Store interface {
	Insert(ctx context.Context, order *Order) error
}

// NewOrder snapshots the cart lines into a persistable record. Payment card
// fields never reach this function and are never stored.
func NewOrder(name, email, address, city, zip string, lines []models.CartLine, total float64) (*Order, error) {
	items, err := json.Marshal(lines)
	if err != nil {
		return nil, fmt.Errorf("orderstore: marshal items: %w", err)
	}
	return &Order{
		CustomerName:    name,
		CustomerEmail:   email,
		ShippingAddress: address,
		City:            city,
		Zip:             zip,
		TotalAmount:     total,
		Items:           string(items),
		Status:          StatusPaid,
		CreatedAt:       time.Now().UTC().Format(time.RFC3339),
	}, nil
}

type GormStore struct {
	DB *gorm.DB
}

func NewGormStore(db *gorm.DB) (*GormStore, error) {
	if err := db.AutoMigrate(&Order{}); err != nil {
		return nil, fmt.Errorf("orderstore: migrate: %w", err)
	}
	return &GormStore{DB: db}, nil
}

func (s *GormStore) Insert(ctx context.Context, order *Order) error {
	if err := s.DB.WithContext(ctx).Create(order).Error; err != nil {
		return fmt.Errorf("orderstore: insert: %w", err)
	}
	return nil
}

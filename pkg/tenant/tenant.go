package tenant

import (
	"context"
	"time"
)

// SubscriptionStatus is the billing state of a church account.
type SubscriptionStatus string

const (
	SubscriptionTrial     SubscriptionStatus = "trial"
	SubscriptionActive    SubscriptionStatus = "active"
	SubscriptionSuspended SubscriptionStatus = "suspended"
	SubscriptionCancelled SubscriptionStatus = "cancelled"
)

// Tenant is a church organization as seen by the routing layer.
// Records are owned by the directory and read-only here.
type Tenant struct {
	ID                 string             `json:"id" yaml:"id"`
	Slug               string             `json:"slug" yaml:"slug"`
	Name               string             `json:"name" yaml:"name"`
	Description        string             `json:"description,omitempty" yaml:"description"`
	Email              string             `json:"email" yaml:"email"`
	Phone              string             `json:"phone,omitempty" yaml:"phone"`
	Address            string             `json:"address,omitempty" yaml:"address"`
	Website            string             `json:"website,omitempty" yaml:"website"`
	LogoURL            string             `json:"logo_url,omitempty" yaml:"logo_url"`
	PrimaryColor       string             `json:"primary_color,omitempty" yaml:"primary_color"`
	SecondaryColor     string             `json:"secondary_color,omitempty" yaml:"secondary_color"`
	SubscriptionStatus SubscriptionStatus `json:"subscription_status" yaml:"subscription_status"`
	Active             bool               `json:"is_active" yaml:"is_active"`
	CreatedAt          time.Time          `json:"created_at" yaml:"created_at"`
	UpdatedAt          time.Time          `json:"updated_at" yaml:"updated_at"`
}

// Directory looks up tenant records.
type Directory interface {
	// FindActiveBySlug returns the active tenant whose slug equals slug.
	// Inactive tenants are reported as ErrNotFound.
	FindActiveBySlug(ctx context.Context, slug string) (*Tenant, error)
}

// DirectoryFunc adapts a function to the Directory interface.
type DirectoryFunc func(ctx context.Context, slug string) (*Tenant, error)

func (f DirectoryFunc) FindActiveBySlug(ctx context.Context, slug string) (*Tenant, error) {
	return f(ctx, slug)
}

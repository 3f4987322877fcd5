// Package handler contains the HTTP endpoint implementations.
package handler

import (
	"context"

	"github.com/pitchside/pitchside/internal/profile"
	"github.com/pitchside/pitchside/internal/store"
)

// CatalogAdmin is the slice of the catalog service the admin surface needs.
type CatalogAdmin interface {
	Reload(ctx context.Context, seedPath string) (int, error)
}

// Readiness reports whether the backing store is reachable.
// *pgxpool.Pool satisfies it.
type Readiness interface {
	Ping(ctx context.Context) error
}

// Handler bundles the services behind the HTTP surface.
type Handler struct {
	store     store.Service
	profile   profile.Service
	catalog   CatalogAdmin
	readiness Readiness
	jwtSecret []byte
	seedPath  string
	version   string
}

// Config collects the handler's dependencies.
type Config struct {
	Store     store.Service
	Profile   profile.Service
	Catalog   CatalogAdmin
	Readiness Readiness
	JWTSecret []byte
	SeedPath  string
	Version   string
}

// New creates a new Handler
func New(cfg Config) *Handler {
	return &Handler{
		store:     cfg.Store,
		profile:   cfg.Profile,
		catalog:   cfg.Catalog,
		readiness: cfg.Readiness,
		jwtSecret: cfg.JWTSecret,
		seedPath:  cfg.SeedPath,
		version:   cfg.Version,
	}
}

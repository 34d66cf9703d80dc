// Package storage provides Postgres access for the rental property
// catalog, plus a seeded in-memory catalog for deployments without a
// database.
package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/obxstays/obx-backend/internal/model"
)

// Querier abstracts the subset of pgxpool.Pool used by Repository.
// This allows injection of a mock in tests.
type Querier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// Repository provides database access for property records.
type Repository struct {
	q Querier
}

// NewRepository constructs a Repository backed by the given pool.
func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{q: pool}
}

// NewRepositoryWithQuerier constructs a Repository with a custom Querier (for tests).
func NewRepositoryWithQuerier(q Querier) *Repository {
	return &Repository{q: q}
}

const propertyColumns = `id, slug, name, town, lat, lng, bedrooms, sleeps, nightly_rate, details, created_at, updated_at`

// GetPropertyBySlug retrieves a property by its URL slug.
// Returns nil, nil when the slug is not found.
func (r *Repository) GetPropertyBySlug(ctx context.Context, slug string) (*model.Property, error) {
	q := fmt.Sprintf(`SELECT %s FROM properties WHERE slug = $1`, propertyColumns)

	p, err := scanProperty(r.q.QueryRow(ctx, q, slug))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("querying property for slug %s: %w", slug, err)
	}
	return p, nil
}

// ListProperties returns all properties ordered by name.
func (r *Repository) ListProperties(ctx context.Context) ([]model.Property, error) {
	q := fmt.Sprintf(`SELECT %s FROM properties ORDER BY name`, propertyColumns)

	rows, err := r.q.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("querying properties: %w", err)
	}
	defer rows.Close()

	return collectProperties(rows)
}

// ListPropertiesByTown returns properties in the given town, ordered by name.
func (r *Repository) ListPropertiesByTown(ctx context.Context, town string) ([]model.Property, error) {
	q := fmt.Sprintf(`SELECT %s FROM properties WHERE town = $1 ORDER BY name`, propertyColumns)

	rows, err := r.q.Query(ctx, q, town)
	if err != nil {
		return nil, fmt.Errorf("querying properties for town %s: %w", town, err)
	}
	defer rows.Close()

	return collectProperties(rows)
}

// ListPetFriendly returns pet-friendly properties using the JSONB
// containment operator on the details column.
func (r *Repository) ListPetFriendly(ctx context.Context) ([]model.Property, error) {
	filter, err := json.Marshal(map[string]any{"petFriendly": true})
	if err != nil {
		return nil, fmt.Errorf("marshaling JSONB filter: %w", err)
	}

	q := fmt.Sprintf(`SELECT %s FROM properties WHERE details @> $1::jsonb ORDER BY name`, propertyColumns)

	rows, err := r.q.Query(ctx, q, string(filter))
	if err != nil {
		return nil, fmt.Errorf("querying pet-friendly properties: %w", err)
	}
	defer rows.Close()

	return collectProperties(rows)
}

// UpsertProperty inserts or updates a property record.
// On conflict (slug), all mutable columns are replaced.
func (r *Repository) UpsertProperty(ctx context.Context, p model.Property) error {
	detailsJSON, err := json.Marshal(p.Details)
	if err != nil {
		return fmt.Errorf("marshaling details for slug %s: %w", p.Slug, err)
	}

	const q = `
		INSERT INTO properties (slug, name, town, lat, lng, bedrooms, sleeps, nightly_rate, details, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW())
		ON CONFLICT (slug) DO UPDATE
		SET name         = EXCLUDED.name,
		    town         = EXCLUDED.town,
		    lat          = EXCLUDED.lat,
		    lng          = EXCLUDED.lng,
		    bedrooms     = EXCLUDED.bedrooms,
		    sleeps       = EXCLUDED.sleeps,
		    nightly_rate = EXCLUDED.nightly_rate,
		    details      = EXCLUDED.details,
		    updated_at   = EXCLUDED.updated_at
	`

	if _, err := r.q.Exec(ctx, q, p.Slug, p.Name, p.Town, p.Location.Lat, p.Location.Lng,
		p.Bedrooms, p.Sleeps, p.Nightly, detailsJSON); err != nil {
		return fmt.Errorf("upserting property for slug %s: %w", p.Slug, err)
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanProperty(row scanner) (*model.Property, error) {
	var p model.Property
	var detailsJSON []byte

	if err := row.Scan(
		&p.ID,
		&p.Slug,
		&p.Name,
		&p.Town,
		&p.Location.Lat,
		&p.Location.Lng,
		&p.Bedrooms,
		&p.Sleeps,
		&p.Nightly,
		&detailsJSON,
		&p.CreatedAt,
		&p.UpdatedAt,
	); err != nil {
		return nil, err
	}

	if err := json.Unmarshal(detailsJSON, &p.Details); err != nil {
		return nil, fmt.Errorf("unmarshaling details for slug %s: %w", p.Slug, err)
	}
	return &p, nil
}

func collectProperties(rows pgx.Rows) ([]model.Property, error) {
	var results []model.Property
	for rows.Next() {
		p, err := scanProperty(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning property row: %w", err)
		}
		results = append(results, *p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating property rows: %w", err)
	}
	return results, nil
}

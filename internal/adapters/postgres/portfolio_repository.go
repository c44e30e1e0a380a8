package postgres

import (
	"context"
	"errors"
	"fmt"

	"goldrates/internal/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PortfolioRepository struct {
	pool *pgxpool.Pool
}

func (r *PortfolioRepository) Create(ctx context.Context, item domain.PortfolioItem) error {
	const q = `
		insert into portfolio_items (id, owner_id, type, name, name_en, quantity, buy_price, created_at, updated_at)
		values ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`

	_, err := r.pool.Exec(ctx, q,
		item.ID, item.OwnerID, item.Type, item.Name, item.NameEn,
		item.Quantity, item.BuyPrice, item.CreatedAt, item.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert portfolio item %q: %w", item.ID, err)
	}
	return nil
}

func (r *PortfolioRepository) ListByOwner(ctx context.Context, ownerID string) ([]domain.PortfolioItem, error) {
	const q = `
		select id, owner_id, type, name, name_en, quantity, buy_price, created_at, updated_at
		from portfolio_items
		where owner_id = $1
		order by created_at;
	`

	rows, err := r.pool.Query(ctx, q, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to query portfolio for owner %q: %w", ownerID, err)
	}
	defer rows.Close()

	items := make([]domain.PortfolioItem, 0, 16)
	for rows.Next() {
		var it domain.PortfolioItem
		if err = rows.Scan(&it.ID, &it.OwnerID, &it.Type, &it.Name, &it.NameEn,
			&it.Quantity, &it.BuyPrice, &it.CreatedAt, &it.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan portfolio item: %w", err)
		}
		items = append(items, it)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating portfolio items: %w", err)
	}
	return items, nil
}

func (r *PortfolioRepository) Update(ctx context.Context, id uuid.UUID, ownerID string, patch domain.PortfolioItemPatch) (domain.PortfolioItem, error) {
	const q = `
		update portfolio_items
		set quantity = coalesce($3, quantity),
		    buy_price = coalesce($4, buy_price),
		    updated_at = now()
		where id = $1 and owner_id = $2
		returning id, owner_id, type, name, name_en, quantity, buy_price, created_at, updated_at;
	`

	var it domain.PortfolioItem
	err := r.pool.QueryRow(ctx, q, id, ownerID, patch.Quantity, patch.BuyPrice).Scan(
		&it.ID, &it.OwnerID, &it.Type, &it.Name, &it.NameEn,
		&it.Quantity, &it.BuyPrice, &it.CreatedAt, &it.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.PortfolioItem{}, domain.ErrPortfolioItemNotFound
		}
		return domain.PortfolioItem{}, fmt.Errorf("failed to update portfolio item %q: %w", id, err)
	}
	return it, nil
}

func (r *PortfolioRepository) Delete(ctx context.Context, id uuid.UUID, ownerID string) error {
	const q = `delete from portfolio_items where id = $1 and owner_id = $2;`

	tag, err := r.pool.Exec(ctx, q, id, ownerID)
	if err != nil {
		return fmt.Errorf("failed to delete portfolio item %q: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrPortfolioItemNotFound
	}
	return nil
}

func NewPortfolioRepository(pool *pgxpool.Pool) *PortfolioRepository {
	return &PortfolioRepository{pool: pool}
}

package postgres

import (
	"context"
	"fmt"
	"time"

	"goldrates/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type HistoryRepository struct {
	pool *pgxpool.Pool
}

func (r *HistoryRepository) InsertQuotes(ctx context.Context, recordedAt time.Time, set domain.PriceSet) error {
	const q = `
		insert into price_history (category, name, name_en, buy, sell, change, recorded_at)
		values ($1, $2, $3, $4, $5, $6, $7);
	`

	batch := &pgx.Batch{}
	for _, it := range set.Gold {
		batch.Queue(q, domain.CategoryGold, it.Name, it.NameEn, it.Buy, it.Sell, it.Change, recordedAt)
	}
	for _, it := range set.Currency {
		batch.Queue(q, domain.CategoryCurrency, it.Name, it.NameEn, it.Buy, it.Sell, it.Change, recordedAt)
	}
	if batch.Len() == 0 {
		return nil
	}

	if err := r.pool.SendBatch(ctx, batch).Close(); err != nil {
		return fmt.Errorf("failed to insert %d history rows: %w", batch.Len(), err)
	}
	return nil
}

func (r *HistoryRepository) RecentQuotes(ctx context.Context, category domain.Category, limit int) ([]domain.HistoryEntry, error) {
	q := `
		select category, name, name_en, buy, sell, change, recorded_at
		from price_history
	`
	args := []any{limit}
	if category == domain.CategoryGold || category == domain.CategoryCurrency {
		q += ` where category = $2`
		args = append(args, category)
	}
	q += ` order by recorded_at desc, name limit $1;`

	rows, err := r.pool.Query(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query price history: %w", err)
	}
	defer rows.Close()

	entries := make([]domain.HistoryEntry, 0, limit)
	for rows.Next() {
		var e domain.HistoryEntry
		if err = rows.Scan(&e.Category, &e.Name, &e.NameEn, &e.Buy, &e.Sell, &e.Change, &e.RecordedAt); err != nil {
			return nil, fmt.Errorf("failed to scan history entry: %w", err)
		}
		entries = append(entries, e)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating history entries: %w", err)
	}
	return entries, nil
}

func NewHistoryRepository(pool *pgxpool.Pool) *HistoryRepository {
	return &HistoryRepository{pool: pool}
}

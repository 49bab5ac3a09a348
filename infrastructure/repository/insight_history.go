package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/kenazlabs/kenaz-analytics-api/infrastructure/database/postgres"
	"github.com/kenazlabs/kenaz-analytics-api/internal/domain"
)

const (
	insightHistoryTable   = "insight_history ih"
	insightHistoryColumns = "ih.id, ih.ad_name, ih.product, ih.platform, ih.source, ih.insight, ih.suggestions, ih.diagnostics, ih.created_at"
)

type InsightHistoryRepository interface {
	Save(ctx context.Context, entry *domain.InsightHistoryEntry) error
	ListByAdName(ctx context.Context, adName string, limit int) ([]*domain.InsightHistoryEntry, error)
	ListRecent(ctx context.Context, limit int) ([]*domain.InsightHistoryEntry, error)
	DeleteOlderThan(ctx context.Context, days int) (int64, error)
}

type insightHistoryRepository struct {
	conn *postgres.Connection
}

func NewInsightHistoryRepository(conn *postgres.Connection) InsightHistoryRepository {
	return &insightHistoryRepository{
		conn: conn,
	}
}

func (r *insightHistoryRepository) Save(ctx context.Context, entry *domain.InsightHistoryEntry) error {
	diagnostics, err := json.Marshal(entry.Diagnostics)
	if err != nil {
		return fmt.Errorf("marshaling diagnostics: %w", err)
	}

	query, args, err := squirrel.
		Insert("insight_history").
		Columns("id", "ad_name", "product", "platform", "source", "insight", "suggestions", "diagnostics", "created_at").
		Values(
			entry.ID,
			entry.AdName,
			nullableString(entry.Product),
			nullableString(entry.Platform),
			entry.Source,
			entry.Insight,
			pq.Array(entry.Suggestions),
			diagnostics,
			entry.CreatedAt,
		).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("building insert query: %w", err)
	}

	if _, err := r.conn.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("inserting insight history entry: %w", err)
	}

	return nil
}

func (r *insightHistoryRepository) ListByAdName(ctx context.Context, adName string, limit int) ([]*domain.InsightHistoryEntry, error) {
	query, args, err := squirrel.
		Select(insightHistoryColumns).
		From(insightHistoryTable).
		Where(squirrel.Eq{"ih.ad_name": adName}).
		OrderBy("ih.created_at DESC").
		Limit(uint64(limit)).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("building query: %w", err)
	}

	return r.queryEntries(ctx, query, args...)
}

func (r *insightHistoryRepository) ListRecent(ctx context.Context, limit int) ([]*domain.InsightHistoryEntry, error) {
	query, args, err := squirrel.
		Select(insightHistoryColumns).
		From(insightHistoryTable).
		OrderBy("ih.created_at DESC").
		Limit(uint64(limit)).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("building query: %w", err)
	}

	return r.queryEntries(ctx, query, args...)
}

func (r *insightHistoryRepository) DeleteOlderThan(ctx context.Context, days int) (int64, error) {
	cutoff := time.Now().UTC().AddDate(0, 0, -days)

	query, args, err := squirrel.
		Delete("insight_history").
		Where(squirrel.Lt{"created_at": cutoff}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("building delete query: %w", err)
	}

	result, err := r.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("deleting old insight history entries: %w", err)
	}

	return result.RowsAffected()
}

func (r *insightHistoryRepository) queryEntries(ctx context.Context, query string, args ...interface{}) ([]*domain.InsightHistoryEntry, error) {
	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("executing query: %w", err)
	}
	defer rows.Close()

	entries := make([]*domain.InsightHistoryEntry, 0)
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning insight history entry: %w", err)
		}
		entries = append(entries, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating insight history rows: %w", err)
	}

	return entries, nil
}

func scanEntry(rows *sql.Rows) (*domain.InsightHistoryEntry, error) {
	var (
		entry       domain.InsightHistoryEntry
		product     sql.NullString
		platform    sql.NullString
		diagnostics []byte
	)

	err := rows.Scan(
		&entry.ID,
		&entry.AdName,
		&product,
		&platform,
		&entry.Source,
		&entry.Insight,
		pq.Array(&entry.Suggestions),
		&diagnostics,
		&entry.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	entry.Product = product.String
	entry.Platform = platform.String

	if len(diagnostics) > 0 {
		if err := json.Unmarshal(diagnostics, &entry.Diagnostics); err != nil {
			return nil, fmt.Errorf("unmarshaling diagnostics: %w", err)
		}
	}

	return &entry, nil
}

func nullableString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

package postgres

import (
	"context"
	"fmt"
	"strconv"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/itfweb/recruit-site/internal/core/news"
)

// NewsRepository はお知らせフィードの配信元となる PostgreSQL リポジトリ。
// posts テーブルの post_type = 'news' 行を取込順（行ID昇順）で返す。
type NewsRepository struct {
	pool *pgxpool.Pool
}

// NewNewsRepository は新しい NewsRepository を作成します
func NewNewsRepository(pool *pgxpool.Pool) *NewsRepository {
	return &NewsRepository{pool: pool}
}

const listNewsSQL = `SELECT id, title, category, date::text, created_at, summary, content, image, posted_by
FROM posts
WHERE post_type = $1
ORDER BY id ASC`

// ListAll はお知らせ全件を取込順で返す。
// 行IDがそのまま安定識別子になる。
func (r *NewsRepository) ListAll(ctx context.Context) ([]news.Item, error) {
	rows, err := r.pool.Query(ctx, listNewsSQL, "news")
	if err != nil {
		return nil, fmt.Errorf("failed to list news: %w", err)
	}
	defer rows.Close()

	items := make([]news.Item, 0)
	for rows.Next() {
		var (
			id        int64
			item      news.Item
			image     *string
			createdAt news.Timestamp
		)
		if err := rows.Scan(
			&id,
			&item.Title,
			&item.Category,
			&item.Date,
			&createdAt.Time,
			&item.Summary,
			&item.Content,
			&image,
			&item.PostedBy,
		); err != nil {
			return nil, fmt.Errorf("failed to scan news row: %w", err)
		}
		item.ID = strconv.FormatInt(id, 10)
		item.CreatedAt = createdAt
		if image != nil {
			item.Image = *image
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read news rows: %w", err)
	}

	return items, nil
}

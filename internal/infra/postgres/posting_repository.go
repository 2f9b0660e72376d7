// Package postgres は posts テーブルに対する読み取り専用アダプターを提供する。
package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/itfweb/recruit-site/internal/core/posting"
	"github.com/itfweb/recruit-site/internal/core/posting/query"
)

// PostingRepository は posting.Repository を実装する PostgreSQL リポジトリ
type PostingRepository struct {
	pool *pgxpool.Pool
}

// NewPostingRepository は新しい PostingRepository を作成します
func NewPostingRepository(pool *pgxpool.Pool) *PostingRepository {
	return &PostingRepository{pool: pool}
}

var _ posting.Repository = (*PostingRepository)(nil)

// Search は条件に一致する求人を掲載日の降順（同日は行の挿入順）で返す
func (r *PostingRepository) Search(ctx context.Context, criteria posting.SearchCriteria) ([]*posting.JobPosting, error) {
	sql, args := query.BuildPostingSearch(criteria)

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to search postings: %w", err)
	}
	defer rows.Close()

	postings := make([]*posting.JobPosting, 0)
	for rows.Next() {
		var p posting.JobPosting
		if err := rows.Scan(
			&p.ID,
			&p.Title,
			&p.Summary,
			&p.CompanyName,
			&p.Salary,
			&p.JobType,
			&p.JobLocation,
			&p.JapaneseLevel,
			&p.JobCategory,
			&p.MinimumLeavePerYear,
			&p.Image,
			&p.Date,
		); err != nil {
			return nil, fmt.Errorf("failed to scan posting row: %w", err)
		}
		postings = append(postings, &p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read posting rows: %w", err)
	}

	return postings, nil
}

// FilterOptions は絞り込みコントロール用の選択肢を求人全件から算出して返す。
// 現在の検索条件には依存しないため、ある絞り込みの変更が他の選択肢を
// 消すことはない。
func (r *PostingRepository) FilterOptions(ctx context.Context) (*posting.FilterOptions, error) {
	locations, err := r.distinctValues(ctx, "job_location")
	if err != nil {
		return nil, err
	}
	jobTypes, err := r.distinctValues(ctx, "job_type")
	if err != nil {
		return nil, err
	}
	japaneseLevels, err := r.distinctValues(ctx, "japanese_level")
	if err != nil {
		return nil, err
	}
	categories, err := r.distinctValues(ctx, "job_category")
	if err != nil {
		return nil, err
	}

	return &posting.FilterOptions{
		Locations:      locations,
		JobTypes:       jobTypes,
		JapaneseLevels: japaneseLevels,
		JobCategories:  categories,
	}, nil
}

func (r *PostingRepository) distinctValues(ctx context.Context, column string) ([]string, error) {
	sql, args := query.BuildDistinctValues(column)

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list distinct %s: %w", column, err)
	}
	defer rows.Close()

	values := make([]string, 0)
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nil, fmt.Errorf("failed to scan distinct %s: %w", column, err)
		}
		values = append(values, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read distinct %s: %w", column, err)
	}

	return values, nil
}

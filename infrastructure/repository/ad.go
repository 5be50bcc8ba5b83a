// Package repository contains the Postgres-backed data access layer.
package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/mosaicwellness/ad-warroom-api/infrastructure/database/postgres"
	"github.com/mosaicwellness/ad-warroom-api/internal/domain"
)

const (
	adsTable = "competitor_ads ca"
)

var adColumns = []string{
	"ca.id",
	"ca.brand_key",
	"ca.competitor_name",
	"ca.page_name",
	"ca.page_id",
	"ca.ad_title",
	"ca.ad_body",
	"ca.ad_description",
	"ca.media_type",
	"ca.publisher_platforms",
	"ca.languages",
	"ca.ad_creation_time",
	"ca.ad_delivery_start_time",
	"ca.ad_delivery_stop_time",
	"ca.spend_lower",
	"ca.spend_upper",
	"ca.impressions_lower",
	"ca.impressions_upper",
	"ca.ad_snapshot_url",
	"ca.theme",
	"ca.is_active",
	"ca.run_days",
	"ca.is_top_performer",
	"ca.is_sample",
	"ca.created_at",
	"ca.updated_at",
}

type AdRepository interface {
	Upsert(ad *domain.Ad) error
	List(filter domain.AdFilter) ([]*domain.Ad, error)
	Count(filter domain.AdFilter) (int, error)
	TopPerformers(brandKey string, limit int) ([]*domain.Ad, error)
	LongestRunning(brandKey string, limit int) ([]*domain.Ad, error)
	CountTopPerformers(brandKey string) (int, error)
	MediaTypeBreakdown(brandKey string) (map[string]int, error)
	ThemeBreakdown(brandKey string) (map[string]int, error)
	CompetitorBreakdown(brandKey string) (map[string]int, error)
	SampleCopies(brandKey string, limit int) ([]domain.AdCopy, error)
	DeleteAll() (int64, error)
}

type adRepository struct {
	conn postgres.Queryer
}

func NewAdRepository(conn *postgres.Connection) AdRepository {
	return &adRepository{
		conn: conn,
	}
}

// Upsert inserts or replaces the ad keyed on its source id. Re-fetching the
// same ad updates the row in place (last write wins), which also serializes
// concurrent upserts against the same id at the database.
func (r *adRepository) Upsert(ad *domain.Ad) error {
	query := squirrel.StatementBuilder.
		Insert("competitor_ads").
		Columns(
			"id", "brand_key", "competitor_name", "page_name", "page_id",
			"ad_title", "ad_body", "ad_description", "media_type",
			"publisher_platforms", "languages",
			"ad_creation_time", "ad_delivery_start_time", "ad_delivery_stop_time",
			"spend_lower", "spend_upper", "impressions_lower", "impressions_upper",
			"ad_snapshot_url", "theme", "is_active", "run_days",
			"is_top_performer", "is_sample",
		).
		Values(
			ad.ID, ad.BrandKey, ad.CompetitorName, ad.PageName, ad.PageID,
			ad.AdTitle, ad.AdBody, ad.AdDescription, string(ad.MediaType),
			pq.Array(ad.PublisherPlatforms), pq.Array(ad.Languages),
			ad.AdCreationTime, ad.AdDeliveryStartTime, ad.AdDeliveryStopTime,
			ad.SpendLower, ad.SpendUpper, ad.ImpressionsLower, ad.ImpressionsUpper,
			ad.AdSnapshotURL, ad.Theme, ad.IsActive, ad.RunDays,
			ad.IsTopPerformer, ad.IsSample,
		).
		Suffix(`
			ON CONFLICT (id) DO UPDATE SET
				brand_key = EXCLUDED.brand_key,
				competitor_name = EXCLUDED.competitor_name,
				page_name = EXCLUDED.page_name,
				page_id = EXCLUDED.page_id,
				ad_title = EXCLUDED.ad_title,
				ad_body = EXCLUDED.ad_body,
				ad_description = EXCLUDED.ad_description,
				media_type = EXCLUDED.media_type,
				publisher_platforms = EXCLUDED.publisher_platforms,
				languages = EXCLUDED.languages,
				ad_creation_time = EXCLUDED.ad_creation_time,
				ad_delivery_start_time = EXCLUDED.ad_delivery_start_time,
				ad_delivery_stop_time = EXCLUDED.ad_delivery_stop_time,
				spend_lower = EXCLUDED.spend_lower,
				spend_upper = EXCLUDED.spend_upper,
				impressions_lower = EXCLUDED.impressions_lower,
				impressions_upper = EXCLUDED.impressions_upper,
				ad_snapshot_url = EXCLUDED.ad_snapshot_url,
				theme = EXCLUDED.theme,
				is_active = EXCLUDED.is_active,
				run_days = EXCLUDED.run_days,
				is_top_performer = EXCLUDED.is_top_performer,
				is_sample = EXCLUDED.is_sample,
				updated_at = NOW()
		`).
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	_, err = r.conn.Exec(sqlQuery, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("database error: %w (code: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("failed to execute query: %w", err)
	}

	return nil
}

// listQuery builds the filtered select. Results are ordered newest first with
// id as a deterministic tiebreak so pagination never overlaps.
func (r *adRepository) listQuery(filter domain.AdFilter) (string, []interface{}, error) {
	builder := squirrel.
		Select(adColumns...).
		From(adsTable).
		OrderBy("ca.ad_delivery_start_time DESC NULLS LAST", "ca.id ASC").
		PlaceholderFormat(squirrel.Dollar)

	builder = applyFilter(builder, filter)

	if filter.Limit > 0 {
		builder = builder.Limit(uint64(filter.Limit))
	}
	if filter.Offset > 0 {
		builder = builder.Offset(uint64(filter.Offset))
	}

	return builder.ToSql()
}

func applyFilter(builder squirrel.SelectBuilder, filter domain.AdFilter) squirrel.SelectBuilder {
	if filter.BrandKey != "" {
		builder = builder.Where(squirrel.Eq{"ca.brand_key": filter.BrandKey})
	}
	if filter.CompetitorName != "" {
		builder = builder.Where(squirrel.Eq{"ca.competitor_name": filter.CompetitorName})
	}
	if filter.MediaType != "" {
		builder = builder.Where(squirrel.Eq{"ca.media_type": filter.MediaType})
	}
	if filter.Theme != "" {
		builder = builder.Where(squirrel.Eq{"ca.theme": filter.Theme})
	}
	if filter.IsActive != nil {
		builder = builder.Where(squirrel.Eq{"ca.is_active": *filter.IsActive})
	}
	if filter.DaysBack > 0 {
		cutoff := time.Now().UTC().AddDate(0, 0, -filter.DaysBack)
		builder = builder.Where(squirrel.GtOrEq{"ca.ad_delivery_start_time": cutoff})
	}
	return builder
}

func (r *adRepository) List(filter domain.AdFilter) ([]*domain.Ad, error) {
	sqlQuery, args, err := r.listQuery(filter)
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	return r.queryAds(sqlQuery, args)
}

// Count mirrors List's filter but ignores pagination.
func (r *adRepository) Count(filter domain.AdFilter) (int, error) {
	builder := squirrel.
		Select("COUNT(*)").
		From(adsTable).
		PlaceholderFormat(squirrel.Dollar)

	builder = applyFilter(builder, filter)

	sqlQuery, args, err := builder.ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build query: %w", err)
	}

	var count int
	if err := r.conn.QueryRow(sqlQuery, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count ads: %w", err)
	}

	return count, nil
}

func (r *adRepository) TopPerformers(brandKey string, limit int) ([]*domain.Ad, error) {
	builder := squirrel.
		Select(adColumns...).
		From(adsTable).
		Where(squirrel.Eq{"ca.is_top_performer": true}).
		OrderBy("ca.run_days DESC", "ca.id ASC").
		Limit(uint64(limit)).
		PlaceholderFormat(squirrel.Dollar)

	if brandKey != "" {
		builder = builder.Where(squirrel.Eq{"ca.brand_key": brandKey})
	}

	sqlQuery, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	return r.queryAds(sqlQuery, args)
}

// LongestRunning backs the top-performer fallback when nothing has crossed
// the 30-day bar yet.
func (r *adRepository) LongestRunning(brandKey string, limit int) ([]*domain.Ad, error) {
	builder := squirrel.
		Select(adColumns...).
		From(adsTable).
		OrderBy("ca.run_days DESC", "ca.id ASC").
		Limit(uint64(limit)).
		PlaceholderFormat(squirrel.Dollar)

	if brandKey != "" {
		builder = builder.Where(squirrel.Eq{"ca.brand_key": brandKey})
	}

	sqlQuery, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	return r.queryAds(sqlQuery, args)
}

func (r *adRepository) CountTopPerformers(brandKey string) (int, error) {
	builder := squirrel.
		Select("COUNT(*)").
		From(adsTable).
		Where(squirrel.Eq{"ca.is_top_performer": true}).
		PlaceholderFormat(squirrel.Dollar)

	if brandKey != "" {
		builder = builder.Where(squirrel.Eq{"ca.brand_key": brandKey})
	}

	sqlQuery, args, err := builder.ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build query: %w", err)
	}

	var count int
	if err := r.conn.QueryRow(sqlQuery, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count top performers: %w", err)
	}

	return count, nil
}

func (r *adRepository) MediaTypeBreakdown(brandKey string) (map[string]int, error) {
	return r.breakdown("ca.media_type", brandKey, false)
}

// ThemeBreakdown only counts classified ads; NULL themes are excluded.
func (r *adRepository) ThemeBreakdown(brandKey string) (map[string]int, error) {
	return r.breakdown("ca.theme", brandKey, true)
}

func (r *adRepository) CompetitorBreakdown(brandKey string) (map[string]int, error) {
	return r.breakdown("ca.competitor_name", brandKey, false)
}

func (r *adRepository) breakdown(column string, brandKey string, skipNull bool) (map[string]int, error) {
	builder := squirrel.
		Select(column, "COUNT(*)").
		From(adsTable).
		GroupBy(column).
		PlaceholderFormat(squirrel.Dollar)

	if brandKey != "" {
		builder = builder.Where(squirrel.Eq{"ca.brand_key": brandKey})
	}
	if skipNull {
		builder = builder.Where(squirrel.NotEq{column: nil})
	}

	sqlQuery, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := r.conn.Query(sqlQuery, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to execute query: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var key string
		var count int
		if err := rows.Scan(&key, &count); err != nil {
			return nil, fmt.Errorf("failed to scan breakdown row: %w", err)
		}
		counts[key] = count
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return counts, nil
}

// SampleCopies returns the most recent non-empty title/body pairs for a
// brand, used as evidence in generation prompts.
func (r *adRepository) SampleCopies(brandKey string, limit int) ([]domain.AdCopy, error) {
	builder := squirrel.
		Select("COALESCE(ca.ad_title, '')", "COALESCE(ca.ad_body, '')").
		From(adsTable).
		Where(squirrel.Or{
			squirrel.NotEq{"ca.ad_title": nil},
			squirrel.NotEq{"ca.ad_body": nil},
		}).
		OrderBy("ca.ad_delivery_start_time DESC NULLS LAST", "ca.id ASC").
		Limit(uint64(limit)).
		PlaceholderFormat(squirrel.Dollar)

	if brandKey != "" {
		builder = builder.Where(squirrel.Eq{"ca.brand_key": brandKey})
	}

	sqlQuery, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := r.conn.Query(sqlQuery, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to execute query: %w", err)
	}
	defer rows.Close()

	copies := make([]domain.AdCopy, 0, limit)
	for rows.Next() {
		var c domain.AdCopy
		if err := rows.Scan(&c.Title, &c.Body); err != nil {
			return nil, fmt.Errorf("failed to scan ad copy: %w", err)
		}
		copies = append(copies, c)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return copies, nil
}

func (r *adRepository) DeleteAll() (int64, error) {
	sqlQuery, args, err := squirrel.
		Delete("competitor_ads").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build query: %w", err)
	}

	result, err := r.conn.Exec(sqlQuery, args...)
	if err != nil {
		return 0, fmt.Errorf("failed to execute query: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to read affected rows: %w", err)
	}

	return rowsAffected, nil
}

func (r *adRepository) queryAds(sqlQuery string, args []interface{}) ([]*domain.Ad, error) {
	rows, err := r.conn.Query(sqlQuery, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return []*domain.Ad{}, nil
		}
		return nil, fmt.Errorf("failed to execute query: %w", err)
	}
	defer rows.Close()

	ads := make([]*domain.Ad, 0)
	for rows.Next() {
		ad, err := scanAd(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan ad: %w", err)
		}
		ads = append(ads, ad)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return ads, nil
}

func scanAd(rows *sql.Rows) (*domain.Ad, error) {
	ad := &domain.Ad{}
	var mediaType string
	var platforms, languages pq.StringArray

	err := rows.Scan(
		&ad.ID,
		&ad.BrandKey,
		&ad.CompetitorName,
		&ad.PageName,
		&ad.PageID,
		&ad.AdTitle,
		&ad.AdBody,
		&ad.AdDescription,
		&mediaType,
		&platforms,
		&languages,
		&ad.AdCreationTime,
		&ad.AdDeliveryStartTime,
		&ad.AdDeliveryStopTime,
		&ad.SpendLower,
		&ad.SpendUpper,
		&ad.ImpressionsLower,
		&ad.ImpressionsUpper,
		&ad.AdSnapshotURL,
		&ad.Theme,
		&ad.IsActive,
		&ad.RunDays,
		&ad.IsTopPerformer,
		&ad.IsSample,
		&ad.CreatedAt,
		&ad.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	ad.MediaType = domain.MediaType(mediaType)
	ad.PublisherPlatforms = platforms
	ad.Languages = languages

	return ad, nil
}

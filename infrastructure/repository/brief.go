package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/mosaicwellness/ad-warroom-api/infrastructure/database/postgres"
	"github.com/mosaicwellness/ad-warroom-api/internal/domain"
)

const (
	briefsTable = "weekly_briefs wb"
)

type WeeklyBriefRepository interface {
	SaveOrUpdate(brief *domain.WeeklyBrief) error
	GetLatest(brandKey string) (*domain.WeeklyBrief, error)
}

type weeklyBriefRepository struct {
	conn postgres.Queryer
}

func NewWeeklyBriefRepository(conn *postgres.Connection) WeeklyBriefRepository {
	return &weeklyBriefRepository{
		conn: conn,
	}
}

// SaveOrUpdate keeps exactly one latest brief per brand: regeneration
// overwrites the previous record.
func (r *weeklyBriefRepository) SaveOrUpdate(brief *domain.WeeklyBrief) error {
	insightsJSON, err := json.Marshal(brief.Insights)
	if err != nil {
		return fmt.Errorf("failed to serialize insights to JSON: %w", err)
	}

	query := squirrel.StatementBuilder.
		Insert("weekly_briefs").
		Columns("brand_key", "week_start", "week_end", "brief_text", "insights_json", "ad_count", "generated_at").
		Values(
			brief.BrandKey,
			brief.WeekStart,
			brief.WeekEnd,
			brief.BriefText,
			insightsJSON,
			brief.AdCount,
			brief.GeneratedAt,
		).
		Suffix(`
			ON CONFLICT (brand_key) DO UPDATE SET
				week_start = EXCLUDED.week_start,
				week_end = EXCLUDED.week_end,
				brief_text = EXCLUDED.brief_text,
				insights_json = EXCLUDED.insights_json,
				ad_count = EXCLUDED.ad_count,
				generated_at = EXCLUDED.generated_at
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

// GetLatest returns nil when no brief has been generated yet.
func (r *weeklyBriefRepository) GetLatest(brandKey string) (*domain.WeeklyBrief, error) {
	query, args, err := squirrel.
		Select("wb.id, wb.brand_key, wb.week_start, wb.week_end, wb.brief_text, wb.insights_json, wb.ad_count, wb.generated_at").
		From(briefsTable).
		Where(squirrel.Eq{"wb.brand_key": brandKey}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	brief := &domain.WeeklyBrief{}
	var insightsJSON []byte

	err = r.conn.QueryRow(query, args...).Scan(
		&brief.ID,
		&brief.BrandKey,
		&brief.WeekStart,
		&brief.WeekEnd,
		&brief.BriefText,
		&insightsJSON,
		&brief.AdCount,
		&brief.GeneratedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to scan weekly brief: %w", err)
	}

	if len(insightsJSON) > 0 {
		if err := json.Unmarshal(insightsJSON, &brief.Insights); err != nil {
			return nil, fmt.Errorf("failed to deserialize insights JSON: %w", err)
		}
	}

	return brief, nil
}

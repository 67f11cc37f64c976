package repositories

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"fibertrack/internal/dto"
	"fibertrack/internal/entities"
)

type BadgeRepositoryInterface interface {
	ListByTeamMember(ctx context.Context, teamMemberID int64) ([]entities.TeamMemberBadge, error)
	Award(ctx context.Context, teamMemberID int64, data dto.AwardBadgeDTO) (*entities.TeamMemberBadge, error)
}

type BadgeRepository struct {
	storage *pgxpool.Pool
}

func NewBadgeRepository(storage *pgxpool.Pool) BadgeRepositoryInterface {
	return &BadgeRepository{storage: storage}
}

func (r *BadgeRepository) ListByTeamMember(ctx context.Context, teamMemberID int64) ([]entities.TeamMemberBadge, error) {
	query, args, err := sq.Select("id", "team_member_id", "badge_type", "project_id", "reason", "awarded_at").
		From("team_member_badges").
		Where(sq.Eq{"team_member_id": teamMemberID}).
		OrderBy("awarded_at DESC", "id DESC").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := queryEngine(ctx, r.storage).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying badges: %w", err)
	}
	defer rows.Close()

	badges := make([]entities.TeamMemberBadge, 0)
	for rows.Next() {
		var b entities.TeamMemberBadge
		if err := rows.Scan(&b.ID, &b.TeamMemberID, &b.BadgeType, &b.ProjectID, &b.Reason, &b.AwardedAt); err != nil {
			return nil, fmt.Errorf("scanning badge: %w", err)
		}
		badges = append(badges, b)
	}
	return badges, rows.Err()
}

func (r *BadgeRepository) Award(ctx context.Context, teamMemberID int64, data dto.AwardBadgeDTO) (*entities.TeamMemberBadge, error) {
	query, args, err := sq.Insert("team_member_badges").
		Columns("team_member_id", "badge_type", "project_id", "reason").
		Values(teamMemberID, data.BadgeType, data.ProjectID, data.Reason).
		Suffix("RETURNING id, team_member_id, badge_type, project_id, reason, awarded_at").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	var b entities.TeamMemberBadge
	err = queryEngine(ctx, r.storage).QueryRow(ctx, query, args...).
		Scan(&b.ID, &b.TeamMemberID, &b.BadgeType, &b.ProjectID, &b.Reason, &b.AwardedAt)
	if err != nil {
		return nil, fmt.Errorf("awarding badge: %w", err)
	}
	return &b, nil
}

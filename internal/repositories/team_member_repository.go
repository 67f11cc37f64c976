package repositories

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"fibertrack/internal/dto"
	"fibertrack/internal/entities"
	apperrors "fibertrack/pkg/errors"
)

type TeamMemberRepositoryInterface interface {
	GetAll(ctx context.Context) ([]entities.TeamMember, error)
	FindByID(ctx context.Context, id int64) (*entities.TeamMember, error)
	FindByRoles(ctx context.Context, roles []string) ([]entities.TeamMember, error)
	Create(ctx context.Context, data dto.CreateTeamMemberDTO) (*entities.TeamMember, error)
}

type TeamMemberRepository struct {
	storage *pgxpool.Pool
}

func NewTeamMemberRepository(storage *pgxpool.Pool) TeamMemberRepositoryInterface {
	return &TeamMemberRepository{storage: storage}
}

func selectTeamMembers() sq.SelectBuilder {
	return sq.Select("id", "name", "role", "email", "phone").
		From("team_members").
		OrderBy("id ASC").
		PlaceholderFormat(sq.Dollar)
}

func (r *TeamMemberRepository) queryMembers(ctx context.Context, b sq.SelectBuilder) ([]entities.TeamMember, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := queryEngine(ctx, r.storage).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying team members: %w", err)
	}
	defer rows.Close()

	members := make([]entities.TeamMember, 0)
	for rows.Next() {
		var m entities.TeamMember
		if err := rows.Scan(&m.ID, &m.Name, &m.Role, &m.Email, &m.Phone); err != nil {
			return nil, fmt.Errorf("scanning team member: %w", err)
		}
		members = append(members, m)
	}
	return members, rows.Err()
}

func (r *TeamMemberRepository) GetAll(ctx context.Context) ([]entities.TeamMember, error) {
	return r.queryMembers(ctx, selectTeamMembers())
}

func (r *TeamMemberRepository) FindByID(ctx context.Context, id int64) (*entities.TeamMember, error) {
	query, args, err := selectTeamMembers().Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, err
	}

	var m entities.TeamMember
	err = queryEngine(ctx, r.storage).QueryRow(ctx, query, args...).
		Scan(&m.ID, &m.Name, &m.Role, &m.Email, &m.Phone)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("finding team member %d: %w", id, err)
	}
	return &m, nil
}

func (r *TeamMemberRepository) FindByRoles(ctx context.Context, roles []string) ([]entities.TeamMember, error) {
	return r.queryMembers(ctx, selectTeamMembers().Where(sq.Eq{"role": roles}))
}

func (r *TeamMemberRepository) Create(ctx context.Context, data dto.CreateTeamMemberDTO) (*entities.TeamMember, error) {
	query, args, err := sq.Insert("team_members").
		Columns("name", "role", "email", "phone").
		Values(data.Name, data.Role, data.Email, data.Phone).
		Suffix("RETURNING id, name, role, email, phone").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	var m entities.TeamMember
	err = queryEngine(ctx, r.storage).QueryRow(ctx, query, args...).
		Scan(&m.ID, &m.Name, &m.Role, &m.Email, &m.Phone)
	if err != nil {
		return nil, fmt.Errorf("creating team member: %w", err)
	}
	return &m, nil
}

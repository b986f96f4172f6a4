package repository

import (
	"context"
	"time"

	"github.com/sysu-ecnc-dev/roster-portal/backend/internal/domain"
)

func (r *Repository) CreateGroup(group *domain.Group) error {
	query := `
		INSERT INTO groups (name)
		VALUES ($1)
		RETURNING id, created_at, version
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	if err := r.dbpool.QueryRowContext(ctx, query, group.Name).Scan(&group.ID, &group.CreatedAt, &group.Version); err != nil {
		return err
	}

	return nil
}

func (r *Repository) GetAllGroups() ([]*domain.Group, error) {
	query := `
		SELECT id, name, created_at, version
		FROM groups
		ORDER BY id
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	groups := []*domain.Group{}
	for rows.Next() {
		var group domain.Group
		if err := rows.Scan(&group.ID, &group.Name, &group.CreatedAt, &group.Version); err != nil {
			return nil, err
		}
		groups = append(groups, &group)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return groups, nil
}

func (r *Repository) GetGroupByID(id int64) (*domain.Group, error) {
	query := `
		SELECT name, created_at, version
		FROM groups
		WHERE id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	group := &domain.Group{
		ID: id,
	}

	if err := r.dbpool.QueryRowContext(ctx, query, id).Scan(&group.Name, &group.CreatedAt, &group.Version); err != nil {
		return nil, err
	}

	return group, nil
}

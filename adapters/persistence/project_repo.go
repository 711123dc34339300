package persistence

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/muftipurwa/portfolio-api/internal/domain/project"
	"github.com/muftipurwa/portfolio-api/pkg/apperror"
	"github.com/muftipurwa/portfolio-api/pkg/logger"
)

type postgresProjectRepo struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

func NewPostgresProjectRepo(db *pgxpool.Pool, logger logger.Logger) project.Repository {
	return &postgresProjectRepo{db: db, logger: logger}
}

var psqlProject = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const projectColumns = "id, title, description, image_url, github_url, demo_url, technologies, created_at, updated_at"

func scanProject(row pgx.Row, l logger.Logger) (*project.Project, error) {
	p := &project.Project{}
	var techBytes []byte

	err := row.Scan(
		&p.ID,
		&p.Title,
		&p.Description,
		&p.ImageURL,
		&p.GithubURL,
		&p.DemoURL,
		&techBytes,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFound("project", "")
		}
		return nil, apperror.NewInternal("failed to scan project row", err)
	}

	// A null or malformed technologies column degrades to an empty list,
	// never to an error or a nil slice.
	if err := json.Unmarshal(techBytes, &p.Technologies); err != nil || p.Technologies == nil {
		if err != nil {
			l.Warn("Failed to unmarshal project technologies", zap.Int64("project_id", p.ID), zap.Error(err))
		}
		p.Technologies = []string{}
	}

	return p, nil
}

func scanProjects(rows pgx.Rows, l logger.Logger) ([]*project.Project, error) {
	defer rows.Close()
	projects := make([]*project.Project, 0)

	for rows.Next() {
		p, err := scanProject(rows, l)
		if err != nil {
			return nil, err
		}
		projects = append(projects, p)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewInternal("error iterating project rows", err)
	}
	return projects, nil
}

func (r *postgresProjectRepo) Save(ctx context.Context, p *project.Project) error {
	if p.Technologies == nil {
		p.Technologies = []string{}
	}
	techBytes, err := json.Marshal(p.Technologies)
	if err != nil {
		return apperror.NewInternal("failed to marshal project technologies", err)
	}

	query := `
		INSERT INTO projects (title, description, image_url, github_url, demo_url, technologies, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at, updated_at
	`
	err = r.db.QueryRow(ctx, query,
		p.Title, p.Description, p.ImageURL, p.GithubURL, p.DemoURL,
		techBytes, p.CreatedAt, p.UpdatedAt,
	).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return apperror.NewInternal("failed to save project", err)
	}
	return nil
}

func (r *postgresProjectRepo) UpdateFields(ctx context.Context, id int64, changes project.Changes) (*project.Project, error) {
	setMap := sq.Eq{"updated_at": sq.Expr("NOW()")}
	if v, ok := changes.Title.Get(); ok {
		setMap["title"] = v
	}
	if v, ok := changes.Description.Get(); ok {
		setMap["description"] = v
	}
	if changes.ImageURL.IsSet() {
		setMap["image_url"] = changes.ImageURL.Ptr()
	}
	if changes.GithubURL.IsSet() {
		setMap["github_url"] = changes.GithubURL.Ptr()
	}
	if changes.DemoURL.IsSet() {
		setMap["demo_url"] = changes.DemoURL.Ptr()
	}
	if v, ok := changes.Technologies.Get(); ok {
		techBytes, err := json.Marshal(v)
		if err != nil {
			return nil, apperror.NewInternal("failed to marshal project technologies", err)
		}
		setMap["technologies"] = techBytes
	}

	sql, args, err := psqlProject.Update("projects").
		SetMap(setMap).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + projectColumns).
		ToSql()
	if err != nil {
		return nil, apperror.NewInternal("failed to build update project query", err)
	}

	p, err := scanProject(r.db.QueryRow(ctx, sql, args...), r.logger)
	if err != nil {
		if errors.Is(err, apperror.ErrNotFound) {
			return nil, apperror.NewNotFound("project", strconv.FormatInt(id, 10))
		}
		return nil, err
	}
	return p, nil
}

func (r *postgresProjectRepo) FindByID(ctx context.Context, id int64) (*project.Project, error) {
	query := `
		SELECT ` + projectColumns + `
		FROM projects
		WHERE id = $1
	`
	p, err := scanProject(r.db.QueryRow(ctx, query, id), r.logger)
	if err != nil {
		if errors.Is(err, apperror.ErrNotFound) {
			return nil, apperror.NewNotFound("project", strconv.FormatInt(id, 10))
		}
		return nil, err
	}
	return p, nil
}

func (r *postgresProjectRepo) Delete(ctx context.Context, id int64) (bool, error) {
	query := `DELETE FROM projects WHERE id = $1`
	cmdTag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return false, apperror.NewInternal("failed to delete project", err)
	}
	return cmdTag.RowsAffected() > 0, nil
}

func (r *postgresProjectRepo) List(ctx context.Context) ([]*project.Project, error) {
	sql, args, err := psqlProject.Select(projectColumns).
		From("projects").
		OrderBy("created_at DESC", "id ASC").
		ToSql()
	if err != nil {
		return nil, apperror.NewInternal("failed to build list projects query", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, apperror.NewInternal("failed to query projects", err)
	}
	return scanProjects(rows, r.logger)
}

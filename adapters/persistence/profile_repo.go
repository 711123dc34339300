package persistence

import (
	"context"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/muftipurwa/portfolio-api/internal/domain/profile"
	"github.com/muftipurwa/portfolio-api/pkg/apperror"
	"github.com/muftipurwa/portfolio-api/pkg/logger"
)

type postgresProfileRepo struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

func NewPostgresProfileRepo(db *pgxpool.Pool, logger logger.Logger) profile.Repository {
	return &postgresProfileRepo{db: db, logger: logger}
}

var psqlProfile = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const profileColumns = "id, name, greeting, email, linkedin_url, whatsapp_number, about_description, created_at, updated_at"

func scanProfile(row pgx.Row) (*profile.Profile, error) {
	p := &profile.Profile{}
	err := row.Scan(
		&p.ID,
		&p.Name,
		&p.Greeting,
		&p.Email,
		&p.LinkedinURL,
		&p.WhatsappNumber,
		&p.AboutDescription,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *postgresProfileRepo) Get(ctx context.Context) (*profile.Profile, error) {
	query := `
		SELECT ` + profileColumns + `
		FROM profile
		LIMIT 1
	`
	p, err := scanProfile(r.db.QueryRow(ctx, query))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, apperror.NewInternal("failed to query profile", err)
	}
	return p, nil
}

// Upsert holds the singleton invariant in the store: the existing row is
// locked for the duration of the transaction, and the slot uniqueness
// constraint catches two bootstraps racing on an empty table. The loser of
// that race retries once and lands on the update branch.
func (r *postgresProfileRepo) Upsert(ctx context.Context, changes profile.Changes, bootstrap *profile.Profile) (*profile.Profile, error) {
	for attempt := 0; ; attempt++ {
		p, err := r.upsertOnce(ctx, changes, bootstrap)
		if err == nil {
			return p, nil
		}
		var pgErr *pgconn.PgError
		if attempt == 0 && errors.As(err, &pgErr) && pgErr.Code == "23505" {
			continue
		}
		return nil, apperror.NewInternal("failed to upsert profile", err)
	}
}

func (r *postgresProfileRepo) upsertOnce(ctx context.Context, changes profile.Changes, bootstrap *profile.Profile) (*profile.Profile, error) {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	var existingID int64
	err = tx.QueryRow(ctx, `SELECT id FROM profile LIMIT 1 FOR UPDATE`).Scan(&existingID)

	var p *profile.Profile
	switch {
	case err == nil:
		p, err = r.updateInTx(ctx, tx, existingID, changes)
	case errors.Is(err, pgx.ErrNoRows):
		p, err = r.insertInTx(ctx, tx, bootstrap)
	default:
		return nil, err
	}
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return p, nil
}

func (r *postgresProfileRepo) updateInTx(ctx context.Context, tx pgx.Tx, id int64, changes profile.Changes) (*profile.Profile, error) {
	setMap := sq.Eq{"updated_at": sq.Expr("NOW()")}
	if v, ok := changes.Name.Get(); ok {
		setMap["name"] = v
	}
	if v, ok := changes.Greeting.Get(); ok {
		setMap["greeting"] = v
	}
	if v, ok := changes.Email.Get(); ok {
		setMap["email"] = v
	}
	if changes.LinkedinURL.IsSet() {
		setMap["linkedin_url"] = changes.LinkedinURL.Ptr()
	}
	if changes.WhatsappNumber.IsSet() {
		setMap["whatsapp_number"] = changes.WhatsappNumber.Ptr()
	}
	if v, ok := changes.AboutDescription.Get(); ok {
		setMap["about_description"] = v
	}

	sql, args, err := psqlProfile.Update("profile").
		SetMap(setMap).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + profileColumns).
		ToSql()
	if err != nil {
		return nil, err
	}
	return scanProfile(tx.QueryRow(ctx, sql, args...))
}

func (r *postgresProfileRepo) insertInTx(ctx context.Context, tx pgx.Tx, bootstrap *profile.Profile) (*profile.Profile, error) {
	query := `
		INSERT INTO profile (name, greeting, email, linkedin_url, whatsapp_number, about_description, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + profileColumns + `
	`
	return scanProfile(tx.QueryRow(ctx, query,
		bootstrap.Name, bootstrap.Greeting, bootstrap.Email,
		bootstrap.LinkedinURL, bootstrap.WhatsappNumber, bootstrap.AboutDescription,
		bootstrap.CreatedAt, bootstrap.UpdatedAt,
	))
}

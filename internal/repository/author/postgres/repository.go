package author_repository_postgres

import (
	"context"
	"errors"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"inkwell-post-service/internal/custom_errors"
	"inkwell-post-service/internal/logger"
	"inkwell-post-service/internal/model"
)

const uniqueViolationCode = "23505"

type PgDB interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

type AuthorRepository struct {
	log *logger.Logger
	db  PgDB
}

func NewAuthorRepository(db PgDB, log *logger.Logger) *AuthorRepository {
	return &AuthorRepository{db: db, log: log}
}

func (a *AuthorRepository) Create(ctx context.Context, author *model.Author, secret string) (*model.Author, error) {
	args := pgx.NamedArgs{
		"username":     author.Username,
		"display_name": author.DisplayName,
		"secret":       secret,
	}

	query := `
		INSERT INTO authors (username, display_name, secret)
		VALUES (@username, @display_name, @secret)
		RETURNING id, username, display_name`

	var created model.Author
	err := a.db.QueryRow(ctx, query, args).Scan(
		&created.ID,
		&created.Username,
		&created.DisplayName,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			a.log.Debug("Duplicate username on create", slog.String("username", author.Username))
			return nil, custom_errors.ErrUsernameAlreadyExists
		}
		a.log.Error("Error creating author", slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}

	return &created, nil
}

func (a *AuthorRepository) GetByID(ctx context.Context, id int64) (*model.Author, error) {
	args := pgx.NamedArgs{"id": id}
	query := `SELECT id, username, display_name FROM authors WHERE id = @id`

	author := &model.Author{}
	err := a.db.QueryRow(ctx, query, args).Scan(&author.ID, &author.Username, &author.DisplayName)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			a.log.Debug("Author not found by id", slog.Int64("id", id))
			return nil, custom_errors.ErrAuthorNotFound
		}
		a.log.Error("Error getting author by id", slog.Int64("id", id), slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}
	return author, nil
}

func (a *AuthorRepository) GetByUsername(ctx context.Context, username string) (*model.Author, error) {
	args := pgx.NamedArgs{"username": username}
	query := `SELECT id, username, display_name FROM authors WHERE username = @username`

	author := &model.Author{}
	err := a.db.QueryRow(ctx, query, args).Scan(&author.ID, &author.Username, &author.DisplayName)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			a.log.Debug("Author not found by username", slog.String("username", username))
			return nil, custom_errors.ErrAuthorNotFound
		}
		a.log.Error("Error getting author by username", slog.String("username", username), slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}
	return author, nil
}

func (a *AuthorRepository) GetCredentialsByUsername(ctx context.Context, username string) (*model.AuthorCredentials, error) {
	args := pgx.NamedArgs{"username": username}
	query := `SELECT id, username, display_name, secret FROM authors WHERE username = @username`

	creds := &model.AuthorCredentials{}
	err := a.db.QueryRow(ctx, query, args).Scan(&creds.ID, &creds.Username, &creds.DisplayName, &creds.Secret)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			a.log.Debug("Credentials not found by username", slog.String("username", username))
			return nil, custom_errors.ErrAuthorNotFound
		}
		a.log.Error("Error getting credentials by username", slog.String("username", username), slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}
	return creds, nil
}

// GetByUsernameFragment resolves an author-name fragment to a single author by
// case-insensitive substring match. Several matches resolve to the lowest id,
// so resolution is deterministic regardless of store order.
func (a *AuthorRepository) GetByUsernameFragment(ctx context.Context, fragment string) (*model.Author, error) {
	args := pgx.NamedArgs{"fragment": fragment}
	query := `SELECT id, username, display_name FROM authors
				WHERE username ILIKE '%' || @fragment || '%'
				ORDER BY id ASC LIMIT 1`

	author := &model.Author{}
	err := a.db.QueryRow(ctx, query, args).Scan(&author.ID, &author.Username, &author.DisplayName)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			a.log.Debug("No author matched fragment", slog.String("fragment", fragment))
			return nil, custom_errors.ErrAuthorNotFound
		}
		a.log.Error("Error resolving author by fragment", slog.String("fragment", fragment), slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}
	return author, nil
}

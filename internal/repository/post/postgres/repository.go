package post_repository_postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"

	"inkwell-post-service/internal/custom_errors"
	"inkwell-post-service/internal/logger"
	"inkwell-post-service/internal/metrics"
	"inkwell-post-service/internal/model"
)

const uniqueViolationCode = "23505"

type PgDB interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

type PostRepository struct {
	log     *logger.Logger
	db      PgDB
	metrics metrics.MetricsProvider
}

func NewPostRepository(db PgDB, log *logger.Logger, metrics metrics.MetricsProvider) *PostRepository {
	return &PostRepository{db: db, log: log, metrics: metrics}
}

func (p *PostRepository) Create(ctx context.Context, post *model.Post) (*model.Post, error) {
	start := time.Now()
	now := pgtype.Timestamptz{Time: time.Now(), Valid: true}

	args := pgx.NamedArgs{
		"author_id":   post.AuthorID,
		"title":       post.Title,
		"description": post.Description,
		"created_at":  now,
		"updated_at":  now,
	}

	query := `
		INSERT INTO posts (author_id, title, description, created_at, updated_at)
		VALUES (@author_id, @title, @description, @created_at, @updated_at)
		RETURNING id, author_id, title, description, created_at, updated_at`

	var createdPost model.Post
	err := p.db.QueryRow(ctx, query, args).Scan(
		&createdPost.ID,
		&createdPost.AuthorID,
		&createdPost.Title,
		&createdPost.Description,
		&createdPost.CreatedAt,
		&createdPost.UpdatedAt,
	)
	p.metrics.RecordDatabaseQueryDuration("post_create", time.Since(start))

	if err != nil {
		p.metrics.IncrementDatabaseQueries("post_create", false)
		if isUniqueViolation(err) {
			p.log.Debug("Duplicate title on create", slog.String("title", post.Title))
			return nil, custom_errors.ErrTitleAlreadyExists
		}
		p.log.Error("Error creating post", slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}

	p.metrics.IncrementDatabaseQueries("post_create", true)
	return &createdPost, nil
}

func (p *PostRepository) GetByID(ctx context.Context, id int64) (*model.Post, error) {
	args := pgx.NamedArgs{"id": id}
	query := `SELECT id, author_id, title, description, created_at, updated_at
				FROM posts WHERE id = @id`
	row := p.db.QueryRow(ctx, query, args)
	post := &model.Post{}
	err := row.Scan(
		&post.ID,
		&post.AuthorID,
		&post.Title,
		&post.Description,
		&post.CreatedAt,
		&post.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			p.log.Debug("Post not found by id", slog.Int64("id", id), slog.String("error", err.Error()))
			return nil, custom_errors.ErrPostNotFound
		}
		p.log.Error("Error getting post by id", slog.Int64("id", id), slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}
	return post, nil
}

func (p *PostRepository) GetByTitle(ctx context.Context, title string) (*model.Post, error) {
	args := pgx.NamedArgs{"title": title}
	query := `SELECT id, author_id, title, description, created_at, updated_at
				FROM posts WHERE title = @title`
	row := p.db.QueryRow(ctx, query, args)
	post := &model.Post{}
	err := row.Scan(
		&post.ID,
		&post.AuthorID,
		&post.Title,
		&post.Description,
		&post.CreatedAt,
		&post.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			p.log.Debug("Post not found by title", slog.String("title", title))
			return nil, custom_errors.ErrPostNotFound
		}
		p.log.Error("Error getting post by title", slog.String("title", title), slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}
	return post, nil
}

func (p *PostRepository) ExistsByTitle(ctx context.Context, title string) (bool, error) {
	args := pgx.NamedArgs{"title": title}
	query := `SELECT EXISTS(SELECT 1 FROM posts WHERE title = @title)`

	var exists bool
	if err := p.db.QueryRow(ctx, query, args).Scan(&exists); err != nil {
		p.log.Error("Error checking title existence", slog.String("title", title), slog.String("error", err.Error()))
		return false, custom_errors.ErrDatabaseQuery
	}
	return exists, nil
}

// List applies the FilterSpec predicates conjunctively, the ordered sort list
// and the page window, returning the page together with the total number of
// matching rows ignoring the window. Without sort keys no ORDER BY is emitted
// and rows come back in store order.
func (p *PostRepository) List(ctx context.Context, spec model.FilterSpec) ([]*model.Post, int, error) {
	start := time.Now()
	args := pgx.NamedArgs{}
	baseQuery := `SELECT p.id, p.author_id, p.title, p.description, p.created_at, p.updated_at, COUNT(*) OVER() AS total FROM posts p`

	whereClauses := []string{}
	for i, pred := range spec.Predicates {
		param := fmt.Sprintf("substr_%d", i)
		whereClauses = append(whereClauses, fmt.Sprintf("p.%s ILIKE '%%' || @%s || '%%'", pred.Field, param))
		args[param] = pred.Substring
	}
	if spec.AuthorID != nil {
		whereClauses = append(whereClauses, "p.author_id = @author_id")
		args["author_id"] = *spec.AuthorID
	}

	if len(whereClauses) > 0 {
		baseQuery += " WHERE " + strings.Join(whereClauses, " AND ")
	}

	if len(spec.Order) > 0 {
		orderClauses := make([]string, 0, len(spec.Order))
		for _, key := range spec.Order {
			direction := "ASC"
			if key.Desc {
				direction = "DESC"
			}
			orderClauses = append(orderClauses, fmt.Sprintf("p.%s %s", key.Field, direction))
		}
		baseQuery += " ORDER BY " + strings.Join(orderClauses, ", ")
	}

	baseQuery += " LIMIT @limit OFFSET @offset"
	args["limit"] = spec.Limit
	args["offset"] = spec.Offset

	rows, err := p.db.Query(ctx, baseQuery, args)
	if err != nil {
		p.metrics.IncrementDatabaseQueries("post_list", false)
		p.log.Error("Error listing posts", slog.String("error", err.Error()))
		return nil, 0, custom_errors.ErrDatabaseQuery
	}
	defer rows.Close()

	var posts []*model.Post
	var total int
	for rows.Next() {
		var post model.Post
		err := rows.Scan(
			&post.ID,
			&post.AuthorID,
			&post.Title,
			&post.Description,
			&post.CreatedAt,
			&post.UpdatedAt,
			&total,
		)
		if err != nil {
			p.log.Error("Error scanning post during List", slog.String("error", err.Error()))
			return nil, 0, custom_errors.ErrDatabaseScan
		}
		posts = append(posts, &post)
	}

	if err = rows.Err(); err != nil {
		p.log.Error("Error iterating rows during List", slog.String("error", err.Error()))
		return nil, 0, custom_errors.ErrDatabaseQuery
	}

	p.metrics.IncrementDatabaseQueries("post_list", true)
	p.metrics.RecordDatabaseQueryDuration("post_list", time.Since(start))
	return posts, total, nil
}

func (p *PostRepository) ListAll(ctx context.Context) ([]*model.Post, error) {
	query := `SELECT id, author_id, title, description, created_at, updated_at FROM posts ORDER BY id`

	rows, err := p.db.Query(ctx, query)
	if err != nil {
		p.log.Error("Error listing all posts", slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}
	defer rows.Close()

	var posts []*model.Post
	for rows.Next() {
		var post model.Post
		err := rows.Scan(
			&post.ID,
			&post.AuthorID,
			&post.Title,
			&post.Description,
			&post.CreatedAt,
			&post.UpdatedAt,
		)
		if err != nil {
			p.log.Error("Error scanning post during ListAll", slog.String("error", err.Error()))
			return nil, custom_errors.ErrDatabaseScan
		}
		posts = append(posts, &post)
	}

	if err = rows.Err(); err != nil {
		p.log.Error("Error iterating rows during ListAll", slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}

	return posts, nil
}

func (p *PostRepository) Update(ctx context.Context, id int64, update *model.UpdatePostDTO) (*model.Post, error) {
	setClauses := []string{}
	args := pgx.NamedArgs{"id": id}

	if update.Title != nil {
		setClauses = append(setClauses, "title = @title")
		args["title"] = *update.Title
	}
	if update.Description != nil {
		setClauses = append(setClauses, "description = @description")
		args["description"] = *update.Description
	}

	if len(setClauses) == 0 {
		return nil, custom_errors.ErrNoUpdateRows
	}

	setClauses = append(setClauses, "updated_at = @updated_at")
	args["updated_at"] = pgtype.Timestamptz{Time: time.Now(), Valid: true}

	query := "UPDATE posts SET " + strings.Join(setClauses, ", ") + " WHERE id = @id RETURNING id, author_id, title, description, created_at, updated_at"

	var updatedPost model.Post
	err := p.db.QueryRow(ctx, query, args).Scan(
		&updatedPost.ID,
		&updatedPost.AuthorID,
		&updatedPost.Title,
		&updatedPost.Description,
		&updatedPost.CreatedAt,
		&updatedPost.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			p.log.Debug("Post not found by id during Update", slog.Int64("id", id), slog.String("error", err.Error()))
			return nil, custom_errors.ErrPostNotFound
		}
		if isUniqueViolation(err) {
			p.log.Debug("Duplicate title on update", slog.Int64("id", id))
			return nil, custom_errors.ErrTitleAlreadyExists
		}
		p.log.Error("Error updating post", slog.Int64("id", id), slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}

	return &updatedPost, nil
}

func (p *PostRepository) Delete(ctx context.Context, id int64) error {
	args := pgx.NamedArgs{"id": id}
	query := `DELETE FROM posts WHERE id = @id`
	result, err := p.db.Exec(ctx, query, args)
	if err != nil {
		p.log.Error("Error deleting post", slog.Int64("id", id), slog.String("error", err.Error()))
		return custom_errors.ErrDatabaseQuery
	}
	if result.RowsAffected() == 0 {
		return custom_errors.ErrPostNotFound
	}
	return nil
}

// The unique index on posts.title is the real uniqueness guarantee; the
// service-level ExistsByTitle check is only a fast path, so a concurrent
// writer losing the race still surfaces as ErrTitleAlreadyExists.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode
}

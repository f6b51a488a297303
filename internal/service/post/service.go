package post_service

import (
	"context"
	"errors"
	"log/slog"

	"inkwell-post-service/internal/custom_errors"
	"inkwell-post-service/internal/logger"
	"inkwell-post-service/internal/metrics"
	"inkwell-post-service/internal/model"
	author_repository "inkwell-post-service/internal/repository/author"
	post_repository "inkwell-post-service/internal/repository/post"
)

type PostService struct {
	postRepo   post_repository.Repository
	authorRepo author_repository.Repository
	log        *logger.Logger
	metrics    metrics.MetricsProvider
}

func NewPostService(
	postRepo post_repository.Repository,
	authorRepo author_repository.Repository,
	log *logger.Logger,
	metrics metrics.MetricsProvider,
) *PostService {
	return &PostService{
		postRepo:   postRepo,
		authorRepo: authorRepo,
		log:        log,
		metrics:    metrics,
	}
}

func (s *PostService) CreatePost(ctx context.Context, post *model.CreatePostDTO) (*model.PostDetailed, error) {
	author, err := s.authorRepo.GetByID(ctx, post.AuthorID)
	if err != nil {
		if errors.Is(err, custom_errors.ErrAuthorNotFound) {
			s.log.Debug("Author not found for create", slog.Int64("author_id", post.AuthorID))
			return nil, custom_errors.ErrAuthorNotFound
		}
		s.log.Error("Failed to get author for create", slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}

	// Fast-path check only: the unique index on title is what actually
	// guarantees uniqueness under concurrent creates.
	exists, err := s.postRepo.ExistsByTitle(ctx, post.Title)
	if err != nil {
		s.log.Error("Failed to check title existence", slog.String("error", err.Error()))
		s.metrics.IncrementPostOperations("create", false)
		return nil, custom_errors.ErrDatabaseQuery
	}
	if exists {
		s.log.Debug("Title already taken", slog.String("title", post.Title))
		s.metrics.IncrementPostOperations("create", false)
		return nil, custom_errors.ErrTitleAlreadyExists
	}

	created, err := s.postRepo.Create(ctx, &model.Post{
		AuthorID:    post.AuthorID,
		Title:       post.Title,
		Description: post.Description,
	})
	if err != nil {
		s.metrics.IncrementPostOperations("create", false)
		if errors.Is(err, custom_errors.ErrTitleAlreadyExists) {
			s.log.Debug("Title taken by concurrent create", slog.String("title", post.Title))
			return nil, custom_errors.ErrTitleAlreadyExists
		}
		s.log.Error("Failed to create post", slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}

	s.metrics.IncrementPostOperations("create", true)
	return &model.PostDetailed{Post: created, Author: author}, nil
}

func (s *PostService) GetPostByID(ctx context.Context, id int64) (*model.PostDetailed, error) {
	post, err := s.postRepo.GetByID(ctx, id)
	if err != nil {
		switch {
		case errors.Is(err, custom_errors.ErrPostNotFound):
			s.log.Debug("Post not found", slog.Int64("id", id))
			return nil, custom_errors.ErrPostNotFound
		default:
			s.log.Error("Failed to get post by id",
				slog.String("error", err.Error()),
				slog.Int64("id", id))
			return nil, custom_errors.ErrDatabaseQuery
		}
	}

	author, err := s.authorRepo.GetByID(ctx, post.AuthorID)
	if err != nil {
		switch {
		case errors.Is(err, custom_errors.ErrAuthorNotFound):
			s.log.Debug("Author not found", slog.Int64("author_id", post.AuthorID))
			return nil, custom_errors.ErrAuthorNotFound
		default:
			s.log.Error("Failed to get author",
				slog.String("error", err.Error()),
				slog.Int64("author_id", post.AuthorID))
			return nil, custom_errors.ErrDatabaseQuery
		}
	}

	return &model.PostDetailed{Post: post, Author: author}, nil
}

// ListPosts turns the raw query into a FilterSpec, resolves an author-name
// fragment when present and executes the filtered read. An empty page is a
// NotFound condition, not an empty success.
func (s *PostService) ListPosts(ctx context.Context, query *model.ListPostsQuery) ([]*model.PostDetailed, int, error) {
	spec := model.NewFilterSpec(*query)

	if query.AuthorName != nil && *query.AuthorName != "" {
		author, err := s.authorRepo.GetByUsernameFragment(ctx, *query.AuthorName)
		if err != nil {
			if errors.Is(err, custom_errors.ErrAuthorNotFound) {
				s.log.Debug("Author name fragment matched nothing", slog.String("fragment", *query.AuthorName))
				return nil, 0, custom_errors.ErrAuthorNotFound
			}
			s.log.Error("Failed to resolve author name", slog.String("error", err.Error()))
			return nil, 0, custom_errors.ErrDatabaseQuery
		}
		// Resolution overwrites any raw author id filter.
		spec.AuthorID = &author.ID
	}

	posts, total, err := s.postRepo.List(ctx, spec)
	if err != nil {
		s.log.Error("Failed to list posts", slog.String("error", err.Error()))
		return nil, 0, custom_errors.ErrDatabaseQuery
	}

	if len(posts) == 0 {
		s.log.Debug("No posts matched the listing filters")
		return nil, 0, custom_errors.ErrNoPostsFound
	}

	result, err := s.attachAuthors(ctx, posts)
	if err != nil {
		return nil, 0, err
	}
	return result, total, nil
}

func (s *PostService) GetAllPosts(ctx context.Context) ([]*model.PostDetailed, error) {
	posts, err := s.postRepo.ListAll(ctx)
	if err != nil {
		s.log.Error("Failed to list all posts", slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}

	return s.attachAuthors(ctx, posts)
}

func (s *PostService) UpdatePost(ctx context.Context, principalID int64, id int64, update *model.UpdatePostDTO) (*model.Post, error) {
	state, _, err := s.checkOwnership(ctx, id, principalID)
	if err != nil {
		s.metrics.IncrementPostOperations("update", false)
		return nil, err
	}
	switch state {
	case ownershipAbsent, ownershipNotOwner:
		// An absent post answers Forbidden here, as it always has for update.
		s.metrics.IncrementPostOperations("update", false)
		return nil, custom_errors.ErrForbidden
	}

	if update.Title != nil {
		other, err := s.postRepo.GetByTitle(ctx, *update.Title)
		if err != nil && !errors.Is(err, custom_errors.ErrPostNotFound) {
			s.log.Error("Failed to check candidate title", slog.String("error", err.Error()))
			s.metrics.IncrementPostOperations("update", false)
			return nil, custom_errors.ErrDatabaseQuery
		}
		if err == nil && other.ID != id {
			s.log.Debug("Candidate title owned by another post",
				slog.String("title", *update.Title),
				slog.Int64("owner_id", other.ID))
			s.metrics.IncrementPostOperations("update", false)
			return nil, custom_errors.ErrTitleAlreadyExists
		}
	}

	updated, err := s.postRepo.Update(ctx, id, update)
	if err != nil {
		s.metrics.IncrementPostOperations("update", false)
		switch {
		case errors.Is(err, custom_errors.ErrPostNotFound):
			s.log.Debug("Post not found for update", slog.Int64("id", id))
			return nil, custom_errors.ErrPostNotFound
		case errors.Is(err, custom_errors.ErrTitleAlreadyExists):
			return nil, custom_errors.ErrTitleAlreadyExists
		case errors.Is(err, custom_errors.ErrNoUpdateRows):
			return nil, custom_errors.ErrNoUpdateRows
		default:
			s.log.Error("Failed to update post", slog.String("error", err.Error()), slog.Int64("id", id))
			return nil, custom_errors.ErrDatabaseQuery
		}
	}

	s.metrics.IncrementPostOperations("update", true)
	return updated, nil
}

func (s *PostService) DeletePost(ctx context.Context, principalID int64, id int64) error {
	state, _, err := s.checkOwnership(ctx, id, principalID)
	if err != nil {
		s.metrics.IncrementPostOperations("delete", false)
		return err
	}
	switch state {
	case ownershipAbsent:
		s.log.Debug("Post not found for delete", slog.Int64("id", id))
		s.metrics.IncrementPostOperations("delete", false)
		return custom_errors.ErrPostNotFound
	case ownershipNotOwner:
		s.metrics.IncrementPostOperations("delete", false)
		return custom_errors.ErrForbidden
	}

	if err := s.postRepo.Delete(ctx, id); err != nil {
		s.metrics.IncrementPostOperations("delete", false)
		if errors.Is(err, custom_errors.ErrPostNotFound) {
			return custom_errors.ErrPostNotFound
		}
		s.log.Error("Failed to delete post", slog.String("error", err.Error()), slog.Int64("id", id))
		return custom_errors.ErrDatabaseQuery
	}

	s.metrics.IncrementPostOperations("delete", true)
	return nil
}

// attachAuthors resolves the owning author's public fields once per distinct
// author id and fans them out over the page.
func (s *PostService) attachAuthors(ctx context.Context, posts []*model.Post) ([]*model.PostDetailed, error) {
	authors := make(map[int64]*model.Author)
	for _, post := range posts {
		if _, ok := authors[post.AuthorID]; ok {
			continue
		}
		author, err := s.authorRepo.GetByID(ctx, post.AuthorID)
		if err != nil {
			switch {
			case errors.Is(err, custom_errors.ErrAuthorNotFound):
				s.log.Debug("Author not found", slog.Int64("author_id", post.AuthorID))
				return nil, custom_errors.ErrAuthorNotFound
			default:
				s.log.Error("Failed to get author", slog.String("error", err.Error()), slog.Int64("author_id", post.AuthorID))
				return nil, custom_errors.ErrDatabaseQuery
			}
		}
		authors[post.AuthorID] = author
	}

	result := make([]*model.PostDetailed, 0, len(posts))
	for _, post := range posts {
		result = append(result, &model.PostDetailed{
			Post:   post,
			Author: authors[post.AuthorID],
		})
	}
	return result, nil
}

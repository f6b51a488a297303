package memory

import (
	"context"
	"log/slog"
	"sort"
	"strings"
	"sync"

	"inkwell-post-service/internal/custom_errors"
	"inkwell-post-service/internal/logger"
	"inkwell-post-service/internal/model"
)

type AuthorRepository struct {
	log     *logger.Logger
	mu      sync.RWMutex
	authors map[int64]*model.AuthorCredentials
	nextID  int64
}

func NewAuthorRepository(log *logger.Logger) *AuthorRepository {
	return &AuthorRepository{
		log:     log,
		authors: make(map[int64]*model.AuthorCredentials),
		nextID:  1,
	}
}

func (a *AuthorRepository) Create(ctx context.Context, author *model.Author, secret string) (*model.Author, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	for _, existing := range a.authors {
		if existing.Username == author.Username {
			return nil, custom_errors.ErrUsernameAlreadyExists
		}
	}

	created := &model.AuthorCredentials{
		Author: model.Author{
			ID:          a.nextID,
			Username:    author.Username,
			DisplayName: author.DisplayName,
		},
		Secret: secret,
	}
	a.nextID++
	a.authors[created.ID] = created

	result := created.Author
	return &result, nil
}

func (a *AuthorRepository) GetByID(ctx context.Context, id int64) (*model.Author, error) {
	a.mu.RLock()
	defer a.mu.RUnlock()

	creds, exists := a.authors[id]
	if !exists {
		a.log.Debug("Author not found by id", slog.Int64("id", id))
		return nil, custom_errors.ErrAuthorNotFound
	}

	result := creds.Author
	return &result, nil
}

func (a *AuthorRepository) GetByUsername(ctx context.Context, username string) (*model.Author, error) {
	a.mu.RLock()
	defer a.mu.RUnlock()

	for _, creds := range a.authors {
		if creds.Username == username {
			result := creds.Author
			return &result, nil
		}
	}
	return nil, custom_errors.ErrAuthorNotFound
}

func (a *AuthorRepository) GetCredentialsByUsername(ctx context.Context, username string) (*model.AuthorCredentials, error) {
	a.mu.RLock()
	defer a.mu.RUnlock()

	for _, creds := range a.authors {
		if creds.Username == username {
			result := *creds
			return &result, nil
		}
	}
	return nil, custom_errors.ErrAuthorNotFound
}

func (a *AuthorRepository) GetByUsernameFragment(ctx context.Context, fragment string) (*model.Author, error) {
	a.mu.RLock()
	defer a.mu.RUnlock()

	var matches []*model.AuthorCredentials
	for _, creds := range a.authors {
		if strings.Contains(strings.ToLower(creds.Username), strings.ToLower(fragment)) {
			matches = append(matches, creds)
		}
	}
	if len(matches) == 0 {
		a.log.Debug("No author matched fragment", slog.String("fragment", fragment))
		return nil, custom_errors.ErrAuthorNotFound
	}

	// Lowest id wins, matching the postgres implementation.
	sort.Slice(matches, func(i, j int) bool {
		return matches[i].ID < matches[j].ID
	})

	result := matches[0].Author
	return &result, nil
}

package memory

import (
	"context"
	"log/slog"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/jackc/pgx/v5/pgtype"

	"inkwell-post-service/internal/custom_errors"
	"inkwell-post-service/internal/logger"
	"inkwell-post-service/internal/model"
)

// PostRepository is the in-memory double used by repository tests. It mirrors
// the postgres behavior, including the unique index on title: store order is
// id order.
type PostRepository struct {
	log    *logger.Logger
	mu     sync.RWMutex
	posts  map[int64]*model.Post
	nextID int64
}

func NewPostRepository(log *logger.Logger) *PostRepository {
	return &PostRepository{
		log:    log,
		posts:  make(map[int64]*model.Post),
		nextID: 1,
	}
}

func (p *PostRepository) Create(ctx context.Context, post *model.Post) (*model.Post, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	for _, existing := range p.posts {
		if existing.Title == post.Title {
			return nil, custom_errors.ErrTitleAlreadyExists
		}
	}

	now := pgtype.Timestamptz{Time: time.Now(), Valid: true}

	newPost := &model.Post{
		ID:          p.nextID,
		AuthorID:    post.AuthorID,
		Title:       post.Title,
		Description: post.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	p.nextID++

	p.posts[newPost.ID] = newPost

	result := *newPost
	return &result, nil
}

func (p *PostRepository) GetByID(ctx context.Context, id int64) (*model.Post, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	post, exists := p.posts[id]
	if !exists {
		p.log.Debug("Post not found by id", slog.Int64("id", id))
		return nil, custom_errors.ErrPostNotFound
	}

	result := *post
	return &result, nil
}

func (p *PostRepository) GetByTitle(ctx context.Context, title string) (*model.Post, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	for _, post := range p.posts {
		if post.Title == title {
			result := *post
			return &result, nil
		}
	}
	return nil, custom_errors.ErrPostNotFound
}

func (p *PostRepository) ExistsByTitle(ctx context.Context, title string) (bool, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	for _, post := range p.posts {
		if post.Title == title {
			return true, nil
		}
	}
	return false, nil
}

func (p *PostRepository) List(ctx context.Context, spec model.FilterSpec) ([]*model.Post, int, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	var filtered []*model.Post
	for _, post := range p.posts {
		if !matchesPredicates(post, spec.Predicates) {
			continue
		}
		if spec.AuthorID != nil && post.AuthorID != *spec.AuthorID {
			continue
		}
		postCopy := *post
		filtered = append(filtered, &postCopy)
	}

	// Store order is id order; sort keys refine it.
	sort.Slice(filtered, func(i, j int) bool {
		return filtered[i].ID < filtered[j].ID
	})
	applyOrder(filtered, spec.Order)

	total := len(filtered)

	if spec.Offset >= len(filtered) {
		return []*model.Post{}, total, nil
	}
	filtered = filtered[spec.Offset:]

	if spec.Limit < len(filtered) {
		filtered = filtered[:spec.Limit]
	}

	return filtered, total, nil
}

func (p *PostRepository) ListAll(ctx context.Context) ([]*model.Post, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	result := make([]*model.Post, 0, len(p.posts))
	for _, post := range p.posts {
		postCopy := *post
		result = append(result, &postCopy)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result, nil
}

func (p *PostRepository) Update(ctx context.Context, id int64, update *model.UpdatePostDTO) (*model.Post, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	post, exists := p.posts[id]
	if !exists {
		return nil, custom_errors.ErrPostNotFound
	}

	if update.Title == nil && update.Description == nil {
		return nil, custom_errors.ErrNoUpdateRows
	}

	if update.Title != nil {
		for _, other := range p.posts {
			if other.ID != id && other.Title == *update.Title {
				return nil, custom_errors.ErrTitleAlreadyExists
			}
		}
		post.Title = *update.Title
	}
	if update.Description != nil {
		post.Description = *update.Description
	}

	post.UpdatedAt = pgtype.Timestamptz{Time: time.Now(), Valid: true}

	result := *post
	return &result, nil
}

func (p *PostRepository) Delete(ctx context.Context, id int64) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if _, exists := p.posts[id]; !exists {
		return custom_errors.ErrPostNotFound
	}

	delete(p.posts, id)
	return nil
}

func matchesPredicates(post *model.Post, predicates []model.Predicate) bool {
	for _, pred := range predicates {
		var value string
		switch pred.Field {
		case model.FieldTitle:
			value = post.Title
		case model.FieldDescription:
			value = post.Description
		default:
			return false
		}
		if !strings.Contains(strings.ToLower(value), strings.ToLower(pred.Substring)) {
			return false
		}
	}
	return true
}

func applyOrder(posts []*model.Post, order []model.SortKey) {
	if len(order) == 0 {
		return
	}
	sort.SliceStable(posts, func(i, j int) bool {
		for _, key := range order {
			a, b := sortValue(posts[i], key.Field), sortValue(posts[j], key.Field)
			if a.Equal(b) {
				continue
			}
			if key.Desc {
				return a.After(b)
			}
			return a.Before(b)
		}
		return false
	})
}

func sortValue(post *model.Post, field model.Field) time.Time {
	if field == model.FieldUpdatedAt {
		return post.UpdatedAt.Time
	}
	return post.CreatedAt.Time
}

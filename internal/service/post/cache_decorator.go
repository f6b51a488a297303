package post_service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"inkwell-post-service/internal/cache"
	"inkwell-post-service/internal/custom_errors"
	"inkwell-post-service/internal/logger"
	"inkwell-post-service/internal/metrics"
	"inkwell-post-service/internal/model"
)

// PostServiceCacheDecorator keeps the single aggregate "all posts" entry
// coherent with writes. Update and delete invalidate it; create does not, so
// a fresh post may be missing from the aggregate view until the entry expires
// or another mutation lands. Filtered listings never touch the cache.
type PostServiceCacheDecorator struct {
	service   Service
	postCache cache.PostCache
	log       *logger.Logger
	metrics   metrics.MetricsProvider
}

func NewPostServiceCacheDecorator(
	service Service,
	postCache cache.PostCache,
	log *logger.Logger,
	metrics metrics.MetricsProvider,
) Service {
	return &PostServiceCacheDecorator{
		service:   service,
		postCache: postCache,
		log:       log,
		metrics:   metrics,
	}
}

func (d *PostServiceCacheDecorator) CreatePost(ctx context.Context, post *model.CreatePostDTO) (*model.PostDetailed, error) {
	// No invalidation on create: the aggregate entry stays as-is until its
	// TTL expires or an update/delete invalidates it.
	return d.service.CreatePost(ctx, post)
}

func (d *PostServiceCacheDecorator) GetPostByID(ctx context.Context, id int64) (*model.PostDetailed, error) {
	return d.service.GetPostByID(ctx, id)
}

func (d *PostServiceCacheDecorator) ListPosts(ctx context.Context, query *model.ListPostsQuery) ([]*model.PostDetailed, int, error) {
	return d.service.ListPosts(ctx, query)
}

func (d *PostServiceCacheDecorator) GetAllPosts(ctx context.Context) ([]*model.PostDetailed, error) {
	start := time.Now()
	cached, err := d.postCache.GetAllPosts(ctx)
	d.metrics.RecordCacheOperationDuration("all_posts_get", time.Since(start))
	if err == nil {
		d.log.Debug("Serving aggregate post listing from cache", slog.Int("count", len(cached)))
		d.metrics.IncrementCacheHits()
		return cached, nil
	}

	if !errors.Is(err, custom_errors.ErrCacheMiss) {
		d.log.Warn("Failed to read aggregate post cache",
			slog.String("error", err.Error()))
	} else {
		d.metrics.IncrementCacheMisses()
	}

	posts, err := d.service.GetAllPosts(ctx)
	if err != nil {
		return nil, err
	}

	setStart := time.Now()
	if err := d.postCache.SetAllPosts(ctx, posts); err != nil {
		d.log.Warn("Failed to populate aggregate post cache",
			slog.String("error", err.Error()))
	}
	d.metrics.RecordCacheOperationDuration("all_posts_set", time.Since(setStart))

	return posts, nil
}

func (d *PostServiceCacheDecorator) UpdatePost(ctx context.Context, principalID int64, id int64, update *model.UpdatePostDTO) (*model.Post, error) {
	updated, err := d.service.UpdatePost(ctx, principalID, id, update)
	if err != nil {
		return nil, err
	}

	d.invalidateAll(ctx, id)
	return updated, nil
}

func (d *PostServiceCacheDecorator) DeletePost(ctx context.Context, principalID int64, id int64) error {
	if err := d.service.DeletePost(ctx, principalID, id); err != nil {
		return err
	}

	d.invalidateAll(ctx, id)
	return nil
}

func (d *PostServiceCacheDecorator) invalidateAll(ctx context.Context, id int64) {
	start := time.Now()
	if err := d.postCache.DeleteAllPosts(ctx); err != nil {
		d.log.Warn("Failed to invalidate aggregate post cache after mutation",
			slog.Int64("post_id", id),
			slog.String("error", err.Error()))
	}
	d.metrics.RecordCacheOperationDuration("all_posts_delete", time.Since(start))
}

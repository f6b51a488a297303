package redis

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"inkwell-post-service/internal/custom_errors"
	"inkwell-post-service/internal/logger"
	"inkwell-post-service/internal/model"
)

// allPostsCacheKey is the fixed key for the aggregate listing. The cache does
// not vary by filter parameters.
const allPostsCacheKey = "posts:all"

type PostCache struct {
	client *Client
	log    *logger.Logger
	ttl    time.Duration
}

func NewPostCache(client *Client, log *logger.Logger, ttl time.Duration) *PostCache {
	return &PostCache{
		client: client,
		log:    log,
		ttl:    ttl,
	}
}

func (p *PostCache) GetAllPosts(ctx context.Context) ([]*model.PostDetailed, error) {
	var posts []*model.PostDetailed
	err := p.client.Get(ctx, allPostsCacheKey, &posts)
	if err != nil {
		if errors.Is(err, custom_errors.ErrCacheMiss) {
			p.log.Debug("Aggregate post cache miss")
			return nil, custom_errors.ErrCacheMiss
		}
		p.log.Error("Failed to get aggregate post listing from cache",
			slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to get aggregate post listing from cache: %w", err)
	}

	p.log.Debug("Aggregate post cache hit", slog.Int("count", len(posts)))
	return posts, nil
}

func (p *PostCache) SetAllPosts(ctx context.Context, posts []*model.PostDetailed) error {
	if err := p.client.Set(ctx, allPostsCacheKey, posts, p.ttl); err != nil {
		p.log.Error("Failed to set aggregate post cache",
			slog.String("error", err.Error()))
		return fmt.Errorf("failed to set aggregate post cache: %w", err)
	}

	p.log.Debug("Aggregate post listing cached",
		slog.Int("count", len(posts)),
		slog.Duration("ttl", p.ttl))
	return nil
}

func (p *PostCache) DeleteAllPosts(ctx context.Context) error {
	if err := p.client.Delete(ctx, allPostsCacheKey); err != nil {
		p.log.Error("Failed to invalidate aggregate post cache",
			slog.String("error", err.Error()))
		return fmt.Errorf("failed to invalidate aggregate post cache: %w", err)
	}

	p.log.Debug("Aggregate post cache invalidated")
	return nil
}

package post_service

import (
	"context"
	"errors"
	"log/slog"

	"inkwell-post-service/internal/custom_errors"
	"inkwell-post-service/internal/model"
)

type ownershipState int

const (
	ownershipAbsent ownershipState = iota
	ownershipNotOwner
	ownershipOwner
)

// checkOwnership loads the post and compares its author against the
// requesting principal. The caller decides how ownershipAbsent surfaces:
// update keeps the historical Forbidden answer, delete answers NotFound.
func (s *PostService) checkOwnership(ctx context.Context, id int64, principalID int64) (ownershipState, *model.Post, error) {
	post, err := s.postRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, custom_errors.ErrPostNotFound) {
			return ownershipAbsent, nil, nil
		}
		s.log.Error("Failed to load post for ownership check",
			slog.Int64("id", id),
			slog.String("error", err.Error()))
		return ownershipAbsent, nil, custom_errors.ErrDatabaseQuery
	}

	if post.AuthorID != principalID {
		s.log.Debug("Principal is not the author of the post",
			slog.Int64("principal_id", principalID),
			slog.Int64("author_id", post.AuthorID))
		return ownershipNotOwner, post, nil
	}

	return ownershipOwner, post, nil
}

package services

import (
	"context"

	"github.com/akarpovs/sportactive/internal/client/models"
)

// CommentAPI is the slice of the backend client the comment service uses.
type CommentAPI interface {
	CreateComment(ctx context.Context, comment models.NewComment) (*models.Comment, error)
	ActivityComments(ctx context.Context, activityID int64, page, limit int) ([]models.Comment, int, error)
	MyComments(ctx context.Context) ([]models.Comment, error)
	DeleteComment(ctx context.Context, commentID int64) error
	ActivityRatingStats(ctx context.Context, activityID int64) (*models.RatingStats, error)
}

type CommentService struct {
	api CommentAPI
}

func NewCommentService(api CommentAPI) *CommentService {
	return &CommentService{api: api}
}

func (s *CommentService) Create(ctx context.Context, comment models.NewComment) (*models.Comment, error) {
	if err := comment.Validate(); err != nil {
		return nil, err
	}
	return s.api.CreateComment(ctx, comment)
}

func (s *CommentService) ForActivity(ctx context.Context, activityID int64, page, limit int) ([]models.Comment, int, error) {
	return s.api.ActivityComments(ctx, activityID, page, limit)
}

func (s *CommentService) Mine(ctx context.Context) ([]models.Comment, error) {
	return s.api.MyComments(ctx)
}

func (s *CommentService) Delete(ctx context.Context, commentID int64) error {
	return s.api.DeleteComment(ctx, commentID)
}

func (s *CommentService) RatingStats(ctx context.Context, activityID int64) (*models.RatingStats, error) {
	return s.api.ActivityRatingStats(ctx, activityID)
}

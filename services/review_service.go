package services

import (
	"context"

	"brf/constants"
	"brf/errors"
	"brf/models"
	"brf/services/logger"
	"brf/store"
)

type ReviewServiceOptions struct {
	Store  store.Store
	Logger logger.Logger
}

// ReviewService quản lý review theo từng phòng trong record store.
type ReviewService struct {
	store  store.Store
	logger logger.Logger
}

func NewReviewService(opts ReviewServiceOptions) *ReviewService {
	log := opts.Logger
	if log == nil {
		log = logger.Nop{}
	}
	return &ReviewService{store: opts.Store, logger: log}
}

func (s *ReviewService) loadReviews(ctx context.Context) models.ReviewMap {
	reviews := models.ReviewMap{}
	s.store.Read(ctx, constants.StorageReviewsKey, &reviews)
	return reviews
}

// ListForRoom trả về danh sách review của một phòng, rỗng nếu chưa có.
func (s *ReviewService) ListForRoom(ctx context.Context, roomID string) []models.Review {
	rows := s.loadReviews(ctx)[roomID]
	if rows == nil {
		rows = []models.Review{}
	}
	return rows
}

// Edit tìm review theo id trong tất cả các phòng và ghi đè rating/message.
// Id and room association never change through this path.
func (s *ReviewService) Edit(ctx context.Context, reviewID string, rating float64, message string) (models.Review, error) {
	reviews := s.loadReviews(ctx)
	for roomID, rows := range reviews {
		for i := range rows {
			if rows[i].ID == reviewID {
				rows[i].Rating = rating
				rows[i].Message = message
				reviews[roomID] = rows
				s.store.Write(ctx, constants.StorageReviewsKey, reviews)
				return rows[i], nil
			}
		}
	}
	return models.Review{}, errors.ErrReviewNotFound
}

package services

import (
	"context"
	"log"

	"github.com/google/uuid"
	"lessonhub/internal/models/db_models"
	"lessonhub/internal/models/response_models"
	"lessonhub/internal/repositories"
	"lessonhub/pkg/utils"
)

type FavoriteServiceInterface interface {
	ToggleFavorite(ctx context.Context, caller *db_models.Account, lessonID string) (*response_models.ToggleFavoriteResponse, error)
	ListFavorites(ctx context.Context, caller *db_models.Account, category, emotionalTag string) ([]response_models.LessonResponse, error)
}

type FavoriteService struct {
	favoriteRepo repositories.FavoriteRepositoryInterface
	lessonRepo   repositories.LessonRepositoryInterface
	accountRepo  repositories.AccountRepository
}

func NewFavoriteService(
	favoriteRepo repositories.FavoriteRepositoryInterface,
	lessonRepo repositories.LessonRepositoryInterface,
	accountRepo repositories.AccountRepository,
) FavoriteServiceInterface {
	return &FavoriteService{
		favoriteRepo: favoriteRepo,
		lessonRepo:   lessonRepo,
		accountRepo:  accountRepo,
	}
}

// ToggleFavorite flips the relation row, then updates the profile-view array
// cache. The relation row is the source of truth; the array write is
// best-effort and a failure there is logged, not rolled back. Concurrent
// duplicate toggles from the same account can leave the cache briefly stale.
func (s *FavoriteService) ToggleFavorite(ctx context.Context, caller *db_models.Account, lessonID string) (*response_models.ToggleFavoriteResponse, error) {
	id, err := uuid.Parse(lessonID)
	if err != nil {
		return nil, utils.ErrInvalidID
	}

	lesson, err := s.lessonRepo.FindById(ctx, lessonID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if lesson == nil {
		return nil, utils.ErrLessonNotFound
	}

	existing, err := s.favoriteRepo.Find(ctx, caller.Email, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	if existing != nil {
		if err := s.favoriteRepo.Delete(ctx, caller.Email, id); err != nil {
			return nil, utils.ErrDatabaseError
		}
		if err := s.accountRepo.RemoveFavoriteID(ctx, caller.Email, id.String()); err != nil {
			log.Printf("favorite cache remove failed for %s/%s: %v", caller.Email, id, err)
		}
		return &response_models.ToggleFavoriteResponse{Favorited: false}, nil
	}

	if err := s.favoriteRepo.Insert(ctx, &db_models.Favorite{
		AccountEmail: caller.Email,
		LessonID:     id,
	}); err != nil {
		return nil, utils.ErrDatabaseError
	}
	if err := s.accountRepo.AddFavoriteID(ctx, caller.Email, id.String()); err != nil {
		log.Printf("favorite cache add failed for %s/%s: %v", caller.Email, id, err)
	}

	return &response_models.ToggleFavoriteResponse{Favorited: true}, nil
}

// ListFavorites reads the relation rows and joins them to live lessons.
// Lessons deleted after being favorited drop out silently.
func (s *FavoriteService) ListFavorites(ctx context.Context, caller *db_models.Account, category, emotionalTag string) ([]response_models.LessonResponse, error) {
	favorites, err := s.favoriteRepo.ListByAccount(ctx, caller.Email)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if len(favorites) == 0 {
		return []response_models.LessonResponse{}, nil
	}

	ids := make([]string, 0, len(favorites))
	for _, favorite := range favorites {
		ids = append(ids, favorite.LessonID.String())
	}

	lessons, err := s.lessonRepo.FindByIds(ctx, ids)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	byID := make(map[string]*db_models.Lesson, len(lessons))
	for i := range lessons {
		byID[lessons[i].ID.String()] = &lessons[i]
	}

	// Preserve favorite ordering (newest favorite first).
	items := make([]response_models.LessonResponse, 0, len(favorites))
	for _, favorite := range favorites {
		lesson, ok := byID[favorite.LessonID.String()]
		if !ok {
			continue
		}
		if category != "" && lesson.Category != category {
			continue
		}
		if emotionalTag != "" && lesson.EmotionalTag != emotionalTag {
			continue
		}
		items = append(items, response_models.LessonFromModel(lesson, caller.Email))
	}

	return items, nil
}

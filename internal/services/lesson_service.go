package services

import (
	"context"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	"lessonhub/internal/models/db_models"
	"lessonhub/internal/models/request_models"
	"lessonhub/internal/models/response_models"
	"lessonhub/internal/policy"
	"lessonhub/internal/repositories"
	"lessonhub/pkg/utils"
)

type LessonServiceInterface interface {
	CreateLesson(ctx context.Context, caller *db_models.Account, request request_models.CreateLessonRequest) (*response_models.LessonResponse, error)
	GetLessonById(ctx context.Context, caller *db_models.Account, id string) (*response_models.LessonResponse, error)
	ListLessons(ctx context.Context, caller *db_models.Account, query request_models.ListLessonsQuery) (*response_models.LessonListResponse, error)
	UpdateLesson(ctx context.Context, caller *db_models.Account, id string, request request_models.UpdateLessonRequest) (*response_models.LessonResponse, error)
	DeleteLesson(ctx context.Context, caller *db_models.Account, id string) error
	ToggleLike(ctx context.Context, caller *db_models.Account, id string) (*response_models.ToggleLikeResponse, error)
}

type LessonService struct {
	lessonRepo  repositories.LessonRepositoryInterface
	accountRepo repositories.AccountRepository
}

func NewLessonService(lessonRepo repositories.LessonRepositoryInterface, accountRepo repositories.AccountRepository) LessonServiceInterface {
	return &LessonService{
		lessonRepo:  lessonRepo,
		accountRepo: accountRepo,
	}
}

func policyCaller(account *db_models.Account) *policy.Caller {
	if account == nil {
		return nil
	}
	return &policy.Caller{
		Email:     account.Email,
		Role:      account.Role,
		IsPremium: account.IsPremium,
	}
}

func policyResource(lesson *db_models.Lesson) policy.Resource {
	return policy.Resource{
		CreatorEmail: lesson.CreatorEmail,
		Visibility:   lesson.Visibility,
		AccessLevel:  lesson.AccessLevel,
	}
}

func (s *LessonService) CreateLesson(ctx context.Context, caller *db_models.Account, request request_models.CreateLessonRequest) (*response_models.LessonResponse, error) {
	if request.Title == "" || request.Content == "" {
		return nil, utils.ErrMissingField
	}

	visibility := request.Visibility
	if visibility == "" {
		visibility = db_models.VisibilityPublic
	}
	accessLevel := request.AccessLevel
	if accessLevel == "" {
		accessLevel = db_models.AccessFree
	}
	if !db_models.ValidVisibility(visibility) || !db_models.ValidAccessLevel(accessLevel) {
		return nil, utils.ErrMissingField
	}

	if err := policy.CanAssignAccessLevel(accessLevel, *policyCaller(caller)); err != nil {
		return nil, err
	}

	lesson := &db_models.Lesson{
		Title:        request.Title,
		Content:      request.Content,
		Category:     request.Category,
		EmotionalTag: request.EmotionalTag,
		Visibility:   visibility,
		AccessLevel:  accessLevel,
		CreatorEmail: caller.Email,
	}
	if err := s.lessonRepo.Insert(ctx, lesson); err != nil {
		return nil, utils.ErrDatabaseError
	}

	resp := response_models.LessonFromModel(lesson, caller.Email)
	return &resp, nil
}

func (s *LessonService) GetLessonById(ctx context.Context, caller *db_models.Account, id string) (*response_models.LessonResponse, error) {
	lesson, err := s.findLesson(ctx, id)
	if err != nil {
		return nil, err
	}

	// Deny before touching the body so nothing about the content leaks.
	if err := policy.CanView(policyResource(lesson), policyCaller(caller)); err != nil {
		return nil, err
	}

	callerEmail := ""
	if caller != nil {
		callerEmail = caller.Email
	}
	resp := response_models.LessonFromModel(lesson, callerEmail)
	return &resp, nil
}

func (s *LessonService) ListLessons(ctx context.Context, caller *db_models.Account, query request_models.ListLessonsQuery) (*response_models.LessonListResponse, error) {
	page, pageSize, err := NormalizePagination(query.Page, query.PageSize)
	if err != nil {
		return nil, err
	}

	filter := repositories.LessonFilter{
		Category:     query.Category,
		EmotionalTag: query.EmotionalTag,
		Search:       query.Search,
		CreatorEmail: query.CreatorEmail,
		FeaturedOnly: query.FeaturedOnly,
		Visibility:   db_models.VisibilityPublic,
		Sort:         query.Sort,
		Page:         page,
		PageSize:     pageSize,
	}
	if query.Mine && caller != nil {
		filter.CreatorEmail = caller.Email
		filter.Visibility = ""
	}
	if query.AnyVisibility {
		filter.Visibility = ""
	}

	lessons, total, err := s.lessonRepo.List(ctx, filter)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	creators, err := s.hydrateCreators(ctx, lessons)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	callerEmail := ""
	if caller != nil {
		callerEmail = caller.Email
	}

	items := make([]response_models.LessonResponse, 0, len(lessons))
	for i := range lessons {
		item := response_models.LessonFromModel(&lessons[i], callerEmail)
		item.Creator = creators[lessons[i].CreatorEmail]
		items = append(items, item)
	}

	return &response_models.LessonListResponse{
		Lessons:  items,
		Page:     page,
		PageSize: pageSize,
		Total:    total,
	}, nil
}

// hydrateCreators builds the per-page creator summaries. One lookup per
// distinct creator in the page; the lookups are independent reads, so they
// run concurrently.
func (s *LessonService) hydrateCreators(ctx context.Context, lessons []db_models.Lesson) (map[string]*response_models.CreatorSummary, error) {
	distinct := map[string]bool{}
	for i := range lessons {
		distinct[lessons[i].CreatorEmail] = true
	}

	summaries := make(map[string]*response_models.CreatorSummary, len(distinct))
	g, gctx := errgroup.WithContext(ctx)
	for email := range distinct {
		email := email
		summary := &response_models.CreatorSummary{}
		summaries[email] = summary
		g.Go(func() error {
			account, err := s.accountRepo.FindByEmail(gctx, email)
			if err != nil {
				return err
			}
			count, err := s.lessonRepo.CountByCreator(gctx, email)
			if err != nil {
				return err
			}
			if account != nil {
				summary.Name = account.Name
				summary.PhotoURL = account.PhotoURL
			}
			summary.LessonCount = count
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return summaries, nil
}

func (s *LessonService) UpdateLesson(ctx context.Context, caller *db_models.Account, id string, request request_models.UpdateLessonRequest) (*response_models.LessonResponse, error) {
	lesson, err := s.findLesson(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := policy.CanMutate(policyResource(lesson), *policyCaller(caller)); err != nil {
		return nil, err
	}

	// Partial update: only fields present in the request change.
	fields := map[string]interface{}{}
	if request.Title != nil {
		fields["title"] = *request.Title
		lesson.Title = *request.Title
	}
	if request.Content != nil {
		fields["content"] = *request.Content
		lesson.Content = *request.Content
	}
	if request.Category != nil {
		fields["category"] = *request.Category
		lesson.Category = *request.Category
	}
	if request.EmotionalTag != nil {
		fields["emotional_tag"] = *request.EmotionalTag
		lesson.EmotionalTag = *request.EmotionalTag
	}
	if request.Visibility != nil {
		if !db_models.ValidVisibility(*request.Visibility) {
			return nil, utils.ErrMissingField
		}
		fields["visibility"] = *request.Visibility
		lesson.Visibility = *request.Visibility
	}
	if request.AccessLevel != nil {
		if !db_models.ValidAccessLevel(*request.AccessLevel) {
			return nil, utils.ErrMissingField
		}
		if err := policy.CanAssignAccessLevel(*request.AccessLevel, *policyCaller(caller)); err != nil {
			return nil, err
		}
		fields["access_level"] = *request.AccessLevel
		lesson.AccessLevel = *request.AccessLevel
	}
	if request.Featured != nil || request.Reviewed != nil {
		// Moderation flags are admin-only regardless of ownership.
		if caller.Role != db_models.RoleAdmin {
			return nil, utils.ErrNotOwner
		}
		if request.Featured != nil {
			fields["featured"] = *request.Featured
			lesson.Featured = *request.Featured
		}
		if request.Reviewed != nil {
			fields["reviewed"] = *request.Reviewed
			lesson.Reviewed = *request.Reviewed
		}
	}

	if len(fields) > 0 {
		if err := s.lessonRepo.UpdateFields(ctx, id, fields); err != nil {
			return nil, utils.ErrDatabaseError
		}
	}

	resp := response_models.LessonFromModel(lesson, caller.Email)
	return &resp, nil
}

func (s *LessonService) DeleteLesson(ctx context.Context, caller *db_models.Account, id string) error {
	lesson, err := s.findLesson(ctx, id)
	if err != nil {
		return err
	}

	if err := policy.CanMutate(policyResource(lesson), *policyCaller(caller)); err != nil {
		return err
	}

	if err := s.lessonRepo.Delete(ctx, id); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

// ToggleLike flips the caller's membership in the like set. Each branch is a
// single guarded UPDATE mutating the array and counter together, so
// like_count always equals the set cardinality; if another toggle won the
// race, the guard fails and we flip the other way.
func (s *LessonService) ToggleLike(ctx context.Context, caller *db_models.Account, id string) (*response_models.ToggleLikeResponse, error) {
	if _, err := s.findLesson(ctx, id); err != nil {
		return nil, err
	}

	liked := true
	added, err := s.lessonRepo.AddLike(ctx, id, caller.Email)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if !added {
		if _, err := s.lessonRepo.RemoveLike(ctx, id, caller.Email); err != nil {
			return nil, utils.ErrDatabaseError
		}
		liked = false
	}

	lesson, err := s.lessonRepo.FindById(ctx, id)
	if err != nil || lesson == nil {
		return nil, utils.ErrDatabaseError
	}

	return &response_models.ToggleLikeResponse{
		Liked:     liked,
		LikeCount: lesson.LikeCount,
	}, nil
}

func (s *LessonService) findLesson(ctx context.Context, id string) (*db_models.Lesson, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, utils.ErrInvalidID
	}
	lesson, err := s.lessonRepo.FindById(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if lesson == nil {
		return nil, utils.ErrLessonNotFound
	}
	return lesson, nil
}

package services

import (
	"context"

	"github.com/google/uuid"
	"lessonhub/internal/models/db_models"
	"lessonhub/internal/models/request_models"
	"lessonhub/internal/models/response_models"
	"lessonhub/internal/policy"
	"lessonhub/internal/repositories"
	"lessonhub/pkg/utils"
)

type CommentServiceInterface interface {
	AddComment(ctx context.Context, caller *db_models.Account, lessonID string, request request_models.CreateCommentRequest) (*response_models.CommentResponse, error)
	ListComments(ctx context.Context, caller *db_models.Account, lessonID string, page, pageSize int) ([]response_models.CommentResponse, error)
}

type CommentService struct {
	commentRepo repositories.CommentRepositoryInterface
	lessonRepo  repositories.LessonRepositoryInterface
}

func NewCommentService(commentRepo repositories.CommentRepositoryInterface, lessonRepo repositories.LessonRepositoryInterface) CommentServiceInterface {
	return &CommentService{
		commentRepo: commentRepo,
		lessonRepo:  lessonRepo,
	}
}

func (s *CommentService) AddComment(ctx context.Context, caller *db_models.Account, lessonID string, request request_models.CreateCommentRequest) (*response_models.CommentResponse, error) {
	if request.Text == "" {
		return nil, utils.ErrMissingField
	}

	lesson, err := s.readableLesson(ctx, caller, lessonID)
	if err != nil {
		return nil, err
	}

	comment := &db_models.Comment{
		LessonID:    lesson.ID,
		AuthorEmail: caller.Email,
		AuthorName:  caller.Name,
		Text:        request.Text,
	}
	if err := s.commentRepo.Insert(ctx, comment); err != nil {
		return nil, utils.ErrDatabaseError
	}

	resp := response_models.CommentFromModel(comment)
	return &resp, nil
}

func (s *CommentService) ListComments(ctx context.Context, caller *db_models.Account, lessonID string, page, pageSize int) ([]response_models.CommentResponse, error) {
	page, pageSize, err := NormalizePagination(page, pageSize)
	if err != nil {
		return nil, err
	}

	lesson, err := s.readableLesson(ctx, caller, lessonID)
	if err != nil {
		return nil, err
	}

	comments, err := s.commentRepo.ListByLesson(ctx, lesson.ID, page, pageSize)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	items := make([]response_models.CommentResponse, 0, len(comments))
	for i := range comments {
		items = append(items, response_models.CommentFromModel(&comments[i]))
	}
	return items, nil
}

// readableLesson resolves the lesson and applies the read policy: comments
// are only visible on lessons the caller may view.
func (s *CommentService) readableLesson(ctx context.Context, caller *db_models.Account, lessonID string) (*db_models.Lesson, error) {
	if _, err := uuid.Parse(lessonID); err != nil {
		return nil, utils.ErrInvalidID
	}

	lesson, err := s.lessonRepo.FindById(ctx, lessonID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if lesson == nil {
		return nil, utils.ErrLessonNotFound
	}

	if err := policy.CanView(policyResource(lesson), policyCaller(caller)); err != nil {
		return nil, err
	}
	return lesson, nil
}

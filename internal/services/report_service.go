package services

import (
	"context"

	"github.com/google/uuid"
	"lessonhub/internal/models/db_models"
	"lessonhub/internal/models/request_models"
	"lessonhub/internal/models/response_models"
	"lessonhub/internal/repositories"
	"lessonhub/pkg/utils"
)

type ReportServiceInterface interface {
	FileReport(ctx context.Context, caller *db_models.Account, request request_models.CreateReportRequest) (*response_models.ReportResponse, error)
	ListReports(ctx context.Context, lessonID string) ([]response_models.ReportResponse, error)
	AggregatedReportedLessons(ctx context.Context) ([]response_models.AggregatedReportItem, error)
	ResolveReport(ctx context.Context, id string) error
}

type ReportService struct {
	reportRepo repositories.ReportRepositoryInterface
	lessonRepo repositories.LessonRepositoryInterface
}

func NewReportService(reportRepo repositories.ReportRepositoryInterface, lessonRepo repositories.LessonRepositoryInterface) ReportServiceInterface {
	return &ReportService{
		reportRepo: reportRepo,
		lessonRepo: lessonRepo,
	}
}

// FileReport appends a report. There is no dedup: the same caller may report
// the same lesson many times.
func (s *ReportService) FileReport(ctx context.Context, caller *db_models.Account, request request_models.CreateReportRequest) (*response_models.ReportResponse, error) {
	if request.Reason == "" {
		return nil, utils.ErrMissingField
	}
	id, err := uuid.Parse(request.LessonID)
	if err != nil {
		return nil, utils.ErrInvalidID
	}

	lesson, err := s.lessonRepo.FindById(ctx, request.LessonID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if lesson == nil {
		return nil, utils.ErrLessonNotFound
	}

	report := &db_models.Report{
		ReporterEmail: caller.Email,
		LessonID:      id,
		Reason:        request.Reason,
	}
	if err := s.reportRepo.Insert(ctx, report); err != nil {
		return nil, utils.ErrDatabaseError
	}

	resp := s.reportResponse(report, lesson)
	return &resp, nil
}

// ListReports joins each report with its lesson when the lesson still
// exists; reports against deleted lessons survive with the lesson absent.
func (s *ReportService) ListReports(ctx context.Context, lessonID string) ([]response_models.ReportResponse, error) {
	if lessonID != "" {
		if _, err := uuid.Parse(lessonID); err != nil {
			return nil, utils.ErrInvalidID
		}
	}

	reports, err := s.reportRepo.List(ctx, lessonID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	lessons, err := s.lessonsFor(ctx, reportLessonIDs(reports))
	if err != nil {
		return nil, err
	}

	items := make([]response_models.ReportResponse, 0, len(reports))
	for i := range reports {
		items = append(items, s.reportResponse(&reports[i], lessons[reports[i].LessonID.String()]))
	}
	return items, nil
}

// AggregatedReportedLessons groups reports per lesson. Unlike ListReports,
// lessons that no longer exist are dropped from this view.
func (s *ReportService) AggregatedReportedLessons(ctx context.Context) ([]response_models.AggregatedReportItem, error) {
	rows, err := s.reportRepo.CountByLesson(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	ids := make([]uuid.UUID, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, row.LessonID)
	}
	lessons, err := s.lessonsFor(ctx, ids)
	if err != nil {
		return nil, err
	}

	items := make([]response_models.AggregatedReportItem, 0, len(rows))
	for _, row := range rows {
		lesson, ok := lessons[row.LessonID.String()]
		if !ok {
			continue
		}
		items = append(items, response_models.AggregatedReportItem{
			Lesson:      response_models.ReportedLessonFromModel(lesson),
			ReportCount: row.ReportCount,
		})
	}
	return items, nil
}

func (s *ReportService) ResolveReport(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return utils.ErrInvalidID
	}

	report, err := s.reportRepo.FindById(ctx, id)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if report == nil {
		return utils.ErrReportNotFound
	}

	if err := s.reportRepo.Delete(ctx, id); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (s *ReportService) lessonsFor(ctx context.Context, ids []uuid.UUID) (map[string]*db_models.Lesson, error) {
	strIDs := make([]string, 0, len(ids))
	seen := map[string]bool{}
	for _, id := range ids {
		key := id.String()
		if !seen[key] {
			seen[key] = true
			strIDs = append(strIDs, key)
		}
	}

	lessons, err := s.lessonRepo.FindByIds(ctx, strIDs)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	byID := make(map[string]*db_models.Lesson, len(lessons))
	for i := range lessons {
		byID[lessons[i].ID.String()] = &lessons[i]
	}
	return byID, nil
}

func (s *ReportService) reportResponse(report *db_models.Report, lesson *db_models.Lesson) response_models.ReportResponse {
	resp := response_models.ReportResponse{
		ID:            report.ID.String(),
		ReporterEmail: report.ReporterEmail,
		LessonID:      report.LessonID.String(),
		Reason:        report.Reason,
		CreatedAt:     report.CreatedAt,
	}
	if lesson != nil {
		reported := response_models.ReportedLessonFromModel(lesson)
		resp.Lesson = &reported
	}
	return resp
}

func reportLessonIDs(reports []db_models.Report) []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(reports))
	for i := range reports {
		ids = append(ids, reports[i].LessonID)
	}
	return ids
}

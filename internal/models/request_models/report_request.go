package request_models

type CreateReportRequest struct {
	LessonID string `json:"lessonId" binding:"required"`
	Reason   string `json:"reason"`
}

package response_models

import "lessonhub/internal/models/db_models"

// ReportedLesson is the lesson snapshot joined onto a report; absent when
// the lesson was deleted after the report was filed.
type ReportedLesson struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	Category     string `json:"category,omitempty"`
	CreatorEmail string `json:"creatorEmail"`
}

type ReportResponse struct {
	ID            string          `json:"id"`
	ReporterEmail string          `json:"reporterEmail"`
	LessonID      string          `json:"lessonId"`
	Reason        string          `json:"reason"`
	CreatedAt     int64           `json:"createdAt"`
	Lesson        *ReportedLesson `json:"lesson,omitempty"`
}

// AggregatedReportItem is one row of the grouped report view; only lessons
// that still exist appear here.
type AggregatedReportItem struct {
	Lesson      ReportedLesson `json:"lesson"`
	ReportCount int64          `json:"reportCount"`
}

type CommentResponse struct {
	ID         string `json:"id"`
	LessonID   string `json:"lessonId"`
	AuthorName string `json:"authorName"`
	Text       string `json:"text"`
	CreatedAt  int64  `json:"createdAt"`
}

func CommentFromModel(comment *db_models.Comment) CommentResponse {
	return CommentResponse{
		ID:         comment.ID.String(),
		LessonID:   comment.LessonID.String(),
		AuthorName: comment.AuthorName,
		Text:       comment.Text,
		CreatedAt:  comment.CreatedAt,
	}
}

func ReportedLessonFromModel(lesson *db_models.Lesson) ReportedLesson {
	return ReportedLesson{
		ID:           lesson.ID.String(),
		Title:        lesson.Title,
		Category:     lesson.Category,
		CreatorEmail: lesson.CreatorEmail,
	}
}

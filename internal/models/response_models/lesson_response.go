package response_models

import "lessonhub/internal/models/db_models"

type CreatorSummary struct {
	Name        string `json:"name"`
	PhotoURL    string `json:"photoUrl,omitempty"`
	LessonCount int64  `json:"lessonCount"`
}

type LessonResponse struct {
	ID           string          `json:"id"`
	Title        string          `json:"title"`
	Content      string          `json:"content"`
	Category     string          `json:"category,omitempty"`
	EmotionalTag string          `json:"emotionalTag,omitempty"`
	Visibility   string          `json:"visibility"`
	AccessLevel  string          `json:"accessLevel"`
	CreatorEmail string          `json:"creatorEmail"`
	LikeCount    int             `json:"likeCount"`
	LikedByMe    bool            `json:"likedByMe"`
	Featured     bool            `json:"featured"`
	Reviewed     bool            `json:"reviewed"`
	CreatedAt    int64           `json:"createdAt"`
	Creator      *CreatorSummary `json:"creator,omitempty"`
}

type LessonListResponse struct {
	Lessons  []LessonResponse `json:"lessons"`
	Page     int              `json:"page"`
	PageSize int              `json:"pageSize"`
	Total    int64            `json:"total"`
}

type ToggleLikeResponse struct {
	Liked     bool `json:"liked"`
	LikeCount int  `json:"likeCount"`
}

type ToggleFavoriteResponse struct {
	Favorited bool `json:"favorited"`
}

func LessonFromModel(lesson *db_models.Lesson, callerEmail string) LessonResponse {
	likedByMe := false
	if callerEmail != "" {
		for _, email := range lesson.LikedBy {
			if email == callerEmail {
				likedByMe = true
				break
			}
		}
	}

	return LessonResponse{
		ID:           lesson.ID.String(),
		Title:        lesson.Title,
		Content:      lesson.Content,
		Category:     lesson.Category,
		EmotionalTag: lesson.EmotionalTag,
		Visibility:   lesson.Visibility,
		AccessLevel:  lesson.AccessLevel,
		CreatorEmail: lesson.CreatorEmail,
		LikeCount:    lesson.LikeCount,
		LikedByMe:    likedByMe,
		Featured:     lesson.Featured,
		Reviewed:     lesson.Reviewed,
		CreatedAt:    lesson.CreatedAt,
	}
}

package request_models

type CreateLessonRequest struct {
	Title        string `json:"title" binding:"required"`
	Content      string `json:"content" binding:"required"`
	Category     string `json:"category"`
	EmotionalTag string `json:"emotionalTag"`
	Visibility   string `json:"visibility"`
	AccessLevel  string `json:"accessLevel"`
}

// UpdateLessonRequest uses pointers so absent fields stay untouched.
type UpdateLessonRequest struct {
	Title        *string `json:"title"`
	Content      *string `json:"content"`
	Category     *string `json:"category"`
	EmotionalTag *string `json:"emotionalTag"`
	Visibility   *string `json:"visibility"`
	AccessLevel  *string `json:"accessLevel"`
	Featured     *bool   `json:"featured"`
	Reviewed     *bool   `json:"reviewed"`
}

type ListLessonsQuery struct {
	Category      string
	EmotionalTag  string
	Search        string
	CreatorEmail  string
	FeaturedOnly  bool
	Sort          string
	Page          int
	PageSize      int
	Mine          bool // caller's own lessons, any visibility
	AnyVisibility bool // admin listing, set by the admin controller only
}

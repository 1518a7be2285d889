package request_models

type CreateCommentRequest struct {
	Text string `json:"text" binding:"required"`
}

package request_models

type UpdateProfileRequest struct {
	Name     *string `json:"name"`
	PhotoURL *string `json:"photoUrl"`
}

type SetRoleRequest struct {
	Role string `json:"role" binding:"required"`
}

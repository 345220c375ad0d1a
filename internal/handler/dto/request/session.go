package request

type SetTokenRequest struct {
	Token string `json:"token" binding:"required"`
}

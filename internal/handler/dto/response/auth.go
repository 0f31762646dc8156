package response

import "github.com/Zolbayar-hub/holisticweb/internal/usecase/queries"

type UserResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	IsAdmin  bool   `json:"is_admin"`
}

type LoginResponse struct {
	AccessToken string        `json:"access_token"`
	ExpiresAt   int64         `json:"expires_at"`
	User        *UserResponse `json:"user,omitempty"`
}

func FromAuthorizedUser(v *queries.AuthorizedUserView, isAdmin bool) *UserResponse {
	return &UserResponse{
		ID:       v.ID.String(),
		Username: v.Username,
		Email:    v.Email,
		Role:     v.Role,
		IsAdmin:  isAdmin,
	}
}

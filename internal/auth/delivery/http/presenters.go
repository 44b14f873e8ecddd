package http

import "pharmacy-inventory-console/internal/auth"

// --- Request DTOs ---

type loginReq struct {
	Email    string `json:"email"    binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type signupReq struct {
	Username string `json:"username" binding:"required,min=1,max=100"`
	Email    string `json:"email"    binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

// --- Response DTOs ---

type userResp struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

func newUserResp(u auth.User) userResp {
	return userResp{
		ID:       u.ID,
		Username: u.Username,
		Email:    u.Email,
	}
}

package http

import (
	"github.com/gin-gonic/gin"

	"pharmacy-inventory-console/internal/auth"
	"pharmacy-inventory-console/pkg/response"
)

// Login godoc
// @Summary     Log in
// @Description Exchanges credentials for a backend token and stores it in the console session.
// @Tags        Auth
// @Accept      json
// @Produce     json
// @Param       body body loginReq true "Credentials"
// @Success     200 {object} userResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Invalid credentials"
// @Router      /api/v1/auth/login [POST]
func (h *handler) Login(c *gin.Context) {
	ctx := c.Request.Context()

	var req loginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err, nil)
		return
	}

	user, err := h.uc.Login(ctx, auth.LoginInput{Email: req.Email, Password: req.Password})
	if err != nil {
		h.l.Warnf(ctx, "uc.Login: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, newUserResp(user))
}

// Signup godoc
// @Summary     Create an account
// @Description Registers a new user on the backend and stores the issued token.
// @Tags        Auth
// @Accept      json
// @Produce     json
// @Param       body body signupReq true "Account data"
// @Success     200 {object} userResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/auth/signup [POST]
func (h *handler) Signup(c *gin.Context) {
	ctx := c.Request.Context()

	var req signupReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err, nil)
		return
	}

	user, err := h.uc.Signup(ctx, auth.SignupInput{Username: req.Username, Email: req.Email, Password: req.Password})
	if err != nil {
		h.l.Warnf(ctx, "uc.Signup: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, newUserResp(user))
}

// Logout godoc
// @Summary     Log out
// @Description Clears the console session. The backend token is simply forgotten.
// @Tags        Auth
// @Produce     json
// @Success     200 {object} response.Resp "OK"
// @Router      /api/v1/auth/logout [POST]
func (h *handler) Logout(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.uc.Logout(ctx); err != nil {
		h.l.Errorf(ctx, "uc.Logout: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, nil)
}

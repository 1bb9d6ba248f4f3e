package auth

import (
	"github.com/gin-gonic/gin"

	"tattoohub/internal/middleware"
	"tattoohub/internal/pkg/response"
	"tattoohub/internal/pkg/validator"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(api *gin.RouterGroup, auth gin.HandlerFunc, limit gin.HandlerFunc) {
	g := api.Group("/auth")
	{
		g.POST("", limit, h.Login)
		g.GET("", auth, h.Me)
		g.POST("/forgot-password", limit, h.ForgotPassword)
		g.POST("/reset-password/:id/:token", limit, h.ResetPassword)
	}
}

// Login handles POST /api/auth.
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if !validator.BindJSON(c, &req) {
		return
	}
	res, err := h.service.Login(c.Request.Context(), req)
	response.Reply(c, res, err)
}

// Me handles GET /api/auth.
func (h *Handler) Me(c *gin.Context) {
	res, err := h.service.Me(c.Request.Context(), middleware.UserID(c))
	response.Reply(c, res, err)
}

func (h *Handler) ForgotPassword(c *gin.Context) {
	var req ForgotPasswordRequest
	if !validator.BindJSON(c, &req) {
		return
	}
	res, err := h.service.ForgotPassword(c.Request.Context(), req.Email)
	response.Reply(c, res, err)
}

func (h *Handler) ResetPassword(c *gin.Context) {
	var req ResetPasswordRequest
	if !validator.BindJSON(c, &req) {
		return
	}
	res, err := h.service.ResetPassword(c.Request.Context(), c.Param("id"), c.Param("token"), req)
	response.Reply(c, res, err)
}

package user

import (
	"github.com/gin-gonic/gin"

	"tattoohub/internal/domain"
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
	g := api.Group("/users")
	{
		g.POST("", limit, h.Register)
		g.GET("/info", auth, h.Info)
		g.POST("/picture", auth, h.SavePicture)
	}
}

// Register handles POST /api/users.
func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if !validator.BindJSON(c, &req) {
		return
	}
	res, err := h.service.Register(c.Request.Context(), req)
	response.Reply(c, res, err)
}

// Info handles GET /api/users/info.
func (h *Handler) Info(c *gin.Context) {
	res, err := h.service.Info(c.Request.Context(), middleware.UserID(c))
	response.Reply(c, res, err)
}

// SavePicture handles POST /api/users/picture.
func (h *Handler) SavePicture(c *gin.Context) {
	var img domain.Image
	if !validator.BindJSON(c, &img) {
		return
	}
	res, err := h.service.SavePicture(c.Request.Context(), middleware.UserID(c), img)
	response.Reply(c, res, err)
}

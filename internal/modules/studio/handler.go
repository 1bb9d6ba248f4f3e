package studio

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

func (h *Handler) RegisterRoutes(api *gin.RouterGroup, auth gin.HandlerFunc) {
	g := api.Group("/studios")
	{
		g.POST("", auth, h.Save)
		g.POST("/image", auth, h.SaveImage)
		g.POST("/images", auth, h.SaveImages)
		g.GET("", h.GetAll)
		g.GET("/profile/me", auth, h.GetOwnProfile)
		g.GET("/:id", h.GetOne)
		g.DELETE("/:id", auth, h.Delete)
	}
}

func (h *Handler) Save(c *gin.Context) {
	var req SaveRequest
	if !validator.BindJSON(c, &req) {
		return
	}
	res, err := h.service.Save(c.Request.Context(), middleware.UserID(c), req)
	response.Reply(c, res, err)
}

func (h *Handler) SaveImage(c *gin.Context) {
	var req ImageRequest
	if !validator.BindJSON(c, &req) {
		return
	}
	res, err := h.service.SaveImage(c.Request.Context(), middleware.UserID(c), req)
	response.Reply(c, res, err)
}

func (h *Handler) SaveImages(c *gin.Context) {
	var req ImagesRequest
	if !validator.BindJSON(c, &req) {
		return
	}
	res, err := h.service.SaveImages(c.Request.Context(), middleware.UserID(c), req)
	response.Reply(c, res, err)
}

func (h *Handler) GetAll(c *gin.Context) {
	res, err := h.service.GetAll(c.Request.Context())
	response.Reply(c, res, err)
}

func (h *Handler) GetOne(c *gin.Context) {
	res, err := h.service.GetOne(c.Request.Context(), c.Param("id"))
	response.Reply(c, res, err)
}

func (h *Handler) GetOwnProfile(c *gin.Context) {
	res, err := h.service.GetOwnProfile(c.Request.Context(), middleware.UserID(c))
	response.Reply(c, res, err)
}

func (h *Handler) Delete(c *gin.Context) {
	res, err := h.service.Delete(c.Request.Context(), middleware.UserID(c), c.Param("id"))
	response.Reply(c, res, err)
}

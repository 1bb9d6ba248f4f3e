package artist

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

func (h *Handler) RegisterRoutes(api *gin.RouterGroup, auth gin.HandlerFunc) {
	g := api.Group("/artists")
	{
		g.POST("", auth, h.Save)
		g.POST("/picture", auth, h.setImage(ProfilePicture))
		g.POST("/cover", auth, h.setImage(CoverImage))
		g.POST("/portfolio", auth, h.AddPortfolio)
		g.GET("", h.GetAll)
		g.GET("/search", h.Search)
		g.GET("/profile/me", auth, h.GetOwnProfile)
		g.GET("/:id", h.GetOne)
		g.DELETE("", auth, h.Delete)
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

func (h *Handler) setImage(kind ImageKind) gin.HandlerFunc {
	return func(c *gin.Context) {
		var img domain.Image
		if !validator.BindJSON(c, &img) {
			return
		}
		res, err := h.service.SetImage(c.Request.Context(), middleware.UserID(c), kind, img)
		response.Reply(c, res, err)
	}
}

func (h *Handler) AddPortfolio(c *gin.Context) {
	var req PortfolioRequest
	if !validator.BindJSON(c, &req) {
		return
	}
	res, err := h.service.AddPortfolio(c.Request.Context(), middleware.UserID(c), req.Images)
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
	res, err := h.service.Delete(c.Request.Context(), middleware.UserID(c))
	response.Reply(c, res, err)
}

// Search handles GET /api/artists/search?q=&size=.
func (h *Handler) Search(c *gin.Context) {
	var q SearchQuery
	_ = c.ShouldBindQuery(&q)
	res, err := h.service.Search(c.Request.Context(), q)
	response.Reply(c, res, err)
}

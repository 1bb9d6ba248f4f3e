package style

import (
	"github.com/gin-gonic/gin"

	"tattoohub/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	api.GET("/styles", h.GetAll)
}

// GetAll handles GET /api/styles.
func (h *Handler) GetAll(c *gin.Context) {
	res, err := h.service.GetAll(c.Request.Context())
	response.Reply(c, res, err)
}

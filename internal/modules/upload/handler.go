package upload

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"tattoohub/internal/middleware"
	"tattoohub/internal/pkg/response"
)

// Handler exposes image uploads to any authenticated user.
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(api *gin.RouterGroup, auth gin.HandlerFunc) {
	uploads := api.Group("/uploads", auth)
	{
		uploads.POST("", h.Upload)
		uploads.GET("", h.ListMy)
		uploads.GET("/:id", h.GetByID)
		uploads.DELETE("/:id", h.Delete)
	}
}

// Upload handles POST /api/uploads (multipart field "file") and answers {publicId, url}.
func (h *Handler) Upload(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, MaxFileSize+1<<20)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		var tooBig *http.MaxBytesError
		if errors.As(err, &tooBig) {
			h.fail(c, ErrFileTooLarge)
			return
		}
		h.fail(c, ErrNoFile)
		return
	}

	upload, err := h.service.Upload(c.Request.Context(), middleware.UserID(c), fileHeader)
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Write(c, response.Created(upload))
}

func (h *Handler) GetByID(c *gin.Context) {
	upload, err := h.service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Write(c, response.OK(upload))
}

func (h *Handler) ListMy(c *gin.Context) {
	uploads, err := h.service.ListByUser(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.Write(c, response.OK(uploads))
}

func (h *Handler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id"), middleware.UserID(c)); err != nil {
		h.fail(c, err)
		return
	}
	response.Write(c, response.OK(response.Empty()))
}

func (h *Handler) fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrNoFile), errors.Is(err, ErrEmptyFile), errors.Is(err, ErrInvalidMimeType):
		response.Write(c, response.Errors(http.StatusBadRequest, err.Error()))
	case errors.Is(err, ErrFileTooLarge):
		response.Write(c, response.Errors(http.StatusRequestEntityTooLarge, err.Error()))
	case errors.Is(err, ErrUploadNotFound):
		response.Write(c, response.NotFound())
	case errors.Is(err, ErrNotOwner):
		response.Write(c, response.Errors(http.StatusForbidden, err.Error()))
	default:
		_ = c.Error(err)
	}
}

package server

import (
	"errors"
	"net/http"
	"path"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"droscher.com/BrewLog/pkg/server/api"
	"droscher.com/BrewLog/pkg/storage"
	"droscher.com/BrewLog/pkg/validation"
)

const (
	imageEntity = "画像"
	// multipartOverhead leaves room for boundaries, part headers and the
	// category field around the file itself.
	multipartOverhead = 64 << 10
)

type UploadServer struct {
	logger *zap.Logger
	images *storage.Images
}

func NewUploadServer(images *storage.Images, logger *zap.Logger) *UploadServer {
	return &UploadServer{images: images, logger: logger}
}

func (u *UploadServer) Register(group *gin.RouterGroup) {
	group.POST("", u.UploadImage)
	group.DELETE("", u.DeleteImage)
}

// UploadImage expects a multipart form with a "file" part and a "category"
// field naming the image tree to store it in.
func (u *UploadServer) UploadImage(c *gin.Context) {
	if limit := u.images.MaxBytes(); limit > 0 {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, limit+multipartOverhead)
	}

	header, err := c.FormFile("file")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			respondError(c, u.logger, imageEntity, u.images.TooLarge())

			return
		}

		if !errors.Is(err, http.ErrMissingFile) && !errors.Is(err, http.ErrNotMultipart) {
			u.logger.Warn("could not read upload", zap.Error(err))
		}

		respondError(c, u.logger, imageEntity, validation.RequiredFieldMissing("file"))

		return
	}

	imagePath, err := u.images.Upload(c.Request.Context(), c.PostForm("category"), header)
	if err != nil {
		respondError(c, u.logger, imageEntity, err)

		return
	}

	c.JSON(http.StatusCreated, api.UploadResponse{Success: true, ImagePath: imagePath, FileName: path.Base(imagePath)})
}

// DeleteImage takes the image path from the "path" query parameter or a
// JSON body.
func (u *UploadServer) DeleteImage(c *gin.Context) {
	imagePath := c.Query("path")

	if imagePath == "" {
		var request api.DeleteImageRequest
		if err := bindJSON(c, &request); err != nil {
			respondError(c, u.logger, imageEntity, err)

			return
		}

		imagePath = request.Path
	}

	if err := u.images.Delete(c.Request.Context(), imagePath); err != nil {
		respondError(c, u.logger, imageEntity, err)

		return
	}

	c.JSON(http.StatusOK, api.UploadResponse{Success: true, ImagePath: imagePath, FileName: path.Base(imagePath)})
}

package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/menu-service/storage"
	"github.com/yeremiapane/menu-service/utils"
)

type ImageController struct {
	Images storage.ImageStore
}

func NewImageController(images storage.ImageStore) *ImageController {
	return &ImageController{Images: images}
}

// UploadImage stores the multipart "image" file under its original name.
func (ic *ImageController) UploadImage(c *gin.Context) {
	fh, err := c.FormFile("image")
	if err != nil {
		if bodyTooLarge(c, err) {
			return
		}
		utils.RespondText(c, http.StatusBadRequest, "No image uploaded")
		return
	}
	name, contentType, err := storage.CleanName(fh.Filename, fh.Header.Get("Content-Type"))
	if err != nil {
		utils.RespondText(c, http.StatusBadRequest, err.Error())
		return
	}

	file, err := fh.Open()
	if err != nil {
		utils.RespondError(c, err, "Error reading image", "")
		return
	}
	defer file.Close()

	url, err := ic.Images.Upload(c.Request.Context(), name, file, fh.Size, contentType)
	if err != nil {
		if errors.Is(err, storage.ErrUnsupportedImage) {
			utils.RespondText(c, http.StatusBadRequest, err.Error())
			return
		}
		utils.RespondError(c, err, "Error uploading image", "")
		return
	}
	utils.RespondJSON(c, http.StatusCreated, gin.H{"url": url, "name": name})
}

func (ic *ImageController) ListImages(c *gin.Context) {
	urls, err := ic.Images.List(c.Request.Context())
	if err != nil {
		utils.RespondError(c, err, "Error listing images", "")
		return
	}
	if urls == nil {
		urls = []string{}
	}
	utils.RespondJSON(c, http.StatusOK, urls)
}

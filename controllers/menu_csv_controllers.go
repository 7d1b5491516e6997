package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/yeremiapane/menu-service/services"
	"github.com/yeremiapane/menu-service/store"
	"github.com/yeremiapane/menu-service/utils"
)

// MenuCSVController handles bulk import and export of a store's menu.
type MenuCSVController struct {
	Store     *store.Store
	UploadDir string
}

func NewMenuCSVController(st *store.Store, uploadDir string) *MenuCSVController {
	return &MenuCSVController{Store: st, UploadDir: uploadDir}
}

func (mc *MenuCSVController) tempPath() string {
	return filepath.Join(mc.UploadDir, uuid.NewString()+".csv")
}

// UploadCSV replaces the menu of MID/SID with the uploaded file.
func (mc *MenuCSVController) UploadCSV(c *gin.Context) {
	var form scopeQuery
	if err := c.ShouldBind(&form); err != nil {
		if bodyTooLarge(c, err) {
			return
		}
		utils.RespondText(c, http.StatusBadRequest, utils.ValidationMessage(err, "MID and SID are required"))
		return
	}
	fh, err := c.FormFile("file")
	if err != nil {
		if bodyTooLarge(c, err) {
			return
		}
		utils.RespondText(c, http.StatusBadRequest, "No file uploaded")
		return
	}

	path := mc.tempPath()
	if err := c.SaveUploadedFile(fh, path); err != nil {
		utils.RespondError(c, err, "Error saving uploaded file", "")
		return
	}
	defer os.Remove(path)

	f, err := os.Open(path)
	if err != nil {
		utils.RespondError(c, err, "Error reading uploaded file", "")
		return
	}
	defer f.Close()

	summary, err := services.ImportMenu(c.Request.Context(), mc.Store, form.scope(), f)
	if errors.Is(err, services.ErrMalformedCSV) {
		utils.RespondText(c, http.StatusBadRequest, err.Error())
		return
	}
	if err != nil {
		utils.RespondError(c, err, "Error importing menu", "")
		return
	}
	utils.RespondJSON(c, http.StatusOK, gin.H{
		"message": "CSV data uploaded successfully",
		"summary": summary,
	})
}

// DownloadCSV streams the flattened menu of MID/SID as an attachment.
func (mc *MenuCSVController) DownloadCSV(c *gin.Context) {
	var q scopeQuery
	if !bindQuery(c, &q, "MID and SID are required") {
		return
	}

	path := mc.tempPath()
	f, err := os.Create(path)
	if err != nil {
		utils.RespondError(c, err, "Error creating export file", "")
		return
	}
	defer os.Remove(path)

	n, err := services.ExportMenuCSV(c.Request.Context(), mc.Store, q.scope(), f)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		utils.RespondError(c, err, "Error exporting menu", "")
		return
	}

	utils.InfoLogger.WithFields(map[string]interface{}{
		"mid":  q.MID,
		"sid":  q.SID,
		"rows": n,
	}).Info("menu exported")

	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.FileAttachment(path, fmt.Sprintf("menu-%s-%s.csv", q.MID, q.SID))
}

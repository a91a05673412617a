package handler

import (
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/labstack/echo/v4"

	"github.com/meridian-trust/staff-portal/internal/api/metrics"
)

// UploadHandler backs the admin file-upload page. Files land in a single flat
// directory; the stored name is the base name of the upload, so a crafted
// filename cannot escape the directory.
type UploadHandler struct {
	dir string
}

func NewUploadHandler(dir string) *UploadHandler {
	return &UploadHandler{dir: dir}
}

// Upload stores one multipart file.
//
// @Summary      Upload a file
// @Tags         admin
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file  true  "File to store"
// @Success      201   {object}  map[string]string
// @Failure      400   {object}  map[string]string
// @Router       /admin/uploads [post]
func (h *UploadHandler) Upload(c echo.Context) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "file is required"})
	}

	src, err := fileHeader.Open()
	if err != nil {
		return err
	}
	defer src.Close()

	if err := os.MkdirAll(h.dir, 0o755); err != nil {
		return err
	}

	name := filepath.Base(fileHeader.Filename)
	dst, err := os.Create(filepath.Join(h.dir, name))
	if err != nil {
		return err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return err
	}

	metrics.UploadsTotal.Inc()
	return c.JSON(http.StatusCreated, map[string]string{"uploaded": name})
}

type storedFile struct {
	Name string `json:"name"`
	Size int64  `json:"size"`
}

type uploadsResponse struct {
	Files []storedFile `json:"files"`
}

// List returns the stored files.
//
// @Summary      List uploaded files
// @Tags         admin
// @Produce      json
// @Success      200  {object}  uploadsResponse
// @Router       /admin/uploads [get]
func (h *UploadHandler) List(c echo.Context) error {
	entries, err := os.ReadDir(h.dir)
	if os.IsNotExist(err) {
		return c.JSON(http.StatusOK, uploadsResponse{Files: []storedFile{}})
	}
	if err != nil {
		return err
	}

	files := make([]storedFile, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		files = append(files, storedFile{Name: entry.Name(), Size: info.Size()})
	}
	return c.JSON(http.StatusOK, uploadsResponse{Files: files})
}

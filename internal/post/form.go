package post

import (
	"errors"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/MrSunstrike/Social-network-Yatube/internal/database"
	"github.com/MrSunstrike/Social-network-Yatube/internal/group"
	"github.com/MrSunstrike/Social-network-Yatube/internal/storage"
)

// postForm holds a validated create/edit submission. Field errors are
// collected per field so the form can be re-rendered; nothing is written
// to the store unless Errors is empty.
type postForm struct {
	Text   string
	Group  *group.Group
	Errors map[string]string
}

func (f *postForm) Valid() bool {
	return len(f.Errors) == 0
}

// bindPostForm reads and validates the multipart submission. The group
// field carries a group slug and is optional; an unknown slug is a field
// error, not a NotFound.
func bindPostForm(c *gin.Context) *postForm {
	form := &postForm{
		Text:   strings.TrimSpace(c.PostForm("text")),
		Errors: map[string]string{},
	}

	if form.Text == "" {
		form.Errors["text"] = "post text must not be empty"
	}

	if slug := c.PostForm("group"); slug != "" {
		var g group.Group
		if err := database.DB.Where("slug = ?", slug).First(&g).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				form.Errors["group"] = "unknown group"
			} else {
				form.Errors["group"] = "could not resolve group"
			}
		} else {
			form.Group = &g
		}
	}

	return form
}

// imageFromForm validates the optional image part. Returns the open file
// and its metadata, or ok=false when no image was submitted.
func imageFromForm(c *gin.Context, form *postForm) (multipart.File, *multipart.FileHeader, bool) {
	file, header, err := c.Request.FormFile("image")
	if err != nil {
		return nil, nil, false
	}

	ext := strings.ToLower(filepath.Ext(header.Filename))
	if !storage.IsAllowedImageExt(ext) {
		form.Errors["image"] = "unsupported image type"
		file.Close()
		return nil, nil, false
	}
	if !storage.Enabled() {
		form.Errors["image"] = "image uploads are not available"
		file.Close()
		return nil, nil, false
	}

	return file, header, true
}

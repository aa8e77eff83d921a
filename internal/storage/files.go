package storage

import (
	"encoding/base64"
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// FileStore saves uploaded attachments and product images on local disk and
// serves them back base64-encoded for clients that inline images.
type FileStore struct {
	dir string
}

func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}
	return &FileStore{dir: dir}, nil
}

// Save writes the multipart file under a random name, keeping the original
// extension. Returns the stored file name.
func (f *FileStore) Save(c *gin.Context, file *multipart.FileHeader) (string, error) {
	ext := strings.ToLower(filepath.Ext(file.Filename))
	name := fmt.Sprintf("%d-%s%s", time.Now().Unix(), uuid.NewString(), ext)
	if err := c.SaveUploadedFile(file, filepath.Join(f.dir, name)); err != nil {
		return "", fmt.Errorf("failed to save uploaded file: %w", err)
	}
	return name, nil
}

// ReadBase64 returns the stored file's content as a base64 string. The name
// is cleaned so a crafted path cannot escape the upload directory.
func (f *FileStore) ReadBase64(name string) (string, error) {
	clean := filepath.Base(name)
	data, err := os.ReadFile(filepath.Join(f.dir, clean))
	if err != nil {
		return "", fmt.Errorf("failed to read file %s: %w", clean, err)
	}
	return base64.StdEncoding.EncodeToString(data), nil
}

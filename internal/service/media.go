package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"recipeshare/internal/model"
	"recipeshare/internal/storage"
)

// Upload folders. Each maps to a key prefix in storage.
const (
	FolderProfiles = "profiles"
	FolderRecipes  = "recipes"
	FolderPlans    = "plans"
)

// URLPrefix is the public path stored files are served under.
const URLPrefix = "/uploads/"

var allowedExt = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

// MediaService stores and serves uploaded images.
type MediaService interface {
	// Save stores r under folder as uuid + lowercased extension of originalFilename.
	Save(ctx context.Context, folder string, r io.Reader, originalFilename, contentType string, size int64) (*model.StoredFile, error)
	// Open streams a stored file back. The caller closes the reader.
	Open(ctx context.Context, folder, filename string) (io.ReadCloser, storage.ObjectInfo, error)
	// Remove deletes a stored file. Missing files are not an error.
	Remove(ctx context.Context, folder, filename string) error
}

type mediaService struct {
	store storage.Storage
}

// NewMediaService constructs a new MediaService.
func NewMediaService(store storage.Storage) MediaService {
	return &mediaService{store: store}
}

// PublicURL returns the path a stored file is served under.
func PublicURL(folder, filename string) string {
	return URLPrefix + folder + "/" + filename
}

// FilenameFromURL extracts the stored filename from a PublicURL in folder.
// It returns "" for anything not managed by this service.
func FilenameFromURL(folder, u string) string {
	prefix := URLPrefix + folder + "/"
	if !strings.HasPrefix(u, prefix) {
		return ""
	}
	name := strings.TrimPrefix(u, prefix)
	if checkFilename(name) != nil {
		return ""
	}
	return name
}

func checkFolder(folder string) error {
	switch folder {
	case FolderProfiles, FolderRecipes, FolderPlans:
		return nil
	}
	return ErrInvalidFolder
}

func checkFilename(name string) error {
	if name == "" || strings.ContainsAny(name, `/\`) || strings.Contains(name, "..") {
		return ErrInvalidFilename
	}
	return nil
}

func (s *mediaService) Save(ctx context.Context, folder string, r io.Reader, originalFilename, contentType string, size int64) (*model.StoredFile, error) {
	if r == nil {
		return nil, ErrReaderNil
	}
	if err := checkFolder(folder); err != nil {
		return nil, err
	}
	ext := strings.ToLower(filepath.Ext(originalFilename))
	if !allowedExt[ext] {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedType, ext)
	}
	if contentType == "" || contentType == "application/octet-stream" {
		contentType = mime.TypeByExtension(ext)
	}

	name := uuid.New().String() + ext
	key := path.Join(folder, name)

	info, err := s.store.Put(ctx, key, r, storage.PutObjectOptions{
		Size:        size,
		ContentType: contentType,
		Metadata: map[string]string{
			"original-filename": filepath.Base(originalFilename),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("upload to storage: %w", err)
	}

	return &model.StoredFile{
		Filename:    name,
		Key:         key,
		URL:         PublicURL(folder, name),
		Size:        info.Size,
		ContentType: contentType,
	}, nil
}

func (s *mediaService) Open(ctx context.Context, folder, filename string) (io.ReadCloser, storage.ObjectInfo, error) {
	if err := checkFilename(filename); err != nil {
		return nil, storage.ObjectInfo{}, err
	}
	if err := checkFolder(folder); err != nil {
		return nil, storage.ObjectInfo{}, err
	}
	rc, info, err := s.store.Get(ctx, path.Join(folder, filename))
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, storage.ObjectInfo{}, ErrFileNotFound
		}
		return nil, storage.ObjectInfo{}, err
	}
	return rc, info, nil
}

func (s *mediaService) Remove(ctx context.Context, folder, filename string) error {
	if err := checkFilename(filename); err != nil {
		return err
	}
	if err := checkFolder(folder); err != nil {
		return err
	}
	return s.store.Delete(ctx, path.Join(folder, filename))
}

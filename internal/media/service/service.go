package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path"
	"strings"
	"time"

	"github.com/amigdala/cms-backend/internal/media"
	"github.com/amigdala/cms-backend/internal/media/repository"
	"github.com/amigdala/cms-backend/internal/storage"
	"github.com/amigdala/cms-backend/pkg/logger"
	"github.com/google/uuid"
)

var (
	ErrNoFile      = errors.New("no file provided")
	ErrInvalidType = errors.New("only image uploads are allowed")
	ErrTooLarge    = errors.New("file exceeds the upload size limit")
	ErrNotFound    = repository.ErrNotFound
)

// Service runs the media pipeline: spool the upload to a temp file, push it
// to the storage backend, persist metadata.
type Service struct {
	repo     repository.Repository
	backend  storage.Backend
	maxBytes int64
	spoolDir string
	now      func() time.Time
}

// New creates a media service. spoolDir is where uploads are spooled before
// reaching the backend; empty means the OS temp dir.
func New(repo repository.Repository, backend storage.Backend, maxBytes int64, spoolDir string) *Service {
	return &Service{
		repo:     repo,
		backend:  backend,
		maxBytes: maxBytes,
		spoolDir: spoolDir,
		now:      time.Now,
	}
}

// Upload describes one incoming file.
type Upload struct {
	Reader      io.Reader
	Name        string
	ContentType string
	// Size is the declared multipart size; the real ceiling is enforced
	// while spooling, so a lying client cannot bypass it.
	Size int64
}

// Upload validates the file, stores its bytes and inserts the metadata row.
// When metadata insertion fails after the bytes are stored, the item is
// still returned with Warning set: the file exists and must not vanish from
// the response, even though it is now unreferenced.
func (s *Service) Upload(ctx context.Context, in Upload) (*media.Item, error) {
	if in.Reader == nil {
		return nil, ErrNoFile
	}
	if !strings.HasPrefix(in.ContentType, "image/") {
		return nil, ErrInvalidType
	}
	if in.Size > s.maxBytes {
		return nil, ErrTooLarge
	}

	// spool to a temp file; removed on every exit path
	tmp, err := os.CreateTemp(s.spoolDir, "amigdala-upload-*")
	if err != nil {
		return nil, fmt.Errorf("spool upload: %w", err)
	}
	defer func() {
		tmp.Close()
		os.Remove(tmp.Name())
	}()

	n, err := io.Copy(tmp, io.LimitReader(in.Reader, s.maxBytes+1))
	if err != nil {
		return nil, fmt.Errorf("spool upload: %w", err)
	}
	if n > s.maxBytes {
		return nil, ErrTooLarge
	}
	if _, err := tmp.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("spool upload: %w", err)
	}

	stored := storedName(s.now(), in.Name)
	if err := s.backend.Save(ctx, stored, tmp, n, in.ContentType); err != nil {
		return nil, fmt.Errorf("store upload: %w", err)
	}

	itemPath := media.UploadPrefix + stored
	item := &media.Item{
		ID:       uuid.NewString(),
		Name:     originalName(in.Name, stored),
		Path:     itemPath,
		APIURL:   media.ResolveURL(itemPath),
		Type:     in.ContentType,
		Size:     humanSize(n),
		Uploaded: s.now().UTC(),
	}
	if err := s.repo.Insert(ctx, item); err != nil {
		// the file is already durable; report it back as an orphan
		logger.Warnf("media metadata insert failed for %s: %v", stored, err)
		item.Warning = true
		return item, nil
	}
	return item, nil
}

// List returns all media items, newest first.
func (s *Service) List(ctx context.Context) ([]*media.Item, error) {
	return s.repo.List(ctx)
}

// Delete removes the stored file on a best-effort basis, then deletes the
// metadata row regardless of the file outcome.
func (s *Service) Delete(ctx context.Context, id string) error {
	item, err := s.repo.Get(ctx, id)
	if err != nil {
		return err
	}
	key := path.Base(item.Path)
	if err := s.backend.Remove(ctx, key); err != nil && !errors.Is(err, storage.ErrNotFound) {
		logger.Warnf("media file removal failed for %s: %v", key, err)
	}
	return s.repo.Delete(ctx, id)
}

// storedName builds a collision-resistant stored filename:
// unix-millis, a random suffix, and the original extension.
func storedName(now time.Time, original string) string {
	ext := strings.ToLower(path.Ext(original))
	suffix := strings.SplitN(uuid.NewString(), "-", 2)[0]
	return fmt.Sprintf("%d-%s%s", now.UnixMilli(), suffix, ext)
}

func originalName(name, fallback string) string {
	if name != "" {
		return name
	}
	return fallback
}

func humanSize(n int64) string {
	return fmt.Sprintf("%d KB", int64(math.Round(float64(n)/1024)))
}

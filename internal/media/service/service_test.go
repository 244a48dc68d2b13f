package service

import (
	"context"
	"errors"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/amigdala/cms-backend/internal/media"
	"github.com/amigdala/cms-backend/internal/media/repository"
	"github.com/amigdala/cms-backend/internal/storage"
	"github.com/stretchr/testify/require"
)

const testCeiling = 64 * 1024

func newTestService(t *testing.T, backend storage.Backend) (*Service, *repository.MemoryRepo, string) {
	t.Helper()
	repo := repository.NewMemoryRepo()
	spool := t.TempDir()
	return New(repo, backend, testCeiling, spool), repo, spool
}

func localBackend(t *testing.T) *storage.LocalBackend {
	t.Helper()
	b, err := storage.NewLocalBackend(t.TempDir())
	require.NoError(t, err)
	return b
}

func TestUploadHappyPath(t *testing.T) {
	backend := localBackend(t)
	svc, repo, _ := newTestService(t, backend)
	ctx := context.Background()

	item, err := svc.Upload(ctx, Upload{
		Reader:      strings.NewReader("fake image bytes"),
		Name:        "photo.PNG",
		ContentType: "image/png",
		Size:        16,
	})
	require.NoError(t, err)
	require.False(t, item.Warning)
	require.Equal(t, "photo.PNG", item.Name)
	require.True(t, strings.HasPrefix(item.Path, "/uploads/"))
	require.True(t, strings.HasSuffix(item.Path, ".png"), "extension is preserved lowercase: %s", item.Path)
	require.Contains(t, item.APIURL, "/api/image?path=")
	require.Equal(t, "image/png", item.Type)
	require.NotEmpty(t, item.ID)

	// metadata row exists
	got, err := repo.Get(ctx, item.ID)
	require.NoError(t, err)
	require.Equal(t, item.Path, got.Path)

	// the bytes are durable under the stored key
	rc, err := backend.Open(ctx, strings.TrimPrefix(item.Path, "/uploads/"))
	require.NoError(t, err)
	data, err := io.ReadAll(rc)
	require.NoError(t, err)
	rc.Close()
	require.Equal(t, "fake image bytes", string(data))
}

func TestUploadRejectsBeforeSideEffects(t *testing.T) {
	backend := localBackend(t)
	svc, repo, _ := newTestService(t, backend)
	ctx := context.Background()

	_, err := svc.Upload(ctx, Upload{Name: "x.txt", ContentType: "text/plain", Reader: strings.NewReader("hi")})
	require.ErrorIs(t, err, ErrInvalidType)

	_, err = svc.Upload(ctx, Upload{ContentType: "image/png"})
	require.ErrorIs(t, err, ErrNoFile)

	_, err = svc.Upload(ctx, Upload{
		Reader:      strings.NewReader("x"),
		ContentType: "image/png",
		Size:        testCeiling + 1,
	})
	require.ErrorIs(t, err, ErrTooLarge)

	// a reader longer than its declared size still hits the ceiling
	_, err = svc.Upload(ctx, Upload{
		Reader:      strings.NewReader(strings.Repeat("a", testCeiling+10)),
		ContentType: "image/png",
		Size:        10,
	})
	require.ErrorIs(t, err, ErrTooLarge)

	items, err := repo.List(ctx)
	require.NoError(t, err)
	require.Empty(t, items, "rejected uploads must not create metadata rows")

	entries, err := os.ReadDir(backend.Dir())
	require.NoError(t, err)
	require.Empty(t, entries, "rejected uploads must not store files")
}

type failingBackend struct{}

func (failingBackend) Save(context.Context, string, io.Reader, int64, string) error {
	return errors.New("backend down")
}
func (failingBackend) Open(context.Context, string) (io.ReadCloser, error) {
	return nil, storage.ErrNotFound
}
func (failingBackend) Remove(context.Context, string) error { return storage.ErrNotFound }

func TestUploadCleansSpoolOnBackendFailure(t *testing.T) {
	svc, repo, spool := newTestService(t, failingBackend{})
	ctx := context.Background()

	_, err := svc.Upload(ctx, Upload{
		Reader:      strings.NewReader("bytes"),
		Name:        "a.png",
		ContentType: "image/png",
		Size:        5,
	})
	require.Error(t, err)

	entries, err := os.ReadDir(spool)
	require.NoError(t, err)
	require.Empty(t, entries, "temp file must be removed on the failure path")

	items, err := repo.List(ctx)
	require.NoError(t, err)
	require.Empty(t, items)
}

type insertFailRepo struct{ *repository.MemoryRepo }

func (insertFailRepo) Insert(context.Context, *media.Item) error {
	return errors.New("metadata store down")
}

func TestUploadWarnsWhenMetadataInsertFails(t *testing.T) {
	backend := localBackend(t)
	spool := t.TempDir()
	repo := insertFailRepo{MemoryRepo: repository.NewMemoryRepo()}
	svc := New(repo, backend, testCeiling, spool)

	item, err := svc.Upload(context.Background(), Upload{
		Reader:      strings.NewReader("bytes"),
		Name:        "a.png",
		ContentType: "image/png",
		Size:        5,
	})
	require.NoError(t, err, "stored file must not be reported as an outright failure")
	require.True(t, item.Warning)
	require.NotEmpty(t, item.Path)

	// the orphan file is still there
	rc, err := backend.Open(context.Background(), strings.TrimPrefix(item.Path, "/uploads/"))
	require.NoError(t, err)
	rc.Close()
}

func TestDelete(t *testing.T) {
	backend := localBackend(t)
	svc, _, _ := newTestService(t, backend)
	ctx := context.Background()

	item, err := svc.Upload(ctx, Upload{
		Reader:      strings.NewReader("bytes"),
		Name:        "a.png",
		ContentType: "image/png",
		Size:        5,
	})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, item.ID))
	items, err := svc.List(ctx)
	require.NoError(t, err)
	require.Empty(t, items)

	require.ErrorIs(t, svc.Delete(ctx, item.ID), ErrNotFound)
	require.ErrorIs(t, svc.Delete(ctx, "never-existed"), ErrNotFound)
}

func TestDeleteSurvivesMissingFile(t *testing.T) {
	backend := localBackend(t)
	svc, _, _ := newTestService(t, backend)
	ctx := context.Background()

	item, err := svc.Upload(ctx, Upload{
		Reader:      strings.NewReader("bytes"),
		Name:        "a.png",
		ContentType: "image/png",
		Size:        5,
	})
	require.NoError(t, err)

	// file vanishes out of band
	require.NoError(t, backend.Remove(ctx, strings.TrimPrefix(item.Path, "/uploads/")))

	// metadata row is still removed
	require.NoError(t, svc.Delete(ctx, item.ID))
	items, err := svc.List(ctx)
	require.NoError(t, err)
	require.Empty(t, items)
}

package media

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"newswire_listener/internal/domain"
)

// memAssetStore keeps assets in memory and records what Sideload saw.
type memAssetStore struct {
	mu          sync.Mutex
	bySourceURL map[string]*domain.MediaAsset
	nextID      int64

	findErr     error
	sideloadErr error

	sideloads []sideloadCall
}

type sideloadCall struct {
	tempPath  string
	name      string
	recordID  int64
	sourceURL string
	content   string
}

func newMemAssetStore() *memAssetStore {
	return &memAssetStore{bySourceURL: map[string]*domain.MediaAsset{}, nextID: 1}
}

func (m *memAssetStore) FindBySourceURL(_ context.Context, sourceURL string) (*domain.MediaAsset, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.findErr != nil {
		return nil, m.findErr
	}
	return m.bySourceURL[sourceURL], nil
}

func (m *memAssetStore) Sideload(_ context.Context, tempPath, name string, ownerRecordID int64, sourceURL string) (*domain.MediaAsset, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.sideloadErr != nil {
		return nil, m.sideloadErr
	}

	data, err := os.ReadFile(tempPath)
	if err != nil {
		return nil, err
	}
	m.sideloads = append(m.sideloads, sideloadCall{
		tempPath:  tempPath,
		name:      name,
		recordID:  ownerRecordID,
		sourceURL: sourceURL,
		content:   string(data),
	})

	asset := &domain.MediaAsset{
		ID:        m.nextID,
		RecordID:  ownerRecordID,
		SourceURL: sourceURL,
		PublicURL: "https://cms.example.com/media/" + name,
	}
	m.nextID++
	m.bySourceURL[sourceURL] = asset
	return asset, nil
}

func newTestImporter(t *testing.T, assets AssetStore) *Importer {
	t.Helper()
	i := NewImporter(assets, time.Second, slog.New(slog.NewTextHandler(io.Discard, nil)))
	i.tmpDir = t.TempDir()
	return i
}

func TestResolve_DownloadsAndSideloads(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("jpeg-bytes"))
	}))
	defer srv.Close()

	store := newMemAssetStore()
	imp := newTestImporter(t, store)

	asset, err := imp.Resolve(context.Background(), srv.URL+"/photos/house.jpg", 42)
	require.NoError(t, err)
	require.NotNil(t, asset)

	require.Len(t, store.sideloads, 1)
	call := store.sideloads[0]
	assert.Equal(t, "house.jpg", call.name)
	assert.Equal(t, int64(42), call.recordID)
	assert.Equal(t, srv.URL+"/photos/house.jpg", call.sourceURL)
	assert.Equal(t, "jpeg-bytes", call.content)

	// Temp file is gone after the import.
	_, statErr := os.Stat(call.tempPath)
	assert.True(t, os.IsNotExist(statErr))
}

func TestResolve_ReusesExistingAsset(t *testing.T) {
	store := newMemAssetStore()
	existing := &domain.MediaAsset{ID: 7, SourceURL: "https://img.test/a.jpg", PublicURL: "https://cms.example.com/media/a.jpg"}
	store.bySourceURL[existing.SourceURL] = existing

	// No server is running; a download attempt would fail loudly.
	imp := newTestImporter(t, store)

	asset, err := imp.Resolve(context.Background(), existing.SourceURL, 42)
	require.NoError(t, err)
	assert.Same(t, existing, asset)
	assert.Empty(t, store.sideloads)
}

func TestResolve_SecondCallDoesNotRedownload(t *testing.T) {
	var hits int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		_, _ = w.Write([]byte("x"))
	}))
	defer srv.Close()

	store := newMemAssetStore()
	imp := newTestImporter(t, store)

	first, err := imp.Resolve(context.Background(), srv.URL+"/a.jpg", 1)
	require.NoError(t, err)
	second, err := imp.Resolve(context.Background(), srv.URL+"/a.jpg", 1)
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, 1, hits)
}

func TestResolve_DownloadFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	imp := newTestImporter(t, newMemAssetStore())

	_, err := imp.Resolve(context.Background(), srv.URL+"/missing.jpg", 1)

	var importErr *ImportError
	require.ErrorAs(t, err, &importErr)
	assert.Equal(t, StageDownload, importErr.Stage)
	assert.Equal(t, srv.URL+"/missing.jpg", importErr.URL)
}

func TestResolve_SideloadFailureRemovesTempFile(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("x"))
	}))
	defer srv.Close()

	store := newMemAssetStore()
	store.sideloadErr = errors.New("disk full")
	imp := newTestImporter(t, store)

	_, err := imp.Resolve(context.Background(), srv.URL+"/a.jpg", 1)

	var importErr *ImportError
	require.ErrorAs(t, err, &importErr)
	assert.Equal(t, StageSideload, importErr.Stage)

	entries, readErr := os.ReadDir(imp.tmpDir)
	require.NoError(t, readErr)
	assert.Empty(t, entries)
}

func TestResolve_FindFailure(t *testing.T) {
	store := newMemAssetStore()
	store.findErr = errors.New("connection refused")
	imp := newTestImporter(t, store)

	_, err := imp.Resolve(context.Background(), "https://img.test/a.jpg", 1)

	var importErr *ImportError
	require.ErrorAs(t, err, &importErr)
	assert.ErrorContains(t, err, "connection refused")
}

func TestAssetName_StreetView(t *testing.T) {
	u := "https://maps.googleapis.com/maps/api/streetview?location=1+Main+St&size=640x480"

	name := assetName(u)

	sum := sha256.Sum256([]byte(u))
	assert.Equal(t, hex.EncodeToString(sum[:])[:20]+".jpg", name)
	assert.True(t, isStreetView(u))
}

func TestAssetName_FromPath(t *testing.T) {
	assert.Equal(t, "storm-track.png", assetName("https://img.test/2026/storm-track.png"))
	assert.Equal(t, "photo-1.jpg", assetName("https://img.test/photo%201.jpg"))
}

func TestAssetName_NoUsableBase(t *testing.T) {
	// No extension in the path base means no usable filename.
	name := assetName("https://img.test/render?id=5")
	assert.True(t, strings.HasSuffix(name, ".img"), "got %q", name)
}

func TestDownload_TempNamesDifferForSameBasename(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(r.URL.Path))
	}))
	defer srv.Close()

	store := newMemAssetStore()
	imp := newTestImporter(t, store)

	_, err := imp.Resolve(context.Background(), srv.URL+"/one/img.jpg", 1)
	require.NoError(t, err)
	_, err = imp.Resolve(context.Background(), srv.URL+"/two/img.jpg", 1)
	require.NoError(t, err)

	require.Len(t, store.sideloads, 2)
	assert.Equal(t, "img.jpg", store.sideloads[0].name)
	assert.Equal(t, "img.jpg", store.sideloads[1].name)
	assert.NotEqual(t, store.sideloads[0].tempPath, store.sideloads[1].tempPath)
	assert.Equal(t, "/one/img.jpg", store.sideloads[0].content)
	assert.Equal(t, "/two/img.jpg", store.sideloads[1].content)
}

func TestImportError_Unwrap(t *testing.T) {
	base := errors.New("boom")
	err := &ImportError{URL: "u", Stage: StageDownload, Err: base}

	assert.ErrorIs(t, err, base)
	assert.Contains(t, err.Error(), "download")
}

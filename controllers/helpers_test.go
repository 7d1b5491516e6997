package controllers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"github.com/yeremiapane/menu-service/router"
	"github.com/yeremiapane/menu-service/storage"
	"github.com/yeremiapane/menu-service/store"
	"github.com/yeremiapane/menu-service/store/storetest"
)

type testServer struct {
	router   *gin.Engine
	store    *store.Store
	imageDir string
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	st := storetest.New(t)
	imageDir := filepath.Join(t.TempDir(), "images")
	images, err := storage.NewLocalImageStore(imageDir, router.LocalImagePath)
	require.NoError(t, err)

	r := router.SetupRouter(router.Deps{
		Store:          st,
		Images:         images,
		UploadDir:      t.TempDir(),
		MaxUploadBytes: 1 << 20,
		LocalImageDir:  imageDir,
	})
	return &testServer{router: r, store: st, imageDir: imageDir}
}

func (s *testServer) do(method, path string, body io.Reader, contentType string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, body)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *testServer) get(path string) *httptest.ResponseRecorder {
	return s.do(http.MethodGet, path, nil, "")
}

func (s *testServer) delete(path string) *httptest.ResponseRecorder {
	return s.do(http.MethodDelete, path, nil, "")
}

func (s *testServer) sendJSON(t *testing.T, method, path string, payload interface{}) *httptest.ResponseRecorder {
	t.Helper()
	b, err := json.Marshal(payload)
	require.NoError(t, err)
	return s.do(method, path, bytes.NewReader(b), "application/json")
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}

func routerWithUploadDir(t *testing.T, s *testServer, dir string) *gin.Engine {
	t.Helper()
	images, err := storage.NewLocalImageStore(s.imageDir, router.LocalImagePath)
	require.NoError(t, err)
	return router.SetupRouter(router.Deps{
		Store:         s.store,
		Images:        images,
		UploadDir:     dir,
		LocalImageDir: s.imageDir,
	})
}

package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/wversluys/fetcharr/pkg/catalog"
	"github.com/wversluys/fetcharr/pkg/logger"
	"github.com/wversluys/fetcharr/pkg/manager"
	storageMock "github.com/wversluys/fetcharr/pkg/storage/mocks"
	"github.com/wversluys/fetcharr/pkg/storage/sqlite/schema/gen/model"
)

func newTestServer(t *testing.T) (*Server, *storageMock.MockStorage, string) {
	t.Helper()
	ctrl := gomock.NewController(t)
	store := storageMock.NewMockStorage(ctrl)

	catalogPath := filepath.Join(t.TempDir(), "catalog.json")
	require.NoError(t, catalog.Save(catalogPath, catalog.Catalog{
		Series: []catalog.MediaItem{{Title: "Some Show", ImdbID: "tt1"}},
		Films:  []catalog.MediaItem{{Title: "Heat", Year: 1995}},
	}))

	return New(logger.Get(), manager.MediaManager{}, store, catalogPath), store, catalogPath
}

func TestHealthz(t *testing.T) {
	s, _, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"response":"ok"}`, rec.Body.String())
}

func TestGetCatalog(t *testing.T) {
	s, _, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/catalog", nil)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var response struct {
		Response catalog.Catalog `json:"response"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Len(t, response.Response.Series, 1)
	assert.Len(t, response.Response.Films, 1)
	assert.Equal(t, "Some Show", response.Response.Series[0].Title)
}

func TestAddSeries(t *testing.T) {
	s, _, catalogPath := newTestServer(t)

	body := bytes.NewBufferString(`{"title":"Other Show","imdb_id":"tt2","seasons":[1,2]}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/catalog/series", body)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	cat, err := catalog.Load(req.Context(), catalogPath)
	require.NoError(t, err)
	require.Len(t, cat.Series, 2)
	assert.Equal(t, "Other Show", cat.Series[1].Title)
	assert.Equal(t, []int{1, 2}, cat.Series[1].Seasons)
}

func TestAddSeries_InvalidBody(t *testing.T) {
	s, _, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/catalog/series", bytes.NewBufferString("{"))
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	req = httptest.NewRequest(http.MethodPost, "/api/v1/catalog/series", bytes.NewBufferString(`{"imdb_id":"tt2"}`))
	rec = httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRemoveFilm(t *testing.T) {
	s, _, catalogPath := newTestServer(t)

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/catalog/films/Heat", nil)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	cat, err := catalog.Load(req.Context(), catalogPath)
	require.NoError(t, err)
	assert.Empty(t, cat.Films)
	assert.Len(t, cat.Series, 1, "series are untouched")
}

func TestRemoveFilm_NotFound(t *testing.T) {
	s, _, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/catalog/films/Missing", nil)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestListGrabs(t *testing.T) {
	s, store, _ := newTestServer(t)

	store.EXPECT().ListGrabs(gomock.Any(), 0, 0).Return([]*model.Grab{
		{ID: 1, ImdbID: "tt1", Title: "Some Show", ReleaseName: "Some.Show.S01E01.1080p", State: "pending"},
	}, nil)
	store.EXPECT().CountGrabs(gomock.Any()).Return(1, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/grabs", nil)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Some.Show.S01E01.1080p")
	assert.Contains(t, rec.Body.String(), `"totalItems":1`)
}

func TestListGrabs_Paginated(t *testing.T) {
	s, store, _ := newTestServer(t)

	store.EXPECT().ListGrabs(gomock.Any(), 10, 10).Return([]*model.Grab{}, nil)
	store.EXPECT().CountGrabs(gomock.Any()).Return(12, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/grabs?page=2&pageSize=10", nil)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"totalPages":2`)
}

func TestListGrabs_BadPage(t *testing.T) {
	s, _, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/grabs?page=zero", nil)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

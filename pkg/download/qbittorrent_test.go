package download

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	httpMock "github.com/wversluys/fetcharr/pkg/download/mocks/http"
)

func qbittorrentResponse(status int, body string, cookies ...string) *http.Response {
	header := http.Header{}
	for _, c := range cookies {
		header.Add("Set-Cookie", c)
	}
	return &http.Response{
		StatusCode: status,
		Header:     header,
		Body:       io.NopCloser(bytes.NewBufferString(body)),
	}
}

func TestNewQbittorrentClient(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockHttp := httpMock.NewMockHTTPClient(ctrl)

	client := NewQbittorrentClient(mockHttp, "http", "localhost", 0, "admin", "hunter2")
	qb, ok := client.(*QbittorrentClient)
	assert.True(t, ok, "client should be of type *QbittorrentClient")
	assert.Equal(t, "localhost", qb.host, "Host should not include port")

	clientWithPort := NewQbittorrentClient(mockHttp, "http", "localhost", 8080, "admin", "hunter2")
	qbWithPort, ok := clientWithPort.(*QbittorrentClient)
	assert.True(t, ok, "client should be of type *QbittorrentClient")
	assert.Equal(t, "localhost:8080", qbWithPort.host, "Host should include port")
}

func TestQbittorrentClient_Add(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockHttp := httpMock.NewMockHTTPClient(ctrl)
		client := NewQbittorrentClient(mockHttp, "http", "localhost", 8080, "admin", "hunter2")

		login := mockHttp.EXPECT().Do(gomock.Any()).DoAndReturn(func(req *http.Request) (*http.Response, error) {
			assert.Equal(t, "/api/v2/auth/login", req.URL.Path)
			require.NoError(t, req.ParseForm())
			assert.Equal(t, "admin", req.PostForm.Get("username"))
			assert.Equal(t, "hunter2", req.PostForm.Get("password"))
			return qbittorrentResponse(http.StatusOK, "Ok.", "SID=abc123; path=/"), nil
		})
		add := mockHttp.EXPECT().Do(gomock.Any()).DoAndReturn(func(req *http.Request) (*http.Response, error) {
			assert.Equal(t, "/api/v2/torrents/add", req.URL.Path)
			cookie, err := req.Cookie("SID")
			require.NoError(t, err)
			assert.Equal(t, "abc123", cookie.Value)
			require.NoError(t, req.ParseForm())
			assert.Equal(t, "magnet:?xt=urn:btih:abc&dn=Some.Show", req.PostForm.Get("urls"))
			assert.Equal(t, "/downloads/Some_Show", req.PostForm.Get("savepath"))
			assert.Equal(t, "Some Show", req.PostForm.Get("category"))
			return qbittorrentResponse(http.StatusOK, "Ok."), nil
		})
		gomock.InOrder(login, add)

		err := client.Add(ctx, AddRequest{
			MagnetURI: "magnet:?xt=urn:btih:abc&dn=Some.Show",
			SavePath:  "/downloads/Some_Show",
			Category:  "Some Show",
		})
		assert.NoError(t, err)
	})

	t.Run("rejected torrent", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockHttp := httpMock.NewMockHTTPClient(ctrl)
		client := NewQbittorrentClient(mockHttp, "http", "localhost", 8080, "admin", "hunter2")

		gomock.InOrder(
			mockHttp.EXPECT().Do(gomock.Any()).Return(qbittorrentResponse(http.StatusOK, "Ok.", "SID=abc123; path=/"), nil),
			mockHttp.EXPECT().Do(gomock.Any()).Return(qbittorrentResponse(http.StatusOK, "Fails."), nil),
		)

		err := client.Add(ctx, AddRequest{MagnetURI: "magnet:?xt=urn:btih:abc"})
		assert.EqualError(t, err, "torrent was rejected")
	})

	t.Run("refused login", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockHttp := httpMock.NewMockHTTPClient(ctrl)
		client := NewQbittorrentClient(mockHttp, "http", "localhost", 8080, "admin", "wrong")

		mockHttp.EXPECT().Do(gomock.Any()).Return(qbittorrentResponse(http.StatusOK, "Fails."), nil)

		err := client.Add(ctx, AddRequest{MagnetURI: "magnet:?xt=urn:btih:abc"})
		assert.EqualError(t, err, "login was refused")
	})

	t.Run("expired session is refreshed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockHttp := httpMock.NewMockHTTPClient(ctrl)
		client := NewQbittorrentClient(mockHttp, "http", "localhost", 8080, "admin", "hunter2")
		client.(*QbittorrentClient).setSessionID("stale")

		gomock.InOrder(
			mockHttp.EXPECT().Do(gomock.Any()).Return(qbittorrentResponse(http.StatusForbidden, ""), nil),
			mockHttp.EXPECT().Do(gomock.Any()).Return(qbittorrentResponse(http.StatusOK, "Ok.", "SID=fresh; path=/"), nil),
			mockHttp.EXPECT().Do(gomock.Any()).DoAndReturn(func(req *http.Request) (*http.Response, error) {
				cookie, err := req.Cookie("SID")
				require.NoError(t, err)
				assert.Equal(t, "fresh", cookie.Value)
				return qbittorrentResponse(http.StatusOK, "Ok."), nil
			}),
		)

		err := client.Add(ctx, AddRequest{MagnetURI: "magnet:?xt=urn:btih:abc"})
		assert.NoError(t, err)
	})
}

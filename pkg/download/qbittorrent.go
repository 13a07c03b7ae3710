package download

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"

	"github.com/wversluys/fetcharr/pkg/logger"
	"go.uber.org/zap"
)

// QbittorrentClient talks to the qBittorrent WebUI API. The session cookie
// is acquired lazily and refreshed when the server rejects it.
type QbittorrentClient struct {
	http     HTTPClient
	scheme   string
	host     string
	username string
	password string
	mutex    *sync.Mutex
	session  string
}

func NewQbittorrentClient(http HTTPClient, scheme, host string, port int, username, password string) DownloadClient {
	if port != 0 {
		host = fmt.Sprintf("%s:%d", host, port)
	}

	return &QbittorrentClient{
		http:     http,
		scheme:   scheme,
		host:     host,
		username: username,
		password: password,
		mutex:    new(sync.Mutex),
		session:  "",
	}
}

// Add submits a magnet link
func (c *QbittorrentClient) Add(ctx context.Context, request AddRequest) error {
	log := logger.FromCtx(ctx)

	form := url.Values{}
	form.Set("urls", request.MagnetURI)
	if request.SavePath != "" {
		form.Set("savepath", request.SavePath)
	}
	if request.Category != "" {
		form.Set("category", request.Category)
	}

	body, err := c.do(ctx, "/api/v2/torrents/add", form)
	if err != nil {
		log.Debug("failed to add torrent", zap.Error(err))
		return err
	}

	// the WebUI API reports a rejected torrent in the body, not the status
	if strings.TrimSpace(string(body)) == "Fails." {
		return errors.New("torrent was rejected")
	}

	return nil
}

// login opens a new WebUI session and stores its cookie
func (c *QbittorrentClient) login(ctx context.Context) error {
	form := url.Values{}
	form.Set("username", c.username)
	form.Set("password", c.password)

	u := url.URL{
		Host:   c.host,
		Scheme: c.scheme,
		Path:   "/api/v2/auth/login",
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u.String(), strings.NewReader(form.Encode()))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status code: %v", resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if strings.TrimSpace(string(body)) != "Ok." {
		return errors.New("login was refused")
	}

	for _, cookie := range resp.Cookies() {
		if cookie.Name == "SID" {
			c.setSessionID(cookie.Value)
			return nil
		}
	}

	return errors.New("no session cookie in login response")
}

func (c *QbittorrentClient) do(ctx context.Context, path string, form url.Values, retry ...bool) ([]byte, error) {
	if c.http == nil {
		return nil, errors.New("http client is nil")
	}

	if c.getSessionID() == "" {
		if err := c.login(ctx); err != nil {
			return nil, err
		}
	}

	u := url.URL{
		Host:   c.host,
		Scheme: c.scheme,
		Path:   path,
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u.String(), strings.NewReader(form.Encode()))
	if err != nil {
		return nil, err
	}

	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.AddCookie(&http.Cookie{Name: "SID", Value: c.getSessionID()})

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	// the session expired, log in again and retry once
	case http.StatusForbidden:
		if len(retry) != 0 && retry[0] {
			return nil, errors.New("session is invalid after retry")
		}

		c.setSessionID("")
		return c.do(ctx, path, form, true)

	case http.StatusOK:
		return io.ReadAll(resp.Body)

	default:
		return nil, fmt.Errorf("unexpected status code: %v", resp.Status)
	}
}

func (c *QbittorrentClient) setSessionID(id string) {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	c.session = id
}

func (c *QbittorrentClient) getSessionID() string {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	return c.session
}

package download

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sync"
)

type TransmissionClient struct {
	http    HTTPClient
	scheme  string
	host    string
	mutex   *sync.Mutex
	session string
}

type TransmissionRequest struct {
	Arguments any           `json:"arguments"`
	Tag       *int          `json:"tag,omitempty"`
	Method    torrentMethod `json:"method"`
}

type torrentMethod string

const (
	AddTorrentMethod torrentMethod = "torrent-add"
)

func NewTransmissionClient(http HTTPClient, scheme, host string, port int) DownloadClient {
	if port != 0 {
		host = fmt.Sprintf("%s:%d", host, port)
	}

	return &TransmissionClient{
		http:    http,
		scheme:  scheme,
		host:    host,
		mutex:   new(sync.Mutex),
		session: "",
	}
}

type AddTorrentPayload struct {
	DownloadDir string   `json:"download-dir,omitempty"`
	Filename    string   `json:"filename"`
	Labels      []string `json:"labels,omitempty"`
}

// AddTorrentResponse represents a response from a torrent-add rpc call
type AddTorrentResponse struct {
	Result    string                      `json:"result"`
	Arguments AddTorrentResponseArguments `json:"arguments"`
}

// AddTorrentResponseArguments contains the details about the added torrent
type AddTorrentResponseArguments struct {
	TorrentAdded AddedTorrent `json:"torrent-added"`
}

// AddedTorrent represents the details of the added torrent
type AddedTorrent struct {
	HashString string `json:"hashString"`
	Name       string `json:"name"`
	ID         int    `json:"id"`
}

// Add creates a new torrent
func (c *TransmissionClient) Add(ctx context.Context, request AddRequest) error {
	arguments := AddTorrentPayload{
		DownloadDir: request.SavePath,
		Filename:    request.MagnetURI,
	}
	if request.Category != "" {
		arguments.Labels = []string{request.Category}
	}

	transmissionRequest := &TransmissionRequest{
		Method:    AddTorrentMethod,
		Arguments: arguments,
	}

	b, err := json.Marshal(transmissionRequest)
	if err != nil {
		return err
	}

	url := url.URL{
		Host:   c.host,
		Scheme: c.scheme,
		Path:   "/transmission/rpc",
	}

	b, err = c.do(ctx, &url, b)
	if err != nil {
		return err
	}

	var response AddTorrentResponse
	err = json.Unmarshal(b, &response)
	if err != nil {
		return err
	}

	if response.Result != "success" {
		return fmt.Errorf("unexpected result: %v", response.Result)
	}

	return nil
}

const (
	sessionHeader = "x-transmission-session-id"
)

func (c *TransmissionClient) do(ctx context.Context, url *url.URL, body []byte, retry ...bool) ([]byte, error) {
	if c.http == nil {
		return nil, errors.New("http client is nil")
	}

	if url == nil {
		return nil, errors.New("url is nil")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url.String(), bytes.NewBuffer(body))
	if err != nil {
		return nil, err
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(sessionHeader, c.getSessionID())

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	// need to get a new session id from the response if 409
	case http.StatusConflict:
		// prevent infinitely attempting to get a new session id if we got a session previously in this same request attempt
		if len(retry) != 0 && retry[0] {
			return nil, errors.New("session id is invalid after retry")
		}

		session := resp.Header.Get(sessionHeader)
		if session == "" {
			return nil, errors.New("session id is empty")
		}

		// make the request again with new session
		c.setSessionID(session)
		return c.do(ctx, url, body, true)

	case http.StatusOK:
		return io.ReadAll(resp.Body)

	default:
		return nil, fmt.Errorf("unexpected status code: %v", resp.Status)
	}
}

func (c *TransmissionClient) setSessionID(id string) {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	c.session = id
}

func (c *TransmissionClient) getSessionID() string {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	return c.session
}

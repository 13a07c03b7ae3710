package http

import (
	"bytes"
	"errors"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wversluys/fetcharr/pkg/http/mocks"
	"go.uber.org/mock/gomock"
)

func respond(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Header:     http.Header{},
		Body:       io.NopCloser(bytes.NewBufferString(body)),
	}
}

func TestRateLimitedClient_Do(t *testing.T) {
	t.Run("transport error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		doer := mocks.NewMockDoer(ctrl)

		req, err := http.NewRequest(http.MethodGet, "https://example.com", nil)
		require.NoError(t, err)

		doer.EXPECT().Do(req).Return(nil, errors.New("connection refused"))

		client := NewRateLimitedClient(WithDoer(doer))
		resp, err := client.Do(req)
		assert.Error(t, err)
		assert.Nil(t, resp)
	})

	t.Run("success passes through", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		doer := mocks.NewMockDoer(ctrl)

		req, err := http.NewRequest(http.MethodGet, "https://example.com", nil)
		require.NoError(t, err)

		doer.EXPECT().Do(req).Return(respond(http.StatusOK, "ok"), nil)

		client := NewRateLimitedClient(WithDoer(doer))
		resp, err := client.Do(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		b, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		assert.Equal(t, "ok", string(b))
	})

	t.Run("429 retried until the cap", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		doer := mocks.NewMockDoer(ctrl)

		req, err := http.NewRequest(http.MethodGet, "https://example.com", nil)
		require.NoError(t, err)

		doer.EXPECT().Do(req).Return(respond(http.StatusTooManyRequests, "slow down"), nil).Times(2)

		client := NewRateLimitedClient(WithDoer(doer), WithMaxAttempts(2), WithBaseBackoff(time.Millisecond))
		resp, err := client.Do(req)
		assert.ErrorIs(t, err, ErrRateLimited)
		assert.ErrorContains(t, err, "rate limited after 2 attempts")
		assert.Nil(t, resp)
	})

	t.Run("429 then success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		doer := mocks.NewMockDoer(ctrl)

		req, err := http.NewRequest(http.MethodGet, "https://example.com", nil)
		require.NoError(t, err)

		gomock.InOrder(
			doer.EXPECT().Do(req).Return(respond(http.StatusTooManyRequests, ""), nil),
			doer.EXPECT().Do(req).Return(respond(http.StatusOK, "eventually"), nil),
		)

		client := NewRateLimitedClient(WithDoer(doer), WithBaseBackoff(time.Millisecond))
		resp, err := client.Do(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})
}

func TestRateLimitedClient_retryDelay(t *testing.T) {
	client := NewRateLimitedClient(WithBaseBackoff(time.Second))

	t.Run("retry-after header wins", func(t *testing.T) {
		resp := respond(http.StatusTooManyRequests, "")
		resp.Header.Set("Retry-After", "2")
		assert.Equal(t, 2*time.Second, client.retryDelay(resp, 0))
	})

	t.Run("exponential backoff", func(t *testing.T) {
		resp := respond(http.StatusTooManyRequests, "")
		assert.Equal(t, 8*time.Second, client.retryDelay(resp, 3))
	})
}

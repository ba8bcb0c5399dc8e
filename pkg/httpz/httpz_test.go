package httpz

import (
	"bytes"
	"errors"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/kylegrant/costar/pkg/httpz/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestNewClient(t *testing.T) {
	t.Run("default", func(t *testing.T) {
		c := NewClient()
		hc, ok := c.client.(*http.Client)
		require.True(t, ok)
		assert.Equal(t, DefaultTimeout, hc.Timeout)
	})

	t.Run("with timeout", func(t *testing.T) {
		c := NewClient(WithTimeout(time.Second * 42))
		hc, ok := c.client.(*http.Client)
		require.True(t, ok)
		assert.Equal(t, time.Second*42, hc.Timeout)
	})

	t.Run("zero timeout keeps the default", func(t *testing.T) {
		c := NewClient(WithTimeout(0))
		hc, ok := c.client.(*http.Client)
		require.True(t, ok)
		assert.Equal(t, DefaultTimeout, hc.Timeout)
	})

	t.Run("with http client", func(t *testing.T) {
		inner := &http.Client{}
		c := NewClient(WithHTTPClient(inner))
		assert.Same(t, inner, c.client)
	})
}

func TestClient_Do(t *testing.T) {
	t.Run("error during request", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mhttp := mocks.NewMockHTTPClient(ctrl)

		req, err := http.NewRequest("GET", "https://example.com", nil)
		require.NoError(t, err)

		mhttp.EXPECT().Do(req).Return(nil, errors.New("http error"))
		client := NewClient(WithHTTPClient(mhttp))
		resp, err := client.Do(req)
		assert.Error(t, err)
		assert.Nil(t, resp)
	})

	t.Run("ok response", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mhttp := mocks.NewMockHTTPClient(ctrl)

		req, err := http.NewRequest("GET", "https://example.com", nil)
		require.NoError(t, err)

		mhttp.EXPECT().Do(req).Return(&http.Response{
			StatusCode: http.StatusOK,
			Body:       io.NopCloser(bytes.NewBufferString("payload")),
		}, nil)

		client := NewClient(WithHTTPClient(mhttp))
		resp, err := client.Do(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		b, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		assert.Equal(t, "payload", string(b))
	})

	t.Run("non 200 response is an error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mhttp := mocks.NewMockHTTPClient(ctrl)

		req, err := http.NewRequest("GET", "https://example.com/missing.tsv.gz", nil)
		require.NoError(t, err)

		mhttp.EXPECT().Do(req).Return(&http.Response{
			Status:     "404 Not Found",
			StatusCode: http.StatusNotFound,
			Body:       io.NopCloser(bytes.NewBufferString("not found")),
		}, nil)

		client := NewClient(WithHTTPClient(mhttp))
		resp, err := client.Do(req)
		assert.ErrorContains(t, err, "unexpected status 404 Not Found")
		assert.Nil(t, resp)
	})
}

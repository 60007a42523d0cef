package http

import (
	"testing"

	"github.com/lumen-web/lumen/http/status"
	"github.com/lumen-web/lumen/kv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProto(t *testing.T) {
	request := NewRequest(kv.New(), kv.New(), nil)
	request.VersionMajor, request.VersionMinor = 1, 1
	assert.Equal(t, "HTTP/1.1", request.Proto())

	request.VersionMajor, request.VersionMinor = 12, 34
	assert.Equal(t, "HTTP/12.34", request.Proto())

	request.VersionMajor, request.VersionMinor = 0, 9
	assert.Equal(t, "HTTP/0.9", request.Proto())
}

func TestJSON(t *testing.T) {
	newRequest := func(contentType, body string) *Request {
		request := NewRequest(kv.New().Add("Content-Type", contentType), kv.New(), nil)
		request.Body = []byte(body)

		return request
	}

	type model struct {
		Name string `json:"name"`
	}

	t.Run("Simple", func(t *testing.T) {
		var m model
		request := newRequest("application/json", `{"name": "lumen"}`)
		require.NoError(t, request.JSON(&m))
		assert.Equal(t, "lumen", m.Name)
	})

	t.Run("WrongContentType", func(t *testing.T) {
		var m model
		request := newRequest("text/plain", `{"name": "lumen"}`)
		require.EqualError(t, request.JSON(&m), status.ErrUnsupportedMediaType.Error())
	})
}

func TestReset(t *testing.T) {
	request := NewRequest(kv.New(), kv.New(), nil)
	request.Method = "POST"
	request.Resource = "/path"
	request.RawQuery = "a=1"
	request.VersionMajor, request.VersionMinor = 1, 1
	request.Headers.Add("k", "v")
	request.Params.Add("a", "1")
	request.ContentLength = 3
	request.Body = []byte("abc")
	request.Valid = true

	request.Reset()

	assert.Empty(t, request.Method)
	assert.Empty(t, request.Resource)
	assert.Empty(t, request.RawQuery)
	assert.Zero(t, request.VersionMajor)
	assert.Zero(t, request.VersionMinor)
	assert.Zero(t, request.Headers.Len())
	assert.Zero(t, request.Params.Len())
	assert.Zero(t, request.ContentLength)
	assert.Empty(t, request.Body)
	assert.False(t, request.Valid)
}

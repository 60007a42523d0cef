package lumen

import (
	"fmt"
	"io"
	"net"
	"testing"

	"github.com/lumen-web/lumen/http"
	"github.com/lumen-web/lumen/transport"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const addr = "localhost:16100"

func echoHandler(request *http.Request, client transport.Client) {
	if !request.Valid {
		_ = client.Write([]byte("HTTP/1.1 400 Bad Request\r\n\r\n"))
		return
	}

	body := fmt.Sprintf(
		"%s %s %s name=%s body=%s",
		request.Method, request.Resource, request.Proto(),
		request.Params.Value("name"), request.Body,
	)
	_ = client.Write([]byte(fmt.Sprintf(
		"HTTP/1.1 200 OK\r\nContent-Length: %d\r\n\r\n%s", len(body), body,
	)))
}

func send(t *testing.T, raw string) string {
	conn, err := net.Dial("tcp", addr)
	require.NoError(t, err)
	defer func() {
		_ = conn.Close()
	}()

	_, err = conn.Write([]byte(raw))
	require.NoError(t, err)

	// the server closes the connection once the handler is done
	response, err := io.ReadAll(conn)
	require.NoError(t, err)

	return string(response)
}

func TestApp(t *testing.T) {
	app := New(addr)
	started := make(chan struct{})
	done := make(chan error)
	app.NotifyOnStart(func() {
		close(started)
	})

	go func() {
		done <- app.Serve(echoHandler)
	}()
	<-started

	t.Run("SimpleGET", func(t *testing.T) {
		response := send(t, "GET /greet?name=world HTTP/1.1\r\n\r\n")
		assert.Contains(t, response, "200 OK")
		assert.Contains(t, response, "GET /greet HTTP/1.1 name=world")
	})

	t.Run("POSTWithBody", func(t *testing.T) {
		response := send(t, "POST /submit HTTP/1.1\r\nContent-Length: 5\r\n\r\nhello")
		assert.Contains(t, response, "200 OK")
		assert.Contains(t, response, "body=hello")
	})

	t.Run("MalformedRequest", func(t *testing.T) {
		response := send(t, "GET / HXTP/1.1\r\n\r\n")
		assert.Contains(t, response, "400 Bad Request")
	})

	t.Run("InstantDisconnect", func(t *testing.T) {
		conn, err := net.Dial("tcp", addr)
		require.NoError(t, err)
		require.NoError(t, conn.Close())

		// the server must survive and keep serving
		response := send(t, "GET / HTTP/1.1\r\n\r\n")
		assert.Contains(t, response, "200 OK")
	})

	app.Stop()
	require.Error(t, <-done)
}

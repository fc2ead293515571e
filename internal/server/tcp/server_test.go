package tcp

import (
	"io"
	"net"
	"testing"
	"time"

	"github.com/ember-web/ember/http/status"
	"github.com/stretchr/testify/require"
)

func TestServer(t *testing.T) {
	sock, err := net.Listen("tcp", "localhost:0")
	require.NoError(t, err)

	server := NewServer(sock, func(conn net.Conn) {
		_, _ = conn.Write([]byte("hello"))
	})

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	conn, err := net.Dial("tcp", sock.Addr().String())
	require.NoError(t, err)

	greeting, err := io.ReadAll(conn)
	require.NoError(t, err)
	require.Equal(t, "hello", string(greeting))
	require.NoError(t, conn.Close())

	require.NoError(t, server.Stop())

	select {
	case err := <-errCh:
		require.ErrorIs(t, err, status.ErrShutdown)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop in time")
	}
}

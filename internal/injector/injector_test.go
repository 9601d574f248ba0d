package injector

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"honnef.co/go/spiro/internal/config"
)

func TestInitializeServer(t *testing.T) {
	cfg := config.Default()
	cfg.Server.ListenAddr = "127.0.0.1:0"

	srv, cleanup, err := InitializeServer(cfg)
	require.NoError(t, err)
	defer cleanup()

	require.NoError(t, srv.Start(context.Background()))
	defer srv.Stop(context.Background())

	resp, err := http.Get("http://" + srv.Addr().String() + "/")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestInitializeInvalidLevel(t *testing.T) {
	cfg := config.Default()
	cfg.Log.Level = "loud"

	_, _, err := InitializeServer(cfg)
	assert.Error(t, err)
	_, _, err = InitializeLogger(cfg)
	assert.Error(t, err)
}

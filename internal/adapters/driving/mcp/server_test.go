package mcp

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewServer(t *testing.T) {
	t.Run("missing assistant returns error", func(t *testing.T) {
		server, err := NewServer(&Ports{Regulations: &mockRegulationService{}})
		require.Error(t, err)
		assert.Nil(t, server)
		assert.ErrorIs(t, err, ErrMissingAssistantService)
	})

	t.Run("valid ports creates server", func(t *testing.T) {
		ports, _, _ := newTestPorts()
		server, err := NewServer(ports)
		require.NoError(t, err)
		assert.NotNil(t, server)
	})
}

func TestPorts_Validate(t *testing.T) {
	t.Run("empty ports", func(t *testing.T) {
		assert.ErrorIs(t, (&Ports{}).Validate(), ErrMissingAssistantService)
	})

	t.Run("missing regulations", func(t *testing.T) {
		ports := &Ports{Assistant: &mockAssistantService{}}
		assert.ErrorIs(t, ports.Validate(), ErrMissingRegulationService)
	})

	t.Run("all ports is valid", func(t *testing.T) {
		ports, _, _ := newTestPorts()
		assert.NoError(t, ports.Validate())
	})
}

func TestServer_RunHTTP_StopsOnCancel(t *testing.T) {
	ports, _, _ := newTestPorts()
	server, err := NewServer(ports)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- server.RunHTTP(ctx, "127.0.0.1:0") }()
	cancel()

	assert.NoError(t, <-done)
}

func TestServer_Serve_HTTPStopsOnCancel(t *testing.T) {
	ports, _, _ := newTestPorts()
	server, err := NewServer(ports)
	require.NoError(t, err)
	assert.NotNil(t, server.Handler())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.NoError(t, server.RunHTTP(ctx, "127.0.0.1:0"))
}

package telemetry

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"training-courses/internal/config/configs"
)

func TestSetupNoopWhenDisabled(t *testing.T) {
	shutdown, err := Setup(context.Background(), configs.Telemetry{Endpoint: "http://localhost:4318"})
	require.NoError(t, err)
	require.NoError(t, shutdown(context.Background()))
}

func TestSetupNoopWhenEndpointEmpty(t *testing.T) {
	shutdown, err := Setup(context.Background(), configs.Telemetry{Enabled: true})
	require.NoError(t, err)
	require.NoError(t, shutdown(context.Background()))
}

func TestSetupCreatesProvider(t *testing.T) {
	// Non-routable address: nothing is exported.
	shutdown, err := Setup(context.Background(), configs.Telemetry{
		Enabled:     true,
		Endpoint:    "http://192.0.2.1:4318",
		ServiceName: "test-service",
	})
	require.NoError(t, err)
	require.NoError(t, shutdown(context.Background()))
}

package pubsub

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"storerating/config"
	"storerating/internal/domain/constants"
	"storerating/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"
)

func TestModule_ProvidesEventPublisher(t *testing.T) {
	cfg := &config.Config{
		PubSub: &config.PubSubConfig{Provider: constants.PubSubProviderLocal, LocalEndpoint: "http://127.0.0.1:1/push"},
	}

	var publisher service.EventPublisher
	app := fxtest.New(t,
		fx.Supply(cfg),
		fx.Provide(
			func() context.Context { return context.Background() },
			func() *slog.Logger { return slog.New(slog.NewTextHandler(io.Discard, nil)) },
		),
		Module,
		fx.Populate(&publisher),
	)
	app.RequireStart()
	defer app.RequireStop()

	require.NotNil(t, publisher)
	assert.IsType(t, &localHTTPPublisher{}, publisher)
}

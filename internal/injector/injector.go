//go:build wireinject
// +build wireinject

// The build tag makes sure the stub is not built in the final build.

package injector

import (
	"github.com/google/wire"

	"honnef.co/go/spiro/internal/cache"
	"honnef.co/go/spiro/internal/config"
	"honnef.co/go/spiro/internal/log"
	"honnef.co/go/spiro/internal/server"
)

// InitializeServer wires a server from cfg. The cleanup function flushes the
// logger and must be called once the server has stopped.
func InitializeServer(cfg config.Config) (*server.Server, func(), error) {
	wire.Build(
		wire.FieldsOf(new(config.Config), "Log", "Cache"),
		log.Provide,
		wire.Bind(new(log.Log), new(*log.Logger)),
		cache.Provide,
		server.NewServer,
	)
	return nil, nil, nil
}

// InitializeLogger builds the logger used by the command line tools.
func InitializeLogger(cfg config.Config) (*log.Logger, func(), error) {
	wire.Build(
		wire.FieldsOf(new(config.Config), "Log"),
		log.Provide,
	)
	return nil, nil, nil
}

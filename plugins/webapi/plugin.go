package webapi

import (
	"context"
	"net/http"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/iotaledger/hive.go/daemon"
	"github.com/iotaledger/hive.go/events"
	"github.com/iotaledger/hive.go/logger"
	"github.com/iotaledger/hive.go/node"
	"github.com/labstack/echo"
	"github.com/labstack/echo/middleware"
	"go.uber.org/dig"

	"github.com/amberledger/goamber/packages/shutdown"
)

// PluginName is the name of the web API plugin.
const PluginName = "WebAPI"

var (
	// Plugin is the plugin instance of the web API plugin.
	Plugin *node.Plugin
	deps   = new(dependencies)
	log    *logger.Logger
)

type dependencies struct {
	dig.In

	Server *echo.Echo
}

func init() {
	Plugin = node.NewPlugin(PluginName, deps, node.Enabled, configure, run)

	Plugin.Events.Init.Attach(events.NewClosure(func(_ *node.Plugin, container *dig.Container) {
		if err := container.Provide(createServer); err != nil {
			Plugin.Panic(err)
		}
	}))
}

func createServer() *echo.Echo {
	server := echo.New()
	server.HideBanner = true
	server.HidePort = true

	return server
}

func configure(_ *node.Plugin) {
	log = logger.NewLogger(PluginName)
	deps.Server.Use(middleware.Recover())
}

func run(*node.Plugin) {
	if err := daemon.BackgroundWorker(PluginName, worker, shutdown.PriorityWebAPI); err != nil {
		log.Panicf("Failed to start as daemon: %s", err)
	}
}

func worker(ctx context.Context) {
	stopped := make(chan struct{})
	go func() {
		log.Infof("%s started, bind-address=%s", PluginName, Parameters.BindAddress)
		if err := deps.Server.Start(Parameters.BindAddress); err != nil {
			if !errors.Is(err, http.ErrServerClosed) {
				log.Errorf("Error serving: %s", err)
			}
			close(stopped)
		}
	}()

	select {
	case <-ctx.Done():
	case <-stopped:
	}

	log.Infof("Stopping %s ...", PluginName)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := deps.Server.Shutdown(shutdownCtx); err != nil {
		log.Errorf("Error stopping: %s", err)
	}
	log.Infof("Stopping %s ... done", PluginName)
}

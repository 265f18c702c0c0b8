package txresolver

import (
	"github.com/iotaledger/hive.go/events"
	"github.com/iotaledger/hive.go/node"
	"go.uber.org/dig"

	"github.com/amberledger/goamber/packages/chainstate"
	"github.com/amberledger/goamber/packages/simulator"
	"github.com/amberledger/goamber/packages/txresolver"
)

// PluginName is the name of the txresolver plugin.
const PluginName = "TxResolver"

// Plugin is the plugin instance of the txresolver plugin.
var Plugin *node.Plugin

func init() {
	Plugin = node.NewPlugin(PluginName, nil, node.Enabled)

	Plugin.Events.Init.Attach(events.NewClosure(func(_ *node.Plugin, container *dig.Container) {
		if err := container.Provide(func(reader chainstate.Reader) txresolver.Executor {
			return simulator.New(reader)
		}); err != nil {
			Plugin.Panic(err)
		}

		if err := container.Provide(func(reader chainstate.Reader, executor txresolver.Executor) *txresolver.Resolver {
			return txresolver.NewResolver(reader, executor)
		}); err != nil {
			Plugin.Panic(err)
		}
	}))
}

package chainstate

import (
	"os"

	"github.com/iotaledger/hive.go/events"
	"github.com/iotaledger/hive.go/kvstore/mapdb"
	"github.com/iotaledger/hive.go/logger"
	"github.com/iotaledger/hive.go/marshalutil"
	"github.com/iotaledger/hive.go/node"
	"go.uber.org/dig"

	"github.com/amberledger/goamber/packages/chainstate"
	"github.com/amberledger/goamber/packages/ledgerstate"
)

// PluginName is the name of the chainstate plugin.
const PluginName = "ChainState"

var (
	// Plugin is the plugin instance of the chainstate plugin.
	Plugin *node.Plugin
	log    *logger.Logger
)

func init() {
	Plugin = node.NewPlugin(PluginName, nil, node.Enabled, configure)

	Plugin.Events.Init.Attach(events.NewClosure(func(_ *node.Plugin, container *dig.Container) {
		if err := container.Provide(createStore); err != nil {
			Plugin.Panic(err)
		}
		if err := container.Provide(func(store *chainstate.Store) chainstate.Reader {
			return store
		}); err != nil {
			Plugin.Panic(err)
		}
	}))
}

func configure(_ *node.Plugin) {
	log = logger.NewLogger(PluginName)
}

func createStore() *chainstate.Store {
	store := chainstate.NewStore(mapdb.NewMapDB(), Parameters.ChainIdentifier, chainstate.SystemStateSummary{
		Epoch:             Parameters.Epoch,
		ProtocolVersion:   Parameters.ProtocolVersion,
		ReferenceGasPrice: Parameters.ReferenceGasPrice,
	})

	if Parameters.Snapshot != "" {
		if err := loadSnapshot(store, Parameters.Snapshot); err != nil {
			Plugin.Panicf("failed to load snapshot %s: %s", Parameters.Snapshot, err)
		}
	}

	return store
}

// loadSnapshot seeds the store with the objects of the given snapshot file, which contains the concatenated
// marshaled objects.
func loadSnapshot(store *chainstate.Store, path string) error {
	snapshotBytes, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	marshalUtil := marshalutil.New(snapshotBytes)
	objectCount := 0
	for marshalUtil.ReadOffset() < len(snapshotBytes) {
		object, objectErr := ledgerstate.ObjectFromMarshalUtil(marshalUtil)
		if objectErr != nil {
			return objectErr
		}
		if storeErr := store.AddObject(object); storeErr != nil {
			return storeErr
		}
		objectCount++
	}

	if log != nil {
		log.Infof("loaded %d objects from snapshot %s", objectCount, path)
	}

	return nil
}

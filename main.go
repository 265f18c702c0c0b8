package main

import (
	"github.com/iotaledger/hive.go/node"

	"github.com/amberledger/goamber/plugins"
)

func main() {
	node.Run(
		plugins.Core,
		plugins.WebAPI,
	)
}

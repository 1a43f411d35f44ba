package main

import "embed"

//go:embed configs/game.yaml
var configFS embed.FS

//go:embed assets
var assetFS embed.FS

package main

import (
	"github.com/PheeraponT/nightnice/core/internal/app"
	"github.com/PheeraponT/nightnice/core/internal/config"
)

func main() {
	app.Go(config.Load())
}

package main

import (
	"fmt"

	"github.com/SatoshiFundAus/dev1003-p2p-crypto-lending-frontend-sub000/internal/app"
	"github.com/SatoshiFundAus/dev1003-p2p-crypto-lending-frontend-sub000/internal/config"
	"github.com/SatoshiFundAus/dev1003-p2p-crypto-lending-frontend-sub000/internal/logger"
)

func main() {
	// load configuration
	config := config.NewConfig()
	// set up logging
	if err := logger.Initialize(config.Server.LogLevel); err != nil {
		panic(fmt.Sprintf("can't initialize logger: %s ", err.Error()))
	}
	defer logger.Sync()
	// start the frontend
	app.Run(config)
}

package main

import (
	"log"
	"os"

	"github.com/dmitrijs2005/taskmesh/internal/buildinfo"
	"github.com/dmitrijs2005/taskmesh/internal/gateway"
	"github.com/dmitrijs2005/taskmesh/internal/gateway/config"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	cfg := config.LoadConfig()
	app, err := gateway.NewApp(cfg)

	if err != nil {
		log.Printf("%v", err)
		return
	}

	app.Run()

}

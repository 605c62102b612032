package main

import (
	"log"
	"os"

	"github.com/dmitrijs2005/taskmesh/internal/buildinfo"
	"github.com/dmitrijs2005/taskmesh/internal/tasks"
	"github.com/dmitrijs2005/taskmesh/internal/tasks/config"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	cfg := config.LoadConfig()
	app, err := tasks.NewApp(cfg)

	if err != nil {
		log.Printf("%v", err)
		return
	}

	app.Run()

}

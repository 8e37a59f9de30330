package main

import (
	"fmt"
	"log"
	"net/http"

	"go.uber.org/zap"

	"github.com/voicedeck/call-dashboard-api/api/handlers"
	"github.com/voicedeck/call-dashboard-api/config"
)

func main() {
	conf, err := config.New()
	if err != nil {
		log.Fatal(err)
	}

	a := handlers.App{}
	a.Config = *conf

	if err := a.Initialize(); err != nil { //initialize clients and router
		log.Fatal(err)
	}

	zap.S().Infow("call-dashboard-api is up and running",
		"port", conf.Port,
		"url", conf.BaseURL,
	)
	log.Fatal(http.ListenAndServe(fmt.Sprintf(":%v", conf.Port), a.Router))
}

package main

import (
	"zyro-visual/internal/app"
	"zyro-visual/pkg/config"

	_ "zyro-visual/docs" // Swagger docs
)

// @title           Zyro Visual API
// @version         1.0
// @description     Backend for the Zyro Visual video-editing studio site: public booking intake, landing-page content, and the admin dashboard API.

// @host      localhost:8080
// @BasePath  /

// @securityDefinitions.apikey SessionCookie
// @in cookie
// @name zyro_session

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	application, err := app.NewApp(cfg)
	if err != nil {
		panic(err)
	}

	if err := application.Run(); err != nil {
		panic(err)
	}

	application.Wait()

	if err := application.Shutdown(); err != nil {
		panic(err)
	}
}

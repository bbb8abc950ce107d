package main

import (
	"os"

	"cambio/internal/app"

	"github.com/sirupsen/logrus"
)

// @title           Cambio API
// @version         1.0
// @description     PEN/USD exchange backend: quotes, accounts, alerts and the manual exchange flow.
// @BasePath        /api/v1
//
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	if err := app.Run(); err != nil {
		logrus.WithError(err).Error("application stopped")
		os.Exit(1)
	}
}

package main

import (
	"os"

	"goldrates/internal/app"

	"github.com/sirupsen/logrus"
)

// @title Gold Rates API
// @version 1.0
// @description Gold and foreign-currency price aggregation with portfolio tracking
// @BasePath /
func main() {
	if err := app.Run(); err != nil {
		logrus.WithError(err).Error("Application stopped with error")
		os.Exit(1)
	}
}

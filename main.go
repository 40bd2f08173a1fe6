package main

import (
	"github.com/sirupsen/logrus"

	"github.com/nicholas-fedor/bidsort/cmd"
)

// init sets the default log level before flags are parsed.
func init() {
	logrus.SetLevel(logrus.InfoLevel)
}

func main() {
	cmd.Execute()
}

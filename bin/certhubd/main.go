package main

import (
	"github.com/certhub/certhub/config"
	"github.com/certhub/certhub/pkg/hub"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func init() {
	cobra.OnInitialize(config.LoadConfig)
}

func main() {
	s := &hub.Server{}
	if err := s.Init(); err != nil {
		logrus.Fatal(err)
	}
	s.Run()
}

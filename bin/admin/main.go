package main

import (
	"github.com/certhub/certhub/cmd/admin"
	"github.com/certhub/certhub/config"
	"github.com/spf13/cobra"
)

func init() {
	cobra.OnInitialize(config.LoadConfig)
}

func main() {
	_ = admin.Admin.Execute()
}

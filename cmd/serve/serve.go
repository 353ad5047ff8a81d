package serve

import (
	"github.com/certhub/certhub/config/configkey"
	"github.com/certhub/certhub/pkg/hub"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var storeBackendVar string

func init() {
	Serve.Flags().StringVarP(&storeBackendVar, "store-backend", "b", "", "The store backend, postgres or memory")
	_ = viper.BindPFlag(configkey.StoreBackend, Serve.Flags().Lookup("store-backend"))
}

var Serve = &cobra.Command{
	Use:   "serve",
	Short: "Runs the certhub daemon",
	Run: func(cmd *cobra.Command, args []string) {
		s := &hub.Server{}
		if err := s.Init(); err != nil {
			logrus.Fatal(err)
		}
		s.Run()
	},
}

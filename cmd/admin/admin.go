package admin

import (
	"fmt"
	"os"
	"sort"

	"github.com/certhub/certhub/cmd/admin/accounts"
	"github.com/certhub/certhub/cmd/admin/certs"
	"github.com/certhub/certhub/cmd/admin/events"
	"github.com/certhub/certhub/cmd/serve"
	"github.com/certhub/certhub/config"
	"github.com/olekukonko/tablewriter"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	Admin.AddCommand(serve.Serve)
	Admin.AddCommand(info)
	Admin.AddCommand(register)
	Admin.AddCommand(login)
	Admin.AddCommand(logout)
	Admin.AddCommand(whoami)
	Admin.AddCommand(accounts.Accounts)
	Admin.AddCommand(events.Events)
	Admin.AddCommand(certs.Certs)
}

var Admin = &cobra.Command{
	Use:              "certhub-admin",
	TraverseChildren: true,
}

var info = &cobra.Command{
	Use:   "info",
	Short: "info",
	Run: func(cmd *cobra.Command, args []string) {
		table := tablewriter.NewWriter(os.Stdout)
		table.SetHeader([]string{"Name", "Value"})

		var defaultValueKeys []string
		for k := range config.DefaultValues {
			defaultValueKeys = append(defaultValueKeys, k)
		}

		sort.Strings(defaultValueKeys)

		logrus.Infof("Defaults were: ")
		for _, k := range defaultValueKeys {
			table.Append([]string{k, fmt.Sprintf("%+v", config.DefaultValues[k])})
		}
		table.Render()

		table = tablewriter.NewWriter(os.Stdout)
		logrus.Infof("Config values")
		table.SetHeader([]string{"Name", "Value"})

		logrus.Infof("Actual values: ")

		allKeys := viper.AllKeys()
		sort.Strings(allKeys)

		for _, k := range allKeys {
			table.Append([]string{k, fmt.Sprintf("%+v", viper.Get(k))})
		}
		table.Render()
	},
}

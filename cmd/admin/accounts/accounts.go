package accounts

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"

	"github.com/certhub/certhub/cmd/admin/client"
	"github.com/certhub/certhub/pkg/models"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

func init() {
	Accounts.AddCommand(list)
}

var Accounts = &cobra.Command{
	Use:   "accounts",
	Short: "accounts",
	Long:  "accounts",
}

var list = &cobra.Command{
	Use:   "list",
	Short: "Lists registered accounts",
	Run: func(cmd *cobra.Command, args []string) {
		resp, err := client.New().R().Get(client.URL("v1/admin/accounts"))
		if err != nil {
			fmt.Println(err)
			return
		}

		if resp.StatusCode() != http.StatusOK {
			fmt.Println(string(resp.Body()))
			return
		}

		var accounts []models.Account
		if err := json.Unmarshal(resp.Body(), &accounts); err != nil {
			fmt.Println(err)
			return
		}

		table := tablewriter.NewWriter(os.Stdout)
		table.SetHeader([]string{"Id", "Email", "Full Name", "Role"})
		for _, account := range accounts {
			table.Append([]string{account.Id, account.Email, account.FullName, string(account.Role)})
		}
		table.Render()
	},
}

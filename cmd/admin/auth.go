package admin

import (
	"fmt"
	"net/http"

	"github.com/certhub/certhub/cmd/admin/client"
	"github.com/certhub/certhub/pkg/hub/requests"
	"github.com/certhub/certhub/pkg/models"
	"github.com/spf13/cobra"
)

var emailVar string
var passwordVar string
var fullNameVar string
var roleVar string

func init() {
	register.Flags().StringVarP(&emailVar, "email", "e", "", "Account email")
	register.Flags().StringVarP(&passwordVar, "password", "p", "", "Account password")
	register.Flags().StringVarP(&fullNameVar, "full-name", "n", "", "Display name")
	register.Flags().StringVarP(&roleVar, "role", "r", "user", "Account role, admin or user")
	_ = register.MarkFlagRequired("email")
	_ = register.MarkFlagRequired("password")
	_ = register.MarkFlagRequired("full-name")

	login.Flags().StringVarP(&emailVar, "email", "e", "", "Account email")
	login.Flags().StringVarP(&passwordVar, "password", "p", "", "Account password")
	_ = login.MarkFlagRequired("email")
	_ = login.MarkFlagRequired("password")
}

var register = &cobra.Command{
	Use:   "register",
	Short: "Registers an account and signs it in",
	Run: func(cmd *cobra.Command, args []string) {
		body := requests.Register{
			Email:    emailVar,
			Password: passwordVar,
			FullName: fullNameVar,
			Role:     models.Role(roleVar),
		}

		resp, err := client.New().R().SetBody(&body).Post(client.URL("v1/auth/register"))
		if err != nil {
			fmt.Println(err)
			return
		}

		if resp.StatusCode() != http.StatusCreated {
			fmt.Println(string(resp.Body()))
			return
		}

		fmt.Printf("%v\n", string(resp.Body()))
	},
}

var login = &cobra.Command{
	Use:   "login",
	Short: "Signs an account in",
	Run: func(cmd *cobra.Command, args []string) {
		body := requests.Login{Email: emailVar, Password: passwordVar}

		resp, err := client.New().R().SetBody(&body).Post(client.URL("v1/auth/login"))
		if err != nil {
			fmt.Println(err)
			return
		}

		if resp.StatusCode() != http.StatusOK {
			fmt.Println(string(resp.Body()))
			return
		}

		fmt.Printf("%v\n", string(resp.Body()))
	},
}

var logout = &cobra.Command{
	Use:   "logout",
	Short: "Signs the active account out",
	Run: func(cmd *cobra.Command, args []string) {
		resp, err := client.New().R().Post(client.URL("v1/auth/logout"))
		if err != nil {
			fmt.Println(err)
			return
		}

		if resp.StatusCode() != http.StatusNoContent {
			fmt.Println(string(resp.Body()))
		}
	},
}

var whoami = &cobra.Command{
	Use:   "whoami",
	Short: "Shows the active account",
	Run: func(cmd *cobra.Command, args []string) {
		resp, err := client.New().R().Get(client.URL("v1/auth/me"))
		if err != nil {
			fmt.Println(err)
			return
		}

		fmt.Printf("%v\n", string(resp.Body()))
	},
}

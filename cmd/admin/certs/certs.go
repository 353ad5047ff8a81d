package certs

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"

	"github.com/certhub/certhub/cmd/admin/client"
	"github.com/certhub/certhub/pkg/hub/requests"
	"github.com/certhub/certhub/pkg/hub/responses"
	"github.com/certhub/certhub/pkg/models"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

var eventIdVar string
var recipientIdVar string
var statusVar string

func init() {
	Certs.AddCommand(issue)
	Certs.AddCommand(status)
	Certs.AddCommand(list)
	Certs.AddCommand(verify)

	issue.Flags().StringVarP(&eventIdVar, "event-id", "e", "", "Id of the event to certify attendance for")
	issue.Flags().StringVarP(&recipientIdVar, "recipient-id", "r", "", "Id of the recipient account")
	_ = issue.MarkFlagRequired("event-id")

	status.Flags().StringVarP(&statusVar, "status", "s", "", "Delivery status: pending, sent or delivered")
	_ = status.MarkFlagRequired("status")
}

var Certs = &cobra.Command{
	Use:   "certs",
	Short: "certs",
	Long:  "certs",
}

var issue = &cobra.Command{
	Use:   "issue",
	Short: "Issues a certificate for an event",
	Run: func(cmd *cobra.Command, args []string) {
		body := requests.IssueCertificate{
			EventId:     eventIdVar,
			RecipientId: recipientIdVar,
		}

		resp, err := client.New().R().SetBody(&body).Post(client.URL("v1/certificates"))
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

var status = &cobra.Command{
	Use:   "status <certificate-id>",
	Short: "Updates a certificate's delivery status",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		body := requests.UpdateDelivery{Status: models.DeliveryStatus(statusVar)}

		resp, err := client.New().R().SetBody(&body).Patch(client.URL("v1/certificates", args[0], "delivery"))
		if err != nil {
			fmt.Println(err)
			return
		}

		fmt.Printf("%v\n", string(resp.Body()))
	},
}

var list = &cobra.Command{
	Use:   "list",
	Short: "Lists every issued certificate",
	Run: func(cmd *cobra.Command, args []string) {
		resp, err := client.New().R().Get(client.URL("v1/admin/certificates"))
		if err != nil {
			fmt.Println(err)
			return
		}

		if resp.StatusCode() != http.StatusOK {
			fmt.Println(string(resp.Body()))
			return
		}

		var certificates []models.Certificate
		if err := json.Unmarshal(resp.Body(), &certificates); err != nil {
			fmt.Println(err)
			return
		}

		table := tablewriter.NewWriter(os.Stdout)
		table.SetHeader([]string{"Id", "Number", "Event", "Recipient", "Delivery"})
		for _, certificate := range certificates {
			table.Append([]string{
				certificate.Id,
				certificate.CertificateNumber,
				certificate.EventTitle,
				certificate.UserId,
				string(certificate.DeliveryStatus),
			})
		}
		table.Render()
	},
}

var verify = &cobra.Command{
	Use:   "verify <certificate-number>",
	Short: "Verifies a certificate by its public number",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		resp, err := client.New().R().Get(client.URL("v1/verify", args[0]))
		if err != nil {
			fmt.Println(err)
			return
		}

		var result responses.Verification
		if err := json.Unmarshal(resp.Body(), &result); err != nil {
			fmt.Println(err)
			return
		}

		if !result.Valid {
			fmt.Println("certificate not found")
			return
		}

		out, _ := json.MarshalIndent(result.Certificate, "", "  ")
		fmt.Println(string(out))
	},
}

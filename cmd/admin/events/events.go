package events

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"

	"github.com/certhub/certhub/cmd/admin/client"
	"github.com/certhub/certhub/pkg/hub/requests"
	"github.com/certhub/certhub/pkg/models"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

var titleVar string
var descriptionVar string
var eventDateVar string

func init() {
	Events.AddCommand(create)
	Events.AddCommand(list)
	Events.AddCommand(update)
	Events.AddCommand(remove)

	create.Flags().StringVarP(&titleVar, "title", "t", "", "Event title")
	create.Flags().StringVarP(&descriptionVar, "description", "d", "", "Event description")
	create.Flags().StringVarP(&eventDateVar, "date", "D", "", "Event date, like 2025-01-01")
	_ = create.MarkFlagRequired("title")
	_ = create.MarkFlagRequired("date")

	update.Flags().StringVarP(&titleVar, "title", "t", "", "Event title")
	update.Flags().StringVarP(&descriptionVar, "description", "d", "", "Event description")
	update.Flags().StringVarP(&eventDateVar, "date", "D", "", "Event date, like 2025-01-01")
}

var Events = &cobra.Command{
	Use:   "events",
	Short: "events",
	Long:  "events",
}

var create = &cobra.Command{
	Use:   "create",
	Short: "Creates an event",
	Run: func(cmd *cobra.Command, args []string) {
		body := requests.CreateEvent{
			Title:       titleVar,
			Description: descriptionVar,
			EventDate:   eventDateVar,
		}

		resp, err := client.New().R().SetBody(&body).Post(client.URL("v1/events"))
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

var list = &cobra.Command{
	Use:   "list",
	Short: "Lists all events",
	Run: func(cmd *cobra.Command, args []string) {
		resp, err := client.New().R().Get(client.URL("v1/events"))
		if err != nil {
			fmt.Println(err)
			return
		}

		if resp.StatusCode() != http.StatusOK {
			fmt.Println(string(resp.Body()))
			return
		}

		var events []models.Event
		if err := json.Unmarshal(resp.Body(), &events); err != nil {
			fmt.Println(err)
			return
		}

		table := tablewriter.NewWriter(os.Stdout)
		table.SetHeader([]string{"Id", "Title", "Date", "Created By"})
		for _, event := range events {
			table.Append([]string{event.Id, event.Title, event.EventDate, event.CreatedBy})
		}
		table.Render()
	},
}

var update = &cobra.Command{
	Use:   "update <event-id>",
	Short: "Updates an event's title, description or date",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		var body requests.UpdateEvent
		if cmd.Flags().Changed("title") {
			body.Title = &titleVar
		}
		if cmd.Flags().Changed("description") {
			body.Description = &descriptionVar
		}
		if cmd.Flags().Changed("date") {
			body.EventDate = &eventDateVar
		}

		resp, err := client.New().R().SetBody(&body).Patch(client.URL("v1/events", args[0]))
		if err != nil {
			fmt.Println(err)
			return
		}

		fmt.Printf("%v\n", string(resp.Body()))
	},
}

var remove = &cobra.Command{
	Use:   "delete <event-id>",
	Short: "Deletes an event and its certificates",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		resp, err := client.New().R().Delete(client.URL("v1/events", args[0]))
		if err != nil {
			fmt.Println(err)
			return
		}

		if resp.StatusCode() != http.StatusNoContent {
			fmt.Println(string(resp.Body()))
		}
	},
}

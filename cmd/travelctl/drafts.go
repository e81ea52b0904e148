package main

import (
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"travelbook/internal/domain"
)

func draftsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "drafts",
		Short: "Plan itineraries locally before booking",
	}
	cmd.AddCommand(draftsCreateCmd())
	cmd.AddCommand(draftsListCmd())
	cmd.AddCommand(draftsAddUnitCmd())
	cmd.AddCommand(draftsRemoveUnitCmd())
	cmd.AddCommand(draftsDeleteCmd())
	cmd.AddCommand(draftsSubmitCmd())
	return cmd
}

func draftsCreateCmd() *cobra.Command {
	var name, start, end string
	var cityID int64

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Start a local draft",
		RunE: func(cmd *cobra.Command, args []string) error {
			startDate, err := parseDay(start)
			if err != nil {
				return err
			}
			endDate, err := parseDay(end)
			if err != nil {
				return err
			}
			in := domain.TripInput{Name: name, StartDate: startDate, EndDate: endDate}
			if cityID != 0 {
				in.CityID = &cityID
			}

			ctx, cancel := cmdContext()
			defer cancel()
			draft, err := services.planner.CreateDraft(ctx, in)
			if err != nil {
				return err
			}
			if outputJSON {
				return printJSON(draft)
			}
			fmt.Printf("Created draft %s.\n", draft.ID)
			return nil
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "Draft name")
	cmd.Flags().StringVar(&start, "start", "", "Start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&end, "end", "", "End date (YYYY-MM-DD)")
	cmd.Flags().Int64Var(&cityID, "city", 0, "Destination city id")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("start")
	_ = cmd.MarkFlagRequired("end")
	return cmd
}

func draftsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List local drafts",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := cmdContext()
			defer cancel()

			drafts, err := services.planner.Drafts(ctx)
			if err != nil {
				return err
			}
			if outputJSON {
				return printJSON(drafts)
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tFROM\tTO\tUNITS")
			for _, d := range drafts {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\n",
					d.ID, d.Name,
					d.StartDate.Format("2006-01-02"), d.EndDate.Format("2006-01-02"),
					len(d.Units))
			}
			return w.Flush()
		},
	}
}

func draftsAddUnitCmd() *cobra.Command {
	var start, end string

	cmd := &cobra.Command{
		Use:   "add-unit DRAFT_ID UNIT_ID",
		Short: "Add a stay unit to a draft",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			unitID, err := strconv.ParseInt(args[1], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid unit id %q", args[1])
			}
			startDate, err := parseDay(start)
			if err != nil {
				return err
			}
			endDate, err := parseDay(end)
			if err != nil {
				return err
			}

			ctx, cancel := cmdContext()
			defer cancel()
			draft, err := services.planner.AddDraftUnit(ctx, args[0], domain.TripStayUnitInput{
				StayUnitID: unitID,
				StartDate:  startDate,
				EndDate:    endDate,
			})
			if err != nil {
				return err
			}
			if outputJSON {
				return printJSON(draft)
			}
			fmt.Printf("Draft %s now has %d units.\n", draft.ID, len(draft.Units))
			return nil
		},
	}
	cmd.Flags().StringVar(&start, "start", "", "Check-in date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&end, "end", "", "Check-out date (YYYY-MM-DD)")
	_ = cmd.MarkFlagRequired("start")
	_ = cmd.MarkFlagRequired("end")
	return cmd
}

func draftsRemoveUnitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove-unit DRAFT_ID UNIT_ROW_ID",
		Short: "Remove a unit row from a draft",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			unitID, err := strconv.ParseInt(args[1], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid unit row id %q", args[1])
			}
			ctx, cancel := cmdContext()
			defer cancel()

			if err := services.planner.RemoveDraftUnit(ctx, args[0], unitID); err != nil {
				return err
			}
			fmt.Println("Removed.")
			return nil
		},
	}
}

func draftsDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete DRAFT_ID",
		Short: "Discard a draft",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := cmdContext()
			defer cancel()

			if err := services.planner.DeleteDraft(ctx, args[0]); err != nil {
				return err
			}
			fmt.Println("Deleted.")
			return nil
		},
	}
}

func draftsSubmitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "submit DRAFT_ID",
		Short: "Book a draft as a backend itinerary",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := cmdContext()
			defer cancel()

			trip, err := services.planner.SubmitDraft(ctx, args[0])
			if err != nil {
				return err
			}
			if outputJSON {
				return printJSON(trip)
			}
			fmt.Printf("Booked itinerary %d (%s, %d units).\n", trip.ID, trip.Name, len(trip.StayUnits))
			return nil
		},
	}
}

package main

import (
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"travelbook/internal/domain"
)

func tripsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "trips",
		Short: "Manage booked itineraries",
	}
	cmd.AddCommand(tripsListCmd())
	cmd.AddCommand(tripsShowCmd())
	cmd.AddCommand(tripsCreateCmd())
	cmd.AddCommand(tripsUpdateCmd())
	cmd.AddCommand(tripsDeleteCmd())
	cmd.AddCommand(tripsRemoveUnitCmd())
	return cmd
}

func parseDay(s string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (want YYYY-MM-DD)", s)
	}
	return t, nil
}

func tripsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List itineraries",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := cmdContext()
			defer cancel()

			trips, err := services.planner.Itineraries(ctx)
			if err != nil {
				return err
			}
			if outputJSON {
				return printJSON(trips)
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tDESTINATION\tDAYS\tUNITS")
			for _, t := range trips {
				fmt.Fprintf(w, "%d\t%s\t%s\t%d\t%d\n", t.ID, t.Name, t.Destination(), t.DurationDays(), len(t.StayUnits))
			}
			return w.Flush()
		},
	}
}

func tripsShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show ID",
		Short: "Show an itinerary with resolved stays",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid trip id %q", args[0])
			}
			ctx, cancel := cmdContext()
			defer cancel()

			details, err := services.planner.Details(ctx, id)
			if err != nil {
				return err
			}
			if outputJSON {
				return printJSON(details)
			}

			t := details.Trip
			fmt.Printf("%s (id %d)\n%s, %d days\n", t.Name, t.ID, t.Destination(), t.DurationDays())
			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "STAY\tUNIT\tFROM\tTO")
			for _, u := range t.StayUnits {
				stayName := ""
				if s, ok := details.Stays[u.StayUnit.StayID]; ok {
					stayName = s.Name
				}
				fmt.Fprintf(w, "%s\t%d\t%s\t%s\n",
					stayName, u.StayUnit.ID,
					u.StartDate.Format("2006-01-02"), u.EndDate.Format("2006-01-02"))
			}
			return w.Flush()
		},
	}
}

func tripsCreateCmd() *cobra.Command {
	var name, start, end string
	var cityID int64

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create an empty itinerary on the backend",
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
			trip, err := services.trips.CreateItinerary(ctx, in)
			if err != nil {
				return err
			}
			if outputJSON {
				return printJSON(trip)
			}
			fmt.Printf("Created itinerary %d.\n", trip.ID)
			return nil
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "Itinerary name")
	cmd.Flags().StringVar(&start, "start", "", "Start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&end, "end", "", "End date (YYYY-MM-DD)")
	cmd.Flags().Int64Var(&cityID, "city", 0, "Destination city id")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("start")
	_ = cmd.MarkFlagRequired("end")
	return cmd
}

func tripsUpdateCmd() *cobra.Command {
	var name, start, end string
	var cityID int64

	cmd := &cobra.Command{
		Use:   "update ID",
		Short: "Rename or reschedule an itinerary",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid trip id %q", args[0])
			}
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
			trip, err := services.trips.UpdateItinerary(ctx, id, in)
			if err != nil {
				return err
			}
			if outputJSON {
				return printJSON(trip)
			}
			fmt.Printf("Updated itinerary %d.\n", trip.ID)
			return nil
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "Itinerary name")
	cmd.Flags().StringVar(&start, "start", "", "Start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&end, "end", "", "End date (YYYY-MM-DD)")
	cmd.Flags().Int64Var(&cityID, "city", 0, "Destination city id")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("start")
	_ = cmd.MarkFlagRequired("end")
	return cmd
}

func tripsDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete ID",
		Short: "Delete an itinerary",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid trip id %q", args[0])
			}
			ctx, cancel := cmdContext()
			defer cancel()

			if err := services.planner.DeleteItinerary(ctx, id); err != nil {
				return err
			}
			fmt.Printf("Deleted itinerary %d.\n", id)
			return nil
		},
	}
}

func tripsRemoveUnitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove-unit TRIP_ID UNIT_ID",
		Short: "Remove a booked unit from an itinerary",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			tripID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid trip id %q", args[0])
			}
			unitID, err := strconv.ParseInt(args[1], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid unit id %q", args[1])
			}
			ctx, cancel := cmdContext()
			defer cancel()

			if err := services.trips.RemoveStayUnit(ctx, tripID, unitID); err != nil {
				return err
			}
			fmt.Printf("Removed unit %d from itinerary %d.\n", unitID, tripID)
			return nil
		},
	}
}

package main

import (
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"travelbook/internal/domain"
)

func staysCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stays",
		Short: "Browse stays and their units",
	}
	cmd.AddCommand(staysListCmd())
	cmd.AddCommand(staysShowCmd())
	cmd.AddCommand(staysByCityCmd())
	cmd.AddCommand(staysNearbyCmd())
	cmd.AddCommand(staysTypesCmd())
	cmd.AddCommand(staysServicesCmd())
	cmd.AddCommand(unitCmd())
	return cmd
}

func writeStaysTable(stays []domain.Stay) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tCITY\tUNITS")
	for _, s := range stays {
		city := ""
		if s.City != nil {
			city = s.City.Name
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%d\n", s.ID, s.Name, city, len(s.Units))
	}
	return w.Flush()
}

func staysListCmd() *cobra.Command {
	var page, size int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List stays",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := cmdContext()
			defer cancel()

			result, err := services.catalog.Stays(ctx, domain.PageQuery{Page: page, Size: size})
			if err != nil {
				return err
			}
			if outputJSON {
				return printJSON(result)
			}
			if err := writeStaysTable(result.Items); err != nil {
				return err
			}
			fmt.Printf("Page %d of %d (%d stays total)\n", result.Page+1, result.TotalPages, result.TotalElements)
			return nil
		},
	}
	cmd.Flags().IntVar(&page, "page", 0, "Page number")
	cmd.Flags().IntVar(&size, "size", 0, "Page size")
	return cmd
}

func staysShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show ID",
		Short: "Show one stay with its units",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid stay id %q", args[0])
			}
			ctx, cancel := cmdContext()
			defer cancel()

			stay, err := services.catalog.Stay(ctx, id)
			if err != nil {
				return err
			}
			if outputJSON {
				return printJSON(stay)
			}
			fmt.Printf("%s (id %d)\n%s\n", stay.Name, stay.ID, stay.Address)
			if stay.Description != "" {
				fmt.Println(stay.Description)
			}
			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "UNIT\tROOM\tBEDS\tCAPACITY\tPRICE/NIGHT")
			for _, u := range stay.Units {
				fmt.Fprintf(w, "%d\t%s\t%d\t%d\t%.2f\n", u.ID, u.RoomType, u.NumberOfBeds, u.Capacity, u.PricePerNight)
			}
			return w.Flush()
		},
	}
}

func staysByCityCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "by-city CITY_ID",
		Short: "List stays in a city",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cityID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid city id %q", args[0])
			}
			ctx, cancel := cmdContext()
			defer cancel()

			stays, err := services.catalog.StaysInCity(ctx, cityID)
			if err != nil {
				return err
			}
			if outputJSON {
				return printJSON(stays)
			}
			return writeStaysTable(stays)
		},
	}
}

func staysNearbyCmd() *cobra.Command {
	var lat, lon, radius float64

	cmd := &cobra.Command{
		Use:   "nearby",
		Short: "List stays around a coordinate",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := cmdContext()
			defer cancel()

			stays, err := services.catalog.NearbyStays(ctx, lat, lon, radius)
			if err != nil {
				return err
			}
			if outputJSON {
				return printJSON(stays)
			}
			return writeStaysTable(stays)
		},
	}
	cmd.Flags().Float64Var(&lat, "lat", 0, "Latitude")
	cmd.Flags().Float64Var(&lon, "lon", 0, "Longitude")
	cmd.Flags().Float64Var(&radius, "radius", 10, "Radius in km")
	_ = cmd.MarkFlagRequired("lat")
	_ = cmd.MarkFlagRequired("lon")
	return cmd
}

func staysTypesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "types",
		Short: "List stay types",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := cmdContext()
			defer cancel()

			types, err := services.catalog.StayTypes(ctx)
			if err != nil {
				return err
			}
			if outputJSON {
				return printJSON(types)
			}
			for _, t := range types {
				fmt.Printf("%d\t%s\n", t.ID, t.Name)
			}
			return nil
		},
	}
}

func staysServicesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "services",
		Short: "List bookable services",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := cmdContext()
			defer cancel()

			list, err := services.catalog.Services(ctx)
			if err != nil {
				return err
			}
			if outputJSON {
				return printJSON(list)
			}
			for _, s := range list {
				fmt.Printf("%d\t%s\n", s.ID, s.Name)
			}
			return nil
		},
	}
}

func unitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "unit",
		Short: "Manage stay units (hosts only)",
	}
	cmd.AddCommand(unitCreateCmd())
	cmd.AddCommand(unitUpdateCmd())
	cmd.AddCommand(unitDeleteCmd())
	return cmd
}

func unitFlags(cmd *cobra.Command, in *domain.StayUnitInput) {
	cmd.Flags().IntVar(&in.StayNumber, "number", 0, "Unit number")
	cmd.Flags().IntVar(&in.NumberOfBeds, "beds", 1, "Number of beds")
	cmd.Flags().IntVar(&in.Capacity, "capacity", 2, "Guest capacity")
	cmd.Flags().Float64Var(&in.PricePerNight, "price", 0, "Price per night")
	cmd.Flags().StringVar(&in.RoomType, "room-type", "", "Room type")
}

func unitCreateCmd() *cobra.Command {
	var in domain.StayUnitInput

	cmd := &cobra.Command{
		Use:   "create STAY_ID",
		Short: "Add a unit to a stay",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			stayID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid stay id %q", args[0])
			}
			ctx, cancel := cmdContext()
			defer cancel()

			unit, err := services.stays.CreateStayUnit(ctx, stayID, in)
			if err != nil {
				return err
			}
			if outputJSON {
				return printJSON(unit)
			}
			fmt.Printf("Created unit %d on stay %d.\n", unit.ID, unit.StayID)
			return nil
		},
	}
	unitFlags(cmd, &in)
	return cmd
}

func unitUpdateCmd() *cobra.Command {
	var in domain.StayUnitInput

	cmd := &cobra.Command{
		Use:   "update UNIT_ID",
		Short: "Update a unit",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid unit id %q", args[0])
			}
			ctx, cancel := cmdContext()
			defer cancel()

			unit, err := services.stays.UpdateStayUnit(ctx, id, in)
			if err != nil {
				return err
			}
			if outputJSON {
				return printJSON(unit)
			}
			fmt.Printf("Updated unit %d.\n", unit.ID)
			return nil
		},
	}
	unitFlags(cmd, &in)
	return cmd
}

func unitDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete UNIT_ID",
		Short: "Delete a unit",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid unit id %q", args[0])
			}
			ctx, cancel := cmdContext()
			defer cancel()

			if err := services.stays.DeleteStayUnit(ctx, id); err != nil {
				return err
			}
			fmt.Printf("Deleted unit %d.\n", id)
			return nil
		},
	}
}

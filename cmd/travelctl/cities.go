package main

import (
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"travelbook/internal/domain"
)

func citiesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cities",
		Short: "Browse destinations",
	}
	cmd.AddCommand(citiesListCmd())
	cmd.AddCommand(citiesShowCmd())
	return cmd
}

func citiesListCmd() *cobra.Command {
	var featured bool
	var page, size int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List cities",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := cmdContext()
			defer cancel()

			var cities []domain.City
			var err error
			if featured {
				cities, err = services.catalog.FeaturedCities(ctx)
			} else {
				cities, err = services.cities.ListCities(ctx, domain.CitiesQuery{Page: page, Size: size})
			}
			if err != nil {
				return err
			}
			if outputJSON {
				return printJSON(cities)
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tCOUNTRY\tFEATURED")
			for _, c := range cities {
				country := ""
				if c.Country != nil {
					country = c.Country.Name
				}
				fmt.Fprintf(w, "%d\t%s\t%s\t%t\n", c.ID, c.Name, country, c.Featured)
			}
			return w.Flush()
		},
	}
	cmd.Flags().BoolVar(&featured, "featured", false, "Only featured cities")
	cmd.Flags().IntVar(&page, "page", 0, "Page number")
	cmd.Flags().IntVar(&size, "size", 0, "Page size")
	return cmd
}

func citiesShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show ID",
		Short: "Show one city",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid city id %q", args[0])
			}
			ctx, cancel := cmdContext()
			defer cancel()

			city, err := services.catalog.City(ctx, id)
			if err != nil {
				return err
			}
			if outputJSON {
				return printJSON(city)
			}
			fmt.Printf("%s (id %d)\n", city.Name, city.ID)
			if city.Country != nil {
				fmt.Printf("Country: %s\n", city.Country.Name)
			}
			if city.State != nil {
				fmt.Printf("State: %s\n", city.State.Name)
			}
			return nil
		},
	}
}

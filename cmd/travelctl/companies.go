package main

import (
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"travelbook/internal/domain"
)

func companiesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "companies",
		Short: "Manage host companies",
	}
	cmd.AddCommand(companiesListCmd())
	cmd.AddCommand(companiesShowCmd())
	cmd.AddCommand(companiesCreateCmd())
	cmd.AddCommand(companiesUpdateCmd())
	return cmd
}

func companyInput(cmd *cobra.Command, name, email, phone, description *string) domain.CompanyInput {
	in := domain.CompanyInput{Name: *name, Email: *email}
	if cmd.Flags().Changed("phone") {
		in.Phone = phone
	}
	if cmd.Flags().Changed("description") {
		in.Description = description
	}
	return in
}

func companiesListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List companies",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := cmdContext()
			defer cancel()

			companies, err := services.companies.ListCompanies(ctx)
			if err != nil {
				return err
			}
			if outputJSON {
				return printJSON(companies)
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tEMAIL")
			for _, c := range companies {
				fmt.Fprintf(w, "%d\t%s\t%s\n", c.ID, c.Name, c.Email)
			}
			return w.Flush()
		},
	}
}

func companiesShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show ID",
		Short: "Show one company",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid company id %q", args[0])
			}
			ctx, cancel := cmdContext()
			defer cancel()

			company, err := services.companies.GetCompany(ctx, id)
			if err != nil {
				return err
			}
			if outputJSON {
				return printJSON(company)
			}
			fmt.Printf("%s (id %d)\n%s\n", company.Name, company.ID, company.Email)
			if company.Phone != nil {
				fmt.Printf("Phone: %s\n", *company.Phone)
			}
			if company.Description != nil {
				fmt.Println(*company.Description)
			}
			return nil
		},
	}
}

func companiesCreateCmd() *cobra.Command {
	var name, email, phone, description string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Register a host company",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := cmdContext()
			defer cancel()

			company, err := services.companies.CreateCompany(ctx, companyInput(cmd, &name, &email, &phone, &description))
			if err != nil {
				return err
			}
			if outputJSON {
				return printJSON(company)
			}
			fmt.Printf("Created company %d.\n", company.ID)
			return nil
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "Company name")
	cmd.Flags().StringVar(&email, "email", "", "Contact email")
	cmd.Flags().StringVar(&phone, "phone", "", "Contact phone")
	cmd.Flags().StringVar(&description, "description", "", "Description")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("email")
	return cmd
}

func companiesUpdateCmd() *cobra.Command {
	var name, email, phone, description string

	cmd := &cobra.Command{
		Use:   "update ID",
		Short: "Update a company",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid company id %q", args[0])
			}
			ctx, cancel := cmdContext()
			defer cancel()

			company, err := services.companies.UpdateCompany(ctx, id, companyInput(cmd, &name, &email, &phone, &description))
			if err != nil {
				return err
			}
			if outputJSON {
				return printJSON(company)
			}
			fmt.Printf("Updated company %d.\n", company.ID)
			return nil
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "Company name")
	cmd.Flags().StringVar(&email, "email", "", "Contact email")
	cmd.Flags().StringVar(&phone, "phone", "", "Contact phone")
	cmd.Flags().StringVar(&description, "description", "", "Description")
	return cmd
}

package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"travelbook/internal/domain"
)

func authCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "auth",
		Short: "Manage the login session",
	}
	cmd.AddCommand(authLoginCmd())
	cmd.AddCommand(authRegisterCmd())
	cmd.AddCommand(authStatusCmd())
	cmd.AddCommand(authLogoutCmd())
	cmd.AddCommand(authProfileCmd())
	return cmd
}

func promptCredentials(email, password string) (string, string, error) {
	if email == "" {
		fmt.Print("Email: ")
		reader := bufio.NewReader(os.Stdin)
		value, err := reader.ReadString('\n')
		if err != nil {
			return "", "", err
		}
		email = strings.TrimSpace(value)
	}
	if password == "" {
		fmt.Print("Password: ")
		bytes, err := term.ReadPassword(int(os.Stdin.Fd()))
		fmt.Println()
		if err != nil {
			return "", "", err
		}
		password = strings.TrimSpace(string(bytes))
	}
	if email == "" || password == "" {
		return "", "", fmt.Errorf("email and password are required")
	}
	return email, password, nil
}

func authLoginCmd() *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Login and store the session token",
		RunE: func(cmd *cobra.Command, args []string) error {
			email, password, err := promptCredentials(email, password)
			if err != nil {
				return err
			}
			ctx, cancel := cmdContext()
			defer cancel()
			if _, err := services.auth.Login(ctx, email, password); err != nil {
				return err
			}
			fmt.Printf("Logged in as %s.\n", email)
			return nil
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "Email address")
	cmd.Flags().StringVar(&password, "password", "", "Password")
	return cmd
}

func authRegisterCmd() *cobra.Command {
	var email, password, first, last string

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create an account and login",
		RunE: func(cmd *cobra.Command, args []string) error {
			email, password, err := promptCredentials(email, password)
			if err != nil {
				return err
			}
			ctx, cancel := cmdContext()
			defer cancel()
			if _, err := services.auth.Register(ctx, domain.RegisterRequest{
				Email:     email,
				Password:  password,
				FirstName: first,
				LastName:  last,
			}); err != nil {
				return err
			}
			fmt.Printf("Registered and logged in as %s.\n", email)
			return nil
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "Email address")
	cmd.Flags().StringVar(&password, "password", "", "Password")
	cmd.Flags().StringVar(&first, "first-name", "", "First name")
	cmd.Flags().StringVar(&last, "last-name", "", "Last name")
	return cmd
}

func authStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Check whether a session is active",
		RunE: func(cmd *cobra.Command, args []string) error {
			if services.auth.Authenticated() {
				fmt.Println("Logged in.")
			} else {
				fmt.Println("Not logged in.")
			}
			return nil
		},
	}
}

func authLogoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Logout and drop the session token",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := cmdContext()
			defer cancel()
			if err := services.auth.Logout(ctx); err != nil {
				return err
			}
			fmt.Println("Logged out.")
			return nil
		},
	}
}

func authProfileCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "profile",
		Short: "Show the logged-in user",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := cmdContext()
			defer cancel()
			user, err := services.auth.Profile(ctx)
			if err != nil {
				return err
			}
			if outputJSON {
				return printJSON(user)
			}
			fmt.Printf("%s <%s>\n", user.FullName(), user.Email)
			if user.Company != nil {
				fmt.Printf("Company: %s\n", user.Company.Name)
			}
			return nil
		},
	}
}

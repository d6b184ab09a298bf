package main

import (
	"fmt"

	"github.com/spf13/cobra"

	tabnews "github.com/tabnews/tabnews-go"
)

func newUsersCmd(a *app) *cobra.Command {
	usersCmd := &cobra.Command{Use: "users", Short: "User operations"}

	// create
	var username, email, password string
	createCmd := &cobra.Command{
		Use:   "create",
		Short: "Register a new account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.client()
			if err != nil {
				return err
			}
			res, err := c.CreateUser(cmd.Context(), tabnews.CreateUserRequest{
				Username: username,
				Email:    email,
				Password: password,
			})
			return render(a, res, err)
		},
	}
	createCmd.Flags().StringVarP(&username, "username", "u", "", "Username (required)")
	createCmd.Flags().StringVarP(&email, "email", "e", "", "Email (required)")
	createCmd.Flags().StringVarP(&password, "password", "p", "", "Password (required)")
	_ = createCmd.MarkFlagRequired("username")
	_ = createCmd.MarkFlagRequired("email")
	_ = createCmd.MarkFlagRequired("password")
	usersCmd.AddCommand(createCmd)

	return usersCmd
}

func newLoginCmd(a *app) *cobra.Command {
	var email, password string
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Open a session and print its token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.client()
			if err != nil {
				return err
			}
			res, err := c.Login(cmd.Context(), tabnews.LoginRequest{Email: email, Password: password})
			return render(a, res, err)
		},
	}
	cmd.Flags().StringVarP(&email, "email", "e", "", "Email (required)")
	cmd.Flags().StringVarP(&password, "password", "p", "", "Password (required)")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

func newRecoveryCmd(a *app) *cobra.Command {
	var username, email string
	cmd := &cobra.Command{
		Use:   "recovery",
		Short: "Request a password recovery email",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if (username == "") == (email == "") {
				return fmt.Errorf("exactly one of --username or --email is required")
			}
			c, err := a.client()
			if err != nil {
				return err
			}
			res, err := c.Recovery(cmd.Context(), tabnews.RecoveryRequest{Username: username, Email: email})
			return render(a, res, err)
		},
	}
	cmd.Flags().StringVarP(&username, "username", "u", "", "Account username")
	cmd.Flags().StringVarP(&email, "email", "e", "", "Account email")
	return cmd
}

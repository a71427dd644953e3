package main

import (
	"restaurant/internal/infra/db"
	"restaurant/internal/usecase"

	"github.com/spf13/cobra"
)

var adminInput usecase.RegisterInput

// restaurant-api create-admin --username admin --email admin@example.com --password ...
var createAdminCmd = &cobra.Command{
	Use:   "create-admin",
	Short: "Create an admin account",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, log, gdb, err := boot(cmd.Context())
		if err != nil {
			return err
		}
		defer db.Close(gdb)

		if err := db.Migrate(cmd.Context(), gdb); err != nil {
			return err
		}
		user, err := newAuthUsecase(cfg, gdb).CreateAdmin(cmd.Context(), adminInput)
		if err != nil {
			return err
		}
		log.WithField("user_id", user.ID).WithField("username", user.Username).Info("admin created")
		return nil
	},
}

func init() {
	f := createAdminCmd.Flags()
	f.StringVar(&adminInput.Username, "username", "", "admin username")
	f.StringVar(&adminInput.Email, "email", "", "admin email")
	f.StringVar(&adminInput.Password, "password", "", "admin password")
	f.StringVar(&adminInput.FullName, "full-name", "", "display name")
	_ = createAdminCmd.MarkFlagRequired("username")
	_ = createAdminCmd.MarkFlagRequired("email")
	_ = createAdminCmd.MarkFlagRequired("password")
}

package admin

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/dinerozz/planzo-web/config"
	"github.com/dinerozz/planzo-web/internal/repository"
	"github.com/dinerozz/planzo-web/internal/service/auth"
	"github.com/spf13/cobra"
)

func GetAdminCmd(config *config.Config) *cobra.Command {
	adminCmd := &cobra.Command{
		Use:   "admin",
		Short: "Manage admin accounts",
	}

	var password string
	createCmd := &cobra.Command{
		Use:   "create [username]",
		Short: "Create an admin account",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			db, err := repository.NewRepository(config.DB)
			if err != nil {
				log.Fatal("❌ Failed to connect to database:", err)
			}
			defer db.Close()

			srv := auth.NewAuthService(repository.NewAdminRepository(db), nil, config.Session.Secret, config.Session.TTL)

			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()

			account, err := srv.CreateAdmin(ctx, args[0], password)
			if errors.Is(err, repository.ErrUsernameTaken) {
				log.Fatalf("❌ Admin %q already exists", args[0])
			}
			if err != nil {
				log.Fatal("❌ Failed to create admin:", err)
			}

			fmt.Printf("✅ Admin %s created (%s)\n", account.Username, account.ID)
		},
	}
	createCmd.Flags().StringVarP(&password, "password", "p", "", "Password, at least 8 characters")
	_ = createCmd.MarkFlagRequired("password")

	adminCmd.AddCommand(createCmd)
	return adminCmd
}

package root

import (
	"fmt"
	"log/slog"

	"github.com/dinerozz/planzo-web/cmd/admin"
	"github.com/dinerozz/planzo-web/cmd/browse"
	"github.com/dinerozz/planzo-web/cmd/migrate"
	"github.com/dinerozz/planzo-web/config"
	"github.com/dinerozz/planzo-web/server"
	"github.com/spf13/cobra"
)

func GetRootCmd(config *config.Config, logger *slog.Logger) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "planzo-web",
		Short: "Planzo web tier",
	}

	dbURL := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		config.DB.User,
		config.DB.Password,
		config.DB.Host,
		config.DB.Port,
		config.DB.DBName,
		config.DB.SSLMode)

	rootCmd.AddCommand(&cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		Run: func(cmd *cobra.Command, args []string) {
			server.RunServer(config, logger)
		},
	})

	rootCmd.AddCommand(migrate.GetMigrateCmd(dbURL))
	rootCmd.AddCommand(browse.GetBrowseCmd(config, logger))
	rootCmd.AddCommand(admin.GetAdminCmd(config))

	return rootCmd
}

package migrate

import (
	"errors"
	"fmt"
	"log"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/spf13/cobra"
)

func GetMigrateCmd(dbURL string) *cobra.Command {
	var (
		down  bool
		steps int
		dir   string
	)

	migrateCmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply or roll back the contact inbox and admin account tables",
		Run: func(cmd *cobra.Command, args []string) {
			m, err := migrate.New("file://"+dir, dbURL)
			if err != nil {
				log.Fatal("❌ Failed to initialize migrations:", err)
			}
			defer m.Close()

			switch {
			case steps != 0:
				if down {
					steps = -steps
				}
				err = m.Steps(steps)
			case down:
				err = m.Down()
			default:
				err = m.Up()
			}

			if errors.Is(err, migrate.ErrNoChange) {
				fmt.Println("⚠️ No migrations to apply.")
				return
			}

			var dirty migrate.ErrDirty
			if errors.As(err, &dirty) {
				log.Fatalf("❌ Database is dirty at version %d, fix it and run `migrate force`", dirty.Version)
			}
			if err != nil {
				log.Fatal("❌ Failed to apply migrations:", err)
			}

			version, _, _ := m.Version()
			fmt.Printf("✅ Migrations applied, schema at version %d\n", version)
		},
	}

	migrateCmd.Flags().BoolVarP(&down, "down", "d", false, "Rollback migrations")
	migrateCmd.Flags().IntVarP(&steps, "steps", "n", 0, "Number of migrations to apply or roll back")
	migrateCmd.PersistentFlags().StringVar(&dir, "path", "migrations", "Directory holding the migration files")

	migrateCmd.AddCommand(&cobra.Command{
		Use:   "force [version]",
		Short: "Mark the schema as clean at the given version",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			var version int
			if _, err := fmt.Sscanf(args[0], "%d", &version); err != nil {
				log.Fatal("❌ Invalid version:", args[0])
			}

			m, err := migrate.New("file://"+dir, dbURL)
			if err != nil {
				log.Fatal("❌ Failed to initialize migrations:", err)
			}
			defer m.Close()

			if err := m.Force(version); err != nil {
				log.Fatal("❌ Failed to force version:", err)
			}
			fmt.Printf("✅ Schema marked clean at version %d\n", version)
		},
	})

	return migrateCmd
}

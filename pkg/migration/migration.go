package migration

import (
	"errors"
	"fmt"
	"github.com/golang-migrate/migrate/v4"
	"github.com/spf13/cobra"
	"path"
	"strconv"
	"strings"
)

// migration files contain several statements
func migrateDSN(dsn string) string {
	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	return "mysql://" + dsn + sep + "multiStatements=true"
}

func newMigrate(sourceDir string, dsn string) (*migrate.Migrate, error) {
	return migrate.New("file://"+sourceDir, migrateDSN(dsn))
}

func ignoreNoChange(err error) error {
	if errors.Is(err, migrate.ErrNoChange) {
		return nil
	}
	return err
}

// MigrateCommand returns the cobra command with up, down and force sub commands
func MigrateCommand(dsn string) *cobra.Command {
	sourceDir := "migrations"

	root := &cobra.Command{
		Use:   "migrate",
		Short: "database schema migration",
	}
	root.PersistentFlags().StringVar(&sourceDir, "dir", sourceDir, "directory of migration files")

	root.AddCommand(
		&cobra.Command{
			Use:   "up",
			Short: "apply all up migrations",
			RunE: func(cmd *cobra.Command, args []string) error {
				m, err := newMigrate(sourceDir, dsn)
				if err != nil {
					return err
				}
				return ignoreNoChange(m.Up())
			},
		},
		&cobra.Command{
			Use:   "down [n]",
			Short: "apply n down migrations, default is 1",
			Args:  cobra.MaximumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				n := 1
				if len(args) > 0 {
					num, err := strconv.Atoi(args[0])
					if err != nil {
						return err
					}
					n = num
				}

				m, err := newMigrate(sourceDir, dsn)
				if err != nil {
					return err
				}
				return ignoreNoChange(m.Steps(-n))
			},
		},
		&cobra.Command{
			Use:   "force [version]",
			Short: "set the schema version without running migrations",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				version, err := strconv.Atoi(args[0])
				if err != nil {
					return err
				}

				m, err := newMigrate(sourceDir, dsn)
				if err != nil {
					return err
				}
				return m.Force(version)
			},
		},
		&cobra.Command{
			Use:   "version",
			Short: "print the current schema version",
			RunE: func(cmd *cobra.Command, args []string) error {
				m, err := newMigrate(sourceDir, dsn)
				if err != nil {
					return err
				}
				version, dirty, err := m.Version()
				if err != nil {
					return err
				}
				fmt.Println("Version:", version, "Dirty:", dirty)
				return nil
			},
		},
	)
	return root
}

// MigrateUpForTesting drops everything then applies all migrations in rootDir/migrations
func MigrateUpForTesting(rootDir string, dsn string) {
	m, err := newMigrate(path.Join(rootDir, "migrations"), dsn)
	if err != nil {
		panic(err)
	}

	if err := m.Drop(); err != nil {
		panic(err)
	}

	// Drop removes the migrate instance's state, a fresh instance is required
	m, err = newMigrate(path.Join(rootDir, "migrations"), dsn)
	if err != nil {
		panic(err)
	}
	if err := ignoreNoChange(m.Up()); err != nil {
		panic(err)
	}
}

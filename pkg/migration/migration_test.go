package migration

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestMigrateDSN(t *testing.T) {
	assert.Equal(t,
		"mysql://root:1@tcp(localhost:3306)/offer?parseTime=true&multiStatements=true",
		migrateDSN("root:1@tcp(localhost:3306)/offer?parseTime=true"))

	assert.Equal(t,
		"mysql://root:1@tcp(localhost:3306)/offer?multiStatements=true",
		migrateDSN("root:1@tcp(localhost:3306)/offer"))
}

func TestMigrateCommand(t *testing.T) {
	cmd := MigrateCommand("root:1@tcp(localhost:3306)/offer")

	var names []string
	for _, c := range cmd.Commands() {
		names = append(names, c.Name())
	}
	assert.Equal(t, []string{"down", "force", "up", "version"}, names)

	flag := cmd.PersistentFlags().Lookup("dir")
	assert.Equal(t, "migrations", flag.DefValue)
}

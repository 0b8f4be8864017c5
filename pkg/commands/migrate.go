// Package commands holds the operational entry points shared by the CLI.
package commands

import (
	"database/sql"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pkg/errors"
	"github.com/pressly/goose/v3"

	"github.com/orgboard-io/orgboard/migrations"
	"github.com/orgboard-io/orgboard/pkg/configuration"
)

// Migrate applies the embedded migrations. command is a goose verb: "up",
// "down", "status".
func Migrate(command string) error {
	conf := configuration.Use()
	db, err := sql.Open("pgx", conf.Database.ConnectionString())
	if err != nil {
		return errors.Wrap(err, "open database")
	}
	defer func() {
		if cerr := db.Close(); cerr != nil {
			conf.Logger().WithError(cerr).Error("close database")
		}
	}()

	goose.SetBaseFS(migrations.FS)
	goose.SetLogger(conf.Logger())
	if err := goose.SetDialect("postgres"); err != nil {
		return errors.Wrap(err, "set dialect")
	}

	switch command {
	case "up":
		err = goose.Up(db, ".")
	case "down":
		err = goose.Down(db, ".")
	case "status":
		err = goose.Status(db, ".")
	default:
		return errors.Errorf("unknown migrate command %q", command)
	}
	return errors.Wrapf(err, "migrate %s", command)
}

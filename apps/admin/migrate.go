package main

import (
	"errors"

	"github.com/pressly/goose/v3"

	"github.com/trezcool/horario/storage/database"
)

var (
	gooseRunFunc  = goose.Run // mockable
	errNoDatabase = errors.New("migrations need the postgres engine")
)

func (cli *commandLine) migrate(args []string) error {
	if cli.db == nil {
		return errNoDatabase
	}
	if err := database.InitMigrations(); err != nil {
		return err
	}
	arguments := make([]string, 0)
	if len(args) > 1 {
		arguments = append(arguments, args[1:]...)
	}
	return gooseRunFunc(args[0], cli.db, database.MigrationsDir, arguments...)
}

package main

import (
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/trezcool/horario/core/calendar"
	"github.com/trezcool/horario/core/grade"
	"github.com/trezcool/horario/core/schedule"
)

var errHelp = errors.New("help provided")

type commandLine struct {
	db          *sql.DB // nil with the in-memory engine
	scheduleSvc schedule.ServiceInterface
	gradeSvc    grade.ServiceInterface
	calendarSvc calendar.ServiceInterface
	out         io.Writer
}

func (cli *commandLine) printUsage() {
	_, _ = fmt.Fprintln(cli.out, "Usage:")
	_, _ = fmt.Fprintln(cli.out, "  migrate COMMAND [ARGS]           - run a goose command (up, up-by-one, up-to, down, down-to, redo, reset, status, version, fix)")
	_, _ = fmt.Fprintln(cli.out, "  calendar [-year YEAR] [-month M] - print a month of classes, the current one by default")
	_, _ = fmt.Fprintln(cli.out, "  seed                             - insert a demo schedule and grades")
}

func (cli *commandLine) run(args []string) error {
	if len(args) < 2 {
		cli.printUsage()
		return errHelp
	}

	calendarCmd := flag.NewFlagSet("calendar", flag.ContinueOnError)
	calendarCmd.SetOutput(cli.out)
	today := cli.calendarSvc.Today()
	calendarYear := calendarCmd.Int("year", today.Year, "The year to print.")
	calendarMonth := calendarCmd.Int("month", int(today.Month), "The month to print (1-12).")

	switch args[1] {
	case "migrate":
		if len(args) < 3 {
			cli.printUsage()
			return errHelp
		}
		return cli.migrate(args[2:])
	case "calendar":
		if err := calendarCmd.Parse(args[2:]); err != nil {
			if err == flag.ErrHelp {
				return errHelp
			}
			return err
		}
		return cli.printCalendar(*calendarYear, *calendarMonth)
	case "seed":
		return cli.seed()
	default:
		cli.printUsage()
		return errHelp
	}
}

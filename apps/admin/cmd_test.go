package main

import (
	"bytes"
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trezcool/horario/core"
	"github.com/trezcool/horario/core/calendar"
	"github.com/trezcool/horario/core/grade"
	"github.com/trezcool/horario/core/schedule"
	inmemdb "github.com/trezcool/horario/storage/database/inmem"
	"github.com/trezcool/horario/tests"
)

var (
	scheduleRepo schedule.Repository
	gradeRepo    grade.Repository
)

func setup(t *testing.T) (*commandLine, *bytes.Buffer) {
	// set up DB & repos
	db := inmemdb.Open()
	scheduleRepo = inmemdb.NewScheduleRepository(db)
	gradeRepo = inmemdb.NewGradeRepository(db)

	loc := testutil.Location(t)
	validate := testutil.NewValidator(core.NewTranslator())
	scheduleSvc := schedule.NewServiceMock(scheduleRepo, validate, loc, testutil.Now)

	// start CLI
	var out bytes.Buffer
	return &commandLine{
		scheduleSvc: scheduleSvc,
		gradeSvc:    grade.NewServiceMock(gradeRepo, validate, loc, testutil.Now),
		calendarSvc: calendar.NewService(scheduleSvc),
		out:         &out,
	}, &out
}

type cliTest struct {
	name       string
	args       []string // without program name
	wantErr    error
	wantErrStr string
}

func runCLITests(t *testing.T, cli *commandLine, tests []cliTest) {
	for _, tt := range tests {
		args := append([]string{"admin"}, tt.args...)

		t.Run(tt.name, func(t *testing.T) {
			if err := cli.run(args); err != nil {
				if tt.wantErr != nil {
					if err != tt.wantErr {
						t.Errorf("cli.run() error = %v, wantErr %v", err, tt.wantErr)
					}
				} else if tt.wantErrStr != "" {
					if err.Error() != tt.wantErrStr {
						t.Errorf("cli.run() error.Error() = %s, wantErrStr %s", err.Error(), tt.wantErrStr)
					}
				} else {
					t.Errorf("cli.run() unexpected error = %v", err)
				}
			} else if tt.wantErr != nil || tt.wantErrStr != "" {
				t.Errorf("cli.run() expected an error")
			}
		})
	}
}

func Test_commandLine_run(t *testing.T) {
	cli, _ := setup(t)

	runCLITests(t, cli, []cliTest{
		{name: "no command", wantErr: errHelp},
		{name: "unknown command", args: []string{"lol"}, wantErr: errHelp},
	})
}

func Test_commandLine_migrate(t *testing.T) {
	cli, _ := setup(t)

	t.Run("in-memory engine", func(t *testing.T) {
		called := false
		gooseRunFunc = func(string, *sql.DB, string, ...string) error {
			called = true
			return nil
		}
		assert.Equal(t, errNoDatabase, cli.run([]string{"admin", "migrate", "status"}))
		assert.False(t, called)
	})

	// sql.Open does not connect; the postgres driver comes with the database package
	db, err := sql.Open("postgres", "postgres://localhost/horario_test?sslmode=disable")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	cli.db = db

	gooseRunFunc = func(command string, conn *sql.DB, dir string, args ...string) error {
		if conn != db {
			return fmt.Errorf("unexpected db %v", conn)
		}
		if dir != "migrations" {
			return fmt.Errorf("unexpected dir %q", dir)
		}
		switch command {
		case "up", "up-by-one", "down", "fix", "redo", "reset", "status", "version": // pass
		case "up-to":
			if len(args) == 0 {
				return fmt.Errorf("up-to must be of form: goose [OPTIONS] DRIVER DBSTRING up-to VERSION")
			}
			if _, err := strconv.ParseInt(args[0], 10, 64); err != nil {
				return fmt.Errorf("version must be a number (got '%s')", args[0])
			}
		case "create":
			if len(args) == 0 {
				return fmt.Errorf("create must be of form: goose [OPTIONS] DRIVER DBSTRING create NAME [go|sql]")
			}
		case "down-to":
			if len(args) == 0 {
				return fmt.Errorf("down-to must be of form: goose [OPTIONS] DRIVER DBSTRING down-to VERSION")
			}
			if _, err := strconv.ParseInt(args[0], 10, 64); err != nil {
				return fmt.Errorf("version must be a number (got '%s')", args[0])
			}
		default:
			return fmt.Errorf("%q: no such command", command)
		}
		return nil
	}

	runCLITests(t, cli, []cliTest{
		{name: "no subcommand", args: []string{"migrate"}, wantErr: errHelp},
		{name: "unknown subcommand", args: []string{"migrate", "lol"}, wantErrStr: "\"lol\": no such command"},
		{name: "up-to: no args", args: []string{"migrate", "up-to"}, wantErrStr: "up-to must be of form: goose [OPTIONS] DRIVER DBSTRING up-to VERSION"},
		{name: "up-to: non-int arg", args: []string{"migrate", "up-to", "lol"}, wantErrStr: "version must be a number (got 'lol')"},
		{name: "create: no args", args: []string{"migrate", "create"}, wantErrStr: "create must be of form: goose [OPTIONS] DRIVER DBSTRING create NAME [go|sql]"},
		{name: "down-to: no args", args: []string{"migrate", "down-to"}, wantErrStr: "down-to must be of form: goose [OPTIONS] DRIVER DBSTRING down-to VERSION"},
		{name: "down-to: non-int arg", args: []string{"migrate", "down-to", "lol"}, wantErrStr: "version must be a number (got 'lol')"},
		{name: "up", args: []string{"migrate", "up"}},
		{name: "up-by-one", args: []string{"migrate", "up-by-one"}},
		{name: "up-to", args: []string{"migrate", "up-to", "2"}},
		{name: "down", args: []string{"migrate", "down"}},
		{name: "down-to", args: []string{"migrate", "down-to", "1"}},
		{name: "redo", args: []string{"migrate", "redo"}},
		{name: "reset", args: []string{"migrate", "reset"}},
		{name: "status", args: []string{"migrate", "status"}},
		{name: "version", args: []string{"migrate", "version"}},
		{name: "create", args: []string{"migrate", "create", "add_room", "sql"}},
		{name: "fix", args: []string{"migrate", "fix"}},
	})
}

func Test_commandLine_calendar(t *testing.T) {
	cli, out := setup(t)
	testutil.CreateScheduleEntry(t, scheduleRepo, schedule.Monday, "Math", schedule.ModalityInPerson)

	runCLITests(t, cli, []cliTest{
		{name: "invalid month", args: []string{"calendar", "-month", "13"}, wantErr: calendar.ErrInvalidMonth},
		{name: "invalid flag", args: []string{"calendar", "-week", "1"}, wantErrStr: "flag provided but not defined: -week"},
	})

	t.Run("february 2024", func(t *testing.T) {
		out.Reset()
		require.NoError(t, cli.run([]string{"admin", "calendar", "-year", "2024", "-month", "2"}))

		want := "      February 2024\n" +
			"Mo  Tu  We  Th  Fr  Sa  Su\n" +
			"             1   2   3   4\n" +
			" 5*  6   7   8   9  10  11\n" +
			"12* 13  14  15  16  17  18\n" +
			"19* 20  21  22  23  24  25\n" +
			"26* 27  28  29\n" +
			"\n" +
			"05: Math (Presencial)\n" +
			"12: Math (Presencial)\n" +
			"19: Math (Presencial)\n" +
			"26: Math (Presencial)\n"
		assert.Equal(t, want, out.String())
	})

	t.Run("current month marks today", func(t *testing.T) {
		out.Reset()
		require.NoError(t, cli.run([]string{"admin", "calendar"}))
		assert.Contains(t, out.String(), "    January 2024\n")
		assert.Contains(t, out.String(), "\n15< 16  17")
		assert.Contains(t, out.String(), "\n15: Math (Presencial)\n")
	})
}

func Test_commandLine_seed(t *testing.T) {
	cli, out := setup(t)
	ctx := context.Background()

	require.NoError(t, cli.run([]string{"admin", "seed"}))
	assert.Equal(t, "seeded 6 schedule entries and 4 grades\n", out.String())

	entries, err := scheduleRepo.QueryEntries(ctx, nil)
	require.NoError(t, err)
	assert.Len(t, entries, 6)

	// the biweekly class starts on the Monday of the current week and is held today
	lab := entries[4]
	require.NotNil(t, lab.StartDate)
	assert.Equal(t, "2024-01-15", lab.StartDate.String())

	summaries, err := cli.gradeSvc.Summary(ctx)
	require.NoError(t, err)
	calc, ok := summaries.Get("Cálculo Diferencial")
	require.True(t, ok)
	assert.InDelta(t, 3.96, calc.FinalGrade, 1e-9)
}

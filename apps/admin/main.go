package main

import (
	"database/sql"
	"fmt"
	"log"
	"os"

	"github.com/go-playground/validator/v10"

	"github.com/trezcool/horario/core"
	"github.com/trezcool/horario/core/calendar"
	"github.com/trezcool/horario/core/grade"
	"github.com/trezcool/horario/core/schedule"
	logsvc "github.com/trezcool/horario/services/logger"
	"github.com/trezcool/horario/storage/database"
	inmemdb "github.com/trezcool/horario/storage/database/inmem"
	sqlxrepos "github.com/trezcool/horario/storage/database/sqlx"
)

func main() {
	conf := core.NewConfig()
	logger := logsvc.NewRollbarLogger(log.New(os.Stdout, "ADMIN : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile), conf)
	logger.Enable(!conf.Debug && conf.RollbarToken != "")

	validate := validator.New()
	translator := core.NewTranslator()
	core.InitValidators(validate, translator)
	schedule.InitValidators(validate, translator)

	// set up DB & repos
	var (
		db           *sql.DB
		scheduleRepo schedule.Repository
		gradeRepo    grade.Repository
	)
	if conf.Database.Engine == core.EngineMemory {
		mem := inmemdb.Open()
		scheduleRepo = inmemdb.NewScheduleRepository(mem)
		gradeRepo = inmemdb.NewGradeRepository(mem)
	} else {
		if err := database.CreateIfNotExist(conf); err != nil {
			logger.Fatal(fmt.Sprintf("creating database: %v", err), err)
		}
		sqlxDB, err := database.Open(conf)
		if err != nil {
			logger.Fatal(fmt.Sprintf("opening database: %v", err), err)
		}
		defer func() { _ = sqlxDB.Close() }()

		db = sqlxDB.DB
		scheduleRepo = sqlxrepos.NewScheduleRepository(sqlxDB)
		gradeRepo = sqlxrepos.NewGradeRepository(sqlxDB)
	}

	// start CLI
	scheduleSvc := schedule.NewService(scheduleRepo, validate, conf)
	cli := commandLine{
		db:          db,
		scheduleSvc: scheduleSvc,
		gradeSvc:    grade.NewService(gradeRepo, validate, conf),
		calendarSvc: calendar.NewService(scheduleSvc),
		out:         os.Stdout,
	}
	if err := cli.run(os.Args); err != nil {
		if err != errHelp {
			logger.Error(fmt.Sprintf("error: %s", err), err)
		}
		logger.Wait()
		os.Exit(1)
	}
}

package dig_container

import (
	"fmt"
	"io"
	"log"
	"os"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"go.uber.org/dig"

	echoapi "github.com/trezcool/horario/apps/api/echo"
	"github.com/trezcool/horario/core"
	"github.com/trezcool/horario/core/calendar"
	"github.com/trezcool/horario/core/grade"
	"github.com/trezcool/horario/core/schedule"
	logsvc "github.com/trezcool/horario/services/logger"
	"github.com/trezcool/horario/storage/database"
	inmemdb "github.com/trezcool/horario/storage/database/inmem"
	sqlxrepos "github.com/trezcool/horario/storage/database/sqlx"
)

type (
	DBLoggerParam struct {
		dig.In
		Logger core.Logger `name:"dbLogger"`
	}

	ServerParam struct {
		dig.In
		Conf        *core.Config
		Logger      core.Logger
		Translator  ut.Translator
		ScheduleSvc schedule.ServiceInterface
		GradeSvc    grade.ServiceInterface
		CalendarSvc calendar.ServiceInterface
	}

	// Store holds the repositories of the configured database engine.
	Store struct {
		dig.Out
		ScheduleRepo schedule.Repository
		GradeRepo    grade.Repository
		Closer       io.Closer
	}
)

func newLogger(conf *core.Config) core.Logger {
	stdLogger := log.New(os.Stdout, "API : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile)
	logger := logsvc.NewRollbarLogger(stdLogger, conf)
	logger.Enable(!conf.Debug && conf.RollbarToken != "")
	return logger
}

func newDBLogger(conf *core.Config) core.Logger {
	stdLogger := log.New(os.Stdout, "DB : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile)
	logger := logsvc.NewRollbarLogger(stdLogger, conf)
	logger.Enable(!conf.Debug && conf.RollbarToken != "")
	return logger
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

func newDB(conf *core.Config) (*sqlx.DB, error) {
	if err := database.CreateIfNotExist(conf); err != nil {
		return nil, err
	}

	db, err := database.Open(conf)
	if err != nil {
		return nil, err
	}

	if err = database.Migrate(db.DB); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

func newStore(conf *core.Config, loggerParam DBLoggerParam) Store {
	if conf.Database.Engine == core.EngineMemory {
		loggerParam.Logger.Warn("using the in-memory database: data is lost on shutdown")
		db := inmemdb.Open()
		return Store{
			ScheduleRepo: inmemdb.NewScheduleRepository(db),
			GradeRepo:    inmemdb.NewGradeRepository(db),
			Closer:       nopCloser{},
		}
	}

	db, err := newDB(conf)
	if err != nil {
		loggerParam.Logger.Fatal(fmt.Sprintf("setting up database: %v", err), err)
	}
	return Store{
		ScheduleRepo: sqlxrepos.NewScheduleRepository(db),
		GradeRepo:    sqlxrepos.NewGradeRepository(db),
		Closer:       db,
	}
}

func newValidator(translator ut.Translator) *validator.Validate {
	validate := validator.New()
	core.InitValidators(validate, translator)
	schedule.InitValidators(validate, translator)
	return validate
}

func newCalendarService(svc schedule.ServiceInterface) calendar.ServiceInterface {
	return calendar.NewService(svc)
}

func newServer(p ServerParam) *echoapi.Server {
	return echoapi.NewServer(p.Conf, &echoapi.Deps{
		Logger:      p.Logger,
		Translator:  p.Translator,
		ScheduleSvc: p.ScheduleSvc,
		GradeSvc:    p.GradeSvc,
		CalendarSvc: p.CalendarSvc,
	})
}

// New returns a new dependency injection dig.Container
func New() *dig.Container {
	c := dig.New()

	must(c.Provide(core.NewConfig))
	must(c.Provide(newLogger))
	must(c.Provide(newDBLogger, dig.Name("dbLogger")))
	must(c.Provide(newStore))
	must(c.Provide(core.NewTranslator))
	must(c.Provide(newValidator))
	must(c.Provide(schedule.NewService))
	must(c.Provide(grade.NewService))
	must(c.Provide(newCalendarService))
	must(c.Provide(newServer))

	return c
}

// must exits program if err happened
func must(err error) {
	if err != nil {
		log.Fatal(errors.Wrap(err, "failed to provide dependency").Error())
	}
}

package tests

import (
	"bytes"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"

	. "github.com/trezcool/horario/apps/api/echo"
	"github.com/trezcool/horario/core"
	"github.com/trezcool/horario/core/calendar"
	"github.com/trezcool/horario/core/grade"
	"github.com/trezcool/horario/core/schedule"
	logsvc "github.com/trezcool/horario/services/logger"
	inmemdb "github.com/trezcool/horario/storage/database/inmem"
	"github.com/trezcool/horario/tests"
)

type testApp struct {
	*Server
	scheduleRepo schedule.Repository
	gradeRepo    grade.Repository
	scheduleSvc  schedule.ServiceInterface
}

// newApp returns a server over a fresh in-memory DB, with its clock frozen at testutil.Now.
func newApp(t *testing.T, deps ...func(*Deps)) *testApp {
	loc := testutil.Location(t)
	conf := core.NewTestConfig(loc)
	translator := core.NewTranslator()
	validate := testutil.NewValidator(translator)

	db := inmemdb.Open()
	scheduleRepo := inmemdb.NewScheduleRepository(db)
	gradeRepo := inmemdb.NewGradeRepository(db)
	scheduleSvc := schedule.NewServiceMock(scheduleRepo, validate, loc, testutil.Now)

	d := &Deps{
		Logger:      logsvc.NewRollbarLogger(log.New(io.Discard, "", 0), conf),
		Translator:  translator,
		ScheduleSvc: scheduleSvc,
		GradeSvc:    grade.NewServiceMock(gradeRepo, validate, loc, testutil.Now),
		CalendarSvc: calendar.NewService(scheduleSvc),
	}
	for _, opt := range deps {
		opt(d)
	}
	return &testApp{
		Server:       NewServer(conf, d),
		scheduleRepo: scheduleRepo,
		gradeRepo:    gradeRepo,
		scheduleSvc:  scheduleSvc,
	}
}

type httpErr struct {
	Error string `json:"error"`
}

type httpTest struct {
	name     string
	method   string
	path     string
	body     []byte
	wantCode int
	wantData []byte // not checked when nil
}

func newRequest(method, path string, data ...[]byte) (*http.Request, *httptest.ResponseRecorder) {
	var body bytes.Buffer
	if len(data) > 0 {
		body.Write(data[0])
	}
	req := httptest.NewRequest(method, path, &body)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	return req, rec
}

func marchallObj(t *testing.T, obj interface{}) []byte {
	data, err := json.Marshal(obj)
	if err != nil {
		t.Fatalf("marchallObj() failed: %v", err)
	}
	return data
}

func marchallList(t *testing.T, objs ...interface{}) []byte {
	data, err := json.Marshal(objs)
	if err != nil {
		t.Fatalf("marchallList() failed: %v", err)
	}
	return data
}

func jsonBytesEqual(b1, b2 []byte) (bool, error) {
	var j1, j2 interface{}
	if err := json.Unmarshal(b1, &j1); err != nil {
		return false, err
	}
	if err := json.Unmarshal(b2, &j2); err != nil {
		return false, err
	}
	return reflect.DeepEqual(j1, j2), nil
}

func checkCodeAndData(t *testing.T, tt httpTest, rec *httptest.ResponseRecorder) {
	if rec.Code != tt.wantCode {
		t.Errorf("failed! code = %v; wantCode %v", rec.Code, tt.wantCode)
	}
	if tt.wantData == nil {
		return
	}
	ok, err := jsonBytesEqual(rec.Body.Bytes(), tt.wantData)
	if err != nil {
		t.Errorf("jsonBytesEqual() failed to compare; err %v", err)
	}
	if !ok {
		t.Errorf("failed! data = %v; wantData %v", rec.Body.String(), string(tt.wantData))
	}
}

func runHTTPTests(t *testing.T, app http.Handler, tests []httpTest) {
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, rec := newRequest(tt.method, tt.path, tt.body)
			app.ServeHTTP(rec, req)
			checkCodeAndData(t, tt, rec)
		})
	}
}

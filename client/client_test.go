package client

import (
	"bytes"
	"context"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"cloud.google.com/go/civil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	echoapi "github.com/trezcool/horario/apps/api/echo"
	"github.com/trezcool/horario/core"
	"github.com/trezcool/horario/core/calendar"
	"github.com/trezcool/horario/core/grade"
	"github.com/trezcool/horario/core/schedule"
	logsvc "github.com/trezcool/horario/services/logger"
	inmemdb "github.com/trezcool/horario/storage/database/inmem"
	"github.com/trezcool/horario/tests"
)

// newTestClient serves the API over a fresh in-memory DB and returns a client to it.
func newTestClient(t *testing.T) (*Client, *bytes.Buffer) {
	loc := testutil.Location(t)
	conf := core.NewTestConfig(loc)
	translator := core.NewTranslator()
	validate := testutil.NewValidator(translator)

	db := inmemdb.Open()
	scheduleSvc := schedule.NewServiceMock(inmemdb.NewScheduleRepository(db), validate, loc, testutil.Now)
	server := echoapi.NewServer(conf, &echoapi.Deps{
		Logger:      logsvc.NewRollbarLogger(log.New(io.Discard, "", 0), conf),
		Translator:  translator,
		ScheduleSvc: scheduleSvc,
		GradeSvc:    grade.NewServiceMock(inmemdb.NewGradeRepository(db), validate, loc, testutil.Now),
		CalendarSvc: calendar.NewService(scheduleSvc),
	})
	ts := httptest.NewServer(server)
	t.Cleanup(ts.Close)

	var logs bytes.Buffer
	conf.Client.BaseURL = ts.URL + "/"
	return New(conf.Client, logsvc.NewRollbarLogger(log.New(&logs, "", 0), conf)), &logs
}

func TestClient_schedule(t *testing.T) {
	ctx := context.Background()
	c, logs := newTestClient(t)

	var math schedule.Entry
	out := c.AddSchedule(ctx, schedule.NewEntry{DayOfWeek: schedule.Monday, Subject: "Math", Modality: schedule.ModalityInPerson}, &math)
	require.True(t, out.Succeeded, out.Message)
	assert.Equal(t, http.StatusCreated, out.StatusCode)
	assert.Equal(t, 1, math.ID)
	assert.True(t, math.HasClassToday)

	out = c.AddSchedule(ctx, schedule.NewEntry{DayOfWeek: schedule.Friday, Subject: "Lab", Modality: schedule.ModalityBiweekly, StartDate: "2024-01-12"}, nil)
	require.True(t, out.Succeeded, out.Message)

	t.Run("validation failure", func(t *testing.T) {
		logs.Reset()
		out := c.AddSchedule(ctx, schedule.NewEntry{DayOfWeek: "sunday", Subject: "Rest", Modality: schedule.ModalityVirtual}, nil)
		assert.False(t, out.Succeeded)
		assert.Equal(t, "add schedule entry", out.Action)
		assert.Equal(t, http.StatusBadRequest, out.StatusCode)
		assert.Equal(t, "day_of_week: must be one of monday, tuesday, wednesday, thursday, friday or saturday", out.Message)
		assert.Contains(t, logs.String(), "add schedule entry failed")
	})

	t.Run("view", func(t *testing.T) {
		view, err := c.LoadScheduleView(ctx)
		require.NoError(t, err)
		assert.Len(t, view.Week, 6)
		assert.Equal(t, []string{"Math"}, subjectsOf(view.Week[schedule.Monday]))
		assert.Equal(t, []string{"Lab"}, subjectsOf(view.Week[schedule.Friday]))
		assert.Equal(t, []string{"Math", "Lab"}, view.Subjects)
		require.NotNil(t, view.Week[schedule.Friday][0].StartDate)
		assert.Equal(t, civil.Date{Year: 2024, Month: 1, Day: 12}, *view.Week[schedule.Friday][0].StartDate)
	})

	t.Run("subjects", func(t *testing.T) {
		subjects, err := c.FetchSubjects(ctx, "lab", 1)
		require.NoError(t, err)
		assert.Equal(t, []string{"Lab"}, subjects)
	})

	t.Run("delete", func(t *testing.T) {
		out := c.DeleteSchedule(ctx, math.ID)
		assert.True(t, out.Succeeded)
		assert.Equal(t, http.StatusNoContent, out.StatusCode)

		out = c.DeleteSchedule(ctx, math.ID)
		assert.False(t, out.Succeeded)
		assert.Equal(t, http.StatusNotFound, out.StatusCode)
		assert.Equal(t, "not found", out.Message)
	})
}

func TestClient_grades(t *testing.T) {
	ctx := context.Background()
	c, _ := newTestClient(t)

	for _, ne := range []grade.NewEntry{
		{Subject: "Math", Grade: core.NewFloat(4), Percentage: core.NewFloat(50)},
		{Subject: "Math", Grade: core.NewFloat(3), Percentage: core.NewFloat(50)},
		{Subject: "Art", Grade: core.NewFloat(2.5), Percentage: core.NewFloat(40), Date: "2024-01-02"},
	} {
		out := c.AddGrade(ctx, ne, nil)
		require.True(t, out.Succeeded, out.Message)
	}

	var created grade.Entry
	out := c.AddGrade(ctx, grade.NewEntry{Subject: "Art", Grade: core.NewFloat(6), Percentage: core.NewFloat(10)}, &created)
	assert.False(t, out.Succeeded)
	assert.Equal(t, http.StatusBadRequest, out.StatusCode)
	assert.Zero(t, created.ID)

	view, err := c.LoadGradesView(ctx)
	require.NoError(t, err)
	require.Len(t, view.Subjects, 2)
	assert.Equal(t, "Math", view.Subjects[0].Subject)
	assert.InDelta(t, 3.5, view.Subjects[0].FinalGrade, 1e-9)
	assert.Equal(t, civil.Date{Year: 2024, Month: 1, Day: 15}, view.Subjects[0].Entries[0].Date)
	assert.Equal(t, []string{"Art"}, view.Failing())

	assert.True(t, c.DeleteGrade(ctx, 3).Succeeded)
	grades, err := c.FetchGrades(ctx)
	require.NoError(t, err)
	assert.Len(t, grades, 2)
}

func TestNavigator(t *testing.T) {
	ctx := context.Background()
	c, _ := newTestClient(t)
	out := c.AddSchedule(ctx, schedule.NewEntry{DayOfWeek: schedule.Monday, Subject: "Lab", Modality: schedule.ModalityBiweekly, StartDate: "2024-01-01"}, nil)
	require.True(t, out.Succeeded, out.Message)

	nav := NewNavigator(c, civil.Date{Year: 2024, Month: 1, Day: 15})
	month, err := nav.Load(ctx)
	require.NoError(t, err)
	assert.Len(t, month, 5)
	assert.True(t, month[2][0].Today)
	assert.Len(t, month[2][0].Classes, 1) // Jan 15th

	month, err = nav.Next(ctx)
	require.NoError(t, err)
	assert.Equal(t, calendar.Cursor{Year: 2024, Month: time.February}, nav.Cursor())
	assert.Equal(t, 1, *month[0][3].Day)

	entries, err := c.FetchSchedule(ctx)
	require.NoError(t, err)
	local, err := nav.BuildLocally(entries, civil.Date{Year: 2024, Month: 1, Day: 15})
	require.NoError(t, err)
	assert.Equal(t, month, local)

	_, err = nav.Prev(ctx)
	require.NoError(t, err)
	_, err = nav.Prev(ctx)
	require.NoError(t, err)
	assert.Equal(t, calendar.Cursor{Year: 2023, Month: time.December}, nav.Cursor())
}

func TestClient_unreachable(t *testing.T) {
	var logs bytes.Buffer
	conf := core.NewTestConfig(nil)
	c := New(core.ClientConfig{BaseURL: "http://127.0.0.1:1", Timeout: time.Second}, logsvc.NewRollbarLogger(log.New(&logs, "", 0), conf))

	_, err := c.FetchSchedule(context.Background())
	assert.Error(t, err)
	assert.Contains(t, logs.String(), "fetching /api/schedule failed")

	out := c.DeleteGrade(context.Background(), 1)
	assert.False(t, out.Succeeded)
	assert.Zero(t, out.StatusCode)
	assert.Error(t, out.Err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = c.FetchCalendar(ctx, calendar.Cursor{Year: 2024, Month: time.January})
	assert.Error(t, err)
}

func TestErrorMessage(t *testing.T) {
	tests := []struct {
		body string
		want string
	}{
		{body: `{"error": "not found"}`, want: "not found"},
		{body: `{"subject": "this field is required", "grade": "too high"}`, want: "grade: too high; subject: this field is required"},
		{body: "Bad Gateway\n", want: "Bad Gateway"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, errorMessage(tt.body))
	}
}

func subjectsOf(entries []schedule.Entry) []string {
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.Subject)
	}
	return out
}

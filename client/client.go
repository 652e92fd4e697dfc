// Package client consumes the REST API: it fetches schedule, grade and calendar data, builds the view
// models the presentation layer renders, and reports mutations as Outcome values.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sort"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/sendgrid/rest"

	"github.com/trezcool/horario/core"
	"github.com/trezcool/horario/core/calendar"
	"github.com/trezcool/horario/core/grade"
	"github.com/trezcool/horario/core/schedule"
)

// Outcome is the result of a mutation. The presentation layer decides how to notify the user.
type Outcome struct {
	Action     string
	Succeeded  bool
	StatusCode int
	// Message is the error message of the backend, or of the transport when StatusCode is 0.
	Message string
	Err     error
}

// Client is safe for concurrent use.
type Client struct {
	baseURL string
	rest    *rest.Client
	logger  core.Logger
}

func New(conf core.ClientConfig, logger core.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(conf.BaseURL, "/"),
		rest:    &rest.Client{HTTPClient: &http.Client{Timeout: conf.Timeout}},
		logger:  logger,
	}
}

// ResponseError is returned by fetches when the backend does not answer 2xx.
type ResponseError struct {
	StatusCode int
	Message    string
}

func (err *ResponseError) Error() string {
	return fmt.Sprintf("%d: %s", err.StatusCode, err.Message)
}

func (c *Client) send(ctx context.Context, method rest.Method, path string, query map[string]string, body interface{}) (*rest.Response, error) {
	req := rest.Request{
		Method:      method,
		BaseURL:     c.baseURL + path,
		Headers:     map[string]string{"Accept": "application/json"},
		QueryParams: query,
	}
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, errors.Wrap(err, "encoding request")
		}
		req.Headers["Content-Type"] = "application/json"
		req.Body = data
	}

	resp, err := c.rest.SendWithContext(ctx, req)
	if err != nil {
		return nil, errors.Wrapf(err, "%s %s", method, path)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return resp, &ResponseError{StatusCode: resp.StatusCode, Message: errorMessage(resp.Body)}
	}
	return resp, nil
}

// fetch GETs path into dest. Failures are logged and returned.
func (c *Client) fetch(ctx context.Context, path string, query map[string]string, dest interface{}) error {
	resp, err := c.send(ctx, rest.Get, path, query, nil)
	if err == nil {
		if err = json.Unmarshal([]byte(resp.Body), dest); err != nil {
			err = errors.Wrapf(err, "decoding %s", path)
		}
	}
	if err != nil {
		c.logger.Error(fmt.Sprintf("fetching %s failed", path), err)
	}
	return err
}

// mutate sends a POST or DELETE and reports it as an Outcome. created, when not nil, receives the response body.
func (c *Client) mutate(ctx context.Context, action string, method rest.Method, path string, body, created interface{}) Outcome {
	out := Outcome{Action: action}

	resp, err := c.send(ctx, method, path, nil, body)
	if resp != nil {
		out.StatusCode = resp.StatusCode
	}
	if err == nil && created != nil {
		if err = json.Unmarshal([]byte(resp.Body), created); err != nil {
			err = errors.Wrapf(err, "decoding %s", path)
		}
	}
	if err != nil {
		out.Err = err
		out.Message = err.Error()
		if rerr, ok := errors.Cause(err).(*ResponseError); ok {
			out.Message = rerr.Message
		}
		c.logger.Error(fmt.Sprintf("%s failed", action), err)
		return out
	}

	out.Succeeded = true
	return out
}

// errorMessage flattens the error bodies of the API: {"error": "..."} or {"field": "error", ...}.
func errorMessage(body string) string {
	var fields map[string]interface{}
	if err := json.Unmarshal([]byte(body), &fields); err != nil {
		return strings.TrimSpace(body)
	}
	if msg, ok := fields["error"].(string); ok && len(fields) == 1 {
		return msg
	}

	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %v", k, fields[k]))
	}
	return strings.Join(parts, "; ")
}

func (c *Client) FetchSchedule(ctx context.Context) ([]schedule.Entry, error) {
	entries := make([]schedule.Entry, 0)
	if err := c.fetch(ctx, "/api/schedule", nil, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

func (c *Client) FetchSubjects(ctx context.Context, query string, limit int) ([]string, error) {
	params := map[string]string{}
	if query != "" {
		params["q"] = query
	}
	if limit > 0 {
		params["limit"] = strconv.Itoa(limit)
	}
	subjects := make([]string, 0)
	if err := c.fetch(ctx, "/api/subjects", params, &subjects); err != nil {
		return nil, err
	}
	return subjects, nil
}

// AddSchedule creates an entry; on success created holds it.
func (c *Client) AddSchedule(ctx context.Context, ne schedule.NewEntry, created *schedule.Entry) Outcome {
	var dest interface{}
	if created != nil {
		dest = created
	}
	return c.mutate(ctx, "add schedule entry", rest.Post, "/api/schedule", ne, dest)
}

func (c *Client) DeleteSchedule(ctx context.Context, id int) Outcome {
	return c.mutate(ctx, "delete schedule entry", rest.Delete, "/api/schedule/"+strconv.Itoa(id), nil, nil)
}

func (c *Client) FetchGrades(ctx context.Context) ([]grade.Entry, error) {
	entries := make([]grade.Entry, 0)
	if err := c.fetch(ctx, "/api/grade", nil, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// AddGrade creates a grade; on success created holds it.
func (c *Client) AddGrade(ctx context.Context, ne grade.NewEntry, created *grade.Entry) Outcome {
	var dest interface{}
	if created != nil {
		dest = created
	}
	return c.mutate(ctx, "add grade", rest.Post, "/api/grade", ne, dest)
}

func (c *Client) DeleteGrade(ctx context.Context, id int) Outcome {
	return c.mutate(ctx, "delete grade", rest.Delete, "/api/grade/"+strconv.Itoa(id), nil, nil)
}

func (c *Client) FetchCalendar(ctx context.Context, cursor calendar.Cursor) (calendar.Month, error) {
	params := map[string]string{
		"year":  strconv.Itoa(cursor.Year),
		"month": strconv.Itoa(int(cursor.Month)),
	}
	var month calendar.Month
	if err := c.fetch(ctx, "/api/calendar", params, &month); err != nil {
		return nil, err
	}
	return month, nil
}

package core

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

type (
	CallID string

	// Call is a single execution of a query. It runs synchronously and
	// is finished by the time it is returned.
	Call struct {
		id        CallID
		query     string
		state     CallState
		timeTaken time.Duration
		timestamp time.Time

		result *Result

		// any error that might occur during execution
		err error
	}
)

// QueryError is returned for every failed call. The session that issued
// the call is expected to report it and carry on.
type QueryError struct {
	CallID CallID
	Query  string
	Err    error
}

func (e *QueryError) Error() string {
	return e.Err.Error()
}

func (e *QueryError) Unwrap() error {
	return e.Err
}

// callPersistent is used for marshaling the call
type callPersistent struct {
	ID        string `json:"id"`
	Query     string `json:"query"`
	State     string `json:"state"`
	TimeTaken int64  `json:"time_taken_us"`
	Timestamp int64  `json:"timestamp_us"`
	Rows      int    `json:"rows"`
	Error     string `json:"error,omitempty"`
}

func (c *Call) MarshalJSON() ([]byte, error) {
	errMsg := ""
	if c.err != nil {
		errMsg = c.err.Error()
	}

	return json.Marshal(&callPersistent{
		ID:        string(c.id),
		Query:     c.query,
		State:     c.state.String(),
		TimeTaken: c.timeTaken.Microseconds(),
		Timestamp: c.timestamp.UnixMicro(),
		Rows:      c.result.Len(),
		Error:     errMsg,
	})
}

// runCall executes the query with the executor and drains the returned
// stream. onEvent is invoked on every state transition.
func runCall(ctx context.Context, executor func(context.Context) (ResultStream, error), query string, onEvent func(CallState, *Call)) *Call {
	c := &Call{
		id:        CallID(uuid.New().String()),
		query:     query,
		state:     CallStateUnknown,
		timestamp: time.Now(),
		result:    new(Result),
	}

	setState := func(state CallState) {
		c.state = state
		if onEvent != nil {
			onEvent(state, c)
		}
	}

	fail := func(state CallState, err error) *Call {
		c.timeTaken = time.Since(c.timestamp)
		c.err = &QueryError{CallID: c.id, Query: query, Err: err}
		setState(state)
		return c
	}

	setState(CallStateExecuting)
	iter, err := executor(ctx)
	if err != nil {
		return fail(CallStateExecutingFailed, err)
	}

	setState(CallStateRetrieving)
	if err := c.result.SetIter(iter); err != nil {
		return fail(CallStateRetrievingFailed, fmt.Errorf("result.SetIter: %w", err))
	}

	c.timeTaken = time.Since(c.timestamp)
	setState(CallStateDone)
	return c
}

func (c *Call) GetID() CallID {
	return c.id
}

func (c *Call) GetState() CallState {
	return c.state
}

func (c *Call) GetTimeTaken() time.Duration {
	return c.timeTaken
}

// Err returns a *QueryError if the call failed.
func (c *Call) Err() error {
	return c.err
}

// GetResult returns the drained result. On failure it returns the call
// error along with whatever rows were read before the failure.
func (c *Call) GetResult() (*Result, error) {
	return c.result, c.err
}

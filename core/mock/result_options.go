package mock

import (
	"github.com/kndndrj/dbconsole/core"
)

type resultStreamConfig struct {
	header   core.Header
	failAt   int
	failWith error
}

type ResultStreamOption func(*resultStreamConfig)

func ResultStreamWithHeader(header core.Header) ResultStreamOption {
	return func(c *resultStreamConfig) {
		c.header = header
	}
}

// ResultStreamWithError makes the stream fail with err when row number
// "at" (zero based) is requested.
func ResultStreamWithError(at int, err error) ResultStreamOption {
	return func(c *resultStreamConfig) {
		c.failAt = at
		c.failWith = err
	}
}

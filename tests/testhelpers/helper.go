// Package testhelpers provides helpers for integration tests.
package testhelpers

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"

	"github.com/kndndrj/dbconsole/console"
	"github.com/kndndrj/dbconsole/core"
	"github.com/kndndrj/dbconsole/core/format"
)

// GetContainerProvider returns the container provider type to use for the tests.
// If we detect podman is available, we use it, otherwise we use docker.
func GetContainerProvider() testcontainers.ProviderType {
	if _, err := exec.LookPath("podman"); err == nil {
		fmt.Println("Podman detected. Remember to set TESTCONTAINERS_RYUK_CONTAINER_PRIVILEGED=true;")
		return testcontainers.ProviderPodman
	}
	return testcontainers.ProviderDocker
}

// GetResult executes the query and returns the drained rows, the header
// and the error of the call.
func GetResult(t *testing.T, c *core.Connection, query string, args ...any) ([]core.Row, core.Header, error) {
	t.Helper()

	call := c.Execute(context.Background(), query, args...)
	result, err := call.GetResult()
	if err != nil {
		return nil, nil, err
	}

	rows, err := result.Rows(0, -1)
	require.NoError(t, err)

	return rows, result.Header(), nil
}

// RunConsole feeds input to a northwind console on the connection and
// returns everything it printed.
func RunConsole(t *testing.T, c *core.Connection, input string) string {
	t.Helper()

	out := new(bytes.Buffer)
	cons := console.New(c, console.NorthwindMenu(), format.NewRecord(), strings.NewReader(input), out)
	require.NoError(t, cons.Run(context.Background()))

	return out.String()
}

// GetTestDataPath returns the path to the testdata directory.
func GetTestDataPath() (string, error) {
	_, currentFile, _, ok := runtime.Caller(0)
	if !ok {
		return "", fmt.Errorf("failed to get current file path")
	}

	return filepath.Join(filepath.Dir(currentFile), "../testdata"), nil
}

// GetTestDataFile returns a file from the testdata directory.
func GetTestDataFile(filename string) (*os.File, error) {
	testDataPath, err := GetTestDataPath()
	if err != nil {
		return nil, err
	}

	path := filepath.Join(testDataPath, filename)
	return os.Open(path)
}

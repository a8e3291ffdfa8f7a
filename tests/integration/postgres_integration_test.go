package integration

import (
	"context"
	"log"
	"testing"

	tsuite "github.com/stretchr/testify/suite"
	tc "github.com/testcontainers/testcontainers-go"

	"github.com/kndndrj/dbconsole/adapters"
	"github.com/kndndrj/dbconsole/core"
	th "github.com/kndndrj/dbconsole/tests/testhelpers"
)

// PostgresTestSuite is the test suite for the postgres adapter.
type PostgresTestSuite struct {
	northwindSuite
	ctr *th.PostgresContainer
}

func TestPostgresTestSuite(t *testing.T) {
	tsuite.Run(t, new(PostgresTestSuite))
}

func (suite *PostgresTestSuite) SetupSuite() {
	ctr, err := th.NewPostgresContainer(context.Background())
	if err != nil {
		log.Fatal(err)
	}

	suite.ctr = ctr
	suite.conn = ctr.Conn
	suite.newConn = ctr.NewConn
	suite.foldsCase = true
}

func (suite *PostgresTestSuite) TearDownSuite() {
	tc.CleanupContainer(suite.T(), suite.ctr)
}

func (suite *PostgresTestSuite) TestShouldRejectWrongPassword() {
	target := core.NewConnectionTarget(suite.ctr.Target.URL, "northwind", "wrong")

	call := adapters.NewConnection(target).Execute(context.Background(), "SELECT 1")
	suite.Error(call.Err())
	suite.Equal(core.CallStateExecutingFailed, call.GetState())
}

package integration

import (
	"context"
	"log"
	"testing"

	tsuite "github.com/stretchr/testify/suite"
	tc "github.com/testcontainers/testcontainers-go"

	th "github.com/kndndrj/dbconsole/tests/testhelpers"
)

// MySQLTestSuite is the test suite for the mysql adapter.
type MySQLTestSuite struct {
	northwindSuite
	ctr *th.MySQLContainer
}

func TestMySQLTestSuite(t *testing.T) {
	tsuite.Run(t, new(MySQLTestSuite))
}

func (suite *MySQLTestSuite) SetupSuite() {
	ctr, err := th.NewMySQLContainer(context.Background())
	if err != nil {
		log.Fatal(err)
	}

	suite.ctr = ctr
	suite.conn = ctr.Conn
	suite.newConn = ctr.NewConn
}

func (suite *MySQLTestSuite) TearDownSuite() {
	tc.CleanupContainer(suite.T(), suite.ctr)
}

func (suite *MySQLTestSuite) TestShouldReportSyntaxError() {
	call := suite.conn.Execute(context.Background(), "SELEC 1")
	suite.ErrorContains(call.Err(), "You have an error in your SQL syntax")
}

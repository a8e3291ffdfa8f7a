package integration

import (
	"context"
	"log"
	"testing"

	tsuite "github.com/stretchr/testify/suite"
	tc "github.com/testcontainers/testcontainers-go"

	th "github.com/kndndrj/dbconsole/tests/testhelpers"
)

// SQLServerTestSuite is the test suite for the sqlserver adapter.
type SQLServerTestSuite struct {
	northwindSuite
	ctr *th.MSSQLServerContainer
}

func TestSQLServerTestSuite(t *testing.T) {
	tsuite.Run(t, new(SQLServerTestSuite))
}

func (suite *SQLServerTestSuite) SetupSuite() {
	ctr, err := th.NewSQLServerContainer(context.Background())
	if err != nil {
		log.Fatal(err)
	}

	suite.ctr = ctr
	suite.conn = ctr.Conn
	suite.newConn = ctr.NewConn
}

func (suite *SQLServerTestSuite) TearDownSuite() {
	tc.CleanupContainer(suite.T(), suite.ctr)
}

func (suite *SQLServerTestSuite) TestShouldReturnUniqueIdentifierAsText() {
	rows, _, err := th.GetResult(suite.T(), suite.conn,
		"SELECT CAST('6F9619FF-8B86-D011-B42D-00C04FC964FF' AS UNIQUEIDENTIFIER) AS id")
	suite.Require().NoError(err)
	suite.Require().Len(rows, 1)

	id, ok := rows[0][0].(string)
	suite.True(ok)
	suite.Len(id, 36)
}

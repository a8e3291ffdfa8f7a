package integration

import (
	"context"
	"strings"

	tsuite "github.com/stretchr/testify/suite"

	"github.com/kndndrj/dbconsole/core"
	th "github.com/kndndrj/dbconsole/tests/testhelpers"
)

// northwindSuite holds the tests shared by every database seeded with the
// northwind fixture. Database suites embed it and set conn and newConn in
// their SetupSuite.
type northwindSuite struct {
	tsuite.Suite
	conn    *core.Connection
	newConn func(opts ...core.ConnectionOption) *core.Connection

	// foldsCase is set for databases that lowercase unquoted identifiers
	foldsCase bool
}

func (suite *northwindSuite) header(cols ...string) core.Header {
	if suite.foldsCase {
		for i := range cols {
			cols[i] = strings.ToLower(cols[i])
		}
	}
	return core.Header(cols)
}

func (suite *northwindSuite) TestShouldReturnCategories() {
	t := suite.T()

	rows, header, err := th.GetResult(t, suite.conn, "SELECT CategoryID, CategoryName FROM Categories ORDER BY CategoryID")
	suite.Require().NoError(err)

	suite.Equal(suite.header("CategoryID", "CategoryName"), header)
	suite.Equal([]core.Row{
		{int64(1), "Beverages"},
		{int64(2), "Condiments"},
		{int64(3), "Confections"},
	}, rows)
}

func (suite *northwindSuite) TestShouldBindArguments() {
	t := suite.T()

	rows, header, err := th.GetResult(t, suite.conn,
		"SELECT ProductID, ProductName, UnitPrice, UnitsInStock FROM Products WHERE CategoryID = ? ORDER BY ProductID", 1)
	suite.Require().NoError(err)

	suite.Equal(suite.header("ProductID", "ProductName", "UnitPrice", "UnitsInStock"), header)
	suite.Equal([]core.Row{
		{int64(1), "Chai", 18.0, int64(39)},
		{int64(2), "Chang", 19.0, int64(17)},
	}, rows)
}

func (suite *northwindSuite) TestShouldReturnNoRows() {
	t := suite.T()

	rows, _, err := th.GetResult(t, suite.conn, "SELECT ProductID FROM Products WHERE CategoryID = ?", 99)
	suite.Require().NoError(err)
	suite.Empty(rows)
}

func (suite *northwindSuite) TestShouldErrorInvalidQuery() {
	call := suite.conn.Execute(context.Background(), "invalid sql")

	suite.Equal(core.CallStateExecutingFailed, call.GetState())

	var queryErr *core.QueryError
	suite.ErrorAs(call.Err(), &queryErr)
}

func (suite *northwindSuite) TestShouldRunConsoleSession() {
	out := th.RunConsole(suite.T(), suite.conn, "1\n2\n3\n4\n2\n4\n99\n5\nabc\n0\n")

	suite.Contains(out, "ProductName: Chai")
	suite.Contains(out, "CompanyName: Alfreds Futterkiste")
	suite.Contains(out, "Beverages")
	suite.Contains(out, "Aniseed Syrup")
	suite.Contains(out, "No products found in category 99")
	suite.Contains(out, "Invalid selection. Try again.")
	suite.NotContains(out, "Query failed")
	suite.True(strings.HasSuffix(out, "Exiting...\n"))
}

func (suite *northwindSuite) TestShouldReuseOnePoolWhenPooled() {
	conn := suite.newConn(core.WithPool())
	defer conn.Close()

	out := th.RunConsole(suite.T(), conn, "3\n3\n1\n0\n")

	suite.Equal(2, strings.Count(out, "CategoryName: Beverages"))
	suite.NotContains(out, "Query failed")
}

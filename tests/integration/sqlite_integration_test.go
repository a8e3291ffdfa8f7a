package integration

import (
	"log"
	"os"
	"testing"

	tsuite "github.com/stretchr/testify/suite"

	th "github.com/kndndrj/dbconsole/tests/testhelpers"
)

// SQLiteTestSuite is the test suite for the sqlite adapter.
type SQLiteTestSuite struct {
	northwindSuite
	db  *th.SQLiteDatabase
	dir string
}

func TestSQLiteTestSuite(t *testing.T) {
	tsuite.Run(t, new(SQLiteTestSuite))
}

func (suite *SQLiteTestSuite) SetupSuite() {
	dir, err := os.MkdirTemp("", "dbconsole-sqlite")
	if err != nil {
		log.Fatal(err)
	}

	db, err := th.NewSQLiteDatabase(dir)
	if err != nil {
		log.Fatal(err)
	}

	suite.dir = dir
	suite.db = db
	suite.conn = db.Conn
	suite.newConn = db.NewConn
}

func (suite *SQLiteTestSuite) TearDownSuite() {
	_ = os.RemoveAll(suite.dir)
}

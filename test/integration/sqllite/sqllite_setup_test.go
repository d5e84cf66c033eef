package sqllite

import (
	"fmt"
	"path/filepath"
	"strconv"
	"sync/atomic"
	"testing"

	"github.com/RealZimboGuy/relvalmatrix/internal/config"
)

var portBase int32 = 9018

func nextPort() int {
	return int(atomic.AddInt32(&portBase, 1))
}

func runTestWithSetup(t *testing.T, testFunc func(t *testing.T, port int)) {
	port := nextPort()
	t.Setenv("HTTP_ADDR", ":"+strconv.Itoa(port))
	SetupSqlLiteTestInstance(t, filepath.Join(t.TempDir(), fmt.Sprintf("relvalmatrix-test-%d.db", port)))
	testFunc(t, port)
}

func SetupSqlLiteTestInstance(t *testing.T, filename string) {
	config.Set(config.DATABASE_TYPE, config.DATABASE_TYPE_SQLLITE)
	config.Set(config.DATABASE_SQLLITE_FILE_NAME, filename)
	t.Cleanup(config.Reset)
}

package mysql

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/RealZimboGuy/relvalmatrix/pkg/relvalmatrix"
	"github.com/RealZimboGuy/relvalmatrix/test/integration/common"
)

func TestPublishRoundTrip(t *testing.T) {
	if testing.Short() {
		t.Skip("needs docker")
	}
	container, _ := SetupMysqlTestInstance(t, t.Context())
	defer container.Terminate(t.Context())

	db, err := relvalmatrix.OpenDatabase()
	require.NoError(t, err)
	defer db.Close()

	common.RunPublishRoundTrip(t, db)
}

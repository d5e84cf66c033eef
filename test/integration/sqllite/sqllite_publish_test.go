package sqllite

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/RealZimboGuy/relvalmatrix/pkg/relvalmatrix"
	"github.com/RealZimboGuy/relvalmatrix/test/integration/common"
)

func TestPublishRoundTrip(t *testing.T) {
	runTestWithSetup(t, func(t *testing.T, port int) {
		db, err := relvalmatrix.OpenDatabase()
		require.NoError(t, err)
		defer db.Close()

		common.RunPublishRoundTrip(t, db)
	})
}

func TestOpenDatabase_MigratesTwice(t *testing.T) {
	runTestWithSetup(t, func(t *testing.T, port int) {
		db, err := relvalmatrix.OpenDatabase()
		require.NoError(t, err)
		db.Close()

		db, err = relvalmatrix.OpenDatabase()
		require.NoError(t, err)
		db.Close()
	})
}

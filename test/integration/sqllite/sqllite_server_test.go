package sqllite

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/RealZimboGuy/relvalmatrix/internal/config"
	"github.com/RealZimboGuy/relvalmatrix/internal/util"
	"github.com/RealZimboGuy/relvalmatrix/pkg/relvalmatrix"
	"github.com/RealZimboGuy/relvalmatrix/pkg/relvalmatrix/domain"
	"github.com/RealZimboGuy/relvalmatrix/pkg/relvalmatrix/models"
)

func waitForServer(t *testing.T, url string) {
	t.Helper()
	deadline := time.Now().Add(10 * time.Second)
	for time.Now().Before(deadline) {
		resp, err := http.Get(url)
		if err == nil {
			resp.Body.Close()
			return
		}
		time.Sleep(50 * time.Millisecond)
	}
	t.Fatalf("server at %s did not come up", url)
}

func TestServe_PublishOnStartAndRead(t *testing.T) {
	runTestWithSetup(t, func(t *testing.T, port int) {
		hash, err := bcrypt.GenerateFromPassword([]byte("secret"), bcrypt.MinCost)
		require.NoError(t, err)
		config.Set(config.API_KEY_HASH, string(hash))
		config.Set(config.PUBLISH_ON_START, "true")

		ctx, cancel := context.WithCancel(context.Background())
		done := make(chan error, 1)
		go func() { done <- relvalmatrix.Start(ctx, nil) }()
		defer func() {
			cancel()
			assert.NoError(t, <-done)
		}()

		base := fmt.Sprintf("http://localhost:%d", port)
		waitForServer(t, base+"/api/publications/latest")

		resp, err := http.Get(base + "/api/workflows/507")
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		wf, err := util.DecodeJSONBodyResponse[domain.WorkflowEntry](resp)
		require.NoError(t, err)
		assert.Equal(t, []string{"SoftQCDDiffractive_13TeV_pythia8", "HARVESTGEN"}, wf.Steps)

		resp, err = http.Get(base + "/api/numbering/2017")
		require.NoError(t, err)
		numbering, err := util.DecodeJSONBodyResponse[models.NumberingResponse](resp)
		require.NoError(t, err)
		assert.Equal(t, 10000, numbering.Numbers[0].Number)

		// already published on start
		req, err := http.NewRequest(http.MethodPost, base+"/api/publications", nil)
		require.NoError(t, err)
		req.Header.Set("X-API-Key", "secret")
		resp, err = http.DefaultClient.Do(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		published, err := util.DecodeJSONBodyResponse[models.PublishResponse](resp)
		require.NoError(t, err)
		assert.False(t, published.Created)

		resp, err = http.Get(base + "/api/scenarios/1999")
		require.NoError(t, err)
		resp.Body.Close()
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}

func TestServe_PortInUse(t *testing.T) {
	runTestWithSetup(t, func(t *testing.T, port int) {
		l, err := net.Listen("tcp", fmt.Sprintf(":%d", port))
		require.NoError(t, err)
		defer l.Close()
		config.Set(config.PUBLISH_ON_START, "false")

		done := make(chan error, 1)
		go func() { done <- relvalmatrix.Start(context.Background(), nil) }()

		select {
		case err := <-done:
			assert.Error(t, err)
		case <-time.After(10 * time.Second):
			t.Fatal("Start did not return while the port was taken")
		}
	})
}

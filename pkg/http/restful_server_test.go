package http

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"liyu1981.xyz/aquarium-service/pkg/aqua"
	"liyu1981.xyz/aquarium-service/pkg/aqua/mocks"
	"liyu1981.xyz/aquarium-service/pkg/common"
	"liyu1981.xyz/aquarium-service/pkg/db"
	"liyu1981.xyz/aquarium-service/pkg/models"
	_ "liyu1981.xyz/aquarium-service/pkg/testing"
)

type serverOpts struct {
	limiter      *aqua.RateLimiterStore
	requireAuth  bool
	orphanPolicy aqua.OrphanPolicy
}

func setupTestServerWith(t *testing.T, opts serverOpts) *RestfulServer {
	gin.SetMode(gin.TestMode)

	dbInstance := db.MustOpen(db.UseMemorySqliteDialector())
	t.Cleanup(func() { _ = dbInstance.Close() })

	aquaObj := (&aqua.Aqua{
		Db:           *dbInstance,
		OrphanPolicy: opts.orphanPolicy,
	}).WithDefaultServices()
	require.NoError(t, aquaObj.Auth.SeedUser("admin", "admin"))

	rs := &RestfulServer{
		Server:           gin.New(),
		Aqua:             aquaObj,
		RateLimiterStore: opts.limiter,
		RequireAuth:      opts.requireAuth,
	}

	rs.Setup()

	return rs
}

func setupTestServer(t *testing.T) *RestfulServer {
	return setupTestServerWith(t, serverOpts{})
}

func doJSON(rs *RestfulServer, method, path string, body any, headers ...string) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		payload, _ := json.Marshal(b)
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}

	w := httptest.NewRecorder()
	rs.Server.ServeHTTP(w, req)
	return w
}

func createAquarium(t *testing.T, rs *RestfulServer, name string, volume float64) models.Aquarium {
	w := doJSON(rs, http.MethodPost, "/api/aquariums", AquariumRequest{Name: name, Volume: volume})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created models.Aquarium
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	return created
}

func newFishRequest(name, species string, aquariumID uint) FishRequest {
	id := float64(aquariumID)
	return FishRequest{Name: name, Species: species, AquariumID: &id}
}

func TestHealthCheck(t *testing.T) {
	common.SetTestLoggerNop()
	rs := setupTestServer(t)

	w := doJSON(rs, http.MethodGet, "/healthz", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestAquariumLifecycle(t *testing.T) {
	common.SetTestLoggerNop()
	rs := setupTestServer(t)

	w := doJSON(rs, http.MethodGet, "/api/aquariums", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())

	first := createAquarium(t, rs, "Reef", 250)
	second := createAquarium(t, rs, "Nano", 30)
	assert.Greater(t, second.ID, first.ID)
	assert.Equal(t, "Nano", second.Name)
	assert.Equal(t, 30.0, second.Volume)

	w = doJSON(rs, http.MethodGet, "/api/aquariums", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var listed []models.Aquarium
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listed))
	require.Len(t, listed, 2)
	assert.Equal(t, first.ID, listed[0].ID)

	w = doJSON(rs, http.MethodDelete, fmt.Sprintf("/api/aquariums/%d", first.ID), nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())

	third := createAquarium(t, rs, "Planted", 90)
	assert.Greater(t, third.ID, second.ID)
}

func TestCreateAquarium_EdgeCases(t *testing.T) {
	common.SetTestLoggerNop()
	rs := setupTestServer(t)

	payloads := []string{
		`{}`,
		`{"name":"Reef"}`,
		`{"volume":100}`,
		`{"name":"","volume":100}`,
		`{"name":"Reef","volume":0}`,
	}
	for _, payload := range payloads {
		w := doJSON(rs, http.MethodPost, "/api/aquariums", payload)
		assert.Equal(t, http.StatusBadRequest, w.Code, payload)
	}

	w := doJSON(rs, http.MethodGet, "/api/aquariums", nil)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestDeleteAquarium_NotFound(t *testing.T) {
	common.SetTestLoggerNop()
	rs := setupTestServer(t)

	createAquarium(t, rs, "Reef", 250)

	for _, path := range []string{"/api/aquariums/999", "/api/aquariums/abc"} {
		w := doJSON(rs, http.MethodDelete, path, nil)
		assert.Equal(t, http.StatusNotFound, w.Code, path)
	}

	w := doJSON(rs, http.MethodGet, "/api/aquariums", nil)
	var listed []models.Aquarium
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listed))
	assert.Len(t, listed, 1)
}

func TestFishLifecycle(t *testing.T) {
	common.SetTestLoggerNop()
	rs := setupTestServer(t)

	tank := createAquarium(t, rs, "Community", 120)

	w := doJSON(rs, http.MethodPost, "/api/fish", newFishRequest("Neon", "Paracheirodon innesi", tank.ID))
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created models.Fish
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, tank.ID, created.AquariumID)
	assert.Contains(t, w.Body.String(), `"aquariumId"`)

	w = doJSON(rs, http.MethodGet, "/api/fish", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var listed []models.Fish
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listed))
	assert.Equal(t, []models.Fish{created}, listed)

	w = doJSON(rs, http.MethodDelete, fmt.Sprintf("/api/fish/%d", created.ID), nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = doJSON(rs, http.MethodDelete, fmt.Sprintf("/api/fish/%d", created.ID), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreateFish_EdgeCases(t *testing.T) {
	common.SetTestLoggerNop()
	rs := setupTestServer(t)

	tank := createAquarium(t, rs, "Community", 120)

	for _, payload := range []string{
		`{}`,
		`{"name":"Neon","species":"Tetra"}`,
		fmt.Sprintf(`{"name":"","species":"Tetra","aquariumId":%d}`, tank.ID),
		fmt.Sprintf(`{"name":"Neon","aquariumId":%d}`, tank.ID),
	} {
		w := doJSON(rs, http.MethodPost, "/api/fish", payload)
		assert.Equal(t, http.StatusBadRequest, w.Code, payload)
	}

	// zero, negative or non-numeric references never reach the store
	for _, payload := range []string{
		`{"name":"Neon","species":"Tetra","aquariumId":0}`,
		`{"name":"Neon","species":"Tetra","aquariumId":-1}`,
		fmt.Sprintf(`{"name":"Neon","species":"Tetra","aquariumId":"%d"}`, tank.ID),
	} {
		w := doJSON(rs, http.MethodPost, "/api/fish", payload)
		assert.Equal(t, http.StatusBadRequest, w.Code, payload)
	}

	// no aquarium has these ids: 404 and nothing appended
	for _, payload := range []string{
		fmt.Sprintf(`{"name":"Neon","species":"Tetra","aquariumId":%d}`, tank.ID+10),
		fmt.Sprintf(`{"name":"Neon","species":"Tetra","aquariumId":%d.7}`, tank.ID),
		`{"name":"Neon","species":"Tetra","aquariumId":1e20}`,
	} {
		w := doJSON(rs, http.MethodPost, "/api/fish", payload)
		assert.Equal(t, http.StatusNotFound, w.Code, payload)
	}

	w := doJSON(rs, http.MethodGet, "/api/fish", nil)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestDeleteAquarium_OrphanPolicies(t *testing.T) {
	common.SetTestLoggerNop()

	for _, tc := range []struct {
		policy    aqua.OrphanPolicy
		remaining int
	}{
		{aqua.OrphanPolicyKeep, 1},
		{aqua.OrphanPolicyCascade, 0},
	} {
		t.Run(string(tc.policy), func(t *testing.T) {
			rs := setupTestServerWith(t, serverOpts{orphanPolicy: tc.policy})
			tank := createAquarium(t, rs, "Reef", 250)

			w := doJSON(rs, http.MethodPost, "/api/fish", newFishRequest("Nemo", "Clownfish", tank.ID))
			require.Equal(t, http.StatusCreated, w.Code)

			w = doJSON(rs, http.MethodDelete, fmt.Sprintf("/api/aquariums/%d", tank.ID), nil)
			require.Equal(t, http.StatusNoContent, w.Code)

			w = doJSON(rs, http.MethodGet, "/api/fish", nil)
			var listed []models.Fish
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listed))
			assert.Len(t, listed, tc.remaining)
		})
	}
}

func TestMeasurements(t *testing.T) {
	common.SetTestLoggerNop()
	rs := setupTestServer(t)

	tank := createAquarium(t, rs, "Reef", 250)
	path := fmt.Sprintf("/api/aquariums/%d/params", tank.ID)

	w := doJSON(rs, http.MethodGet, path, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"parametri":[]}`, w.Body.String())

	base := time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC)
	values := []float64{26.5, 0, 25.75}
	for i, v := range values {
		body := fmt.Sprintf(`{"tipo":"temperatura","valore":%v,"data":%q}`, v, base.Add(time.Duration(i)*time.Hour).Format(time.RFC3339))
		w = doJSON(rs, http.MethodPost, path, body)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var resp MeasurementsResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Len(t, resp.Parametri, i+1)
	}

	w = doJSON(rs, http.MethodGet, path, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp MeasurementsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Parametri, len(values))
	for i, m := range resp.Parametri {
		assert.Equal(t, models.MeasurementTypeTemperature, m.Tipo)
		assert.Equal(t, values[i], m.Valore)
		assert.True(t, base.Add(time.Duration(i)*time.Hour).Equal(m.Data))
	}

	// measurements are part of the aquarium listing too
	w = doJSON(rs, http.MethodGet, "/api/aquariums", nil)
	var listed []models.Aquarium
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listed))
	require.Len(t, listed, 1)
	assert.Len(t, listed[0].Parametri, len(values))
}

func TestMeasurements_EdgeCases(t *testing.T) {
	common.SetTestLoggerNop()
	rs := setupTestServer(t)

	tank := createAquarium(t, rs, "Reef", 250)
	path := fmt.Sprintf("/api/aquariums/%d/params", tank.ID)

	for _, payload := range []string{
		`{}`,
		`{"valore":7,"data":"2024-06-01T08:00:00Z"}`,
		`{"tipo":"ph","data":"2024-06-01T08:00:00Z"}`,
		`{"tipo":"ph","valore":"high","data":"2024-06-01T08:00:00Z"}`,
		`{"tipo":"ph","valore":7}`,
		`{"tipo":"salinity","valore":35,"data":"2024-06-01T08:00:00Z"}`,
	} {
		w := doJSON(rs, http.MethodPost, path, payload)
		assert.Equal(t, http.StatusBadRequest, w.Code, payload)
	}

	missing := fmt.Sprintf("/api/aquariums/%d/params", tank.ID+1)
	w := doJSON(rs, http.MethodPost, missing, `{"tipo":"ph","valore":7,"data":"2024-06-01T08:00:00Z"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(rs, http.MethodGet, missing, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestInternalErrorsAreHidden(t *testing.T) {
	common.SetTestLoggerNop()
	rs := setupTestServer(t)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockIAquarium := mocks.NewMockIAquarium(ctrl)
	rs.Aqua.Aquarium = mockIAquarium
	mockIAquarium.EXPECT().
		CreateAquarium(gomock.Any()).
		Return(nil, fmt.Errorf("disk on fire")).
		Times(1)
	mockIAquarium.EXPECT().
		ListAquariums().
		Return(nil, fmt.Errorf("just causing error")).
		Times(1)

	w := doJSON(rs, http.MethodPost, "/api/aquariums", AquariumRequest{Name: "Reef", Volume: 10})
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"internal server error"}`, w.Body.String())

	w = doJSON(rs, http.MethodGet, "/api/aquariums", nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "just causing error")
}

func TestPanicsAreRecovered(t *testing.T) {
	common.SetTestLoggerNop()
	rs := setupTestServer(t)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockIFish := mocks.NewMockIFish(ctrl)
	rs.Aqua.Fish = mockIFish
	mockIFish.EXPECT().
		ListFish().
		DoAndReturn(func() ([]models.Fish, error) { panic("boom") }).
		Times(1)

	w := doJSON(rs, http.MethodGet, "/api/fish", nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"internal server error"}`, w.Body.String())
}

func TestLimiter(t *testing.T) {
	common.SetTestLoggerNop()

	rs := setupTestServerWith(t, serverOpts{limiter: aqua.NewRateLimiterStore(0, 2)})

	for i := range 3 {
		w := doJSON(rs, http.MethodPost, "/api/aquariums", AquariumRequest{Name: "Reef", Volume: 10})
		if i < 2 {
			require.Equal(t, http.StatusCreated, w.Code, "request %d should be allowed", i+1)
		} else {
			require.Equal(t, http.StatusTooManyRequests, w.Code, "request %d should be rate limited", i+1)
		}
	}

	// reads are never limited
	w := doJSON(rs, http.MethodGet, "/api/aquariums", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	// and a raised limit takes effect for the client
	rs.RateLimiterStore.SetLimiter("192.0.2.1", 100, 100)
	w = doJSON(rs, http.MethodPost, "/api/aquariums", AquariumRequest{Name: "Reef", Volume: 10})
	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestCorsPreflight(t *testing.T) {
	common.SetTestLoggerNop()
	rs := setupTestServer(t)

	req := httptest.NewRequest(http.MethodOptions, "/api/aquariums", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	req.Header.Set("Access-Control-Request-Headers", "Authorization, Content-Type")
	w := httptest.NewRecorder()
	rs.Server.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, w.Header().Get("Access-Control-Allow-Headers"), "Authorization")
}

func TestMetricsEndpoint(t *testing.T) {
	common.SetTestLoggerNop()
	rs := setupTestServer(t)

	tank := createAquarium(t, rs, "Reef", 250)
	w := doJSON(rs, http.MethodPost, fmt.Sprintf("/api/aquariums/%d/params", tank.ID),
		`{"tipo":"ph","valore":8.2,"data":"2024-06-01T08:00:00Z"}`)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(rs, http.MethodGet, "/metrics", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `aquarium_store_measurements_recorded_total{tipo="ph"} 1`)
	assert.Contains(t, w.Body.String(), `path="/api/aquariums"`)
}

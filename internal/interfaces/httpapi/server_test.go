package httpapi

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/riskibarqy/player-insights/internal/domain/metric"
	"github.com/riskibarqy/player-insights/internal/domain/schema"
	schemamock "github.com/riskibarqy/player-insights/internal/mocks/domain/schema"
	"github.com/riskibarqy/player-insights/internal/observability"
	"github.com/riskibarqy/player-insights/internal/platform/logging"
	"github.com/riskibarqy/player-insights/internal/usecase"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type envelope struct {
	APIVersion string           `json:"apiVersion"`
	Data       json.RawMessage  `json:"data"`
	Error      *googleErrorBody `json:"error"`
}

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	source := schemamock.NewSource(t)
	source.On("Fetch", mock.Anything).Return(schema.RawTable{
		Version: "v1",
		Origin:  "players.csv",
		Header:  []string{"Player", "Nation", "Pos", "Squad", "Min", "Gls", "Ast"},
		Rows: [][]string{
			{"A", "eng ENG", "FW", "X", "1000", "10", "5"},
			{"B", "fr FRA", "FW", "X", "200", "3", "0"},
			{"Mo Salah", "eg EGY", "FW", "Y", "2700", "18", "9"},
		},
	}, nil).Once()

	datasets := usecase.NewDatasetService(source, metric.NewDeriver(), logging.NewNop())
	_, err := datasets.Load(context.Background())
	require.NoError(t, err)

	rankings := usecase.NewRankingService(datasets, usecase.RankingLimits{DefaultTopN: 10, MaxTopN: 50})
	metrics := observability.NewMetrics()
	handler := NewHandler(rankings, datasets, metrics, logging.NewNop())
	return NewRouter(handler, logging.NewNop(), metrics, []string{"*"})
}

func do(t *testing.T, router http.Handler, method, target, body string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var env envelope
	if strings.HasPrefix(rec.Header().Get("Content-Type"), "application/json") {
		require.NoError(t, sonic.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())
	}
	return rec, env
}

func TestRouter_Rankings(t *testing.T) {
	router := newTestRouter(t)

	rec, env := do(t, router, http.MethodGet, "/v1/rankings?metric=Goals&top_n=2", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.NotEmpty(t, rec.Header().Get(requestIDHeader))

	var got rankingDTO
	require.NoError(t, sonic.Unmarshal(env.Data, &got))
	require.Equal(t, 2, got.TopN)
	require.Len(t, got.Items, 2)
	require.Equal(t, "Mo Salah", got.Items[0].Player)
	require.Equal(t, 1, got.Items[0].Rank)
	require.Equal(t, "A", got.Items[1].Player)

	rec, env = do(t, router, http.MethodGet, "/v1/rankings?metric=Goals&squad=X&min_minutes=500", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, sonic.Unmarshal(env.Data, &got))
	require.Len(t, got.Items, 1)
	require.Equal(t, "A", got.Items[0].Player)
	require.Equal(t, 10, got.TopN)
}

func TestRouter_RankingsErrors(t *testing.T) {
	router := newTestRouter(t)

	cases := []struct {
		target string
		status int
		reason string
	}{
		{"/v1/rankings", http.StatusBadRequest, "invalidInput"},
		{"/v1/rankings?metric=Goals&min_minutes=abc", http.StatusBadRequest, "invalidInput"},
		{"/v1/rankings?metric=Goals&min_minutes=-1", http.StatusBadRequest, "invalidInput"},
		{"/v1/rankings?metric=Goals&top_n=500", http.StatusBadRequest, "invalidInput"},
		{"/v1/rankings?metric=Pressures", http.StatusBadRequest, "unknownMetric"},
	}
	for _, tc := range cases {
		rec, env := do(t, router, http.MethodGet, tc.target, "")
		require.Equal(t, tc.status, rec.Code, tc.target)
		require.NotNil(t, env.Error, tc.target)
		require.Equal(t, tc.reason, env.Error.Errors[0].Reason, tc.target)
	}
}

func TestRouter_ExportRankings(t *testing.T) {
	router := newTestRouter(t)

	rec, _ := do(t, router, http.MethodGet, "/v1/rankings/export?metric=Goal_Contribution", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.True(t, strings.HasPrefix(rec.Header().Get("Content-Type"), "text/csv"))

	rows, err := csv.NewReader(strings.NewReader(rec.Body.String())).ReadAll()
	require.NoError(t, err)
	require.Equal(t, []string{"Rank", "Player", "Squad", "Pos", "Minutes Played", "Goal_Contribution"}, rows[0])
	require.Len(t, rows, 4)
	require.Equal(t, []string{"1", "Mo Salah", "Y", "FW", "2700", "27"}, rows[1])
}

func TestRouter_Compare(t *testing.T) {
	router := newTestRouter(t)

	rec, env := do(t, router, http.MethodPost, "/v1/comparisons", `{"players":["B","A","Nobody"],"metric":"Goals"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var got comparisonDTO
	require.NoError(t, sonic.Unmarshal(env.Data, &got))
	require.Equal(t, []comparisonPointDTO{
		{Player: "B", Squad: "X", Value: 3},
		{Player: "A", Squad: "X", Value: 10},
	}, got.Points)

	rec, env = do(t, router, http.MethodPost, "/v1/comparisons", `{"players":[],"metric":"Goals"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, "INVALID_ARGUMENT", env.Error.Status)

	rec, _ = do(t, router, http.MethodPost, "/v1/comparisons", `{"players":`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRouter_PlayersAndOptions(t *testing.T) {
	router := newTestRouter(t)

	rec, env := do(t, router, http.MethodGet, "/v1/players?squad=X", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var players []playerDTO
	require.NoError(t, sonic.Unmarshal(env.Data, &players))
	require.Len(t, players, 2)
	require.Equal(t, "England", players[0].Nation)
	require.Equal(t, 15.0, players[0].Stats["Goal_Contribution"])

	rec, env = do(t, router, http.MethodGet, "/v1/players/Mo%20Salah", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var one playerDTO
	require.NoError(t, sonic.Unmarshal(env.Data, &one))
	require.Equal(t, "Egypt", one.Nation)

	rec, _ = do(t, router, http.MethodGet, "/v1/players/Nobody", "")
	require.Equal(t, http.StatusNotFound, rec.Code)

	rec, env = do(t, router, http.MethodGet, "/v1/squads", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var squads []string
	require.NoError(t, sonic.Unmarshal(env.Data, &squads))
	require.Equal(t, []string{"All", "X", "Y"}, squads)
}

func TestRouter_SquadSummary(t *testing.T) {
	router := newTestRouter(t)

	rec, env := do(t, router, http.MethodGet, "/v1/squads/X/summary?metric=Goals", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var got squadSummaryDTO
	require.NoError(t, sonic.Unmarshal(env.Data, &got))
	require.Equal(t, 2, got.Players)
	require.Equal(t, 13.0, got.Total)
	require.Equal(t, "A", got.Leader)

	rec, _ = do(t, router, http.MethodGet, "/v1/squads/Z/summary?metric=Goals", "")
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRouter_DatasetAndMetrics(t *testing.T) {
	router := newTestRouter(t)

	rec, env := do(t, router, http.MethodGet, "/v1/dataset", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var info datasetDTO
	require.NoError(t, sonic.Unmarshal(env.Data, &info))
	require.Equal(t, "v1", info.Version)
	require.Equal(t, 3, info.Rows)

	_, _ = do(t, router, http.MethodGet, "/v1/rankings?metric=Goals", "")
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `route="GET /v1/rankings"`)
}

func TestRouter_RecoversPanics(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /boom", func(http.ResponseWriter, *http.Request) { panic("boom") })

	rec := httptest.NewRecorder()
	recoverPanic(logging.NewNop(), mux).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/boom", nil))
	require.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestRouter_RefreshDataset(t *testing.T) {
	source := schemamock.NewSource(t)
	table := schema.RawTable{
		Version: "v1",
		Origin:  "players.csv",
		Header:  []string{"Player", "Pos", "Squad", "Min", "Gls"},
		Rows:    [][]string{{"A", "FW", "X", "900", "4"}},
	}
	source.On("Fetch", mock.Anything).Return(table, nil).Twice()

	datasets := usecase.NewDatasetService(source, metric.NewDeriver(), logging.NewNop())
	_, err := datasets.Load(context.Background())
	require.NoError(t, err)
	rankings := usecase.NewRankingService(datasets, usecase.RankingLimits{DefaultTopN: 10, MaxTopN: 50})
	metrics := observability.NewMetrics()
	router := NewRouter(NewHandler(rankings, datasets, metrics, logging.NewNop()), logging.NewNop(), metrics, nil)

	rec, env := do(t, router, http.MethodPost, "/v1/dataset/refresh", "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var got refreshDTO
	require.NoError(t, sonic.Unmarshal(env.Data, &got))
	require.False(t, got.Changed)
	require.Equal(t, "v1", got.Dataset.Version)
	require.Equal(t, 1, got.Dataset.Rows)
}

func TestRouter_PlayersWithNegativeCounts(t *testing.T) {
	source := schemamock.NewSource(t)
	source.On("Fetch", mock.Anything).Return(schema.RawTable{
		Version: "neg",
		Origin:  "players.csv",
		Header:  []string{"Player", "Pos", "Squad", "Min", "Tkl", "Int", "Press"},
		Rows:    [][]string{{"A", "FW", "X", "900", "-1", "0", "0"}},
	}, nil).Once()

	datasets := usecase.NewDatasetService(source, metric.NewDeriver(), logging.NewNop())
	_, err := datasets.Load(context.Background())
	require.NoError(t, err)
	rankings := usecase.NewRankingService(datasets, usecase.RankingLimits{DefaultTopN: 10, MaxTopN: 50})
	router := NewRouter(NewHandler(rankings, datasets, nil, logging.NewNop()), logging.NewNop(), nil, nil)

	rec, env := do(t, router, http.MethodGet, "/v1/players", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.NotEmpty(t, env.Data, rec.Body.String())

	var got []playerDTO
	require.NoError(t, sonic.Unmarshal(env.Data, &got))
	require.Len(t, got, 1)
	require.Equal(t, float64(0), got[0].Stats[metric.PressingEffectiveness])
}

func TestRouter_EchoesCanonicalMetricName(t *testing.T) {
	router := newTestRouter(t)

	rec, env := do(t, router, http.MethodGet, "/v1/rankings?metric=gls&top_n=1", "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var ranked rankingDTO
	require.NoError(t, sonic.Unmarshal(env.Data, &ranked))
	require.Equal(t, "Goals", ranked.Metric)

	rec, env = do(t, router, http.MethodPost, "/v1/comparisons", `{"players":["A"],"metric":"ast"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var compared comparisonDTO
	require.NoError(t, sonic.Unmarshal(env.Data, &compared))
	require.Equal(t, "Assists", compared.Metric)
}

package api

import (
	"bytes"
	"database/sql"
	"edufinance/internal/app"
	"edufinance/internal/db/models/postgres/public/model"
	"edufinance/internal/domain"
	"edufinance/internal/util"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

type mockObservationRepository struct {
	table domain.ObservationTable
}

func (m mockObservationRepository) Add(tx *sql.Tx, observations []model.MarketObservation) error {
	return nil
}

func (m mockObservationRepository) List(symbols []string) (domain.ObservationTable, error) {
	return m.table, nil
}

func (m mockObservationRepository) ListSymbols() ([]string, error) {
	return m.table.Tickers(), nil
}

func newTestHandler(table domain.ObservationTable) ApiHandler {
	gin.SetMode(gin.TestMode)
	return ApiHandler{
		NormalizeHandler:      app.NormalizeHandler{},
		ObservationRepository: mockObservationRepository{table: table},
	}
}

func doRequest(t *testing.T, handler ApiHandler, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	w := httptest.NewRecorder()
	handler.InitializeRouterEngine().ServeHTTP(w, req)
	return w
}

func testObservations() []observationJson {
	out := []observationJson{}
	add := func(date, ticker string, close *float64, assetClass string) {
		out = append(out, observationJson{
			Date:       date,
			Ticker:     ticker,
			AssetClass: assetClass,
			Close:      close,
			Currency:   "USD",
		})
	}
	f := func(v float64) *float64 { return &v }

	add("2020-01-13", "VOO", f(193.98), "ETF")
	add("2020-01-14", "VOO", f(194.5), "ETF")
	add("2020-01-13", "BTC-USD", f(7200), "Crypto")
	add("2020-01-14", "BTC-USD", f(7300), "Crypto")
	return out
}

func Test_normalize(t *testing.T) {
	t.Run("happy path with inline observations", func(t *testing.T) {
		handler := newTestHandler(nil)

		w := doRequest(t, handler, http.MethodPost, "/normalize", normalizeRequest{
			EndDate:      "2020-01-14",
			Policy:       "strict",
			Observations: testObservations(),
		})
		require.Equal(t, 200, w.Code)

		var resp normalizeResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

		require.Equal(t, "2020-01-13", resp.Audit.CommonStart)
		require.Len(t, resp.Panel, 4)
		for _, row := range resp.Panel {
			require.NotNil(t, row.Close)
		}
	})

	t.Run("falls back to the observation store", func(t *testing.T) {
		handler := newTestHandler(domain.ObservationTable{
			{Date: util.NewDate(2020, 1, 13), Ticker: "QQQ", Close: util.DecimalPointer(decimal.NewFromInt(100)), AssetClass: "ETF", Currency: "USD"},
		})

		w := doRequest(t, handler, http.MethodPost, "/normalize", normalizeRequest{
			EndDate: "2020-01-13",
			Policy:  "strict",
		})
		require.Equal(t, 200, w.Code)

		var resp normalizeResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.Len(t, resp.Panel, 1)
		require.Equal(t, "QQQ", resp.Panel[0].Ticker)
	})

	t.Run("strict integrity failure maps to 422 with tickers", func(t *testing.T) {
		handler := newTestHandler(nil)

		observations := testObservations()
		observations = append(observations, observationJson{
			Date: "2020-01-13", Ticker: "X", AssetClass: "ETF", Currency: "USD",
		})

		w := doRequest(t, handler, http.MethodPost, "/normalize", normalizeRequest{
			EndDate:      "2020-01-14",
			Policy:       "strict",
			Observations: observations,
		})
		require.Equal(t, 422, w.Code)

		var resp struct {
			Error   string   `json:"error"`
			Tickers []string `json:"tickers"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.Equal(t, []string{"X"}, resp.Tickers)
	})

	t.Run("end date before data maps to 400", func(t *testing.T) {
		handler := newTestHandler(nil)

		w := doRequest(t, handler, http.MethodPost, "/normalize", normalizeRequest{
			EndDate:      "2019-12-31",
			Policy:       "strict",
			Observations: testObservations(),
		})
		require.Equal(t, 400, w.Code)
	})

	t.Run("bad policy rejected", func(t *testing.T) {
		handler := newTestHandler(nil)

		w := doRequest(t, handler, http.MethodPost, "/normalize", normalizeRequest{
			EndDate:      "2020-01-14",
			Policy:       "sometimes",
			Observations: testObservations(),
		})
		require.Equal(t, 400, w.Code)
	})
}

func Test_coverage(t *testing.T) {
	t.Run("inline observations", func(t *testing.T) {
		handler := newTestHandler(nil)

		w := doRequest(t, handler, http.MethodPost, "/coverage", coverageRequest{
			Observations: testObservations(),
		})
		require.Equal(t, 200, w.Code)

		var resp coverageResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.Len(t, resp.Coverage, 2)
		require.Equal(t, "BTC-USD", resp.Coverage[0].Ticker)
		require.Equal(t, 1.0, resp.Coverage[0].CoverageRatio)
	})
}

func Test_tickers(t *testing.T) {
	handler := newTestHandler(domain.ObservationTable{
		{Date: util.NewDate(2020, 1, 13), Ticker: "VOO", AssetClass: "ETF", Currency: "USD"},
		{Date: util.NewDate(2020, 1, 13), Ticker: "BTC-USD", AssetClass: "Crypto", Currency: "USD"},
	})

	w := doRequest(t, handler, http.MethodGet, "/tickers", nil)
	require.Equal(t, 200, w.Code)

	var resp struct {
		Tickers []string `json:"tickers"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, []string{"BTC-USD", "VOO"}, resp.Tickers)
}

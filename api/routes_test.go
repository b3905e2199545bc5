package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/payoff-server/internal/cache"
	"github.com/carson-networks/payoff-server/internal/handlers/v1/plan"
	"github.com/carson-networks/payoff-server/internal/logging"
	"github.com/carson-networks/payoff-server/internal/operator"
	"github.com/carson-networks/payoff-server/internal/payoff"
	"github.com/carson-networks/payoff-server/internal/service"
)

func newTestRest(t *testing.T) *Rest {
	t.Helper()
	logger := logging.SetupLogging()
	logger.Out = &bytes.Buffer{}

	op := operator.NewOperatorDelegator(2, 10)
	op.Start()
	t.Cleanup(op.Stop)

	return &Rest{
		Logger:   logger,
		Port:     "0",
		Service:  service.NewService(payoff.NewSimulator(payoff.Options{}), cache.NewMemoryCache(0), logger),
		Operator: op,
	}
}

func postJSON(t *testing.T, handler http.Handler, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	return w
}

func TestRoutes_Status(t *testing.T) {
	handler := newTestRest(t).Routes()

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/status", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"workers":2`)
}

func TestRoutes_CalculatePayoffEndToEnd(t *testing.T) {
	handler := newTestRest(t).Routes()

	w := postJSON(t, handler, "/v1/payoff", plan.CalculatePayoffBody{
		Accounts: []plan.AccountInput{
			{ID: "only", Name: "Only Card", Balance: "1200", InterestRate: "12", MinPayment: "100"},
		},
		Strategy:      "snowball",
		MonthlyBudget: "300",
	})

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var body plan.PayoffPlan
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	assert.Equal(t, "snowball", body.Strategy)
	assert.Equal(t, 5, body.TotalMonths)
	assert.Equal(t, "0.00", body.Schedule[len(body.Schedule)-1].RemainingDebt)
	assert.Equal(t, "30.91", body.Schedule[4].Payments[0].Payment)
}

func TestRoutes_InsufficientBudgetEndToEnd(t *testing.T) {
	handler := newTestRest(t).Routes()

	w := postJSON(t, handler, "/v1/payoff", plan.CalculatePayoffBody{
		Accounts: []plan.AccountInput{
			{Name: "A", Balance: "1000", InterestRate: "20", MinPayment: "100"},
			{Name: "B", Balance: "500", InterestRate: "10", MinPayment: "50"},
		},
		Strategy:      "avalanche",
		MonthlyBudget: "100",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "monthly payment must be at least 150")
}

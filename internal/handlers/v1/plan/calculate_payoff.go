package plan

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/payoff-server/internal/logging"
	"github.com/carson-networks/payoff-server/internal/operator/actions"
	"github.com/carson-networks/payoff-server/internal/payoff"
	"github.com/carson-networks/payoff-server/internal/service"
)

// CalculatePayoffBody is the request body for calculating a payoff plan.
type CalculatePayoffBody struct {
	Accounts      []AccountInput `json:"accounts" minItems:"1" doc:"Accounts to pay off"`
	Strategy      string         `json:"strategy" enum:"avalanche,snowball" doc:"avalanche pays the highest rate first, snowball the lowest balance"`
	MonthlyBudget string         `json:"monthlyBudget" doc:"Total amount available each month, at least the sum of minimum payments"`
}

// CalculatePayoffInput is the Huma input for calculating a payoff plan.
type CalculatePayoffInput struct {
	Body CalculatePayoffBody
}

// CalculatePayoffOutput is the Huma output for calculating a payoff plan.
type CalculatePayoffOutput struct {
	Body PayoffPlan
}

type payoffCalculator interface {
	Calculate(ctx context.Context, req service.PayoffRequest) (*payoff.PayoffPlan, error)
}

// CalculatePayoffHandler handles POST /v1/payoff.
type CalculatePayoffHandler struct {
	PayoffService payoffCalculator
	Operator      actionProcessor
}

// NewCalculatePayoffHandler creates a new CalculatePayoffHandler.
func NewCalculatePayoffHandler(svc payoffCalculator, op actionProcessor) *CalculatePayoffHandler {
	return &CalculatePayoffHandler{PayoffService: svc, Operator: op}
}

// Register registers the calculate payoff endpoint with the Huma API.
func (h *CalculatePayoffHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "calculate-payoff",
		Method:      http.MethodPost,
		Path:        "/v1/payoff",
		Summary:     "Calculate a payoff plan",
		Description: "Simulates paying off the given accounts month by month with a fixed budget and strategy.",
		Tags:        []string{"Payoff"},
	}, h.handle)
}

func (h *CalculatePayoffHandler) handle(ctx context.Context, input *CalculatePayoffInput) (*CalculatePayoffOutput, error) {
	logData := logging.GetLogData(ctx)

	req, err := parseRequest(input.Body.Accounts, input.Body.Strategy, input.Body.MonthlyBudget)
	if err != nil {
		return nil, err
	}

	if logData != nil {
		logData.AddData("strategy", string(req.Strategy))
		logData.AddData("accountCount", len(req.Accounts))
	}

	action := &actions.CalculatePayoff{
		Service: h.PayoffService,
		Request: req,
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("calculatePayoffMs")
	}
	err = h.Operator.Process(ctx, action)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, payoffError(err)
	}

	if logData != nil {
		logData.AddData("totalMonths", action.Plan.TotalMonths)
	}

	return &CalculatePayoffOutput{Body: toPayoffPlan(action.Plan)}, nil
}

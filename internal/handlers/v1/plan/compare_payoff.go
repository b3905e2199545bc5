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

// ComparePayoffBody is the request body for comparing strategies.
type ComparePayoffBody struct {
	Accounts      []AccountInput `json:"accounts" minItems:"1" doc:"Accounts to pay off"`
	MonthlyBudget string         `json:"monthlyBudget" doc:"Total amount available each month, at least the sum of minimum payments"`
}

// ComparePayoffInput is the Huma input for comparing strategies.
type ComparePayoffInput struct {
	Body ComparePayoffBody
}

// ComparePayoffResponse is the response body for comparing strategies.
type ComparePayoffResponse struct {
	Avalanche     PayoffPlan `json:"avalanche" doc:"Highest rate first"`
	Snowball      PayoffPlan `json:"snowball" doc:"Lowest balance first"`
	InterestSaved string     `json:"interestSaved" doc:"Interest avalanche saves over snowball, never negative"`
	MonthsSaved   int        `json:"monthsSaved" doc:"Snowball months minus avalanche months"`
	Recommended   string     `json:"recommended" doc:"Strategy paying the least interest"`
}

// ComparePayoffOutput is the Huma output for comparing strategies.
type ComparePayoffOutput struct {
	Body ComparePayoffResponse
}

type payoffComparer interface {
	Compare(ctx context.Context, req service.PayoffRequest) (*payoff.Comparison, error)
}

// ComparePayoffHandler handles POST /v1/payoff/compare.
type ComparePayoffHandler struct {
	PayoffService payoffComparer
	Operator      actionProcessor
}

// NewComparePayoffHandler creates a new ComparePayoffHandler.
func NewComparePayoffHandler(svc payoffComparer, op actionProcessor) *ComparePayoffHandler {
	return &ComparePayoffHandler{PayoffService: svc, Operator: op}
}

// Register registers the compare payoff endpoint with the Huma API.
func (h *ComparePayoffHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "compare-payoff",
		Method:      http.MethodPost,
		Path:        "/v1/payoff/compare",
		Summary:     "Compare payoff strategies",
		Description: "Calculates avalanche and snowball plans for the same accounts and budget.",
		Tags:        []string{"Payoff"},
	}, h.handle)
}

func (h *ComparePayoffHandler) handle(ctx context.Context, input *ComparePayoffInput) (*ComparePayoffOutput, error) {
	logData := logging.GetLogData(ctx)

	req, err := parseRequest(input.Body.Accounts, "", input.Body.MonthlyBudget)
	if err != nil {
		return nil, err
	}

	action := &actions.ComparePayoff{
		Service: h.PayoffService,
		Request: req,
	}

	var stopTimer func()
	if logData != nil {
		logData.AddData("accountCount", len(req.Accounts))
		stopTimer = logData.AddTiming("comparePayoffMs")
	}
	err = h.Operator.Process(ctx, action)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, payoffError(err)
	}

	comparison := action.Comparison
	if logData != nil {
		logData.AddData("recommended", string(comparison.Recommended))
	}

	return &ComparePayoffOutput{Body: ComparePayoffResponse{
		Avalanche:     toPayoffPlan(comparison.Avalanche),
		Snowball:      toPayoffPlan(comparison.Snowball),
		InterestSaved: money(comparison.InterestSaved),
		MonthsSaved:   comparison.MonthsSaved,
		Recommended:   string(comparison.Recommended),
	}}, nil
}

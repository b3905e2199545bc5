package status

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/carson-networks/payoff-server/internal/logging"
)

type operatorStats interface {
	Workers() int
	QueueDepth() int
}

// Response is the body written by the status endpoint.
type Response struct {
	Status     string `json:"status"`
	Workers    int    `json:"workers"`
	QueueDepth int    `json:"queueDepth"`
}

type Handler struct {
	Operator operatorStats
}

func NewHandler(op operatorStats) Handler {
	return Handler{Operator: op}
}

func (h *Handler) Handler(w http.ResponseWriter, req *http.Request, logData *logging.LogData) error {
	if req.Method != http.MethodGet {
		w.WriteHeader(http.StatusBadRequest)
		return errors.New("status: method not GET")
	}

	resp := Response{
		Status:     "ok",
		Workers:    h.Operator.Workers(),
		QueueDepth: h.Operator.QueueDepth(),
	}
	logData.AddData("queueDepth", resp.QueueDepth)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	return json.NewEncoder(w).Encode(resp)
}

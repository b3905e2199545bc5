package operator

import (
	"context"
	"fmt"

	"github.com/carson-networks/payoff-server/internal/operator/actions"
)

// Operator is the worker that processes items from the queue.
type Operator struct {
	queue chan ActionItem
}

func NewOperator(queue chan ActionItem) *Operator {
	return &Operator{
		queue: queue,
	}
}

// Run listens to the queue and processes items. Exits when the queue is closed.
func (o *Operator) Run() {
	for item := range o.queue {
		o.processItem(item)
	}
}

func (o *Operator) processItem(item ActionItem) {
	// The caller may have given up while the item sat in the queue.
	if err := item.ctx.Err(); err != nil {
		item.response <- ActionItemResponse{err: err}
		return
	}

	item.response <- ActionItemResponse{err: perform(item)}
}

func perform(item ActionItem) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("operator: action panicked: %v", r)
		}
	}()

	return item.action.Perform(item.ctx)
}

type ActionItem struct {
	ctx      context.Context
	action   actions.IAction
	response chan ActionItemResponse
}

type ActionItemResponse struct {
	err error
}

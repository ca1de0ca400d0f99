package ws

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"career-navigator/internal/delivery/http/dto"
	"career-navigator/internal/usecase"
)

const (
	TypeEvaluate    = "evaluate"
	TypeEvaluation  = "evaluation"
	TypeError       = "error"
	TypeNewsUpdated = "news_updated"
)

type Evaluator interface {
	Evaluate(ctx context.Context, in usecase.EvaluateInput) (usecase.EvaluationResult, error)
}

type inboundMessage struct {
	Type    string              `json:"type"`
	ID      string              `json:"id,omitempty"`
	Payload dto.EvaluateRequest `json:"payload"`
}

type outboundMessage struct {
	Type    string `json:"type"`
	ID      string `json:"id,omitempty"`
	Payload any    `json:"payload,omitempty"`
	Error   string `json:"error,omitempty"`
	Fields  any    `json:"fields,omitempty"`
}

// Dispatcher answers inbound client messages. Unknown types and bad payloads produce an
// error message rather than closing the connection.
type Dispatcher struct {
	evaluator Evaluator
	timeout   time.Duration
}

func NewDispatcher(evaluator Evaluator) *Dispatcher {
	return &Dispatcher{evaluator: evaluator, timeout: 5 * time.Second}
}

func (d *Dispatcher) Handle(ctx context.Context, raw []byte) []byte {
	var in inboundMessage
	if err := json.Unmarshal(raw, &in); err != nil {
		return encode(outboundMessage{Type: TypeError, Error: "invalid message"})
	}

	switch in.Type {
	case TypeEvaluate:
		if d == nil || d.evaluator == nil {
			return encode(outboundMessage{Type: TypeError, ID: in.ID, Error: "evaluation unavailable"})
		}
		ctx, cancel := context.WithTimeout(ctx, d.timeout)
		defer cancel()

		res, err := d.evaluator.Evaluate(ctx, in.Payload.Input())
		if err != nil {
			return encode(errorMessage(in.ID, err))
		}
		return encode(outboundMessage{Type: TypeEvaluation, ID: in.ID, Payload: dto.NewEvaluationResponse(res)})
	default:
		return encode(outboundMessage{Type: TypeError, ID: in.ID, Error: "unknown message type"})
	}
}

func errorMessage(id string, err error) outboundMessage {
	out := outboundMessage{Type: TypeError, ID: id}
	var verr *usecase.ValidationError
	switch {
	case errors.As(err, &verr):
		out.Error = "invalid request"
		out.Fields = verr.Fields
	case errors.Is(err, usecase.ErrUnknownRole):
		out.Error = "role not found"
	case usecase.IsClientError(err):
		out.Error = err.Error()
	default:
		out.Error = "internal server error"
	}
	return out
}

func encode(m outboundMessage) []byte {
	b, err := json.Marshal(m)
	if err != nil {
		return []byte(`{"type":"error","error":"internal server error"}`)
	}
	return b
}

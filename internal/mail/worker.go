package mail

import (
	"context"
	"encoding/json"
	"fmt"
	"time"
)

// Outcome tells the consumer what to do with a delivery.
type Outcome int

const (
	Ack Outcome = iota
	Requeue
	Drop
)

func (o Outcome) String() string {
	switch o {
	case Ack:
		return "ack"
	case Requeue:
		return "requeue"
	default:
		return "drop"
	}
}

const sendTimeout = 15 * time.Second

// Deliver decodes one queued job, renders it and hands it to s.
// Undecodable or unrenderable jobs are dropped; send failures are requeued.
func Deliver(ctx context.Context, body []byte, s Sender) (Outcome, error) {
	var job EmailJob
	if err := json.Unmarshal(body, &job); err != nil {
		return Drop, fmt.Errorf("bad message: %w", err)
	}
	if job.To == "" {
		return Drop, fmt.Errorf("bad message: empty recipient")
	}

	msg, err := Render(job.Template, job.Data)
	if err != nil {
		return Drop, fmt.Errorf("render %s: %w", job.Template, err)
	}

	c, cancel := context.WithTimeout(ctx, sendTimeout)
	defer cancel()
	if err := s.Send(c, job.To, msg); err != nil {
		return Requeue, fmt.Errorf("send: %w", err)
	}
	return Ack, nil
}

package ws

import (
	"encoding/json"
	"time"
)

const EventJobsUpdated = "jobs_updated"

type JobsUpdatedEvent struct {
	Type      string   `json:"type"`
	JobIDs    []string `json:"jobIds"`
	Timestamp string   `json:"timestamp"`
}

// Notifier publishes job changes to the hub.
type Notifier struct {
	hub *Hub
	now func() time.Time
}

func NewNotifier(hub *Hub) *Notifier {
	return &Notifier{hub: hub, now: time.Now}
}

func (n *Notifier) NotifyJobsUpdated(jobIDs []string) {
	if n == nil || n.hub == nil || len(jobIDs) == 0 {
		return
	}

	b, err := json.Marshal(JobsUpdatedEvent{
		Type:      EventJobsUpdated,
		JobIDs:    jobIDs,
		Timestamp: n.now().UTC().Format(time.RFC3339),
	})
	if err != nil {
		return
	}
	n.hub.Broadcast(b)
}

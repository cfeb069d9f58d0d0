package notify

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/go-redis/redis/v8"
)

// Queue is the redis list a delivery worker drains. The scheduler only
// enqueues; delivery is someone else's problem.
const Queue = "styleon:notifications"

const (
	EventBookingCreated     = "booking_created"
	EventBookingCancelled   = "booking_cancelled"
	EventBookingStatus      = "booking_status_changed"
	EventBookingRescheduled = "booking_rescheduled"
)

type Event struct {
	Type      string    `json:"type"`
	BookingID uint      `json:"booking_id"`
	Reference string    `json:"reference"`
	ClientID  uint      `json:"client_id"`
	StylistID uint      `json:"stylist_id"`
	Status    string    `json:"status,omitempty"`
	At        time.Time `json:"at"`
}

// Dispatcher pushes booking events to redis off the request path. The
// contract is strictly best effort: enqueue failures are logged and
// swallowed, and a full in-process queue drops the event. Booking
// correctness never depends on a notification landing.
type Dispatcher struct {
	rdb   *redis.Client
	queue chan Event
}

func NewDispatcher(rdb *redis.Client) *Dispatcher {
	d := &Dispatcher{
		rdb:   rdb,
		queue: make(chan Event, 100),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	for ev := range d.queue {
		if d.rdb == nil {
			log.Printf("notify (no redis): %s booking=%d", ev.Type, ev.BookingID)
			continue
		}

		payload, err := json.Marshal(ev)
		if err != nil {
			log.Println("notify marshal error:", err)
			continue
		}

		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		if err := d.rdb.RPush(ctx, Queue, payload).Err(); err != nil {
			log.Println("notify enqueue error:", err)
		}
		cancel()
	}
}

// Dispatch enqueues an event. A nil dispatcher drops everything.
func (d *Dispatcher) Dispatch(ev Event) {
	if d == nil {
		return
	}
	if ev.At.IsZero() {
		ev.At = time.Now()
	}

	select {
	case d.queue <- ev:
	default:
		log.Println("notify queue full, dropping event")
	}
}

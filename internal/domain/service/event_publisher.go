package service

import (
	"context"
)

// EventTypeRouteCompleted tags events emitted when a user finishes a route.
const EventTypeRouteCompleted = "ROUTE_COMPLETED"

// RouteCompletedEvent is the payload published to the message broker when a
// user completes a route. The score is always the route's stored score, never
// a client-supplied value.
type RouteCompletedEvent struct {
	EventType      string   `json:"eventType"`
	RouteID        string   `json:"routeId"`
	RouteName      string   `json:"routeName"`
	CreatorID      string   `json:"creatorId"`
	UserID         string   `json:"userId"`
	Completed      bool     `json:"completed"`
	Score          int      `json:"score"`
	CompletedCount int      `json:"completedCount"`
	DistanceKm     *float64 `json:"distanceKm,omitempty"`
	EstTimeMin     *int     `json:"estTimeMin,omitempty"`
	ActualTimeMin  *int     `json:"actualTimeMin,omitempty"`
	Timestamp      string   `json:"timestamp"` // ISO-8601 completion time
}

// EventPublisher defines the interface for publishing domain events to a
// message broker. Publishing is at-least-once: a publish error after the
// calling use case already persisted its state must surface to the caller.
type EventPublisher interface {
	// Publish delivers a single event. It fails immediately when the broker
	// connection is down; events are never buffered.
	Publish(ctx context.Context, event *RouteCompletedEvent) error

	// IsHealthy reports whether the broker connection and channel are live.
	IsHealthy() bool

	// Close releases any resources held by the publisher
	Close() error
}

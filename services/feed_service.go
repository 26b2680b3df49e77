// file: services/feed_service.go
package services

import (
	"encoding/json"
	"log"

	"github.com/redis/go-redis/v9"
	"github.com/vedantwankhade123/Roborace/database"
	"github.com/vedantwankhade123/Roborace/models"
)

// FeedChannel carries one message per registration mutation so dashboard
// clients can refresh their live feed without polling.
const FeedChannel = "roborace:registrations"

const (
	FeedEventCreated       = "created"
	FeedEventStatusChanged = "status_changed"
	FeedEventDeleted       = "deleted"
)

type FeedEvent struct {
	Type           string               `json:"type"`
	RegistrationID uint32               `json:"registration_id"`
	Registration   *models.Registration `json:"registration,omitempty"`
}

// PublishFeedEvent broadcasts a mutation. Delivery is best-effort: a publish
// failure is logged and the triggering request still succeeds, since the
// database remains the source of truth.
func PublishFeedEvent(event FeedEvent) {
	payload, err := json.Marshal(event)
	if err != nil {
		log.Printf("Failed to marshal feed event: %v", err)
		return
	}
	if err := database.RDB.Publish(database.Ctx, FeedChannel, payload).Err(); err != nil {
		log.Printf("Failed to publish feed event: %v", err)
	}
}

// SubscribeFeed opens a pub/sub subscription for one dashboard client. The
// caller owns the subscription and must Close it when the stream ends.
func SubscribeFeed() *redis.PubSub {
	return database.RDB.Subscribe(database.Ctx, FeedChannel)
}

// Package events holds the subscribers that react to in-process messages.
package events

import (
	"encoding/json"

	c "api/internal/cache"
	"api/internal/configuration"
	"api/internal/sql"
	"api/internal/stats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// RefreshParams carries the dependencies of the refresh subscriber.
type RefreshParams struct {
	DB    *gorm.DB
	Cache c.ICache
}

// RefreshPayload describes why a summary recompute was requested.
type RefreshPayload struct {
	Reason string `json:"reason"`
}

// NewRefreshMessage builds a stats.refresh message.
func NewRefreshMessage(reason string) *message.Message {
	payload, _ := json.Marshal(RefreshPayload{Reason: reason})
	return message.NewMessage(watermill.NewUUID(), payload)
}

// HandleRefreshEvents consumes stats.refresh messages and rebuilds the
// cached dashboard summary. Messages are acked even on failure: the next
// tick of the refresh worker retries, and serving a stale summary beats
// a redelivery loop.
func HandleRefreshEvents(params *RefreshParams, messages <-chan *message.Message) {
	for msg := range messages {
		var payload RefreshPayload
		if err := json.Unmarshal(msg.Payload, &payload); err != nil {
			zap.L().Warn("Discarding malformed refresh event", zap.Error(err))
			msg.Ack()
			continue
		}

		if err := RecomputeSummary(params.DB, params.Cache); err != nil {
			zap.L().Error("Failed to recompute summary",
				zap.String("reason", payload.Reason), zap.Error(err))
		} else {
			zap.L().Info("Recomputed summary", zap.String("reason", payload.Reason))
		}

		msg.Ack()
	}
}

// RecomputeSummary rebuilds the summary from the database and stores it
// in the cache. A nil cache turns this into a no-op.
func RecomputeSummary(db *gorm.DB, cache c.ICache) error {
	if cache == nil {
		return nil
	}

	categories, err := sql.GetCategoryStats(db)
	if err != nil {
		return err
	}

	summary := stats.AssembleSummary(categories)
	payload, err := json.Marshal(summary)
	if err != nil {
		return err
	}

	return cache.SetSummary(configuration.SummaryCacheKeyDefault, payload)
}

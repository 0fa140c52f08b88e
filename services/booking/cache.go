// File: services/booking/cache.go
package booking

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"

	"barberbook/config"
	"barberbook/utils"
)

func slotCacheKey(barberID string, date time.Time, durationMin int) string {
	return fmt.Sprintf("avail:%s:%s:%d", barberID, date.Format("2006-01-02"), durationMin)
}

func (s *DefaultBookingService) cachedSlots(ctx context.Context, barberID string, date time.Time, durationMin int) ([]time.Time, bool) {
	if s.Cache == nil {
		return nil, false
	}
	raw, err := s.Cache.Get(ctx, slotCacheKey(barberID, date, durationMin)).Result()
	if err != nil {
		return nil, false
	}
	var slots []time.Time
	if err := json.Unmarshal([]byte(raw), &slots); err != nil {
		return nil, false
	}
	return slots, true
}

// storeSlots caches a computed slot list. The key carries no time of
// day, so today's entry can briefly serve starts that have slipped
// into the past; the short TTL bounds that staleness, and the write
// paths re-validate against a fresh computation anyway.
func (s *DefaultBookingService) storeSlots(ctx context.Context, barberID string, date time.Time, durationMin int, slots []time.Time) {
	if s.Cache == nil {
		return
	}
	data, err := json.Marshal(slots)
	if err != nil {
		return
	}
	ttl := time.Duration(config.AppConfig.AvailabilityTTLSec) * time.Second
	if ttl <= 0 {
		ttl = 30 * time.Second
	}
	if err := s.Cache.Set(ctx, slotCacheKey(barberID, date, durationMin), data, ttl).Err(); err != nil {
		utils.GetLogger().Warn("availability cache write failed", zap.Error(err))
	}
}

// invalidateDay drops every cached slot list for the barber's day,
// whatever the service duration. Called after each booking write.
func (s *DefaultBookingService) invalidateDay(ctx context.Context, barberID string, date time.Time) {
	if s.Cache == nil {
		return
	}
	pattern := fmt.Sprintf("avail:%s:%s:*", barberID, date.In(s.loc()).Format("2006-01-02"))
	keys, err := s.Cache.Keys(ctx, pattern).Result()
	if err != nil || len(keys) == 0 {
		return
	}
	if err := s.Cache.Del(ctx, keys...).Err(); err != nil {
		utils.GetLogger().Warn("availability cache invalidation failed", zap.Error(err))
	}
}

package redis

import (
	"context"
	"encoding/json"
	"time"

	"github.com/kirinyoku/flightdesk/internal/domain"
	"github.com/redis/go-redis/v9"
)

type CheckInPubSub struct {
	rdb     *redis.Client
	channel string
}

func NewCheckInPubSub(rdb *redis.Client) *CheckInPubSub {
	return &CheckInPubSub{
		rdb:     rdb,
		channel: ChannelCheckIns(),
	}
}

type checkInMsg struct {
	Type    string         `json:"type"`
	CheckIn domain.CheckIn `json:"check_in"`
	TsUnix  int64          `json:"ts_unix"`
}

func (p *CheckInPubSub) PublishCheckIn(ctx context.Context, ci domain.CheckIn) error {
	msg := checkInMsg{
		Type:    "checkin.completed",
		CheckIn: ci,
		TsUnix:  time.Now().Unix(),
	}

	b, err := json.Marshal(msg)
	if err != nil {
		return err
	}

	return p.rdb.Publish(ctx, p.channel, b).Err()
}

// Subscribe blocks, calling handler for every well-formed message, until ctx
// is done or the subscription channel closes.
func (p *CheckInPubSub) Subscribe(ctx context.Context, handler func(ctx context.Context, ci domain.CheckIn)) error {
	sub := p.rdb.Subscribe(ctx, p.channel)
	defer sub.Close()

	ch := sub.Channel(redis.WithChannelSize(256))
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case m, ok := <-ch:
			if !ok {
				return nil
			}
			var msg checkInMsg
			if err := json.Unmarshal([]byte(m.Payload), &msg); err == nil &&
				msg.CheckIn.FlightID != "" {
				handler(ctx, msg.CheckIn)
			}
		}
	}
}

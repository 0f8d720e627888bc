package events

import (
	"context"
	"errors"
	"testing"
	"time"

	"video-catalog/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zaptest"
)

type fakeMsg struct {
	data   []byte
	result string
}

func (m *fakeMsg) Data() []byte { return m.data }
func (m *fakeMsg) Ack() error { m.result = "ack"; return nil }
func (m *fakeMsg) Nak() error { m.result = "nak"; return nil }
func (m *fakeMsg) Term() error { m.result = "term"; return nil }

func TestEncodedConsumer_Handle(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		handlerErr error
		wantCalled bool
		want       string
	}{
		{
			name:       "completed message is applied and acked",
			body:       `{"video_id":"v1","encoded_path":"v1/hls/index.m3u8","status":"COMPLETED"}`,
			wantCalled: true,
			want:       "ack",
		},
		{
			name: "undecodable message is terminated",
			body: `{not json`,
			want: "term",
		},
		{
			name: "missing video id is terminated",
			body: `{"encoded_path":"x","status":"COMPLETED"}`,
			want: "term",
		},
		{
			name: "failed encoding is acked without update",
			body: `{"video_id":"v1","status":"ERROR","error":"codec"}`,
			want: "ack",
		},
		{
			name: "completed without path is terminated",
			body: `{"video_id":"v1","status":"COMPLETED"}`,
			want: "term",
		},
		{
			name:       "unknown video is terminated",
			body:       `{"video_id":"v1","encoded_path":"p","status":"completed"}`,
			handlerErr: apperror.NotFound("video not found"),
			wantCalled: true,
			want:       "term",
		},
		{
			name:       "transient failure is retried",
			body:       `{"video_id":"v1","encoded_path":"p","status":"COMPLETED"}`,
			handlerErr: errors.New("connection reset"),
			wantCalled: true,
			want:       "nak",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			called := false
			handler := func(ctx context.Context, videoID, encodedPath string) error {
				called = true
				assert.Equal(t, "v1", videoID)
				return tt.handlerErr
			}

			c := &EncodedConsumer{handler: handler, timeout: time.Second, log: zaptest.NewLogger(t)}
			msg := &fakeMsg{data: []byte(tt.body)}

			c.handle(context.Background(), msg)

			assert.Equal(t, tt.wantCalled, called)
			assert.Equal(t, tt.want, msg.result)
		})
	}
}

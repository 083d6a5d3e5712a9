package logger_test

import (
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/subject/pkg/logger"
)

func TestGroup(t *testing.T) {
	attr := logger.Group("sub", slog.String("id", "1"), slog.Int("n", 2))
	require.Equal(t, "sub", attr.Key)
	require.Equal(t, slog.KindGroup, attr.Value.Kind())
	g := attr.Value.Group()
	require.Len(t, g, 2)
	assert.Equal(t, "id", g[0].Key)
	assert.Equal(t, "n", g[1].Key)
}

func TestError(t *testing.T) {
	err := errors.New("boom")
	attr := logger.Error(err)
	require.Equal(t, "error", attr.Key)
	assert.Equal(t, err, attr.Value.Any())

	assert.True(t, logger.Error(nil).Equal(slog.Attr{}))
}

func TestErrors(t *testing.T) {
	err1 := errors.New("first")
	err2 := errors.New("second")

	attr := logger.Errors(err1, nil, err2)
	require.Equal(t, "errors", attr.Key)
	g := attr.Value.Group()
	require.Len(t, g, 2)
	assert.Equal(t, "0", g[0].Key)
	assert.Equal(t, "2", g[1].Key)

	assert.True(t, logger.Errors(nil, nil).Equal(slog.Attr{}))
}

func TestEventAttrs(t *testing.T) {
	type handle string

	tests := []struct {
		name string
		attr slog.Attr
		key  string
		want any
	}{
		{"channel", logger.Channel("stuff"), "channel", "stuff"},
		{"handle", logger.Handle(handle("h-1")), "handle", "h-1"},
		{"subscribers", logger.Subscribers(3), "subscribers", int64(3)},
		{"payload", logger.Payload(map[string]string{"hi": "hey"}), "payload", map[string]string{"hi": "hey"}},
		{"component", logger.Component("events"), "component", "events"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.key, tt.attr.Key)
			assert.Equal(t, tt.want, tt.attr.Value.Any())
		})
	}
}

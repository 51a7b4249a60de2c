package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/fxdeck/currency_converter_app/internal/core/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestForexNews(t *testing.T) {
	now := time.Date(2024, time.March, 15, 12, 0, 0, 0, time.UTC)
	service := services.NewNewsService(func() time.Time { return now })

	items := service.ForexNews(context.Background())

	require.NotEmpty(t, items)
	for i, item := range items {
		assert.Equal(t, i+1, item.ID)
		assert.NotEmpty(t, item.Title)
		assert.True(t, item.PublishedAt.Before(now), "headlines are always in the past")
		if i > 0 {
			assert.True(t, item.PublishedAt.Before(items[i-1].PublishedAt),
				"headlines are ordered newest first")
		}
	}
}

func TestForexNews_TimestampsTrackNow(t *testing.T) {
	first := time.Date(2024, time.March, 15, 12, 0, 0, 0, time.UTC)
	second := first.Add(6 * time.Hour)
	clock := first
	service := services.NewNewsService(func() time.Time { return clock })

	before := service.ForexNews(context.Background())
	clock = second
	after := service.ForexNews(context.Background())

	assert.Equal(t, 6*time.Hour, after[0].PublishedAt.Sub(before[0].PublishedAt))
}

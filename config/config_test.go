package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSplitList(t *testing.T) {
	assert.Equal(t, []string{"a:9092", "b:9092"}, SplitList(" a:9092, ,b:9092 "))
	assert.Empty(t, SplitList(""))
}

func TestAllowedOrigins(t *testing.T) {
	prev := AppConfig
	t.Cleanup(func() { AppConfig = prev })

	AppConfig.CORSAllowedOrigins = ""
	assert.Equal(t, []string{"*"}, AllowedOrigins())

	AppConfig.CORSAllowedOrigins = "https://bethanyblooms.co.za, https://www.bethanyblooms.co.za"
	assert.Equal(t, []string{"https://bethanyblooms.co.za", "https://www.bethanyblooms.co.za"}, AllowedOrigins())
}

func TestLocation(t *testing.T) {
	prev := AppConfig
	t.Cleanup(func() { AppConfig = prev })

	AppConfig.Timezone = ""
	assert.Equal(t, time.UTC, Location())

	AppConfig.Timezone = "Not/AZone"
	assert.Equal(t, time.UTC, Location())

	AppConfig.Timezone = "UTC"
	assert.Equal(t, "UTC", Location().String())
}

func TestLoadConfigDefaults(t *testing.T) {
	prev := AppConfig
	t.Cleanup(func() { AppConfig = prev })

	LoadConfig()
	assert.Equal(t, "Africa/Johannesburg", AppConfig.Timezone)
	assert.Equal(t, 30*time.Minute, AppConfig.SessionTTL)
	assert.Equal(t, "booking.requested", AppConfig.KafkaBookingTopic)
	assert.False(t, IsProduction())
}

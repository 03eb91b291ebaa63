package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadConfigFrom(t *testing.T) {
	path := writeFile(t, "test.env", `SERVER_PORT=9090
DB_DRIVER=SQLite
SQLITE_PATH=/tmp/gleam.db
KAFKA_BROKERS= kafka-1:9092, ,kafka-2:9092
RATE_LIMIT_CAPACITY=5
RATE_LIMIT_USE_REDIS=true
`)

	cf, err := LoadConfigFrom(path)
	require.NoError(t, err)
	require.Equal(t, "9090", cf.ServerPort)
	require.True(t, cf.UseSqlite())
	require.Equal(t, "/tmp/gleam.db", cf.SqlitePath)
	require.Equal(t, []string{"kafka-1:9092", "kafka-2:9092"}, cf.KafkaBrokerList())
	require.Equal(t, 5, cf.RateLimitCapacity)
	require.True(t, cf.RateLimitUseRedis)

	// 未設定的欄位套用預設值
	require.Equal(t, 20, cf.RateLimitPerSecond)
	require.Equal(t, "gleam-heaven.events", cf.KafkaTopic)
}

func TestLoadConfigFromDefaults(t *testing.T) {
	cf, err := LoadConfigFrom(writeFile(t, "empty.env", "ENV=development\n"))
	require.NoError(t, err)
	require.False(t, cf.UseSqlite())
	require.Empty(t, cf.KafkaBrokerList())
	require.Equal(t, "docs/seed.yaml", cf.SeedFile)
}

func TestLoadConfigFromMissingFile(t *testing.T) {
	_, err := LoadConfigFrom(filepath.Join(t.TempDir(), "nope.env"))
	require.Error(t, err)
}

func TestLoadSeedConfig(t *testing.T) {
	path := writeFile(t, "seed.yaml", `rates:
  - metal_type: gold
    rate_per_gram: "6300"
products:
  - name: Kundan Ring
    category: rings
    metal_type: gold
    weight_grams: "4.2"
    is_featured: true
`)

	seed, err := LoadSeedConfig(path)
	require.NoError(t, err)
	require.Len(t, seed.Rates, 1)
	require.Equal(t, "6300", seed.Rates[0].RatePerGram)
	require.Len(t, seed.Products, 1)
	require.Equal(t, "4.2", seed.Products[0].WeightGrams)
	require.True(t, seed.Products[0].IsFeatured)

	_, err = LoadSeedConfig(writeFile(t, "bad.yaml", "rates: [oops"))
	require.Error(t, err)
}

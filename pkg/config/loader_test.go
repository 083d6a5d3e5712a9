package config_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/subject/pkg/config"
)

type defaultsConfig struct {
	Name  string `env:"CONFIG_TEST_DEFAULT_NAME" envDefault:"default"`
	Count int    `env:"CONFIG_TEST_DEFAULT_COUNT" envDefault:"42"`
}

type cachedConfig struct {
	Name string `env:"CONFIG_TEST_CACHED_NAME"`
}

type requiredConfig struct {
	Value string `env:"CONFIG_TEST_REQUIRED,required"`
}

type fileConfig struct {
	Name  string `env:"CONFIG_TEST_FILE_NAME"`
	Count int    `env:"CONFIG_TEST_FILE_COUNT"`
}

func TestLoad(t *testing.T) {
	t.Run("applies defaults", func(t *testing.T) {
		config.Reset()
		var cfg defaultsConfig
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, "default", cfg.Name)
		assert.Equal(t, 42, cfg.Count)
	})

	t.Run("reads environment", func(t *testing.T) {
		config.Reset()
		t.Setenv("CONFIG_TEST_DEFAULT_NAME", "custom")
		var cfg defaultsConfig
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, "custom", cfg.Name)
	})

	t.Run("parses each type once", func(t *testing.T) {
		config.Reset()
		t.Setenv("CONFIG_TEST_CACHED_NAME", "first")
		var first cachedConfig
		require.NoError(t, config.Load(&first))

		t.Setenv("CONFIG_TEST_CACHED_NAME", "second")
		var second cachedConfig
		require.NoError(t, config.Load(&second))
		assert.Equal(t, "first", second.Name)

		config.Reset()
		var third cachedConfig
		require.NoError(t, config.Load(&third))
		assert.Equal(t, "second", third.Name)
	})

	t.Run("concurrent first load", func(t *testing.T) {
		config.Reset()
		t.Setenv("CONFIG_TEST_CACHED_NAME", "shared")

		var wg sync.WaitGroup
		results := make([]string, 16)
		for i := range results {
			wg.Add(1)
			go func() {
				defer wg.Done()
				var cfg cachedConfig
				if err := config.Load(&cfg); err == nil {
					results[i] = cfg.Name
				}
			}()
		}
		wg.Wait()

		for _, r := range results {
			assert.Equal(t, "shared", r)
		}
	})

	t.Run("missing required value", func(t *testing.T) {
		config.Reset()
		var cfg requiredConfig
		err := config.Load(&cfg)
		require.Error(t, err)
		assert.ErrorIs(t, err, config.ErrParsingConfig)
	})

	t.Run("nil pointer", func(t *testing.T) {
		var cfg *defaultsConfig
		assert.ErrorIs(t, config.Load(cfg), config.ErrNilPointer)
	})
}

func TestMustLoad(t *testing.T) {
	config.Reset()
	assert.Panics(t, func() {
		var cfg requiredConfig
		config.MustLoad(&cfg)
	})
	assert.NotPanics(t, func() {
		var cfg defaultsConfig
		config.MustLoad(&cfg)
	})
}

func TestLoadEnv(t *testing.T) {
	t.Run("loads file", func(t *testing.T) {
		config.Reset()
		t.Setenv("CONFIG_TEST_FILE_NAME", "")
		t.Setenv("CONFIG_TEST_FILE_COUNT", "")
		// t.Setenv restores on cleanup; clear so godotenv does not see them as set.
		unsetForTest(t, "CONFIG_TEST_FILE_NAME", "CONFIG_TEST_FILE_COUNT")

		require.NoError(t, config.LoadEnv("testdata/.env.test"))

		var cfg fileConfig
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, "from file", cfg.Name)
		assert.Equal(t, 7, cfg.Count)
	})

	t.Run("existing variables win", func(t *testing.T) {
		config.Reset()
		t.Setenv("CONFIG_TEST_FILE_NAME", "from env")
		require.NoError(t, config.LoadEnv("testdata/.env.test"))

		var cfg fileConfig
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, "from env", cfg.Name)
	})

	t.Run("missing file", func(t *testing.T) {
		err := config.LoadEnv("testdata/does-not-exist.env")
		assert.ErrorIs(t, err, config.ErrLoadingEnvFile)
	})

	t.Run("no files", func(t *testing.T) {
		assert.NoError(t, config.LoadEnv())
	})
}

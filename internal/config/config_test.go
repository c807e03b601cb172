package config

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		name   string
		rawURL string
		want   string
	}{
		{name: "bare host", rawURL: "https://sho.rt", want: "https://sho.rt"},
		{name: "trailing slash", rawURL: "https://sho.rt/", want: "https://sho.rt"},
		{name: "path and query", rawURL: "https://sho.rt/api?x=1", want: "https://sho.rt"},
		{name: "port kept", rawURL: "http://localhost:8080/base", want: "http://localhost:8080"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parsedURL, err := url.ParseRequestURI(tt.rawURL)
			require.NoError(t, err)

			assert.Equal(t, tt.want, normalizeBaseURL(parsedURL).String())
		})
	}

	assert.Nil(t, normalizeBaseURL(nil))
}

func TestMergeConfig(t *testing.T) {
	envBase := &url.URL{Scheme: "https", Host: "sho.rt"}
	flagBase := &url.URL{Scheme: "http", Host: "localhost:8080"}

	t.Run("env wins", func(t *testing.T) {
		conf := mergeConfig(
			&Config{ServerAddress: ":9090", BaseURL: envBase, JWTSecret: "env-secret"},
			&Config{ServerAddress: "localhost:8080", BaseURL: flagBase},
		)
		assert.Equal(t, ":9090", conf.ServerAddress)
		assert.Equal(t, envBase, conf.BaseURL)
		assert.Equal(t, "env-secret", conf.JWTSecret)
	})

	t.Run("flags fill blanks", func(t *testing.T) {
		conf := mergeConfig(
			&Config{},
			&Config{ServerAddress: "localhost:8080", BaseURL: flagBase, SQLiteDBPath: "db.sqlite"},
		)
		assert.Equal(t, "localhost:8080", conf.ServerAddress)
		assert.Equal(t, flagBase, conf.BaseURL)
		assert.Equal(t, "db.sqlite", conf.SQLiteDBPath)
	})
}

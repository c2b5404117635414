package cache

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/status-im/wallet-proxy/config"
)

func newTestService() *Service {
	return NewService(config.CacheConfig{
		DefaultExpirationSeconds: 60,
		CleanupIntervalSeconds:   120,
		Enabled:                  true,
	})
}

func TestService_GetSet(t *testing.T) {
	s := newTestService()

	s.Set(map[string][]byte{
		"a": []byte("1"),
		"b": []byte("2"),
	}, 0)

	found, missing := s.Get([]string{"a", "b", "c"})
	assert.Equal(t, []byte("1"), found["a"])
	assert.Equal(t, []byte("2"), found["b"])
	assert.Equal(t, []string{"c"}, missing)
}

func TestService_GetOrLoad(t *testing.T) {
	s := newTestService()
	s.Set(map[string][]byte{"cached": []byte("hit")}, 0)

	var loaderKeys []string
	loader := func(missingKeys []string) (map[string][]byte, error) {
		loaderKeys = missingKeys
		return map[string][]byte{"fresh": []byte("loaded")}, nil
	}

	result, err := s.GetOrLoad([]string{"cached", "fresh", "gone"}, loader, time.Minute)
	require.NoError(t, err)

	// Loader receives only the missing keys
	assert.Equal(t, []string{"fresh", "gone"}, loaderKeys)

	// Result merges cached and loaded data; keys the loader couldn't
	// resolve are simply absent
	assert.Equal(t, []byte("hit"), result["cached"])
	assert.Equal(t, []byte("loaded"), result["fresh"])
	assert.NotContains(t, result, "gone")

	// Loaded data is now cached
	found, missing := s.Get([]string{"fresh"})
	assert.Empty(t, missing)
	assert.Equal(t, []byte("loaded"), found["fresh"])
}

func TestService_GetOrLoad_AllCached(t *testing.T) {
	s := newTestService()
	s.Set(map[string][]byte{"a": []byte("1")}, 0)

	result, err := s.GetOrLoad([]string{"a"}, func(missingKeys []string) (map[string][]byte, error) {
		t.Fatal("loader should not be called when all keys are cached")
		return nil, nil
	}, 0)

	require.NoError(t, err)
	assert.Equal(t, []byte("1"), result["a"])
}

func TestService_GetOrLoad_LoaderError(t *testing.T) {
	s := newTestService()

	_, err := s.GetOrLoad([]string{"x"}, func(missingKeys []string) (map[string][]byte, error) {
		return nil, errors.New("upstream down")
	}, 0)

	assert.ErrorContains(t, err, "upstream down")
}

func TestService_GetOrLoad_EmptyKeys(t *testing.T) {
	s := newTestService()

	result, err := s.GetOrLoad(nil, func(missingKeys []string) (map[string][]byte, error) {
		t.Fatal("loader should not be called for empty keys")
		return nil, nil
	}, 0)

	require.NoError(t, err)
	assert.Empty(t, result)
}

func TestService_Expiration(t *testing.T) {
	s := newTestService()
	s.Set(map[string][]byte{"short": []byte("v")}, 10*time.Millisecond)

	time.Sleep(30 * time.Millisecond)

	_, missing := s.Get([]string{"short"})
	assert.Equal(t, []string{"short"}, missing)
}

func TestService_DeleteAndClear(t *testing.T) {
	s := newTestService()
	s.Set(map[string][]byte{"a": []byte("1"), "b": []byte("2")}, 0)

	s.Delete([]string{"a"})
	_, missing := s.Get([]string{"a", "b"})
	assert.Equal(t, []string{"a"}, missing)

	s.Clear()
	assert.Zero(t, s.ItemCount())
}

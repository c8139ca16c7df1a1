package clients

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/spacesedan/reviewflow/config"
	"github.com/valkey-io/valkey-go"
)

var (
	valkeyInstance *ValkeyClient
	valkeyOnce     sync.Once
	valkeyErr      error
)

const (
	VALKEY_PROCESSED_REVIEWS_KEY = "reviews:processed"
	VALKEY_PROCESSED_TTL         = 7 * 24 * time.Hour
	VALKEY_RETRIES               = 3
	VALKEY_RETRY_DELAY           = 250 * time.Millisecond
)

var ErrValkeyNotInitialized = errors.New("valkey client is not initialized")

type ValkeyClient struct {
	Client valkey.Client
	opts   valkey.ClientOption
	mu     sync.Mutex
}

func valkeyOptions(cfg config.ValkeyConfig) valkey.ClientOption {
	opts := valkey.ClientOption{
		InitAddress:      []string{cfg.Address},
		Password:         cfg.Password,
		ConnWriteTimeout: 5 * time.Second,
		SelectDB:         0,
	}
	if cfg.TLS {
		opts.TLSConfig = &tls.Config{InsecureSkipVerify: false}
	}
	return opts
}

func connectValkey(opts valkey.ClientOption) (valkey.Client, error) {
	client, err := valkey.NewClient(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to create valkey client: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := client.Do(ctx, client.B().Ping().Build()).Error(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to ping valkey: %w", err)
	}
	return client, nil
}

// InitValkey connects once; later calls return the same client or error.
func InitValkey(cfg config.ValkeyConfig) (*ValkeyClient, error) {
	valkeyOnce.Do(func() {
		if cfg.Address == "" {
			valkeyErr = fmt.Errorf("%w: VALKEY_INIT_ADDRESS is empty", ErrValkeyNotInitialized)
			return
		}

		opts := valkeyOptions(cfg)
		client, err := connectValkey(opts)
		if err != nil {
			valkeyErr = err
			return
		}

		slog.Info("[ValkeyClient] Successfully connected to valkey",
			slog.String("address", cfg.Address))
		valkeyInstance = &ValkeyClient{Client: client, opts: opts}
	})
	return valkeyInstance, valkeyErr
}

func CloseValkey() {
	if valkeyInstance != nil {
		valkeyInstance.Client.Close()
	}
}

// Ping reports whether the server answers within ctx.
func (vc *ValkeyClient) Ping(ctx context.Context) bool {
	client := vc.client()
	return client.Do(ctx, client.B().Ping().Build()).Error() == nil
}

func (vc *ValkeyClient) recreateClient() {
	vc.mu.Lock()
	defer vc.mu.Unlock()

	slog.Warn("[ValkeyClient] Attempting to recreate Valkey client...")
	client, err := connectValkey(vc.opts)
	if err != nil {
		slog.Error("[ValkeyClient] Recreate failed",
			slog.String("error", err.Error()))
		return
	}

	vc.Client.Close()
	vc.Client = client
	slog.Info("[ValkeyClient] Successfully reconnected to valkey")
}

func (vc *ValkeyClient) client() valkey.Client {
	vc.mu.Lock()
	defer vc.mu.Unlock()
	return vc.Client
}

func (vc *ValkeyClient) MarkProcessed(ctx context.Context, set string, members ...string) error {
	if len(members) == 0 {
		return nil
	}
	c := vc.client()
	completed := []valkey.Completed{
		c.B().Sadd().Key(set).Member(members...).Build(),
		c.B().Expire().Key(set).Seconds(int64(VALKEY_PROCESSED_TTL / time.Second)).Build(),
	}

	for _, res := range vc.DoMultiWithRetry(ctx, completed, VALKEY_RETRIES) {
		if err := res.Error(); err != nil {
			return err
		}
	}

	slog.Debug("[ValkeyClient] Marked processed",
		slog.String("set", set),
		slog.Int("count", len(members)))
	return nil
}

func (vc *ValkeyClient) IsProcessed(ctx context.Context, set string, member string) bool {
	c := vc.client()
	res := vc.DoWithRetry(ctx, c.B().Sismember().Key(set).Member(member).Build(), VALKEY_RETRIES)

	ok, err := res.AsBool()
	if err != nil {
		return false
	}
	return ok
}

// Get returns the value at key and whether it exists.
func (vc *ValkeyClient) Get(ctx context.Context, key string) (string, bool, error) {
	c := vc.client()
	value, err := vc.DoWithRetry(ctx, c.B().Get().Key(key).Build(), VALKEY_RETRIES).ToString()
	if valkey.IsValkeyNil(err) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return value, true, nil
}

func (vc *ValkeyClient) Set(ctx context.Context, key string, value string) error {
	c := vc.client()
	return vc.DoWithRetry(ctx, c.B().Set().Key(key).Value(value).Build(), VALKEY_RETRIES).Error()
}

func (vc *ValkeyClient) Del(ctx context.Context, key string) error {
	c := vc.client()
	return vc.DoWithRetry(ctx, c.B().Del().Key(key).Build(), VALKEY_RETRIES).Error()
}

func (vc *ValkeyClient) DoMultiWithRetry(ctx context.Context, completed []valkey.Completed, retries int) []valkey.ValkeyResult {
	var results []valkey.ValkeyResult
	for i := range completed {
		completed[i] = completed[i].Pin()
	}

	for i := 0; i < retries; i++ {
		results = vc.client().DoMulti(ctx, completed...)
		var failed error
		for _, r := range results {
			if r.Error() != nil {
				failed = r.Error()
				break
			}
		}
		if failed == nil {
			break
		}

		slog.Warn("[ValkeyClient] Do Multi failed",
			slog.Int("attempt", i+1),
			slog.String("error", failed.Error()))
		if isConnectionError(failed) {
			vc.recreateClient()
		}
		if !sleepCtx(ctx, VALKEY_RETRY_DELAY) {
			break
		}
	}

	return results
}

func (vc *ValkeyClient) DoWithRetry(ctx context.Context, completed valkey.Completed, retries int) valkey.ValkeyResult {
	var result valkey.ValkeyResult
	completed = completed.Pin()
	for i := 0; i < retries; i++ {
		result = vc.client().Do(ctx, completed)
		err := result.Error()
		if err == nil || valkey.IsValkeyNil(err) {
			break
		}

		slog.Warn("[ValkeyClient] Do failed",
			slog.Int("attempt", i+1),
			slog.String("error", err.Error()))
		if isConnectionError(err) {
			vc.recreateClient()
		}
		if !sleepCtx(ctx, VALKEY_RETRY_DELAY) {
			break
		}
	}

	return result
}

func sleepCtx(ctx context.Context, d time.Duration) bool {
	select {
	case <-ctx.Done():
		return false
	case <-time.After(d):
		return true
	}
}

func isConnectionError(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "connection refused") ||
		strings.Contains(msg, "EOF") ||
		strings.Contains(msg, "i/o timeout")
}

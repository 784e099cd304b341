package webhook

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shenikar/atoa_simulation/internal/config"
	"github.com/sirupsen/logrus"
)

const signatureHeader = "X-ATOA-Signature"

// AnnouncementWorker забирает оповещения из очереди и доставляет их на вебхук
type AnnouncementWorker struct {
	redisClient *redis.Client
	logger      *logrus.Logger
	cfg         *config.Config
	httpClient  *http.Client
}

// NewAnnouncementWorker создает новый AnnouncementWorker
func NewAnnouncementWorker(redisClient *redis.Client, logger *logrus.Logger, cfg *config.Config) *AnnouncementWorker {
	return &AnnouncementWorker{
		redisClient: redisClient,
		logger:      logger,
		cfg:         cfg,
		httpClient: &http.Client{
			Timeout: cfg.WebhookTimeout,
		},
	}
}

// Start запускает горутину обработки очереди; done закрывается после остановки
func (w *AnnouncementWorker) Start(ctx context.Context) <-chan struct{} {
	done := make(chan struct{})
	w.logger.Info("Starting announcement worker...")
	go func() {
		defer close(done)
		for {
			// 0 - бесконечное ожидание, выход по отмене контекста
			result, err := w.redisClient.BRPop(ctx, 0, announceQueueKey).Result()
			if err != nil {
				if ctx.Err() != nil {
					w.logger.Info("Stopping announcement worker.")
					return
				}
				w.logger.WithError(err).Error("Failed to pop announcement from Redis")
				if !sleepCtx(ctx, w.cfg.WebhookTimeout) {
					return
				}
				continue
			}

			// result[0] - ключ, result[1] - значение
			w.handlePayload(ctx, result[1])
		}
	}()
	return done
}

func (w *AnnouncementWorker) handlePayload(ctx context.Context, payload string) {
	var announcement Announcement
	if err := json.Unmarshal([]byte(payload), &announcement); err != nil {
		w.logger.WithError(err).Error("Failed to unmarshal announcement from Redis")
		return
	}

	log := w.logger.WithFields(logrus.Fields{
		"simulation_id": announcement.SimulationID,
		"vehicle_id":    announcement.VehicleID,
		"kind":          announcement.Kind,
	})
	if w.cfg.WebhookURL == "" {
		log.Warn("Webhook URL is not configured. Skipping announcement delivery.")
		return
	}

	if err := w.deliver(ctx, payload); err != nil {
		log.WithError(err).Error("Failed to deliver announcement")
		return
	}
	log.Info("Announcement delivered successfully.")
}

// deliver отправляет payload с экспоненциальной задержкой между попытками
func (w *AnnouncementWorker) deliver(ctx context.Context, payload string) error {
	maxRetries := max(w.cfg.WebhookMaxRetries, 1)
	delay := w.cfg.WebhookBaseDelay

	var lastErr error
	for i := 0; i < maxRetries; i++ {
		if i > 0 {
			w.logger.WithError(lastErr).Warnf("Retrying announcement in %v. Retries left: %d", delay, maxRetries-i)
			if !sleepCtx(ctx, delay) {
				return ctx.Err()
			}
			delay *= 2
		}

		lastErr = w.send(ctx, payload)
		if lastErr == nil {
			return nil
		}
	}
	return fmt.Errorf("giving up after %d attempts: %w", maxRetries, lastErr)
}

func (w *AnnouncementWorker) send(ctx context.Context, payload string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.cfg.WebhookURL, bytes.NewBufferString(payload))
	if err != nil {
		return fmt.Errorf("failed to create webhook request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	// Подпись добавляется, только если WEBHOOK_SECRET задан
	if w.cfg.WebhookSecret != "" {
		req.Header.Set(signatureHeader, generateHMACSHA256(payload, w.cfg.WebhookSecret))
	}

	resp, err := w.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return errors.New("webhook responded with status " + resp.Status)
	}
	return nil
}

func sleepCtx(ctx context.Context, d time.Duration) bool {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}

// generateHMACSHA256 генерирует HMAC-SHA256 подпись для данных
func generateHMACSHA256(data, secret string) string {
	h := hmac.New(sha256.New, []byte(secret))
	h.Write([]byte(data))
	return hex.EncodeToString(h.Sum(nil))
}

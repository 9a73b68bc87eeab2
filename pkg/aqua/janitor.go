package aqua

import (
	"context"
	"time"

	"go.uber.org/zap"
	"liyu1981.xyz/aquarium-service/pkg/common"
)

type SessionJanitor struct {
	Auth     IAuth
	Interval time.Duration
}

// Start purges expired sessions every Interval until ctx is cancelled. The returned
// channel closes once the loop has exited.
func (j *SessionJanitor) Start(ctx context.Context) <-chan struct{} {
	done := make(chan struct{})

	logger := common.GetLoggerWith(
		common.LoggerNameAquaCore,
		zap.String(common.LoggerFieldAquaCategory, common.LoggerCategorySessionGC),
	)

	go func() {
		defer close(done)

		ticker := time.NewTicker(j.Interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				logger.Info("Session janitor stopped")
				return
			case <-ticker.C:
				j.runOnce(logger)
			}
		}
	}()

	return done
}

func (j *SessionJanitor) runOnce(logger *zap.Logger) {
	n, err := j.Auth.PurgeExpiredSessions()
	if err != nil {
		logger.Error("Purge of expired sessions failed", zap.Error(err))
		return
	}
	if n > 0 {
		logger.Info("Purged expired sessions", zap.Int64("count", n))
	}
}

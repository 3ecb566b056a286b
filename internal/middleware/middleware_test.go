package middleware

import (
	"sync/atomic"

	"techhive-users/internal/services"
	"techhive-users/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// stubVerifier accepts exactly one token value and counts calls.
type stubVerifier struct {
	valid string
	calls atomic.Int32
}

func (v *stubVerifier) Verify(token string) services.AuthResult {
	v.calls.Add(1)
	if token != "" && token == v.valid {
		claims := &services.AccessClaims{}
		claims.Subject = "tester"
		return services.AuthResult{Succeeded: true, Claims: claims}
	}
	return services.AuthResult{}
}

func observedLogger() (*logger.Logger, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.InfoLevel)
	return logger.FromZap(zap.New(core)), logs
}

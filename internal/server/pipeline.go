package server

import (
	"techhive-users/internal/middleware"
	"techhive-users/internal/services"
	"techhive-users/pkg/logger"

	"github.com/gin-gonic/gin"
)

const (
	StageErrorBoundary  = "error_boundary"
	StageAuthentication = "authentication"
	StageAuthGate       = "auth_gate"
	StageRequestLogger  = "request_logger"
)

// Stage is one named interceptor.
type Stage struct {
	Name    string
	Handler gin.HandlerFunc
}

// Pipeline is an ordered list of interceptors. The first stage sees the request
// first and the response last; every stage continues with c.Next().
type Pipeline struct {
	stages []Stage
}

func NewPipeline(stages ...Stage) *Pipeline {
	return &Pipeline{stages: stages}
}

// Then returns the stages followed by the handlers, ready for route registration.
func (p *Pipeline) Then(handlers ...gin.HandlerFunc) []gin.HandlerFunc {
	chain := make([]gin.HandlerFunc, 0, len(p.stages)+len(handlers))
	for _, s := range p.stages {
		chain = append(chain, s.Handler)
	}
	return append(chain, handlers...)
}

func (p *Pipeline) Len() int {
	return len(p.stages)
}

// Names lists the stages in execution order.
func (p *Pipeline) Names() []string {
	names := make([]string, len(p.stages))
	for i, s := range p.stages {
		names[i] = s.Name
	}
	return names
}

// APIPipeline guards the users resource:
// ErrorBoundary, Authentication, AuthGate, then RequestLogger around the handler.
func APIPipeline(l *logger.Logger, verifier services.TokenVerifier) *Pipeline {
	return NewPipeline(
		Stage{Name: StageErrorBoundary, Handler: middleware.ErrorBoundary(l)},
		Stage{Name: StageAuthentication, Handler: middleware.Authentication(verifier)},
		Stage{Name: StageAuthGate, Handler: middleware.AuthGate(verifier)},
		Stage{Name: StageRequestLogger, Handler: middleware.RequestLogger(l)},
	)
}

// StreamPipeline is APIPipeline without body capture, which would break the
// websocket upgrade.
func StreamPipeline(l *logger.Logger, verifier services.TokenVerifier) *Pipeline {
	return NewPipeline(
		Stage{Name: StageErrorBoundary, Handler: middleware.ErrorBoundary(l)},
		Stage{Name: StageAuthentication, Handler: middleware.Authentication(verifier)},
		Stage{Name: StageAuthGate, Handler: middleware.AuthGate(verifier)},
	)
}

package server

import "context"

type HealthChecker interface {
	Healthy(ctx context.Context) bool
}

// HealthCheckerFunc adapts a plain function to HealthChecker.
type HealthCheckerFunc func(ctx context.Context) bool

func (f HealthCheckerFunc) Healthy(ctx context.Context) bool {
	return f(ctx)
}

// OkHealthChecker reports healthy unconditionally; used for backends without a remote dependency.
type OkHealthChecker struct{}

func NewOkHealthChecker() *OkHealthChecker {
	return &OkHealthChecker{}
}

func (hc *OkHealthChecker) Healthy(context.Context) bool {
	return true
}

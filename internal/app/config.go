package app

import "go.uber.org/zap"

// Config holds runtime wiring options for building the app.
type Config struct {
	Logger *zap.Logger // optional; defaults to zap.NewNop()
}

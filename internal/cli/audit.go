package cli

import (
	"time"

	"github.com/askeland/hookgate/internal/config"
	"github.com/askeland/hookgate/internal/hookio"
	"github.com/askeland/hookgate/internal/logger"
)

// loadConfig resolves the effective configuration, honoring the
// --config and --audit flags.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	if auditPath != "" {
		cfg.AuditLog = auditPath
	}
	return cfg, nil
}

// openAudit opens the audit trail for a hook. Audit is best-effort:
// any failure degrades to a nil logger (a no-op) with a warning.
func openAudit(hook string, cfg *config.Config) *logger.AuditLogger {
	if cfg.AuditLog == "" {
		return nil
	}
	if err := cfg.EnsureConfigDir(); err != nil {
		hookio.Warnf(hook, "audit disabled: %v", err)
		return nil
	}
	l, err := logger.New(cfg.AuditLog)
	if err != nil {
		hookio.Warnf(hook, "audit disabled: %v", err)
		return nil
	}
	return l
}

// audit writes one event, warning instead of failing.
func audit(hook string, l *logger.AuditLogger, ev logger.AuditEvent) {
	ev.Timestamp = time.Now().UTC().Format(time.RFC3339)
	ev.Hook = hook
	if err := l.Log(ev); err != nil {
		hookio.Warnf(hook, "audit log failed: %v", err)
	}
}

// truncate shortens a string for log lines.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}

package app

import (
	"log/slog"
	"os"

	"github.com/healthmate/healthmate/internal/health"
	"github.com/healthmate/healthmate/internal/identity"
	"github.com/healthmate/healthmate/internal/notification"
	"github.com/healthmate/healthmate/internal/tracker"
)

func (a *App) initModules() {
	if a.config.GetBool("modules.identity.enabled") {
		if err := identity.New(identity.Dependency{
			Config:      a.config,
			Instrument:  a.ins,
			UUID:        a.uuid,
			OID:         a.oid,
			Bcrypt:      a.bcrypt,
			HMAC:        a.hmac,
			Clock:       a.clock,
			Validator:   a.validator,
			Router:      a.router,
			Database:    a.db,
			CacheConn:   a.cacheConn,
			Idempotency: a.idemp,
			Messaging:   a.messaging,
			Storage:     a.storage,
			JWT:         a.jwt,
			Otp:         a.otp,
		}); err != nil {
			slog.Error("failed to init module identity", "error", err)
			os.Exit(1)
		}
	}

	if a.config.GetBool("modules.health.enabled") {
		if err := health.New(health.Dependency{
			Ctx:        a.ctx,
			Config:     a.config,
			Instrument: a.ins,
			UUID:       a.uuid,
			OID:        a.oid,
			Clock:      a.clock,
			Validator:  a.validator,
			Router:     a.router,
			Database:   a.db,
			Messaging:  a.messaging,
			Goroutine:  a.goroutine,
		}); err != nil {
			slog.Error("failed to init module health", "error", err)
			os.Exit(1)
		}
	}

	if a.config.GetBool("modules.tracker.enabled") {
		if err := tracker.New(tracker.Dependency{
			Config:     a.config,
			Instrument: a.ins,
			OID:        a.oid,
			Clock:      a.clock,
			Validator:  a.validator,
			Router:     a.router,
			Database:   a.db,
			Messaging:  a.messaging,
		}); err != nil {
			slog.Error("failed to init module tracker", "error", err)
			os.Exit(1)
		}
	}

	if a.config.GetBool("modules.notification.enabled") {
		if err := notification.New(notification.Dependency{
			Ctx:        a.ctx,
			Config:     a.config,
			Instrument: a.ins,
			UUID:       a.uuid,
			OID:        a.oid,
			Clock:      a.clock,
			Goroutine:  a.goroutine,
			Validator:  a.validator,
			Database:   a.db,
			Messaging:  a.messaging,
			Mail:       a.mail,
		}); err != nil {
			slog.Error("failed to init module notification", "error", err)
			os.Exit(1)
		}
	}
}

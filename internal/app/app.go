package app

import (
	"context"
	"net/http"

	"github.com/redis/go-redis/v9"
	"github.com/healthmate/healthmate/internal/pkg/clock"
	"github.com/healthmate/healthmate/internal/pkg/config"
	"github.com/healthmate/healthmate/internal/pkg/goroutine"
	"github.com/healthmate/healthmate/internal/pkg/hash"
	"github.com/healthmate/healthmate/internal/pkg/idempotency"
	"github.com/healthmate/healthmate/internal/pkg/instrument"
	"github.com/healthmate/healthmate/internal/pkg/jwt"
	"github.com/healthmate/healthmate/internal/pkg/mail"
	"github.com/healthmate/healthmate/internal/pkg/messaging"
	"github.com/healthmate/healthmate/internal/pkg/otp"
	"github.com/healthmate/healthmate/internal/pkg/router"
	"github.com/healthmate/healthmate/internal/pkg/storage"
	"github.com/healthmate/healthmate/internal/pkg/uid"
	"github.com/healthmate/healthmate/internal/pkg/validator"
	"go.mongodb.org/mongo-driver/mongo"
)

// App wires dependencies and manages service lifecycle.
type App struct {
	ctx    context.Context
	cancel context.CancelFunc

	// configuration
	config config.Config
	ins    instrument.Instrumentation

	// libraries
	goroutine *goroutine.Manager
	validator validator.Validator
	clock     clock.Clocker
	hmac      hash.Hash
	bcrypt    hash.Hash
	oid       uid.StringID
	uuid      uid.StringID
	otp       otp.Registry
	jwt       jwt.JWT

	// resources
	dbClient  *mongo.Client
	db        *mongo.Database
	cacheConn *redis.Client
	idemp     idempotency.Idempotency
	mail      mail.Mail
	messaging messaging.Messaging
	storage   storage.Storage

	// server
	router     *router.Router
	httpServer *http.Server

	//
	closers []struct {
		name string
		fn   func(context.Context) error
	}
}

// New initializes the application with default wiring and returns an App instance.
func New() *App {
	ctx, cancel := context.WithCancel(context.Background())
	app := &App{
		ctx:    ctx,
		cancel: cancel,
	}

	app.initConfig()
	app.initInstrument()
	app.initLibraries()
	app.initJWT()
	app.initDatabase()
	app.initCache()
	app.initMail()
	app.initStorage()
	app.initMessaging()
	app.initHTTPServer()
	app.initModules()
	app.initClosers()

	return app
}

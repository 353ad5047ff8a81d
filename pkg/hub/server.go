// Package hub is the HTTP surface over the certificate system: auth,
// event management, certificate issuance and the public verification lookup.
package hub

import (
	"fmt"

	"github.com/certhub/certhub/config"
	"github.com/certhub/certhub/config/configkey"
	"github.com/certhub/certhub/pkg/archive"
	"github.com/certhub/certhub/pkg/catalog"
	"github.com/certhub/certhub/pkg/database"
	"github.com/certhub/certhub/pkg/directory"
	"github.com/certhub/certhub/pkg/kvstore"
	"github.com/certhub/certhub/pkg/middleware"
	"github.com/certhub/certhub/pkg/objectstore"
	"github.com/certhub/certhub/pkg/registry"
	"github.com/certhub/certhub/pkg/session"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Server struct {
	engine    *gin.Engine
	store     kvstore.Store
	sessions  *session.Manager
	directory *directory.Directory
	catalog   *catalog.Catalog
	registry  *registry.Registry
}

func (s *Server) Init() error {
	logrus.SetLevel(logrus.TraceLevel)
	config.LoadConfig()

	logLevelConfig := viper.GetString(configkey.LogLevel)
	l, errLevel := logrus.ParseLevel(logLevelConfig)
	if errLevel != nil {
		logrus.Error(errLevel)
	} else {
		logrus.SetLevel(l)
	}

	// Setup gin and routes
	r := gin.Default()
	if viper.GetBool(configkey.DebugMode) {
		logrus.Info("Debug mode enabled")
		if viper.GetBool(configkey.RequestLogger) {
			r.Use(middleware.RequestLoggerMiddleware())
		}
	} else {
		logrus.Info("Debug mode disabled")
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(404, gin.H{"code": "CERTHUB: PAGE_NOT_FOUND", "message": "Page not found"})
	})

	store, err := createStore()
	if err != nil {
		return err
	}

	if err := s.InitWithStore(store); err != nil {
		return err
	}

	if viper.GetBool(configkey.ArchiveEnabled) {
		objects, err := objectstore.NewObjectStore()
		if err != nil {
			return err
		}
		bucket := viper.GetString(configkey.ArchiveBucket)
		s.registry.SetArchiver(archive.NewArchive(objects, bucket))
	}

	s.SetupEndpoints(r)
	return nil
}

// InitWithStore wires the services over an already constructed store. Tests
// use it with the in-memory implementation.
func (s *Server) InitWithStore(store kvstore.Store) error {
	s.store = store
	s.sessions = session.NewManager(store)

	dir, err := directory.NewDirectory(store, s.sessions)
	if err != nil {
		return err
	}
	s.directory = dir

	cat, err := catalog.NewCatalog(store)
	if err != nil {
		return err
	}
	s.catalog = cat

	reg, err := registry.NewRegistry(store, cat, dir, viper.GetBool(configkey.IssuanceAutopick))
	if err != nil {
		return err
	}
	s.registry = reg
	cat.SetSweeper(reg)

	// A persisted session referencing a deleted account is discarded.
	if err := s.sessions.Restore(func(accountId string) bool {
		_, ok := dir.FindById(accountId)
		return ok
	}); err != nil {
		return err
	}

	return nil
}

func (s *Server) Run() {
	hubPort := viper.GetInt(configkey.HubPort)
	_ = s.engine.Run(fmt.Sprintf(":%d", hubPort))
}

func createStore() (kvstore.Store, error) {
	backend := viper.GetString(configkey.StoreBackend)
	if backend == "memory" {
		logrus.Info("Using in-memory store")
		return kvstore.NewMemory(), nil
	}

	db, err := database.CreateDatabase()
	if err != nil {
		return nil, err
	}
	return kvstore.NewGormStore(db)
}

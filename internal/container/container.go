package container

import (
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-auth-portal/config"
	"github.com/oksasatya/go-auth-portal/internal/domain/repository"
	"github.com/oksasatya/go-auth-portal/pkg/helpers"
)

// app-level container to share constructed components across packages.
// Router can auto-wire modules from these singletons.

var (
	cfg        *config.Config
	logger     *logrus.Logger
	userStore  repository.UserStore
	jwtManager *helpers.JWTManager
)

func SetConfig(c *config.Config)      { cfg = c }
func GetConfig() *config.Config       { return cfg }
func SetLogger(l *logrus.Logger)      { logger = l }
func GetLogger() *logrus.Logger       { return logger }
func SetStore(s repository.UserStore) { userStore = s }
func GetStore() repository.UserStore  { return userStore }
func SetJWT(m *helpers.JWTManager)    { jwtManager = m }
func GetJWT() *helpers.JWTManager     { return jwtManager }

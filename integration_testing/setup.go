package integration_testing

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"time"

	"github.com/2beens/fittrack/internal"
	"github.com/2beens/fittrack/internal/config"
	"github.com/2beens/fittrack/internal/db"
	"github.com/2beens/fittrack/pkg"

	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/lib/pq"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
)

const (
	serverPort = 9000
	serverHost = "localhost"

	testDBName   = "fittrack"
	testAPIKey   = "integration-test-api-key"
	testPassword = "postgres"
)

var serverEndpoint = fmt.Sprintf("http://%s:%d", serverHost, serverPort)

type Suite struct {
	DB         *sql.DB
	Pool       *pgxpool.Pool
	dockerPool *dockertest.Pool
	server     *internal.Server
	teardown   []func()
}

func newSuite(ctx context.Context) (_ *Suite) {
	var err error
	suite := &Suite{
		teardown: make([]func(), 0),
	}

	// uses a sensible default on windows (tcp/http) and linux/osx (socket)
	suite.dockerPool, err = dockertest.NewPool("")
	if err != nil {
		log.Fatalf("could not create new dockertest pool: %s", err)
	}

	// uses pool to try to connect to Docker
	if err = suite.dockerPool.Client.Ping(); err != nil {
		log.Fatalf("could not ping dockertest pool: %s", err)
	}

	redisPort, err := suite.redisSetup()
	if err != nil {
		suite.cleanup()
		log.Fatalf("failed to setup redis: %s", err.Error())
	}

	pgPort, err := suite.postgresSetup()
	if err != nil {
		suite.cleanup()
		log.Fatalf("failed to setup postgres: %s", err)
	}

	suite.Pool, err = db.NewDBPool(ctx, db.NewDBPoolParams{
		DBHost:     "localhost",
		DBPort:     pgPort,
		DBName:     testDBName,
		DBUser:     "postgres",
		DBPassword: testPassword,
	})
	if err != nil {
		suite.cleanup()
		log.Fatalf("new db pool: %s", err)
	}

	apiKeyHash, err := pkg.HashAPIKey(testAPIKey)
	if err != nil {
		suite.cleanup()
		log.Fatalf("hash api key: %s", err)
	}

	cfg := getTestConfig(redisPort, pgPort)
	suite.server, err = internal.NewServer(
		ctx,
		internal.NewServerParams{
			Config:                  cfg,
			PostgresPassword:        testPassword,
			RedisPassword:           "",
			APIKeyHash:              apiKeyHash,
			HoneycombTracingEnabled: false,
		},
	)
	if err != nil {
		suite.cleanup()
		log.Fatalf("new server: %s", err)
	}

	suite.server.Serve(cfg.Host, cfg.Port)

	return suite
}

func (s *Suite) cleanup() {
	if s.server != nil {
		s.server.GracefulShutdown()
	}
	if s.Pool != nil {
		s.Pool.Close()
	}
	if s.DB != nil {
		s.DB.Close()
	}
	for _, teardown := range s.teardown {
		teardown()
	}
}

func getTestConfig(redisPort, postgresPort string) *config.Config {
	return &config.Config{
		Environment:            "development",
		Host:                   serverHost,
		Port:                   serverPort,
		LogLevel:               "info",
		RedisHost:              "localhost",
		RedisPort:              redisPort,
		PostgresPort:           postgresPort,
		PostgresHost:           "localhost",
		PostgresDBName:         testDBName,
		PostgresUser:           "postgres",
		PrometheusMetricsHost:  "localhost",
		PrometheusMetricsPort:  "9002",
		RateLimitAllowedPerMin: 10000,
		APIKeyCacheTTLSec:      60,
		CorsAllowedOrigins:     []string{"*"},
	}
}

func (s *Suite) redisSetup() (string, error) {
	redisResource, err := s.dockerPool.RunWithOptions(&dockertest.RunOptions{
		Repository: "redis",
		Name:       "fittrack-redis",
		Tag:        "6.2",
	}, func(config *docker.HostConfig) {
		config.AutoRemove = true
	})
	if err != nil {
		return "", fmt.Errorf("run redis: %s", err)
	}

	s.teardown = append(s.teardown, func() {
		redisResource.Close()
	})

	redisPort := redisResource.GetPort("6379/tcp")
	return redisPort, nil
}

func (s *Suite) postgresSetup() (string, error) {
	pgResource, err := s.dockerPool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "16",
		Env: []string{
			"POSTGRES_USER=postgres",
			"POSTGRES_PASSWORD=" + testPassword,
			"POSTGRES_DB=" + testDBName,
		},
	}, func(config *docker.HostConfig) {
		config.AutoRemove = true
		config.RestartPolicy = docker.RestartPolicy{
			Name: "no",
		}
	})
	if err != nil {
		return "", fmt.Errorf("dockerpool run postgres: %s", err)
	}

	s.teardown = append(s.teardown, func() {
		pgResource.Close()
	})

	pgPort := pgResource.GetPort("5432/tcp")
	dsn := fmt.Sprintf("postgres://postgres:%s@localhost:%s/%s?sslmode=disable", testPassword, pgPort, testDBName)
	sqlDB, err := sql.Open("postgres", dsn)
	if err != nil {
		return "", fmt.Errorf("open db conn: %s", err)
	}
	s.DB = sqlDB

	// the container accepts connections a bit after it starts
	s.dockerPool.MaxWait = 60 * time.Second
	if err := s.dockerPool.Retry(sqlDB.Ping); err != nil {
		return "", fmt.Errorf("ping db: %s", err)
	}

	if _, err := sqlDB.Exec(db.Schema); err != nil {
		return "", fmt.Errorf("run init script: %s", err)
	}

	log.Printf("postgres setup done, port: %s\n", pgPort)

	return pgPort, nil
}

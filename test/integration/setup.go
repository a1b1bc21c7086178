package integration

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	_ "github.com/lib/pq"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/forkthisidea/ideahub/internal/adapters/handler/command"
	handler "github.com/forkthisidea/ideahub/internal/adapters/handler/http"
	repo "github.com/forkthisidea/ideahub/internal/adapters/repository/postgres"
	"github.com/forkthisidea/ideahub/internal/core/ports"
	"github.com/forkthisidea/ideahub/internal/core/services"
)

type TestApp struct {
	DB          *sql.DB
	Server      *httptest.Server
	Client      *http.Client
	RecountSvc  ports.RecountService
	DBContainer testcontainers.Container
}

func setupPostgresContainer(ctx context.Context) (testcontainers.Container, string, error) {
	dbName := "testdb"
	user := "user"
	password := "password"

	pgContainer, err := postgres.Run(ctx, "postgres:15-alpine",
		postgres.WithDatabase(dbName),
		postgres.WithUsername(user),
		postgres.WithPassword(password),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(5*time.Second),
		),
	)
	if err != nil {
		return nil, "", fmt.Errorf("failed to start postgres container: %w", err)
	}

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		return nil, "", err
	}

	return pgContainer, connStr, nil
}

func applyMigrations(db *sql.DB) error {
	dirPath := "../../internal/adapters/repository/postgres/migrations"

	entries, err := os.ReadDir(dirPath)
	if err != nil {
		return fmt.Errorf("failed to read migrations directory: %w", err)
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		if !strings.HasSuffix(entry.Name(), "up.sql") {
			continue
		}

		fullPath := filepath.Join(dirPath, entry.Name())
		content, err := os.ReadFile(fullPath)
		if err != nil {
			return fmt.Errorf("failed to read migration file %s: %w", entry.Name(), err)
		}

		if _, err := db.Exec(string(content)); err != nil {
			return fmt.Errorf("failed to execute migration %s: %w", entry.Name(), err)
		}
	}

	return nil
}

func setupTestApp(t *testing.T) *TestApp {
	ctx := context.Background()
	dbContainer, dbURL, err := setupPostgresContainer(ctx)
	require.NoError(t, err)

	db, err := sql.Open("postgres", dbURL)
	require.NoError(t, err)

	err = applyMigrations(db)
	require.NoError(t, err)

	ideaRepo := repo.NewIdeaRepository(db)
	voteRepo := repo.NewVoteRepository(db)

	ideaSvc := services.NewIdeaService(ideaRepo, 0)
	voteSvc := services.NewVoteService(ideaRepo, voteRepo)
	rankingSvc := services.NewRankingService(ideaRepo)
	statsSvc := services.NewStatsService(ideaRepo)
	recountSvc := services.NewRecountService(ideaRepo, voteRepo)

	dispatcher := command.NewDispatcher(ideaSvc, voteSvc, rankingSvc, statsSvc)

	router := handler.NewHandler(
		handler.NewIdeaHandler(ideaSvc, statsSvc),
		handler.NewVoteHandler(voteSvc),
		handler.NewCommandHandler(dispatcher),
	)

	server := httptest.NewServer(router)

	return &TestApp{
		DB:          db,
		Server:      server,
		Client:      server.Client(),
		RecountSvc:  recountSvc,
		DBContainer: dbContainer,
	}
}

func (app *TestApp) Teardown(t *testing.T) {
	app.Server.Close()
	app.DB.Close()
	if err := app.DBContainer.Terminate(context.Background()); err != nil {
		t.Logf("failed to terminate container: %v", err)
	}
}

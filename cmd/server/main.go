package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	stdhttp "net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"github.com/forkthisidea/ideahub/internal/adapters/handler/command"
	handler "github.com/forkthisidea/ideahub/internal/adapters/handler/http"
	repo "github.com/forkthisidea/ideahub/internal/adapters/repository/postgres"
	"github.com/forkthisidea/ideahub/internal/core/services"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	db, err := sql.Open("postgres", dbConnString())
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatal(err)
	}

	ideaRepo := repo.NewIdeaRepository(db)
	voteRepo := repo.NewVoteRepository(db)

	ideaSvc := services.NewIdeaService(ideaRepo, maxIdeaLength())
	voteSvc := services.NewVoteService(ideaRepo, voteRepo)
	rankingSvc := services.NewRankingService(ideaRepo)
	statsSvc := services.NewStatsService(ideaRepo)

	dispatcher := command.NewDispatcher(ideaSvc, voteSvc, rankingSvc, statsSvc)

	ideaHandler := handler.NewIdeaHandler(ideaSvc, statsSvc)
	voteHandler := handler.NewVoteHandler(voteSvc)
	commandHandler := handler.NewCommandHandler(dispatcher)
	router := handler.NewHandler(ideaHandler, voteHandler, commandHandler)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	server := &stdhttp.Server{Addr: "0.0.0.0:" + port, Handler: router}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Printf("Listening on %s", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, stdhttp.ErrServerClosed) {
			log.Fatal(err)
		}
	}()

	<-ctx.Done()
	log.Println("Gracefully shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatal(err)
	}
}

func maxIdeaLength() int {
	raw := os.Getenv("IDEA_MAX_LENGTH")
	if raw == "" {
		return 0
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		log.Printf("Invalid IDEA_MAX_LENGTH %q, using default", raw)
		return 0
	}
	return n
}

func dbConnString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		os.Getenv("POSTGRES_USER"),
		os.Getenv("POSTGRES_PASSWORD"),
		os.Getenv("POSTGRES_HOST"),
		os.Getenv("POSTGRES_PORT"),
		os.Getenv("POSTGRES_DB"),
	)
}

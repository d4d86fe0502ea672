// Command reset drops and recreates the contest database. Every catch, vote
// and result is lost; run cmd/setup afterwards.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/joho/godotenv"

	"github.com/osse101/CatchCup_Go/internal/database"
)

func main() {
	confirm := flag.Bool("yes", false, "confirm that all contest data may be destroyed")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	dbName := os.Getenv("DB_NAME")
	if dbName == "" {
		log.Fatal("DB_NAME is not set")
	}
	if !*confirm {
		log.Fatalf("Refusing to drop %s without -yes", dbName)
	}

	// Manage databases from the maintenance database
	serverConnString := fmt.Sprintf("postgres://%s:%s@%s:%s/postgres?sslmode=disable",
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_HOST"),
		os.Getenv("DB_PORT"),
	)

	serverPool, err := database.NewPool(serverConnString, 2, time.Minute, 10*time.Minute)
	if err != nil {
		log.Fatalf("Failed to connect to PostgreSQL server: %v", err)
	}
	defer serverPool.Close()

	ctx := context.Background()
	ident := pgx.Identifier{dbName}.Sanitize()

	log.Printf("Terminating existing connections to database %s...\n", dbName)
	_, err = serverPool.Exec(ctx, `
		SELECT pg_terminate_backend(pid)
		FROM pg_stat_activity
		WHERE datname = $1 AND pid <> pg_backend_pid()`, dbName)
	if err != nil {
		log.Printf("Warning: Failed to terminate connections: %v\n", err)
	}

	if _, err := serverPool.Exec(ctx, "DROP DATABASE IF EXISTS "+ident); err != nil {
		log.Fatalf("Failed to drop database: %v", err)
	}
	log.Printf("Database %s dropped.\n", dbName)

	if _, err := serverPool.Exec(ctx, "CREATE DATABASE "+ident); err != nil {
		log.Fatalf("Failed to create database: %v", err)
	}
	log.Printf("Database %s created.\n", dbName)

	log.Println("Next step: go run ./cmd/setup to migrate and seed the contest")
}

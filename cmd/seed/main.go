// Package main seeds the Postgres store with the same generated demo data
// the in-memory source serves, so the two backends are interchangeable.
package main

import (
	"context"
	"log"

	"riskdesk/internal/config"
	"riskdesk/internal/repositories"
)

func main() {
	config.LoadEnv()

	db, err := repositories.InitDB()
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	store := repositories.NewMockStore(
		int64(config.GetIntEnv("MOCK_SEED", 42)),
		config.GetIntEnv("MOCK_USERS", 250),
		config.GetIntEnv("MOCK_TRANSACTIONS", 2000),
		0, // no simulated latency when seeding
	)

	ctx := context.Background()

	users, err := store.List(ctx)
	if err != nil {
		log.Fatalf("failed to generate users: %v", err)
	}
	if err := db.CreateInBatches(users, 100).Error; err != nil {
		log.Fatalf("failed to insert users: %v", err)
	}

	txs, err := store.Transactions().List(ctx)
	if err != nil {
		log.Fatalf("failed to generate transactions: %v", err)
	}
	if err := db.CreateInBatches(txs, 200).Error; err != nil {
		log.Fatalf("failed to insert transactions: %v", err)
	}

	log.Printf("seeded %d users and %d transactions", len(users), len(txs))
}

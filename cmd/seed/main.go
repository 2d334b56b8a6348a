package main

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/joho/godotenv"

	"windowupgrades/internal/database"
	"windowupgrades/internal/domain"
	"windowupgrades/internal/repository"
)

var services = []domain.ServiceType{
	domain.ServiceWindowReplacement,
	domain.ServiceDoorInstallation,
	domain.ServiceRoofRepair,
}

var styles = []string{"Double Hung", "Casement", "Bay", "Sliding", "Awning", "Picture"}

func main() {
	_ = godotenv.Load()

	db, err := database.Connect("windowupgrades.db")
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running migrations...")
	if err := repository.Migrate(db); err != nil {
		log.Fatal("Migrate failed:", err)
	}

	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM messages")
	db.Exec("DELETE FROM projects")
	db.Exec("DELETE FROM orders")
	db.Exec("DELETE FROM quotes")
	db.Exec("DELETE FROM leads")

	ctx := context.Background()
	leads := repository.NewLeadRepository(db)
	quotes := repository.NewQuoteRepository(db)
	orders := repository.NewOrderRepository(db)
	projects := repository.NewProjectRepository(db)
	messages := repository.NewMessageRepository(db)

	log.Println("Seeding leads...")
	statuses := []domain.LeadStatus{domain.LeadNew, domain.LeadNew, domain.LeadContacted, domain.LeadConverted}
	for i := 1; i <= 20; i++ {
		lead := &domain.Lead{
			Name:      fmt.Sprintf("Customer %d", i),
			Email:     fmt.Sprintf("customer%d@example.com", i),
			Phone:     fmt.Sprintf("%d", 700100200+i),
			Service:   services[rand.Intn(len(services))],
			Status:    statuses[rand.Intn(len(statuses))],
			IsActive:  true,
			CreatedAt: time.Now().AddDate(0, 0, -rand.Intn(60)),
		}
		if err := leads.Create(ctx, lead); err != nil {
			log.Fatal("seed lead:", err)
		}
	}

	log.Println("Seeding quotes...")
	for i := 1; i <= 8; i++ {
		quote := &domain.Quote{
			Name:      fmt.Sprintf("Prospect %d", i),
			Email:     fmt.Sprintf("prospect%d@example.com", i),
			Details:   "Interested in a full window replacement.",
			CreatedAt: time.Now().AddDate(0, 0, -rand.Intn(30)),
		}
		if err := quotes.Create(ctx, quote); err != nil {
			log.Fatal("seed quote:", err)
		}
	}

	log.Println("Seeding orders...")
	orderStatuses := []domain.OrderStatus{domain.OrderPending, domain.OrderInProgress, domain.OrderCompleted}
	for i := 0; i < 30; i++ {
		order := &domain.Order{
			Date:   time.Now().AddDate(0, -rand.Intn(10), -rand.Intn(28)),
			Amount: float64(rand.Intn(400000)+50000) / 100,
			Status: orderStatuses[rand.Intn(len(orderStatuses))],
		}
		if err := orders.Create(ctx, order); err != nil {
			log.Fatal("seed order:", err)
		}
	}

	log.Println("Seeding projects...")
	for i := 0; i < 15; i++ {
		status := domain.ProjectCompleted
		if i%3 == 0 {
			status = domain.ProjectInProgress
		}
		project := &domain.Project{
			WindowStyle: styles[rand.Intn(len(styles))],
			Status:      status,
		}
		if err := projects.Create(ctx, project); err != nil {
			log.Fatal("seed project:", err)
		}
	}

	log.Println("Seeding messages...")
	for i := 1; i <= 6; i++ {
		msg := &domain.Message{
			Sender:    fmt.Sprintf("customer%d@example.com", i),
			Receiver:  "office",
			Subject:   fmt.Sprintf("Question about my order #%d", i),
			Content:   "Hi, could you give me an update on the installation date?",
			IsRead:    i%2 == 0,
			CreatedAt: time.Now().AddDate(0, 0, -i),
		}
		if err := messages.Create(ctx, msg); err != nil {
			log.Fatal("seed message:", err)
		}
	}

	log.Println("Seed complete.")
}

package main

import (
	"database/sql"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		log.Fatal("DATABASE_URL is not set")
	}

	db, err := sql.Open("postgres", dbURL)
	if err != nil {
		log.Fatalf("Failed to open DB: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatalf("Failed to ping DB: %v", err)
	}

	seedProducts(db)
	seedIndividualClients(db)
	seedBusinessClients(db)

	log.Println("Seeding completed successfully!")
}

func seedProducts(db *sql.DB) {
	products := []struct {
		Code         string
		Name         string
		Individual   float64
		BusinessHigh float64
		BusinessLow  float64
	}{
		{"PHONE_HIGH", "Telephone haut de gamme", 1500, 1000, 1150},
		{"PHONE_MID", "Telephone milieu de gamme", 800, 550, 600},
		{"LAPTOP", "Ordinateur portable", 1200, 900, 1000},
	}

	fmt.Println("Seeding Products...")
	for _, p := range products {
		_, err := db.Exec(`
			INSERT INTO products (code, name, individual_price, business_high_price, business_low_price)
			VALUES ($1, $2, $3, $4, $5)
			ON CONFLICT (code) DO NOTHING;
		`, p.Code, p.Name, p.Individual, p.BusinessHigh, p.BusinessLow)
		if err != nil {
			log.Printf("Failed to seed product %s: %v", p.Code, err)
		}
	}
}

func seedIndividualClients(db *sql.DB) {
	clients := []struct {
		Identifier string
		FirstName  string
		LastName   string
	}{
		{"PART001", "Jean", "Dupont"},
		{"PART002", "Marie", "Martin"},
		{"PART003", "Pierre", "Bernard"},
	}

	fmt.Println("Seeding Individual Clients...")
	for _, c := range clients {
		_, err := db.Exec(`
			INSERT INTO individual_clients (identifier, first_name, last_name)
			VALUES ($1, $2, $3)
			ON CONFLICT (identifier) DO NOTHING;
		`, c.Identifier, c.FirstName, c.LastName)
		if err != nil {
			log.Printf("Failed to seed individual client %s: %v", c.Identifier, err)
		}
	}
}

func seedBusinessClients(db *sql.DB) {
	clients := []struct {
		Identifier         string
		LegalName          string
		TaxNumber          string
		RegistrationNumber string
		Revenue            float64
	}{
		{"PRO001", "TechCorp SA", "FR12345678901", "123456789", 15000000},
		{"PRO002", "Startup Innovante SARL", "FR98765432109", "987654321", 5000000},
		{"PRO003", "Grande Entreprise SAS", "FR55566677788", "555666777", 50000000},
	}

	fmt.Println("Seeding Business Clients...")
	for _, c := range clients {
		_, err := db.Exec(`
			INSERT INTO business_clients (identifier, legal_name, tax_number, registration_number, revenue)
			VALUES ($1, $2, $3, $4, $5)
			ON CONFLICT (identifier) DO NOTHING;
		`, c.Identifier, c.LegalName, c.TaxNumber, c.RegistrationNumber, c.Revenue)
		if err != nil {
			log.Printf("Failed to seed business client %s: %v", c.Identifier, err)
		}
	}
}

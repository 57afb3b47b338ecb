package main

import (
	"flag"
	"log"
	"os"

	"github.com/hugohenrick/armazem/internal/infrastructure/database"
	"github.com/joho/godotenv"
)

func main() {
	// Carregar variáveis de ambiente
	if err := godotenv.Load(); err != nil {
		log.Printf("Aviso: Arquivo .env não encontrado: %v", err)
	}

	down := flag.Int("down", 0, "quantidade de migrações a desfazer")
	flag.Parse()

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		log.Fatal("DATABASE_URL não configurada")
	}

	if *down > 0 {
		if err := database.RollbackMigrations(dbURL, *down); err != nil {
			log.Fatalf("Erro ao desfazer migrações: %v", err)
		}
		log.Printf("%d migração(ões) desfeita(s) com sucesso!", *down)
		return
	}

	version, err := database.RunMigrations(dbURL)
	if err != nil {
		log.Fatalf("Erro ao executar migrações: %v", err)
	}
	log.Printf("Migrações executadas com sucesso! Versão atual: %d", version)
}

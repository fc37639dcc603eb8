package main

import (
	"database/sql"
	"errors"
	"flag"
	"log"
	"time"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/lib/pq"
	"github.com/vfg2006/cash-position-api/infrastructure/migration"
	"github.com/vfg2006/cash-position-api/internal/config"
)

type Counterparty struct {
	Kind        string
	Description string
}

func setupLogger() {
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.Println("Iniciando script de migração...")
}

func seedCounterparties(tx *sql.Tx, counterparties []Counterparty) {
	log.Printf("Iniciando inserção de %d clientes e fornecedores...", len(counterparties))
	startTime := time.Now()

	stmt, err := tx.Prepare(`
		INSERT INTO clientes_fornecedores (tipo, descricao)
		SELECT $1, $2
		WHERE NOT EXISTS (SELECT 1 FROM clientes_fornecedores WHERE tipo = $1 AND descricao = $2)`)
	if err != nil {
		log.Fatalf("ERRO ao preparar statement para clientes_fornecedores: %v", err)
	}
	defer stmt.Close()

	successCount := 0
	errorCount := 0

	for i, c := range counterparties {
		if _, err := stmt.Exec(c.Kind, c.Description); err != nil {
			log.Printf("ERRO ao inserir cadastro [%d/%d] %s: %v", i+1, len(counterparties), c.Description, err)
			errorCount++
			continue
		}
		successCount++
	}

	log.Printf("Inserção de cadastros concluída em %v. Sucesso: %d, Erros: %d", time.Since(startTime), successCount, errorCount)
}

func main() {
	command := flag.String("cmd", "up", "comando: up, down, version ou seed")
	steps := flag.Int("steps", 1, "quantidade de migrações revertidas pelo comando down")
	flag.Parse()

	setupLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("ERRO ao carregar configuração: %v", err)
	}

	db, err := sql.Open("postgres", cfg.Database.DSN)
	if err != nil {
		log.Fatalf("ERRO ao conectar ao banco de dados: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatalf("ERRO ao verificar conexão com o banco: %v", err)
	}
	log.Println("Conexão com o banco de dados estabelecida com sucesso")

	if *command == "seed" {
		runSeed(db)
		return
	}

	m, err := migration.New(db)
	if err != nil {
		log.Fatalf("ERRO ao preparar migrações: %v", err)
	}
	defer m.Close()

	switch *command {
	case "up":
		err = m.Up()
	case "down":
		err = m.Steps(-*steps)
	case "version":
	default:
		log.Fatalf("ERRO comando desconhecido: %s", *command)
	}
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		log.Fatalf("ERRO ao executar %s: %v", *command, err)
	}

	version, dirty, err := m.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		log.Fatalf("ERRO ao obter versão: %v", err)
	}
	log.Printf("Versão do schema: %d (dirty: %t)", version, dirty)
}

func runSeed(db *sql.DB) {
	counterparties := []Counterparty{
		{"Fornecedor", "Aluguel"},
		{"Fornecedor", "Energia elétrica"},
		{"Fornecedor", "Internet"},
		{"Fornecedor", "Material didático"},
		{"Cliente", "Mensalidades"},
		{"Cliente", "Matrículas"},
	}

	tx, err := db.Begin()
	if err != nil {
		log.Fatalf("ERRO ao iniciar transação: %v", err)
	}

	seedCounterparties(tx, counterparties)

	if err := tx.Commit(); err != nil {
		log.Printf("ERRO ao confirmar transação: %v", err)
		if err := tx.Rollback(); err != nil {
			log.Fatalf("ERRO ao reverter transação: %v", err)
		}
		log.Fatal("Transação revertida")
	}
	log.Println("Carga de cadastros concluída")
}

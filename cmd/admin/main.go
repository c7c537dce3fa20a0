// Command admin seeds a fresh deployment with a user account. The password
// is read from the terminal without echo.
package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/Projeto-Integrador-Grupo7/MandaPraMim-Delivery/internal/server/config"
	"github.com/Projeto-Integrador-Grupo7/MandaPraMim-Delivery/internal/server/models"
	"github.com/Projeto-Integrador-Grupo7/MandaPraMim-Delivery/internal/server/repositories/repomanager"
	"github.com/Projeto-Integrador-Grupo7/MandaPraMim-Delivery/internal/server/services"
)

// readPassword is a test seam for term.ReadPassword.
var readPassword = term.ReadPassword

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	cfg := &config.Config{}
	cfg.LoadDefaults()

	name := flag.String("name", "", "display name of the account")
	login := flag.String("login", "", "login (email)")
	dsn := flag.String("d", cfg.DatabaseDSN, "database DSN")
	flag.Parse()

	if strings.TrimSpace(*name) == "" || strings.TrimSpace(*login) == "" {
		return fmt.Errorf("both -name and -login are required")
	}

	fmt.Println("Enter password")
	password, err := readPassword(int(os.Stdin.Fd()))
	if err != nil {
		return err
	}
	if len(password) < 8 {
		return fmt.Errorf("password must be at least 8 characters")
	}

	ctx := context.Background()

	db, err := sql.Open("pgx", *dsn)
	if err != nil {
		return fmt.Errorf("db init error: %w", err)
	}
	defer db.Close()

	rm := repomanager.NewPostgresRepositoryManager()
	if err := rm.RunMigrations(ctx, db); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	cfg.DatabaseDSN = *dsn
	svc := services.NewUserService(db, rm, cfg)

	user, err := svc.Register(ctx, &models.User{
		Name:     *name,
		Login:    *login,
		Password: string(password),
	})
	if err != nil {
		return err
	}

	fmt.Printf("created user %d (%s)\n", user.ID, user.Login)
	return nil
}

// Command provision creates a user, or resets the password and role of an
// existing one. It is how the first administrator gets into the system.
//
//	go run ./cmd/provision -login admin -name "Administrador" -role ADMINISTRADOR -password segredo
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/BruksfildServices01/escala-trocas/internal/config"
	dbpkg "github.com/BruksfildServices01/escala-trocas/internal/db"
	"github.com/BruksfildServices01/escala-trocas/internal/domain/user"
	"github.com/BruksfildServices01/escala-trocas/internal/httperr"
	infraRepo "github.com/BruksfildServices01/escala-trocas/internal/infra/repository"
	"github.com/BruksfildServices01/escala-trocas/internal/logger"
	ucUser "github.com/BruksfildServices01/escala-trocas/internal/usecase/user"
)

func main() {
	login := flag.String("login", "", "login identifier")
	name := flag.String("name", "", "display name")
	role := flag.String("role", string(user.RoleEncarregado), "ADMINISTRADOR or ENCARREGADO")
	password := flag.String("password", os.Getenv("PROVISION_PASSWORD"), "password (or PROVISION_PASSWORD)")
	flag.Parse()

	if *login == "" || *password == "" {
		flag.Usage()
		os.Exit(2)
	}
	if *name == "" {
		*name = *login
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	zl, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer func() { _ = zl.Sync() }()

	db, err := dbpkg.NewDB(cfg, zl)
	if err != nil {
		zl.Fatal("database", zap.Error(err))
	}
	defer func() { _ = dbpkg.Close(db) }()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	uc := ucUser.NewProvisionUser(infraRepo.NewUserGormRepository(db))
	u, created, err := uc.Execute(ctx, ucUser.ProvisionInput{
		Name:            *name,
		LoginIdentifier: *login,
		Password:        *password,
		Role:            *role,
	})
	if err != nil {
		if ve, ok := httperr.AsValidation(err); ok {
			for _, is := range ve.Issues {
				fmt.Fprintf(os.Stderr, "%s: %s\n", is.Field, is.Message)
			}
			os.Exit(1)
		}
		zl.Fatal("provision", zap.Error(err))
	}

	verb := "updated"
	if created {
		verb = "created"
	}
	zl.Info("user "+verb,
		zap.Uint("id", u.ID),
		zap.String("login", u.LoginIdentifier),
		zap.String("role", u.Role),
	)
}

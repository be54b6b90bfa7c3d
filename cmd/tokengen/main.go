package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"fleet-management/fleetboard/internal/auth"
	"fleet-management/fleetboard/internal/config"
	"fleet-management/fleetboard/internal/constants"
)

// tokengen prints a bearer token for the API using AUTH_JWT_SECRET.
func main() {
	subject := flag.String("sub", "", "token subject, e.g. an operator name")
	role := flag.String("role", string(constants.RoleViewer), "viewer or dispatcher")
	ttl := flag.Duration("ttl", 24*time.Hour, "token lifetime")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	if !cfg.AuthEnabled() {
		log.Fatal("AUTH_JWT_SECRET is not set")
	}
	if *subject == "" {
		log.Fatal("-sub is required")
	}

	token, err := auth.NewTokenManager(cfg.JWTSecret).Issue(*subject, constants.AccessRole(*role), *ttl)
	if err != nil {
		log.Fatalf("issue token: %v", err)
	}

	fmt.Println(token)
}

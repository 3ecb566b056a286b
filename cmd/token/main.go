// Command token mints a bearer token signed with the configured JWT secret.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"techhive-users/config"
	"techhive-users/internal/services"
)

func main() {
	subject := flag.String("sub", "admin", "token subject")
	name := flag.String("name", "", "display name claim")
	ttl := flag.Duration("ttl", 0, "token lifetime; defaults to JWT_EXPIRY_MIN")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	lifetime := cfg.JWTExpiry()
	if *ttl > 0 {
		lifetime = *ttl
	}

	token, expiresAt, err := services.NewTokenService(cfg.JWTSecret, lifetime).Issue(*subject, *name)
	if err != nil {
		log.Fatalf("Failed to issue token: %v", err)
	}

	fmt.Fprintf(os.Stderr, "expires at %s\n", expiresAt.Format(time.RFC3339))
	fmt.Println(token)
}

package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/piresc/fleettrack/internal/pkg/config"
	"github.com/piresc/fleettrack/internal/pkg/jwt"
	"github.com/piresc/fleettrack/internal/pkg/middleware"
)

const usage = `usage:
  token driver -id <driver id> [-config dir] [-ttl 24h]   sign a driver token with jwt.secret
  token apikey -key <plaintext>                            print the bcrypt hash for apikey.hashes`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(2)
	}

	switch os.Args[1] {
	case "driver":
		driverToken(os.Args[2:])
	case "apikey":
		apiKeyHash(os.Args[2:])
	default:
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(2)
	}
}

func driverToken(args []string) {
	fs := flag.NewFlagSet("driver", flag.ExitOnError)
	driverID := fs.String("id", "", "driver id to put in the subject claim")
	configPath := fs.String("config", "./config", "directory containing location.yaml")
	ttl := fs.Duration("ttl", 0, "token lifetime, overrides jwt.expiration")
	_ = fs.Parse(args)

	if *driverID == "" {
		log.Fatal("-id is required")
	}

	configs, err := config.InitConfig("location", *configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *ttl > 0 {
		configs.JWT.Expiration = *ttl
	}

	token, expiresAt, err := jwt.GenerateToken(*driverID, jwt.RoleDriver, configs.JWT)
	if err != nil {
		log.Fatalf("Failed to generate token: %v", err)
	}
	fmt.Println(token)
	fmt.Fprintf(os.Stderr, "expires at %s\n", time.Unix(expiresAt, 0).UTC().Format(time.RFC3339))
}

func apiKeyHash(args []string) {
	fs := flag.NewFlagSet("apikey", flag.ExitOnError)
	key := fs.String("key", "", "plaintext api key")
	_ = fs.Parse(args)

	if *key == "" {
		log.Fatal("-key is required")
	}
	hash, err := middleware.HashAPIKey(*key)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(hash)
}

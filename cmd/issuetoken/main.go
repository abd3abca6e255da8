// Command issuetoken prints a signed token for a user id, for poking at
// the API by hand.
//
//	go run ./cmd/issuetoken -uid 68bf0f1a2a3c4d5e6f708091 -ttl 1h
package main

import (
	"flag"
	"fmt"
	"os"

	"go.mongodb.org/mongo-driver/v2/bson"

	"devconnector/config"
	"devconnector/internal/jwtutil"
)

func main() {
	cfg := config.LoadConfig()

	uid := flag.String("uid", "", "user id (hex ObjectID)")
	ttl := flag.Duration("ttl", cfg.JWTTTL, "token lifetime")
	flag.Parse()

	if cfg.JWTSecret == "" {
		fmt.Fprintln(os.Stderr, "JWT_SECRET is required")
		os.Exit(1)
	}
	if _, err := bson.ObjectIDFromHex(*uid); err != nil {
		fmt.Fprintln(os.Stderr, "-uid must be a 24 character hex id")
		os.Exit(2)
	}

	signed, err := jwtutil.NewManager(cfg.JWTSecret, *ttl, nil).Issue(*uid)
	if err != nil {
		fmt.Fprintln(os.Stderr, "sign:", err)
		os.Exit(1)
	}
	fmt.Println(signed)
}

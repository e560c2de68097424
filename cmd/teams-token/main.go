// Command teams-token mints a development bearer token for the teams
// service. It signs with the same TEAMS_JWT_SECRET the service verifies
// with and is not meant for production use.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/aussiebroadwan/bartab-teams/pkg/jwtx"
)

func main() {
	var (
		subject  = flag.String("sub", "", "user id to mint the token for (required)")
		email    = flag.String("email", "", "optional email claim")
		issuer   = flag.String("iss", envOr("TEAMS_JWT_ISSUER", "bartab-auth"), "issuer claim")
		audience = flag.String("aud", os.Getenv("TEAMS_JWT_AUDIENCE"), "comma separated audience")
		ttl      = flag.Duration("ttl", jwtx.DefaultAccessTokenTTL, "token lifetime")
	)
	flag.Parse()

	if *subject == "" {
		flag.Usage()
		os.Exit(2)
	}

	signer, err := jwtx.NewHS256([]byte(os.Getenv("TEAMS_JWT_SECRET")), *issuer, nil)
	if err != nil {
		log.Fatalf("TEAMS_JWT_SECRET: %v", err)
	}

	var aud []string
	for _, a := range strings.Split(*audience, ",") {
		if a = strings.TrimSpace(a); a != "" {
			aud = append(aud, a)
		}
	}

	claims := jwtx.NewAccessClaims(*subject, *issuer, aud, *ttl, time.Now().UTC())
	claims.Email = *email

	token, err := signer.Sign(claims)
	if err != nil {
		log.Fatalf("sign: %v", err)
	}
	fmt.Println(token)
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

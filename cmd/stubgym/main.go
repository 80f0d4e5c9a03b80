// stubgym runs the in-memory gym backend for local development of the
// dashboard. Point GATEWAY_BASE_URL at it and sign in with the demo
// accounts (member1 / trainer1 / manager1, password "password").
package main

import (
	"os"

	"github.com/gymtech/dashboard/internal/upstream/stub"
	"github.com/gymtech/dashboard/pkg/logger"
)

func main() {
	log := logger.Init(logger.Options{Level: "debug", Pretty: true})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}
	secret := os.Getenv("STUB_SECRET")
	if secret == "" {
		secret = "stub-secret"
	}

	srv := stub.New(secret, log)
	log.Info().Str("port", port).Msg("stub gym backend listening")
	if err := srv.Start(":" + port); err != nil {
		log.Fatal().Err(err).Msg("stub server stopped")
	}
}

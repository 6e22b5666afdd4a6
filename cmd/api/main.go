package main

import (
	"net/http"
	"os"
	"strings"
	"time"

	"microvetcare/internal/adapters/auth/keycloak"
	"microvetcare/internal/platform/logger"
	"microvetcare/internal/ports/auth"
	"microvetcare/internal/router"
)

func main() {
	log := logger.NewFromEnv()

	addr := ":8080"
	if v := os.Getenv("PORT"); v != "" {
		addr = ":" + v
	}

	// Sin clave pública de Keycloak corre en modo dev (roles por header).
	var verifier auth.AuthVerifier
	if pem := os.Getenv("KEYCLOAK_PUBLIC_KEY"); pem != "" {
		clientID := os.Getenv("KEYCLOAK_CLIENT_ID")
		if clientID == "" {
			clientID = "vetcare-app"
		}
		v, err := keycloak.NewVerifier(pem, clientID)
		if err != nil {
			log.Error("configurar verifier keycloak", map[string]any{"error": err.Error()})
			os.Exit(1)
		}
		verifier = v
	} else {
		log.Warn("sin KEYCLOAK_PUBLIC_KEY: modo dev con X-Debug-Roles", nil)
	}

	var origins []string
	if raw := os.Getenv("CORS_ALLOWED_ORIGINS"); raw != "" {
		for _, o := range strings.Split(raw, ",") {
			if o = strings.TrimSpace(o); o != "" {
				origins = append(origins, o)
			}
		}
	}

	r := router.NewRouter(router.Options{
		AuthVerifier:   verifier,
		Log:            log,
		AllowedOrigins: origins,
	})

	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	log.Info("starting server", map[string]any{"addr": addr})
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Error("server error", map[string]any{"error": err.Error()})
		os.Exit(1)
	}
}

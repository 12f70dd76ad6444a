package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4/middleware"
)

// AllowedOrigins is the restrictive origin list. No wildcards; credentials
// are enabled, so reflecting arbitrary origins would be a token leak.
var AllowedOrigins = []string{
	"http://localhost:3000",   // Development (frontend dev server)
	"http://localhost:5173",   // Development (vite preview)
	"https://dealpage.com",    // Production
	"https://app.dealpage.com", // Production app
}

// AllowedMethods lists the HTTP methods exposed cross-origin. OPTIONS is
// handled by the CORS middleware itself and must not appear here.
var AllowedMethods = []string{
	http.MethodGet,
	http.MethodPost,
	http.MethodPut,
	http.MethodPatch,
	http.MethodDelete,
}

// AllowedHeaders lists request headers the browser may send cross-origin.
var AllowedHeaders = []string{
	"Origin",
	"Content-Type",
	"Accept",
	"Authorization",
}

// CORSConfig returns the CORS configuration used by the application.
// Centralised here so that both main.go and tests reference the same config.
func CORSConfig() middleware.CORSConfig {
	return middleware.CORSConfig{
		AllowOrigins:     AllowedOrigins,
		AllowMethods:     AllowedMethods,
		AllowCredentials: true,
		AllowHeaders:     AllowedHeaders,
	}
}

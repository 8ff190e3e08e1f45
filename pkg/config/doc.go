// Package config loads typed configuration from environment variables.
//
// Structs declare their variables with caarlos0/env tags and their
// constraints with go-playground/validator tags. Load optionally reads
// dotenv files first via joho/godotenv.
package config

// Package config loads sigtoken settings from the environment.
//
// Values come from SIGTOKEN_* variables, optionally seeded from .env files
// via github.com/joho/godotenv, and are parsed with github.com/caarlos0/env.
// Variables already present in the process environment win over .env files.
//
//	cfg, err := config.Load()          // reads ./.env if present
//	cfg, err := config.Load("prod.env") // explicit files must exist
//
// Errors wrap ErrLoadingEnvFile, ErrParsingConfig or ErrInvalidConfig and can
// be matched with errors.Is.
package config

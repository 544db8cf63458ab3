package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/LEEEUNCHEOL96/sbb-board/internal/common/constants"
	commonerrors "github.com/LEEEUNCHEOL96/sbb-board/internal/common/errors"
)

type BoardConfig struct {
	HTTPPort       string
	DatabaseURL    string
	JWTSecret      string
	PageSize       int
	RequestTimeout time.Duration
	AccessTokenTTL time.Duration
}

func LoadBoardConfig() (BoardConfig, error) {
	databaseURL, err := mustEnv("DATABASE_URL")
	if err != nil {
		return BoardConfig{}, err
	}

	jwtSecret, err := mustEnv("JWT_SECRET")
	if err != nil {
		return BoardConfig{}, err
	}

	if len(jwtSecret) < constants.JWTSecretMinLength {
		return BoardConfig{}, fmt.Errorf("%w: got %d bytes", commonerrors.ErrInvalidJWTSecret, len(jwtSecret))
	}

	pageSize := getIntEnv("BOARD_PAGE_SIZE", constants.DefaultPageSize)
	if pageSize <= 0 || pageSize > constants.MaxPageSize {
		pageSize = constants.DefaultPageSize
	}

	return BoardConfig{
		HTTPPort:       getEnv("BOARD_HTTP_PORT", constants.DefaultBoardHTTPPort),
		DatabaseURL:    databaseURL,
		JWTSecret:      jwtSecret,
		PageSize:       pageSize,
		RequestTimeout: getDurationEnv("BOARD_REQUEST_TIMEOUT", constants.DefaultRequestTimeout),
		AccessTokenTTL: getDurationEnv("BOARD_ACCESS_TOKEN_TTL", constants.DefaultAccessTokenTTL),
	}, nil
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}

func mustEnv(key string) (string, error) {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return "", fmt.Errorf("%w: %s", commonerrors.ErrMissingRequiredEnv, key)
	}
	return v, nil
}

func getDurationEnv(key string, fallback time.Duration) time.Duration {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return d
}

func getIntEnv(key string, fallback int) int {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return fallback
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return i
}

package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

var errEnvVarNotFound error = errors.New("environment variable not found")

const (
	apiPortEnvKey   = "API_PORT"
	dbConnEnvKey    = "DB_CONNECTION_URL"
	jwtSecretEnvKey = "JWT_SECRET"

	confirmDelayEnvKey  = "CONFIRMATION_DELAY_SECONDS"
	schedulerTickEnvKey = "SCHEDULER_INTERVAL_SECONDS"

	defaultConfirmDelay  = 3 * time.Second
	defaultSchedulerTick = time.Second
)

type App struct {
	Port              string
	DBConnectionURL   string
	JWTSecret         string
	ConfirmationDelay time.Duration
	SchedulerInterval time.Duration
}

func NewApp() (App, error) {

	port, ok := os.LookupEnv(apiPortEnvKey)
	if !ok {
		return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, apiPortEnvKey)
	}

	dbConn, ok := os.LookupEnv(dbConnEnvKey)
	if !ok {
		return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, dbConnEnvKey)
	}

	jwtSecret, ok := os.LookupEnv(jwtSecretEnvKey)
	if !ok {
		return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, jwtSecretEnvKey)
	}

	confirmDelay, err := durationFromEnv(confirmDelayEnvKey, defaultConfirmDelay)
	if err != nil {
		return App{}, err
	}

	schedulerTick, err := durationFromEnv(schedulerTickEnvKey, defaultSchedulerTick)
	if err != nil {
		return App{}, err
	}

	return App{
		Port:              port,
		DBConnectionURL:   dbConn,
		JWTSecret:         jwtSecret,
		ConfirmationDelay: confirmDelay,
		SchedulerInterval: schedulerTick,
	}, nil
}

// WebhookSecret resolves the per-provider webhook secret, e.g. MOONPAY_WEBHOOK_SECRET.
func (a App) WebhookSecret(provider string) (string, error) {
	key := fmt.Sprintf("%s_WEBHOOK_SECRET", strings.ToUpper(provider))
	secret, ok := os.LookupEnv(key)
	if !ok {
		return "", fmt.Errorf("%w: %s", errEnvVarNotFound, key)
	}
	return secret, nil
}

func durationFromEnv(key string, fallback time.Duration) (time.Duration, error) {
	raw, ok := os.LookupEnv(key)
	if !ok {
		return fallback, nil
	}

	seconds, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", key, err)
	}

	return time.Duration(seconds) * time.Second, nil
}

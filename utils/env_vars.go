package utils

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"
)

// GetEnv reads an environment variable and converts it to T, falling back
// to defaultValue when the variable is unset or empty.
func GetEnv[T envType](envVarName string, defaultValue T) T {
	envValue, ok := os.LookupEnv(envVarName)
	if !ok || envValue == "" {
		return defaultValue
	}
	value, err := convertEnv[T](envValue)
	if err != nil {
		panic(fmt.Sprintf("environment variable %s is not valid: %v", envVarName, err))
	}
	return value
}

// GetRequiredEnv reads an environment variable and converts it to T,
// exiting the process when the variable is unset or empty.
func GetRequiredEnv[T envType](envVarName string) T {
	envValue, ok := os.LookupEnv(envVarName)
	if !ok || envValue == "" {
		log.Fatalf("%s environment variable is required", envVarName)
	}
	value, err := convertEnv[T](envValue)
	if err != nil {
		log.Fatalf("environment variable %s is not valid: %v", envVarName, err)
	}
	return value
}

type envType interface {
	~string | ~int | ~bool | ~float64 | time.Duration
}

func convertEnv[T envType](raw string) (T, error) {
	var zero T
	switch any(zero).(type) {
	case string:
		return any(raw).(T), nil
	case int:
		v, err := strconv.Atoi(raw)
		if err != nil {
			return zero, err
		}
		return any(v).(T), nil
	case bool:
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return zero, err
		}
		return any(v).(T), nil
	case float64:
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return zero, err
		}
		return any(v).(T), nil
	case time.Duration:
		v, err := time.ParseDuration(raw)
		if err != nil {
			return zero, err
		}
		return any(v).(T), nil
	}
	return zero, fmt.Errorf("unsupported type %T", zero)
}

package config

import (
	"fmt"
	"os"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

// LoadEnv applies environment variable overrides to the config struct.
// Fields declare their variable via the `env` struct tag.
func LoadEnv(config *AppConfig) error {
	log.Debug().Msg("Loading environment variables")

	sections := []interface{}{
		&config.App,
		&config.Server,
		&config.Logging,
		&config.CORS,
		&config.Assets,
	}
	for _, section := range sections {
		if err := processStructEnv(section); err != nil {
			return err
		}
	}

	return nil
}

// processStructEnv applies env overrides to one settings struct.
func processStructEnv(s interface{}) error {
	val := reflect.ValueOf(s).Elem()
	typ := val.Type()

	for i := 0; i < typ.NumField(); i++ {
		field := typ.Field(i)
		fieldVal := val.Field(i)

		// Skip if not settable
		if !fieldVal.CanSet() {
			continue
		}

		envName := field.Tag.Get("env")
		if envName == "" {
			continue
		}

		envValue, ok := os.LookupEnv(envName)
		if !ok || envValue == "" {
			continue
		}

		if err := setField(fieldVal, envValue); err != nil {
			return fmt.Errorf("invalid value for %s: %w", envName, err)
		}
	}

	return nil
}

// setField parses an environment value into a struct field. Supported kinds
// are the ones the settings structs actually use: string, []string
// (comma-separated), bool, int, and time.Duration.
func setField(fieldVal reflect.Value, envValue string) error {
	switch fieldVal.Kind() {
	case reflect.String:
		fieldVal.SetString(envValue)

	case reflect.Slice:
		if fieldVal.Type().Elem().Kind() != reflect.String {
			return fmt.Errorf("unsupported slice type %s", fieldVal.Type())
		}
		parts := strings.Split(envValue, ",")
		out := make([]string, 0, len(parts))
		for _, part := range parts {
			if trimmed := strings.TrimSpace(part); trimmed != "" {
				out = append(out, trimmed)
			}
		}
		fieldVal.Set(reflect.ValueOf(out))

	case reflect.Bool:
		parsed, err := strconv.ParseBool(envValue)
		if err != nil {
			return err
		}
		fieldVal.SetBool(parsed)

	case reflect.Int, reflect.Int64:
		// time.Duration is an int64 under the hood; accept "30s" style values.
		if fieldVal.Type() == reflect.TypeOf(time.Duration(0)) {
			parsed, err := time.ParseDuration(envValue)
			if err != nil {
				return err
			}
			fieldVal.SetInt(int64(parsed))
			return nil
		}
		parsed, err := strconv.ParseInt(envValue, 10, 64)
		if err != nil {
			return err
		}
		fieldVal.SetInt(parsed)

	default:
		return fmt.Errorf("unsupported field kind %s", fieldVal.Kind())
	}

	return nil
}

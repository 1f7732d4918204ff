package app

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// EnvPrefix marks the environment variables read by ApplyEnv.
const EnvPrefix = "MAZE_"

// LoadEnv reads MAZE_* settings from the given dotenv files and the process
// environment. Missing files are skipped; process variables win over files.
func LoadEnv(files ...string) (map[string]string, error) {
	env := map[string]string{}
	for _, file := range files {
		values, err := godotenv.Read(file)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", file, err)
		}
		for k, v := range values {
			if strings.HasPrefix(k, EnvPrefix) {
				env[k] = v
			}
		}
	}
	for _, kv := range os.Environ() {
		k, v, ok := strings.Cut(kv, "=")
		if ok && strings.HasPrefix(k, EnvPrefix) {
			env[k] = v
		}
	}
	return env, nil
}

// ApplyEnv overrides fields from MAZE_* keys. Unknown keys are ignored;
// malformed numbers are reported and leave the field unchanged.
func (c *Config) ApplyEnv(env map[string]string) error {
	var errs []error
	setInt := func(key string, dst *int) {
		v, ok := env[EnvPrefix+key]
		if !ok {
			return
		}
		parsed, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			errs = append(errs, fmt.Errorf("%s%s: %w", EnvPrefix, key, err))
			return
		}
		*dst = parsed
	}
	setString := func(key string, dst *string) {
		if v, ok := env[EnvPrefix+key]; ok {
			*dst = strings.TrimSpace(v)
		}
	}

	setString("SIM", &c.Sim)
	setInt("SCALE", &c.Scale)
	setInt("TPS", &c.TPS)
	setInt("RATE", &c.Rate)
	setInt("ROWS", &c.Rows)
	setInt("COLS", &c.Cols)
	setInt("START_ROW", &c.StartRow)
	setInt("START_COL", &c.StartCol)
	setString("HUNT", &c.Hunt)
	setString("BACKGROUND", &c.Background)

	if v, ok := env[EnvPrefix+"SEED"]; ok {
		parsed, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
		if err != nil {
			errs = append(errs, fmt.Errorf("%sSEED: %w", EnvPrefix, err))
		} else {
			c.Seed = parsed
		}
	}
	if v, ok := env[EnvPrefix+"INSTANT"]; ok {
		parsed, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			errs = append(errs, fmt.Errorf("%sINSTANT: %w", EnvPrefix, err))
		} else {
			c.Instant = parsed
		}
	}
	return errors.Join(errs...)
}

package env

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"poe-recomb-sim/internal/helpers"
	"runtime"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// DefaultCacheSize bounds the API server's selection cache.
const DefaultCacheSize = 4096

type Env struct {
	LogLevel  string
	APIPort   string
	Workers   int
	Memoize   bool
	CacheSize int
}

// Get loads .env from the project root, when there is one, and reads the
// environment.
func Get() (Env, error) {
	projectRoot, err := helpers.GetProjectRoot()
	if err == nil {
		envFilePath := filepath.Join(projectRoot, ".env")
		err = godotenv.Load(envFilePath)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Env{}, err
		}
	}

	env, err := FromLookup(os.LookupEnv)
	if err != nil {
		return Env{}, err
	}

	log.Info().Interface("env", env).Msg("Environment variables")

	return env, nil
}

// FromLookup reads the configuration through lookup, applying defaults for
// unset variables.
func FromLookup(lookup func(string) (string, bool)) (Env, error) {
	env := Env{
		LogLevel:  "info",
		APIPort:   "8080",
		Workers:   runtime.NumCPU(),
		Memoize:   true,
		CacheSize: DefaultCacheSize,
	}

	if v, ok := lookup("LOG_LEVEL"); ok && v != "" {
		env.LogLevel = v
	}
	if v, ok := lookup("API_PORT"); ok && v != "" {
		env.APIPort = v
	}
	if v, ok := lookup("SIM_WORKERS"); ok && v != "" {
		workers, err := strconv.Atoi(v)
		if err != nil || workers < 1 {
			return Env{}, errors.New("SIM_WORKERS must be a positive integer")
		}
		env.Workers = workers
	}
	if v, ok := lookup("SIM_MEMOIZE"); ok && v != "" {
		memoize, err := strconv.ParseBool(v)
		if err != nil {
			return Env{}, errors.New("SIM_MEMOIZE must be a boolean")
		}
		env.Memoize = memoize
	}

	if v, ok := lookup("SIM_CACHE_SIZE"); ok && v != "" {
		size, err := strconv.Atoi(v)
		if err != nil || size < 1 {
			return Env{}, errors.New("SIM_CACHE_SIZE must be a positive integer")
		}
		env.CacheSize = size
	}

	if _, err := zerolog.ParseLevel(env.LogLevel); err != nil {
		return Env{}, err
	}

	return env, nil
}

func (e Env) Level() zerolog.Level {
	level, err := zerolog.ParseLevel(e.LogLevel)
	if err != nil {
		return zerolog.InfoLevel
	}
	return level
}

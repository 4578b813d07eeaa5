package utils

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
)

const (
	EnvFileFlagName = "env-file"
	envFileEnvVar   = "ENV_FILE"
	defaultEnvFile  = ".env"
)

// LoadEnvFile loads environment variables from a dotenv file before the command line is parsed, so
// the file can feed every config option. The file is picked from the --env-file argument, then the
// ENV_FILE variable, then a .env file in the working directory. Variables that are already set
// win over the file. It returns the path of the loaded file, or "" when none was loaded.
func LoadEnvFile(args []string) (string, error) {
	if path := envFilePath(args); path != "" {
		if err := godotenv.Load(path); err != nil {
			return "", fmt.Errorf("loading env file %s: %w", path, err)
		}
		return path, nil
	}

	err := godotenv.Load(defaultEnvFile)
	switch {
	case err == nil:
		return toAbsolutePath(defaultEnvFile), nil
	case errors.Is(err, os.ErrNotExist):
		return "", nil
	default:
		return "", fmt.Errorf("loading %s file: %w", defaultEnvFile, err)
	}
}

// envFilePath returns the absolute path of the explicitly requested env file, if any.
func envFilePath(args []string) string {
	if path := envFileArg(args); path != "" {
		return toAbsolutePath(path)
	}

	if path := os.Getenv(envFileEnvVar); path != "" {
		return toAbsolutePath(path)
	}

	return ""
}

// envFileArg looks for "--env-file <path>" or "--env-file=<path>". Arguments after "--" are not
// flags.
func envFileArg(args []string) string {
	flag := "--" + EnvFileFlagName
	for i, arg := range args {
		switch {
		case arg == "--":
			return ""
		case arg == flag && i+1 < len(args):
			return args[i+1]
		case strings.HasPrefix(arg, flag+"="):
			return strings.TrimPrefix(arg, flag+"=")
		}
	}
	return ""
}

func toAbsolutePath(path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return path
	}
	return absPath
}

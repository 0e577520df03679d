package config

import (
	"errors"
	"io/fs"

	"github.com/joho/godotenv"
)

// LoadDotEnv loads KEY=VALUE pairs from the given .env files (default ".env")
// into the process environment without overriding variables that are already
// set. A missing file is reported as loaded=false with no error.
func LoadDotEnv(filenames ...string) (loaded bool, err error) {
	if err := godotenv.Load(filenames...); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

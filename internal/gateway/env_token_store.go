package gateway

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// EnvTokenStore persists the token as a key of a .env file, keeping every
// other entry of the file.
type EnvTokenStore struct {
	path string
	key  string
}

func NewEnvTokenStore(path, key string) *EnvTokenStore {
	return &EnvTokenStore{path: path, key: key}
}

func (s *EnvTokenStore) SaveToken(ctx context.Context, token string) error {
	env, err := godotenv.Read(s.path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("failed to read env file %s: %w", s.path, err)
		}
		env = map[string]string{}
	}

	env[s.key] = token
	if err := godotenv.Write(env, s.path); err != nil {
		return fmt.Errorf("failed to write env file %s: %w", s.path, err)
	}
	return nil
}

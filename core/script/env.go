package script

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"sync"
)

// Environment resolves variable references during expansion.
type Environment interface {
	// LookupEnv returns the value of the variable and whether it is set.
	LookupEnv(key string) (string, bool)
}

// OSEnv resolves variables from the process environment.
type OSEnv struct{}

var _ Environment = OSEnv{}

// LookupEnv implements Environment.
func (OSEnv) LookupEnv(key string) (string, bool) {
	return os.LookupEnv(key)
}

// NewMapEnv creates a new environment backed by a map.
func NewMapEnv() *MapEnv {
	return &MapEnv{}
}

// NewMapEnvFromEnvList creates a map environment from a list of
// KEY=VALUE entries like the one returned by os.Environ.
func NewMapEnvFromEnvList(environ []string) *MapEnv {
	out := &MapEnv{}

	for _, e := range environ {
		split := strings.SplitN(e, "=", 2)
		key, value := split[0], ""
		if len(split) > 1 {
			value = split[1]
		}
		out.Setenv(key, value)
	}

	return out
}

// MapEnv implements an in-memory Environment.
type MapEnv struct {
	rw  sync.RWMutex
	env map[string]string
}

var _ Environment = (*MapEnv)(nil)

// Setenv sets the value of the variable named by key.
func (m *MapEnv) Setenv(key, value string) {
	m.rw.Lock()
	defer m.rw.Unlock()

	if m.env == nil {
		m.env = make(map[string]string)
	}
	m.env[key] = value
}

// LookupEnv implements Environment.
func (m *MapEnv) LookupEnv(key string) (string, bool) {
	m.rw.RLock()
	defer m.rw.RUnlock()

	val, ok := m.env[key]
	return val, ok
}

// Getenv returns the value of the variable, or "" if it is unset.
func (m *MapEnv) Getenv(key string) string {
	val, _ := m.LookupEnv(key)
	return val
}

// Environ returns the variables as a sorted list of KEY=VALUE entries.
func (m *MapEnv) Environ() []string {
	m.rw.RLock()
	defer m.rw.RUnlock()

	var env []string
	for k, v := range m.env {
		env = append(env, fmt.Sprintf("%s=%s", k, v))
	}
	sort.Strings(env)

	return env
}

// Package envtest provides fake environments for tests
// that inject a Getenv function.
package envtest

import "fmt"

// Env is a fake environment.
// The zero value is an empty environment.
type Env map[string]string

// Pairs builds an Env from alternating keys and values.
func Pairs(pairs ...string) (Env, error) {
	if len(pairs)%2 != 0 {
		return nil, fmt.Errorf("%d items in environment are not even", len(pairs))
	}

	env := make(Env, len(pairs)/2)
	for i := 0; i < len(pairs); i += 2 {
		env[pairs[i]] = pairs[i+1]
	}
	return env, nil
}

// MustPairs is like Pairs but panics on error.
func MustPairs(pairs ...string) Env {
	env, err := Pairs(pairs...)
	if err != nil {
		panic(err)
	}
	return env
}

// Getenv reports the value of k, or an empty string if it is unset.
// It matches the signature of os.Getenv.
func (e Env) Getenv(k string) string {
	return e[k]
}

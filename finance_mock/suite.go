package finance_mock

import "testing"

// SetupFunc prepares one test fixture and optionally returns a
// teardown.
type SetupFunc func(t *testing.T) func() error

type SetupListFunc []SetupFunc

// Suite runs setups in order, the test body as a subtest, then
// teardowns in reverse.
func Suite(t *testing.T, name string, setups SetupListFunc, run func(t *testing.T)) {
	teardowns := []func() error{}
	for _, setup := range setups {
		teardown := setup(t)
		if teardown != nil {
			teardowns = append(teardowns, teardown)
		}
	}

	t.Run(name, run)

	for i := len(teardowns) - 1; i >= 0; i-- {
		if err := teardowns[i](); err != nil {
			t.Error(err)
		}
	}
}

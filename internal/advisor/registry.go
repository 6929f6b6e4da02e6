package advisor

import (
	"context"
	"fmt"
	"sort"
	"sync"
)

// Factory creates a new advisor instance.
type Factory func() Advisor

var (
	factories = make(map[string]Factory)
	mu        sync.RWMutex
)

// Register adds a named advisor factory.
// Panics if an advisor with the same name is already registered.
func Register(name string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[name]; exists {
		panic(fmt.Sprintf("advisor: %q already registered", name))
	}
	factories[name] = f
}

// List returns the registered advisor names, sorted.
func List() []string {
	mu.RLock()
	defer mu.RUnlock()

	names := make([]string, 0, len(factories))
	for name := range factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Create instantiates an advisor by name.
func Create(name string) (Advisor, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[name]
	if !ok {
		return nil, fmt.Errorf("advisor: unknown advisor %q", name)
	}
	return f(), nil
}

// Exists checks if an advisor with the given name is registered.
func Exists(name string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[name]
	return ok
}

func init() {
	Register("rules", func() Advisor { return NewRulesAdvisor() })
	Register("stay", func() Advisor {
		return Func(func(_ context.Context, req Request) (Response, error) {
			return Response{
				Recommendation:  Stay,
				RecommendedTier: req.CurrentTier,
				Explanation:     "Keep going at your own pace.",
			}, nil
		})
	})
}

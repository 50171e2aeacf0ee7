// Package augmenttest provides a deterministic Generator for tests.
package augmenttest

import (
	"context"
	"fmt"
	"sync"

	"github.com/shanehull/dateaug/internal/augment"
)

// Fake answers every request without a model. Rewrites are tagged with the
// task and their index; translations append the target language.
type Fake struct {
	// Short caps how many rewrites are returned; zero returns Count.
	Short int
	// Err, when set, is returned for requests of FailTask (or all tasks if
	// FailTask is empty).
	Err      error
	FailTask augment.Task
	// Raw overrides the output for a task.
	Raw map[augment.Task][]string

	mu    sync.Mutex
	calls []augment.Request
}

func (f *Fake) Generate(ctx context.Context, req augment.Request) ([]string, error) {
	f.mu.Lock()
	f.calls = append(f.calls, req)
	f.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if f.Err != nil && (f.FailTask == "" || f.FailTask == req.Task) {
		return nil, f.Err
	}
	if raw, ok := f.Raw[req.Task]; ok {
		return raw, nil
	}

	if req.Task == augment.TaskTranslate {
		return []string{fmt.Sprintf("%s <%s>", req.Text, req.To)}, nil
	}

	n := req.Count
	if f.Short > 0 && f.Short < n {
		n = f.Short
	}
	out := make([]string, n)
	for i := range out {
		out[i] = fmt.Sprintf("%s#%d %s", req.Task, i, req.Text)
	}
	return out, nil
}

// Calls returns a copy of every request received so far.
func (f *Fake) Calls() []augment.Request {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]augment.Request(nil), f.calls...)
}

// CountTask reports how many requests of the given task were received.
func (f *Fake) CountTask(task augment.Task) int {
	n := 0
	for _, c := range f.Calls() {
		if c.Task == task {
			n++
		}
	}
	return n
}

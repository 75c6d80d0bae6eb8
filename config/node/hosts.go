package node

import (
	"fmt"
	"strings"
	"sync"

	"github.com/gammazero/workerpool"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Hosts are destination hosts
type Hosts []*Host

func (hosts Hosts) Validate() error {
	if len(hosts) == 0 {
		return fmt.Errorf("at least one host required")
	}

	hostmap := make(map[string]struct{}, len(hosts))
	for _, h := range hosts {
		if _, ok := hostmap[h.target()]; ok {
			return fmt.Errorf("%s: is not unique", h)
		}
		hostmap[h.target()] = struct{}{}
	}

	for _, h := range hosts {
		if err := validation.Validate(h.Files); err != nil {
			return fmt.Errorf("%s: files: %w", h, err)
		}
	}

	return nil
}

// First returns the first host
func (hosts Hosts) First() *Host {
	if len(hosts) == 0 {
		return nil
	}
	return hosts[0]
}

// Find returns the first matching Host. The finder function should return true for a Host matching the criteria.
func (hosts Hosts) Find(filter func(h *Host) bool) *Host {
	for _, h := range hosts {
		if filter(h) {
			return h
		}
	}
	return nil
}

// Filter returns a filtered list of Hosts. The filter function should return true for hosts matching the criteria.
func (hosts Hosts) Filter(filter func(h *Host) bool) Hosts {
	result := make(Hosts, 0, len(hosts))

	for _, h := range hosts {
		if filter(h) {
			result = append(result, h)
		}
	}

	return result
}

// Each runs a function (or multiple functions chained) on every Host.
func (hosts Hosts) Each(filters ...func(h *Host) error) error {
	for _, filter := range filters {
		for _, h := range hosts {
			if err := filter(h); err != nil {
				return err
			}
		}
	}

	return nil
}

// ParallelEach runs a function (or multiple functions chained) on every Host parallelly.
// Any errors will be concatenated and returned.
func (hosts Hosts) ParallelEach(filters ...func(h *Host) error) error {
	var wg sync.WaitGroup
	var mu sync.Mutex
	var errors []string

	for _, filter := range filters {
		for _, h := range hosts {
			wg.Add(1)
			go func(h *Host) {
				defer wg.Done()
				if err := filter(h); err != nil {
					mu.Lock()
					errors = append(errors, fmt.Sprintf("%s: %s", h, err.Error()))
					mu.Unlock()
				}
			}(h)
		}
		wg.Wait()
	}

	if len(errors) > 0 {
		return fmt.Errorf("failed on %d hosts:\n - %s", len(errors), strings.Join(errors, "\n - "))
	}

	return nil
}

// BatchedParallelEach runs a function (or multiple functions chained) on every Host in parallel,
// at most batchSize hosts at a time.
func (hosts Hosts) BatchedParallelEach(batchSize int, filters ...func(h *Host) error) error {
	if batchSize < 1 {
		batchSize = 1
	}

	var mu sync.Mutex
	var errors []string

	for _, filter := range filters {
		pool := workerpool.New(batchSize)
		for _, h := range hosts {
			h, filter := h, filter
			pool.Submit(func() {
				if err := filter(h); err != nil {
					mu.Lock()
					errors = append(errors, fmt.Sprintf("%s: %s", h, err.Error()))
					mu.Unlock()
				}
			})
		}
		pool.StopWait()
	}

	if len(errors) > 0 {
		return fmt.Errorf("failed on %d hosts:\n - %s", len(errors), strings.Join(errors, "\n - "))
	}

	return nil
}

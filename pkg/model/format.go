package model

import (
	"errors"
	"fmt"
	"net/mail"
	"net/url"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws/arn"
)

// FormatChecker validates a string against a named format.
type FormatChecker func(value string) error

// FormatRegistry maps format names to checkers. Formats without a checker
// are accepted as plain strings.
type FormatRegistry struct {
	mu       sync.RWMutex
	checkers map[string]FormatChecker
}

var (
	defaultFormatsOnce sync.Once
	defaultFormats     *FormatRegistry
)

// DefaultFormats returns the shared registry with the built-in checkers.
func DefaultFormats() *FormatRegistry {
	defaultFormatsOnce.Do(func() {
		defaultFormats = NewFormatRegistry()
	})
	return defaultFormats
}

// NewFormatRegistry returns a registry holding the built-in checkers:
// aws-arn, uri, date-time and email.
func NewFormatRegistry() *FormatRegistry {
	r := &FormatRegistry{checkers: make(map[string]FormatChecker)}
	r.checkers["aws-arn"] = checkARN
	r.checkers["uri"] = checkURI
	r.checkers["date-time"] = checkDateTime
	r.checkers["email"] = checkEmail
	return r
}

// Register adds or replaces a checker.
func (r *FormatRegistry) Register(name string, checker FormatChecker) error {
	name = strings.TrimSpace(name)
	if name == "" || checker == nil {
		return errors.New("model: format name and checker are required")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.checkers[name] = checker
	return nil
}

// Check validates value against format. Unknown formats pass.
func (r *FormatRegistry) Check(format, value string) error {
	if r == nil || format == "" {
		return nil
	}
	r.mu.RLock()
	checker, ok := r.checkers[format]
	r.mu.RUnlock()
	if !ok {
		return nil
	}
	return checker(value)
}

// Names lists the registered formats.
func (r *FormatRegistry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, 0, len(r.checkers))
	for name := range r.checkers {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

func checkARN(value string) error {
	parsed, err := arn.Parse(value)
	if err != nil {
		return err
	}
	if parsed.Partition == "" || parsed.Service == "" || parsed.Resource == "" {
		return fmt.Errorf("arn %q is missing partition, service or resource", value)
	}
	return nil
}

func checkURI(value string) error {
	u, err := url.Parse(value)
	if err != nil {
		return err
	}
	if u.Scheme == "" {
		return fmt.Errorf("uri %q has no scheme", value)
	}
	return nil
}

func checkDateTime(value string) error {
	_, err := time.Parse(time.RFC3339Nano, value)
	return err
}

func checkEmail(value string) error {
	addr, err := mail.ParseAddress(value)
	if err != nil {
		return err
	}
	if addr.Name != "" {
		return fmt.Errorf("email %q must be a bare address", value)
	}
	return nil
}

// Package tenancy turns the authenticated caller into the organization scope
// every command and query runs in.
package tenancy

import (
	"context"
	"strings"
)

type subjectKey struct{}

// WithSubject stores the authenticated caller identity (an email) on ctx.
func WithSubject(ctx context.Context, subject string) context.Context {
	return context.WithValue(ctx, subjectKey{}, strings.TrimSpace(subject))
}

// SubjectFrom returns the caller identity, false when none or blank.
func SubjectFrom(ctx context.Context) (string, bool) {
	subject, ok := ctx.Value(subjectKey{}).(string)
	if !ok || subject == "" {
		return "", false
	}
	return subject, true
}

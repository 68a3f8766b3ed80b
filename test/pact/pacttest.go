//go:build pact
// +build pact

package pacttest

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

const (
	ProviderName = "shop-cms"
	ConsumerName = "shop-admin"

	StateAdminExists   = "admin account pact-admin exists"
	StateOrderExists   = "order with id 42 exists"
	StateOrderMissing  = "no order with id 404"
	StateBannersExists = "banner collection with id 7 exists"
)

const (
	ExistingOrderID      int64 = 42
	MissingOrderID       int64 = 404
	ExistingCollectionID int64 = 7

	AdminIdentifier       = "pact-admin"
	AdminPassword         = "pact-pass"
	AdminEmail            = "pact.admin@example.com"
	AdminUserID     int64 = 3
)

// PactDir returns the workspace-level directory for generated pact files.
func PactDir(t testing.TB) string {
	t.Helper()
	dir := filepath.Join(projectRoot(t), "pacts")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("create pact dir: %v", err)
	}
	return dir
}

// LogDir returns the log output directory for pact-go.
func LogDir(t testing.TB) string {
	t.Helper()
	dir := filepath.Join(projectRoot(t), "bin", "pact-logs")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("create pact log dir: %v", err)
	}
	return dir
}

// ExampleLoginResponse is the body the CMS answers to a successful local login.
func ExampleLoginResponse() map[string]any {
	return map[string]any{
		"jwt": "eyJhbGciOiJIUzI1NiJ9.pact.signature",
		"user": map[string]any{
			"id":       AdminUserID,
			"username": AdminIdentifier,
			"email":    AdminEmail,
			"blocked":  false,
		},
	}
}

// projectRoot walks up from this file to the workspace root.
func projectRoot(t testing.TB) string {
	t.Helper()
	_, file, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("cannot determine caller for pact paths")
	}
	return filepath.Clean(filepath.Join(filepath.Dir(file), "..", ".."))
}

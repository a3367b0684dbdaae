package executor

import (
	"context"
	"strings"
	"testing"
)

func TestExecute(t *testing.T) {
	out, err := New().Execute(context.Background(), "echo", "hello")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if strings.TrimSpace(out) != "hello" {
		t.Errorf("Execute() output = %q, want hello", out)
	}
}

func TestExecuteFailure(t *testing.T) {
	_, err := New().Execute(context.Background(), "false")
	if err == nil {
		t.Error("Execute() should fail for nonzero exit")
	}
}

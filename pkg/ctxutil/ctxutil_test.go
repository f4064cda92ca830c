package ctxutil

import (
	"context"
	"testing"

	"github.com/google/uuid"
)

func TestWithRunID_And_RunIDFromCtx(t *testing.T) {
	t.Parallel()

	id := NewRunID()
	if _, err := uuid.Parse(id); err != nil {
		t.Fatalf("NewRunID() = %q, not a uuid: %v", id, err)
	}

	ctx := WithRunID(context.Background(), id)
	if got := RunIDFromCtx(ctx); got != id {
		t.Fatalf("expected %s, got %s", id, got)
	}
}

func TestRunIDFromCtx_EmptyContext(t *testing.T) {
	t.Parallel()

	if got := RunIDFromCtx(context.Background()); got != "" {
		t.Fatalf("expected empty string, got %q", got)
	}
}

func TestRunIDFromCtx_WrongType(t *testing.T) {
	t.Parallel()

	ctx := context.WithValue(context.Background(), runIDKey, 42)
	if got := RunIDFromCtx(ctx); got != "" {
		t.Fatalf("expected empty string for wrong type, got %q", got)
	}
}

func TestWithDocument_And_DocumentFromCtx(t *testing.T) {
	t.Parallel()

	ctx := WithDocument(context.Background(), "The_Oxford_3000.pdf")
	if got := DocumentFromCtx(ctx); got != "The_Oxford_3000.pdf" {
		t.Fatalf("expected The_Oxford_3000.pdf, got %q", got)
	}
	if got := DocumentFromCtx(context.Background()); got != "" {
		t.Fatalf("expected empty string, got %q", got)
	}
}

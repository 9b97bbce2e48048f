package logger

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"go.uber.org/zap"
)

func TestNew_WritesDailyFile(t *testing.T) {
	prev := zap.L()
	t.Cleanup(func() { zap.ReplaceGlobals(prev) })

	dir := t.TempDir()
	l, err := New(dir, false, "debug")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	l.Infow("hello", "k", "v")
	_ = l.Sync()

	path := filepath.Join(dir, time.Now().Format("2006-01-02")+".log")
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("log file missing: %v", err)
	}
}

func TestFromContext_Fallback(t *testing.T) {
	if FromContext(context.Background()) == nil {
		t.Fatal("FromContext returned nil without an attached logger")
	}

	l := zap.NewNop().Sugar()
	ctx := WithContext(context.Background(), l)
	if FromContext(ctx) != l {
		t.Fatal("FromContext did not return the attached logger")
	}
}

package instrumentation

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"
)

func TestToolInvocation_Status(t *testing.T) {
	ti := NewToolInvocation("slot_find_earliest")

	ti.Complete(true, nil)
	if ti.Status() != StatusSuccess {
		t.Errorf("Status() = %q, want %q", ti.Status(), StatusSuccess)
	}

	ti.Success = false
	if ti.Status() != StatusError {
		t.Errorf("Status() = %q, want %q", ti.Status(), StatusError)
	}
}

func TestToolInvocation_Complete(t *testing.T) {
	ti := NewToolInvocation("slot_find_earliest")
	time.Sleep(time.Millisecond)

	ti.Complete(false, errors.New("boom"))

	if ti.Duration <= 0 {
		t.Error("expected positive duration after Complete")
	}
	if ti.Error != "boom" {
		t.Errorf("Error = %q, want %q", ti.Error, "boom")
	}
	if ti.Success {
		t.Error("expected Success to be false")
	}
}

func TestToolInvocation_Builders(t *testing.T) {
	ti := NewToolInvocation("slot_find_from_google").
		WithAccount("work").
		WithOperation("freebusy").
		WithAttendees([]string{"alice@example.com"})

	if ti.Account != "work" {
		t.Errorf("Account = %q, want %q", ti.Account, "work")
	}
	if ti.Operation != "freebusy" {
		t.Errorf("Operation = %q, want %q", ti.Operation, "freebusy")
	}
	if len(ti.Attendees) != 1 {
		t.Fatalf("Attendees length = %d, want 1", len(ti.Attendees))
	}
}

func TestToolInvocation_LogAttrsAnonymizesAttendees(t *testing.T) {
	ti := NewToolInvocation("slot_find_from_google").
		WithAttendees([]string{"alice@example.com"}).
		CompleteSuccess()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	attrs := ti.LogAttrs()
	args := make([]any, len(attrs))
	for i, attr := range attrs {
		args[i] = attr
	}
	logger.Info("tool_executed", args...)

	out := buf.String()
	if strings.Contains(out, "alice@example.com") {
		t.Errorf("LogAttrs output should not contain the raw email, got %q", out)
	}
	if !strings.Contains(out, "user:") {
		t.Errorf("LogAttrs output should contain the anonymized attendee, got %q", out)
	}
}

func TestAuditLogger_LogToolInvocation(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	al := NewAuditLogger(logger)
	ti := NewToolInvocation("slot_find_earliest").CompleteSuccess()
	al.LogToolInvocation(ti)

	if !strings.Contains(buf.String(), "tool_executed") {
		t.Errorf("expected tool_executed log entry, got %q", buf.String())
	}

	buf.Reset()
	ti = NewToolInvocation("slot_find_earliest").CompleteWithError(errors.New("boom"))
	al.LogToolInvocation(ti)

	if !strings.Contains(buf.String(), "tool_failed") {
		t.Errorf("expected tool_failed log entry, got %q", buf.String())
	}
}

func TestAuditLogger_IncludePII(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	al := NewAuditLoggerWithConfig(logger, AuditLoggingConfig{
		Enabled:    true,
		IncludePII: true,
	})

	ti := NewToolInvocation("slot_find_from_google").
		WithAttendees([]string{"alice@example.com"}).
		CompleteSuccess()
	al.LogToolInvocation(ti)

	if !strings.Contains(buf.String(), "alice@example.com") {
		t.Errorf("expected raw attendee in PII audit log, got %q", buf.String())
	}
}

func TestAuditLogger_Disabled(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	al := NewAuditLogger(logger)
	al.SetEnabled(false)

	ti := NewToolInvocation("slot_find_earliest").CompleteSuccess()
	al.LogToolInvocation(ti)

	if buf.Len() != 0 {
		t.Errorf("expected no output when disabled, got %q", buf.String())
	}
}

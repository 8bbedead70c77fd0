package logging

import (
	"context"
	"testing"

	"github.com/spf13/viper"
)

func TestRedact(t *testing.T) {
	if Redact("") != "" {
		t.Fatalf("empty secret redacted to a value")
	}
	a, b := Redact("token-a"), Redact("token-b")
	if a == "token-a" || a == b || a != Redact("token-a") {
		t.Fatalf("redaction not stable and distinct: %q %q", a, b)
	}
}

func TestLoggerTxnID(t *testing.T) {
	if _, ok := Logger(nil).Data["txnid"]; ok {
		t.Fatalf("txnid without a context")
	}

	ctx := WithTxnID(context.Background(), "abc")
	if got := Logger(ctx).Data["txnid"]; got != "abc" {
		t.Fatalf("txnid = %v", got)
	}
}

func TestConfigureRejectsBadFormat(t *testing.T) {
	cfg := viper.New()
	cfg.Set("logging.location", "stderr")
	cfg.Set("logging.level", "info")
	cfg.Set("logging.format", "xml")

	if err := Configure(cfg); err == nil {
		t.Fatalf("bad format accepted")
	}
}

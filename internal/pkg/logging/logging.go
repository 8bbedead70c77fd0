package logging

import (
	"context"
	"crypto/sha1"
	"encoding/base64"
	"fmt"
	"io"
	stdlog "log"
	"os"
	"path"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

/*
 *  Process wide logger, configured from viper
 */

type ctxKey int

const (
	txnIDKey ctxKey = iota
)

// WithTxnID returns a context whose log lines carry the transaction ID
func WithTxnID(ctx context.Context, txnID string) context.Context {
	return context.WithValue(ctx, txnIDKey, txnID)
}

// TxnID returns the transaction ID stored in ctx, if any
func TxnID(ctx context.Context) (string, bool) {
	if ctx == nil {
		return "", false
	}
	txnID, ok := ctx.Value(txnIDKey).(string)
	return txnID, ok
}

var (
	gEntry      *logrus.Entry
	gLogFile    *os.File
	gInstanceID string
)

func init() {
	viper.SetDefault("logging.location", "stderr")
	viper.SetDefault("logging.format", "text")
	viper.SetDefault("logging.level", "info")

	gInstanceID = uuid.New().String()
	gEntry = processEntry()
}

func processEntry() *logrus.Entry {
	return logrus.WithFields(logrus.Fields{
		"pid":      os.Getpid(),
		"exe":      path.Base(os.Args[0]),
		"instance": gInstanceID,
	})
}

// Logger returns the process logger, with the transaction ID of ctx when
// there is one.  ctx may be nil.
func Logger(ctx context.Context) *logrus.Entry {
	if txnID, ok := TxnID(ctx); ok {
		return gEntry.WithField("txnid", txnID)
	}

	return gEntry
}

// Configure sets the log location, level and format
func Configure(cfg *viper.Viper) error {
	if err := setLocation(cfg.GetString("logging.location")); err != nil {
		return err
	}

	// --debug on the command line wins over the configured level
	if !logrus.IsLevelEnabled(logrus.DebugLevel) {
		level := cfg.GetString("logging.level")
		val, err := logrus.ParseLevel(level)
		if err != nil {
			return fmt.Errorf("bad log level: [%s]", level)
		}
		logrus.SetLevel(val)
	}

	switch format := cfg.GetString("logging.format"); format {
	case "json":
		logrus.SetFormatter(&logrus.JSONFormatter{})
	case "text", "":
		logrus.SetFormatter(&logrus.TextFormatter{})
	default:
		return fmt.Errorf("bad log format: [%s]", format)
	}

	// stdlib log users end up in the debug log
	stdlog.SetOutput(Logger(nil).WriterLevel(logrus.DebugLevel))

	return nil
}

func setLocation(loc string) error {
	var out io.Writer

	switch loc {
	case "stdout":
		out = os.Stdout
	case "stderr", "":
		out = os.Stderr
	default:
		file, err := os.OpenFile(loc, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
		if err != nil {
			return err
		}
		gEntry.Debugf("Switching log to %s", loc)

		if gLogFile != nil {
			gLogFile.Close()
		}
		gLogFile = file
		out = file
	}

	logrus.SetOutput(out)
	gEntry = processEntry()
	return nil
}

// Redact returns a stable, non-reversible stand-in for a secret so that it
// can be compared across log lines
func Redact(secret string) string {
	if secret == "" {
		return ""
	}
	sum := sha1.Sum([]byte(secret))
	return base64.StdEncoding.EncodeToString(sum[:])
}

package cmd

import (
	"io"

	"github.com/xdg/vmctl/internal/audit"
	"github.com/xdg/vmctl/internal/clog"
	"github.com/xdg/vmctl/internal/term"
)

// auditLog is nil unless log.audit_file is set.
var (
	auditLog  *audit.Logger
	auditFile io.Closer
)

// openAudit starts the audit log at path. Failure to open it is a warning.
func openAudit(path string) {
	closeAudit()
	if path == "" {
		return
	}
	f, err := clog.OpenLogFile(path)
	if err != nil {
		term.Warn("audit log %s disabled: %v", path, err)
		return
	}
	auditLog = audit.NewLogger(f)
	auditFile = f
}

func closeAudit() {
	if auditFile != nil {
		_ = auditFile.Close()
	}
	auditLog, auditFile = nil, nil
}

// record writes e to the audit log, if enabled.
func record(e *audit.Event) {
	if err := auditLog.Log(e); err != nil {
		clog.Warn("audit: %v", err)
	}
}

package logging

import (
	aulogging "github.com/StephanHCB/go-autumn-logging"
	auzerolog "github.com/StephanHCB/go-autumn-logging-zerolog"

	"github.com/DEFRA/mpdp-admin-frontend/internal/common"
)

// SetupAutumnLogging configures go-autumn-logging, which the downstream rest clients log through.
//
// style is "json" or "plain".
func SetupAutumnLogging(style string, severity string) {
	if style == "json" {
		auzerolog.SetupJsonLogging(common.ApplicationName)
	} else {
		auzerolog.SetupPlaintextLogging()
	}
	aulogging.RequestIdRetriever = GetRequestID
	SetSeverity(severity)
}

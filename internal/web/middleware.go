package web

import (
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/handlers"
)

// accessLog writes one line per request to the standard logger's output.
func accessLog(next http.Handler) http.Handler {
	return handlers.CustomLoggingHandler(log.Writer(), next, writeAccessLine)
}

func writeAccessLine(w io.Writer, p handlers.LogFormatterParams) {
	_, _ = fmt.Fprintf(w, "%s%s %s %s %d %dB %s\n",
		log.Prefix(),
		p.TimeStamp.Format("2006/01/02 15:04:05"),
		p.Request.Method,
		p.URL.Path,
		p.StatusCode,
		p.Size,
		time.Since(p.TimeStamp).Round(time.Microsecond),
	)
}

// recoverPanics turns a handler panic into a 500 and logs the stack.
var recoverPanics = handlers.RecoveryHandler(handlers.PrintRecoveryStack(true))

func logError(r *http.Request, action string, err error) {
	log.Printf("%s %s: %s: %v", r.Method, r.URL.Path, action, err)
}

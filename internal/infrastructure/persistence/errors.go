package persistence

import (
	"context"
	"database/sql/driver"
	"errors"
	"net"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

// ErrorClass groups store errors for logs and metrics. It never changes
// what a caller receives.
type ErrorClass string

const (
	ErrorClassNone         ErrorClass = ""
	ErrorClassConnectivity ErrorClass = "connectivity"
	ErrorClassConstraint   ErrorClass = "constraint"
	ErrorClassOther        ErrorClass = "other"
)

// Classify inspects err for a postgres SQLSTATE or a network failure
func Classify(err error) ErrorClass {
	if err == nil {
		return ErrorClassNone
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch {
		case strings.HasPrefix(pgErr.Code, "23"):
			return ErrorClassConstraint
		case strings.HasPrefix(pgErr.Code, "08"), strings.HasPrefix(pgErr.Code, "57P"):
			return ErrorClassConnectivity
		}
		return ErrorClassOther
	}

	var connectErr *pgconn.ConnectError
	var netErr net.Error
	switch {
	case errors.As(err, &connectErr),
		errors.As(err, &netErr),
		errors.Is(err, driver.ErrBadConn),
		errors.Is(err, context.DeadlineExceeded):
		return ErrorClassConnectivity
	}
	return ErrorClassOther
}

package models

import "errors"

// ErrLedgerImmutable is returned when code tries to rewrite an inventory transaction
var ErrLedgerImmutable = errors.New("inventory transactions are append-only")

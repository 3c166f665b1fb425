package store

import "errors"

// ErrEmptyAccountsPath is returned when the accounts file path is blank.
var ErrEmptyAccountsPath = errors.New("accounts file path is empty")

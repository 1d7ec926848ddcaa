// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 matu-sky

package tui

import (
	"errors"
	"strings"
)

var (
	// ErrUserQuit marks a deliberate exit so callers can suppress the
	// error on shutdown.
	ErrUserQuit = errors.New("프로그램을 종료했습니다")

	// ErrMissingDependencies is returned by New when a required
	// collaborator is nil.
	ErrMissingDependencies = errors.New("missing tui dependencies")
)

func humanizeServerUnavailableError(err error) string {
	if err == nil {
		return ""
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return "서버에 연결할 수 없습니다"
	}

	return err.Error()
}

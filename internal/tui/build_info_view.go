// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 matu-sky

package tui

import "strings"

func renderBuildInfoWindow(version string) string {
	var b strings.Builder
	b.WriteString("버전: ")
	b.WriteString(valueOrDash(version))

	return renderPage("빌드 정보", b.String(), "esc: 닫기")
}

package qrpayload

import "strings"

// wifiSpecials are the characters that must be backslash-escaped inside the
// S: and P: segments of a WIFI: configuration string.
const wifiSpecials = `\;,"'`

// EscapeWifiField returns s with every occurrence of one of \ ; , " '
// replaced by a backslash followed by that same character. The rule is
// applied independently and identically to the network name and password.
func EscapeWifiField(s string) string {
	if !strings.ContainsAny(s, wifiSpecials) {
		return s
	}

	var b strings.Builder
	b.Grow(len(s) * 2)
	for _, r := range s {
		if strings.ContainsRune(wifiSpecials, r) {
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}

	return b.String()
}

// UnescapeWifiField reverses [EscapeWifiField]: a backslash followed by any
// character yields that character. A trailing lone backslash is kept as-is.
func UnescapeWifiField(s string) string {
	if !strings.ContainsRune(s, '\\') {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))
	escaped := false
	for _, r := range s {
		if escaped {
			b.WriteRune(r)
			escaped = false
			continue
		}
		if r == '\\' {
			escaped = true
			continue
		}
		b.WriteRune(r)
	}
	if escaped {
		b.WriteByte('\\')
	}

	return b.String()
}

package dotcomponents

import (
	"sort"
	"strings"
)

// CamelCase converts a hyphen-delimited name to its camel-styled form:
// "ab-testing" becomes "abTesting". Already-camel input passes through.
func CamelCase(name string) string {
	parts := strings.Split(name, "-")
	if len(parts) == 1 {
		return name
	}

	var sb strings.Builder
	for _, p := range parts {
		if p == "" {
			continue
		}
		if sb.Len() == 0 {
			sb.WriteString(p)
			continue
		}
		sb.WriteString(strings.ToUpper(p[:1]))
		sb.WriteString(p[1:])
	}
	return sb.String()
}

const (
	sentryHostKey      = "sentryHost"
	sentryPublicKeyKey = "sentryPublicKey"
)

// ReportingConfig scans the flat property registry for the error-reporting
// host and public key. Registry keys are dot-and-hyphen-delimited (e.g.
// "logging.sentry-host"); only the last dot segment, camel-cased, is
// matched. Keys ending in anything else are ignored, and absence of either
// value is normal. Keys are visited in sorted order so the result never
// depends on map iteration.
func ReportingConfig(properties map[string]string) (host, publicKey *string) {
	keys := make([]string, 0, len(properties))
	for k := range properties {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		segment := k
		if i := strings.LastIndex(k, "."); i >= 0 {
			segment = k[i+1:]
		}

		v := properties[k]
		switch CamelCase(segment) {
		case sentryHostKey:
			host = &v
		case sentryPublicKeyKey:
			publicKey = &v
		}
	}

	return host, publicKey
}

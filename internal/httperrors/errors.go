// Package httperrors provides user-friendly presentation of HTTP and network
// failures hit while talking to the Logfire API.
package httperrors

import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"strings"
	"syscall"

	"github.com/pterm/pterm"

	"github.com/WillDaSilva/logfire/internal/logging"
)

// FormatNetworkError prints a user-friendly message for a transport failure
// and returns a wrapped error for logging. The technical details shown to
// the user are masked.
func FormatNetworkError(err error, context string) error {
	if err == nil {
		return nil
	}

	switch {
	case isTimeout(err):
		pterm.Printf("⏱️  Connection timeout while %s\n", context)
		pterm.Println("The Logfire API took too long to respond. Try again in a few moments,")
		pterm.Println("or impose a longer timeout on the command.")
	case isDNS(err):
		pterm.Printf("🌐 Cannot resolve the Logfire API host while %s\n", context)
		pterm.Println("Check your internet connection and DNS settings. If you configured a")
		pterm.Println("custom base URL, verify the hostname.")
	case isConnectionRefused(err):
		pterm.Printf("🚫 Connection refused while %s\n", context)
		pterm.Println("The server is not accepting connections. If you configured a custom")
		pterm.Println("base URL, verify the address and port; otherwise try again later.")
	case isTLS(err):
		pterm.Printf("🔒 Secure connection failed while %s\n", context)
		pterm.Println("Cannot establish HTTPS. Check your system clock and any network proxy.")
	default:
		pterm.Printf("❌ Cannot reach the Logfire API while %s\n", context)
		detail := logging.Mask(err.Error())
		if len(detail) > 120 {
			detail = detail[:120] + "..."
		}
		pterm.Println(detail)
	}
	pterm.Println()

	return fmt.Errorf("network error: %w", err)
}

func isTimeout(err error) bool {
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}
	s := strings.ToLower(err.Error())
	return strings.Contains(s, "timeout") || strings.Contains(s, "deadline exceeded")
}

func isDNS(err error) bool {
	var dnsErr *net.DNSError
	return errors.As(err, &dnsErr)
}

func isConnectionRefused(err error) bool {
	var opErr *net.OpError
	if errors.As(err, &opErr) && errors.Is(opErr.Err, syscall.ECONNREFUSED) {
		return true
	}
	return strings.Contains(strings.ToLower(err.Error()), "connection refused")
}

func isTLS(err error) bool {
	s := strings.ToLower(err.Error())
	return strings.Contains(s, "tls") ||
		strings.Contains(s, "certificate") ||
		strings.Contains(s, "handshake")
}

// ExtractHostFromURL extracts the hostname from a URL for error messages.
func ExtractHostFromURL(urlStr string) string {
	u, err := url.Parse(urlStr)
	if err != nil || u.Host == "" {
		return "server"
	}
	return u.Host
}

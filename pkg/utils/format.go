package utils

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

var (
	phMobileRe = regexp.MustCompile(`^09\d{9}$`)
	emailRe    = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	slugRe     = regexp.MustCompile(`[^a-z0-9]+`)
)

// IsValidPHMobile reports whether s is a Philippine mobile number in
// local format: exactly 11 digits starting with "09".
func IsValidPHMobile(s string) bool {
	return phMobileRe.MatchString(s)
}

func IsValidEmail(s string) bool {
	return emailRe.MatchString(s)
}

// FormatPeso renders an amount as "₱1,234.56".
func FormatPeso(amount float64) string {
	neg := amount < 0
	if neg {
		amount = -amount
	}
	s := fmt.Sprintf("%.2f", amount)
	parts := strings.SplitN(s, ".", 2)
	whole := parts[0]

	var b strings.Builder
	for i, r := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	out := "₱" + b.String() + "." + parts[1]
	if neg {
		return "-" + out
	}
	return out
}

func FormatDate(t time.Time) string {
	return t.Format("Jan 2, 2006")
}

func Slugify(title string) string {
	s := strings.ToLower(strings.TrimSpace(title))
	s = slugRe.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

func FormatFileSize(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(bytes)/float64(div), "KMGTPE"[exp])
}

package tablefilter

import "fmt"

// FormatRowCount renders a match summary for display, e.g.
// "1,234 of 10,000 rows".
func FormatRowCount(matched, total int) string {
	return fmt.Sprintf("%s of %s rows", groupDigits(matched), groupDigits(total))
}

// FormatFileSize renders a byte count with a binary unit, e.g. "48.2 MB".
func FormatFileSize(bytes int) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	size := float64(bytes)
	exp := 0
	for size >= unit && exp < 3 {
		size /= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", size, "KMG"[exp-1])
}

// groupDigits inserts thousands separators into a non-negative count.
func groupDigits(n int) string {
	s := fmt.Sprintf("%d", n)
	if len(s) <= 3 {
		return s
	}
	var out []byte
	lead := len(s) % 3
	if lead > 0 {
		out = append(out, s[:lead]...)
	}
	for i := lead; i < len(s); i += 3 {
		if len(out) > 0 {
			out = append(out, ',')
		}
		out = append(out, s[i:i+3]...)
	}
	return string(out)
}

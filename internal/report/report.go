package report

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"treediff/internal/compare"
)

var byteUnits = []string{"B", "KB", "MB", "GB", "TB"}

// FormatBytes renders a byte count human-readably with one decimal place
// and an explicit sign for nonzero values, e.g. "+10.5 MB". Values are
// scaled by repeated division by 1024 while >= 1024 and a smaller unit
// remains, so negative values never scale.
func FormatBytes(n int64) string {
	if n == 0 {
		return "0 B"
	}

	value := float64(n)
	i := 0
	for value >= 1024 && i < len(byteUnits)-1 {
		value /= 1024.0
		i++
	}
	return fmt.Sprintf("%+.1f %s", value, byteUnits[i])
}

// OutputName derives the report file name from the two input file names:
// diff_<old_stem>_vs_<new_stem>.txt.
func OutputName(oldFile, newFile string) string {
	return fmt.Sprintf("diff_%s_vs_%s.txt", stem(oldFile), stem(newFile))
}

func stem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// Render produces the full report text for a comparison result.
func Render(oldFile, newFile string, result *compare.Result) string {
	var b strings.Builder

	fmt.Fprintf(&b, "📊 Comparison: %s -> %s\n", oldFile, newFile)
	b.WriteString(strings.Repeat("=", 60) + "\n\n")

	fmt.Fprintf(&b, "🆕 ADDED (%d)\n", len(result.Added))
	b.WriteString(strings.Repeat("-", 30) + "\n")
	for _, change := range result.Added {
		fmt.Fprintf(&b, "[+%s]  %s\n", strings.TrimSpace(FormatBytes(change.Size)), change.Path)
	}

	fmt.Fprintf(&b, "\n🗑️ REMOVED (%d)\n", len(result.Removed))
	b.WriteString(strings.Repeat("-", 30) + "\n")
	for _, change := range result.Removed {
		fmt.Fprintf(&b, "[-%s]  %s\n", strings.TrimSpace(FormatBytes(change.Size)), change.Path)
	}

	fmt.Fprintf(&b, "\n🔄 SIZE CHANGED (%d)\n", len(result.Changed))
	b.WriteString(strings.Repeat("-", 30) + "\n")
	for _, change := range result.Changed {
		fmt.Fprintf(&b, "[%10s] (Current: %8s)  %s\n",
			FormatBytes(change.Delta), strings.TrimSpace(FormatBytes(change.Size)), change.Path)
	}

	return b.String()
}

// Write renders the report and writes it to path as UTF-8 text.
func Write(path, oldFile, newFile string, result *compare.Result) error {
	content := Render(oldFile, newFile, result)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to write report %s: %w", path, err)
	}
	return nil
}

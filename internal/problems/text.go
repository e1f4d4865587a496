package problems

import (
	"encoding/hex"
	"fmt"
	"regexp"
)

var (
	hexColorPattern = regexp.MustCompile(`^#?([0-9A-Fa-f]{3}|[0-9A-Fa-f]{6})$`)
	phonePattern    = regexp.MustCompile(`^8-800-[0-9]{3}-[0-9]{2}-[0-9]{2}$`)
	emoticonPattern = regexp.MustCompile(`:-\)|\(-:`)
)

// HexToRGB converts "#FFAA00", "FFAA00", "#FA0" or "FA0" (any case) into
// "(255, 170, 0)".
func HexToRGB(color string) (string, error) {
	m := hexColorPattern.FindStringSubmatch(color)
	if m == nil {
		return "", NewRangeError(FuncColor, "%q is not a 3 or 6 digit hex color", color)
	}
	digits := m[1]
	if len(digits) == 3 {
		digits = string([]byte{digits[0], digits[0], digits[1], digits[1], digits[2], digits[2]})
	}
	rgb, err := hex.DecodeString(digits)
	if err != nil {
		return "", NewRangeError(FuncColor, "decode %q: %v", color, err)
	}
	return fmt.Sprintf("(%d, %d, %d)", rgb[0], rgb[1], rgb[2]), nil
}

// IsPhoneNumber reports whether s is exactly of the form 8-800-xxx-xx-xx.
func IsPhoneNumber(s string) bool {
	return phonePattern.MatchString(s)
}

// CountEmoticons counts non-overlapping ":-)" and "(-:" in text.
func CountEmoticons(text string) int {
	return len(emoticonPattern.FindAllStringIndex(text, -1))
}

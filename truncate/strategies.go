package truncate

import "strings"

// budget returns the bytes left for content once the suffix is reserved.
func (t *Truncator) budget(maxBytes int) int {
	return maxBytes - len(t.suffix)
}

// truncateEnd removes content from the end until it fits.
func (t *Truncator) truncateEnd(text string, maxBytes int) string {
	target := t.budget(maxBytes)
	if target <= 0 {
		return UTF8Safe(t.suffix, maxBytes)
	}

	return UTF8Safe(text, target) + t.suffix
}

// truncateMiddle removes content from the middle, keeping start and end.
func (t *Truncator) truncateMiddle(text string, maxBytes int) string {
	target := t.budget(maxBytes)
	if target <= 0 {
		return UTF8Safe(t.suffix, maxBytes)
	}

	// The head gets the first half; whatever the rune boundary left over
	// goes to the tail.
	head := UTF8Safe(text, target/2)
	tail := UTF8SafeSuffix(text[len(head):], target-len(head))

	var sb strings.Builder
	sb.Grow(len(head) + len(t.suffix) + len(tail))
	sb.WriteString(head)
	sb.WriteString(t.suffix)
	sb.WriteString(tail)

	return sb.String()
}

// truncateStart removes content from the start.
func (t *Truncator) truncateStart(text string, maxBytes int) string {
	target := t.budget(maxBytes)
	if target <= 0 {
		return UTF8Safe(t.suffix, maxBytes)
	}

	return t.suffix + UTF8SafeSuffix(text, target)
}

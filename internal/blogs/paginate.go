package blogs

import "fmt"

// NoMoreContent is returned when the requested start index is at or past
// the end of the text.
const NoMoreContent = "No more content available."

// truncationNotice embeds the next start index as literal prose. Callers
// parse the offset back out of the text, so the phrasing is load-bearing.
const truncationNotice = "\n\n[Content truncated. Use start_index=%d to continue reading.]"

// Paginate returns the window [startIndex, startIndex+maxLength) of
// fullText, counted in characters, with a continuation notice appended
// when content remains past the window.
func Paginate(fullText string, startIndex, maxLength int) string {
	runes := []rune(fullText)
	if startIndex >= len(runes) {
		return NoMoreContent
	}

	end := startIndex + maxLength
	if end > len(runes) {
		end = len(runes)
	}

	chunk := string(runes[startIndex:end])
	if end < len(runes) {
		chunk += fmt.Sprintf(truncationNotice, end)
	}
	return chunk
}

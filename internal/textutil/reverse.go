package textutil

// Reverse переворачивает строку посимвольно (по рунам, а не по байтам),
// поэтому многобайтовые символы UTF-8 остаются целыми.
func Reverse(s string) string {
	runes := []rune(s)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	return string(runes)
}

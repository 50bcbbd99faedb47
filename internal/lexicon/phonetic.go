package lexicon

// PhoneticCode computes a 4-character Soundex-like code for word: one
// uppercase letter followed by three digits in '0'-'6'.
//
// This deliberately diverges from textbook Soundex: vowels, 'h', 'w', 'y'
// and the apostrophe are skipped without resetting the duplicate-collapse
// state, so a vowel between two identical consonant sounds still collapses
// them into one digit. Preserve this behavior — callers depend on it.
func PhoneticCode(word string) string {
	if word == "" {
		return ""
	}

	code := make([]byte, 0, 4)
	code = append(code, upper(word[0]))

	for i := 1; i < len(word) && len(code) < 4; i++ {
		digit := consonantDigit(lower(word[i]))
		if digit == 0 {
			continue
		}
		if len(code) > 0 && code[len(code)-1] == digit {
			continue
		}
		code = append(code, digit)
	}

	for len(code) < 4 {
		code = append(code, '0')
	}

	return string(code)
}

func consonantDigit(c byte) byte {
	switch c {
	case 'b', 'f', 'p', 'v':
		return '1'
	case 'c', 'g', 'j', 'k', 'q', 's', 'x', 'z':
		return '2'
	case 'd', 't':
		return '3'
	case 'l':
		return '4'
	case 'm', 'n':
		return '5'
	case 'r':
		return '6'
	default:
		return 0
	}
}

func upper(c byte) byte {
	if c >= 'a' && c <= 'z' {
		return c - 'a' + 'A'
	}
	return c
}

func lower(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c - 'A' + 'a'
	}
	return c
}

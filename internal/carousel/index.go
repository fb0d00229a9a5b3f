package carousel

// Next returns the slide after current, wrapping to 0 past the last slide.
func Next(current, count int) int {
	if count <= 0 {
		return 0
	}
	return (current + 1) % count
}

// Previous returns the slide before current, wrapping to the last slide.
func Previous(current, count int) int {
	if count <= 0 {
		return 0
	}
	return (current - 1 + count) % count
}

// Jump returns target and whether it is a valid position for count slides.
func Jump(target, count int) (int, bool) {
	if target < 0 || target >= count {
		return 0, false
	}
	return target, true
}

package main

// buttonPressed interprets the raw level of a button pin according to how the
// button is wired.  With the internal pull-up the pin idles high and pressing
// the button connects it to ground, so low means pressed.  With a pull-down
// the opposite holds.  Any unrecognised mode defaults to pull-up semantics,
// which is how the dinosaur's buttons are wired.
func buttonPressed(mode ButtonMode, level bool) bool {
	switch mode {
	case ButtonPullDown:
		return level
	default:
		return !level
	}
}

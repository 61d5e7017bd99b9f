package ui

// pageReadyMsg arrives when the current page's document has become
// interactive and the theme controller finished its one-time init.
type pageReadyMsg struct {
	slug string
}

// pageLoadErrMsg arrives when a page failed to load or parse.
type pageLoadErrMsg struct {
	err error
}

// linkCopiedMsg arrives after the page link was written to the clipboard.
type linkCopiedMsg struct {
	ok bool
}

package widget

import (
	"html"
	"sync"
)

const (
	// element ids the widget reads & writes
	IDRunID         = "run-id"
	IDStatus        = "status"
	IDOutput        = "output"
	IDConfiguration = "configuration"
	IDShareURL      = "shareurl"
)

// TextSource yields the text content of something, eg. the element holding a run id.
type TextSource interface {
	Text() string
}

// ValueSource yields the value of an input, eg. the configuration textarea.
type ValueSource interface {
	Value() string
}

// TextSink displays a line of text.
type TextSink interface {
	SetText(string)
}

// ListSink displays an ordered list of strings.
type ListSink interface {
	SetList([]string)
}

// Element is an in-memory page element. It is safe for concurrent use; the
// last write wins.
type Element struct {
	lock sync.RWMutex

	id     string
	text   string
	markup string
	value  string
	raw    bool
	writes int
}

// NewElement returns an empty element.
//
// If rawMarkup is set, list entries are inserted as markup without escaping,
// as older pages expect. Only use that with a fully trusted server.
func NewElement(id string, rawMarkup bool) *Element {
	return &Element{id: id, raw: rawMarkup}
}

func (e *Element) ID() string {
	return e.id
}

func (e *Element) Text() string {
	e.lock.RLock()
	defer e.lock.RUnlock()
	return e.text
}

// HTML returns the element's inner markup.
func (e *Element) HTML() string {
	e.lock.RLock()
	defer e.lock.RUnlock()
	return e.markup
}

func (e *Element) Value() string {
	e.lock.RLock()
	defer e.lock.RUnlock()
	return e.value
}

// Writes returns how many times the displayed content has been replaced.
func (e *Element) Writes() int {
	e.lock.RLock()
	defer e.lock.RUnlock()
	return e.writes
}

// SetValue sets the element's input value, as a user typing would.
func (e *Element) SetValue(in string) {
	e.lock.Lock()
	defer e.lock.Unlock()
	e.value = in
}

// SetText replaces the element's content with plain text.
func (e *Element) SetText(in string) {
	e.lock.Lock()
	defer e.lock.Unlock()
	e.text = in
	e.markup = html.EscapeString(in)
	e.writes++
}

// SetList replaces the element's content with an unordered list of items.
func (e *Element) SetList(items []string) {
	markup := renderList(items, e.raw)
	text := listText(items)

	e.lock.Lock()
	defer e.lock.Unlock()
	e.markup = markup
	e.text = text
	e.writes++
}

// Page holds the elements the widget works with.
type Page struct {
	// Origin is the scheme://host[:port] the page was served from.
	Origin string

	RunID         *Element
	Status        *Element
	Output        *Element
	Configuration *Element
	ShareURL      *Element
}

// NewPage returns a page with empty elements.
func NewPage(origin string, rawMarkup bool) *Page {
	return &Page{
		Origin:        origin,
		RunID:         NewElement(IDRunID, rawMarkup),
		Status:        NewElement(IDStatus, rawMarkup),
		Output:        NewElement(IDOutput, rawMarkup),
		Configuration: NewElement(IDConfiguration, rawMarkup),
		ShareURL:      NewElement(IDShareURL, rawMarkup),
	}
}

// Element returns the element with the given id, or nil.
func (p *Page) Element(id string) *Element {
	for _, e := range []*Element{p.RunID, p.Status, p.Output, p.Configuration, p.ShareURL} {
		if e != nil && e.id == id {
			return e
		}
	}
	return nil
}

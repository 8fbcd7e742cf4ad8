package ui

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/OpticalFlyer/cleangui/geom"
)

// ErrUnknownPage is returned when a page name is not registered.
var ErrUnknownPage = errors.New("ui: unknown page")

var _ TouchListener = (*Controller)(nil)

type page struct {
	root  *Root
	entry TouchListener
}

// Controller manages the pages of an application. Exactly one page is
// active; touch events go to the active page's entry listener only.
type Controller struct {
	pages  []page
	active int
	logger *slog.Logger
}

// NewController creates a controller without pages.
func NewController(logger *slog.Logger) *Controller {
	if logger == nil {
		logger = slog.Default()
	}
	return &Controller{
		pages:  make([]page, 0),
		active: -1,
		logger: logger,
	}
}

// AddPage registers root with the listener that receives its touches.
// entry may be nil for pages without touch input. The first page added
// is shown with its sub-tree and becomes active.
func (c *Controller) AddPage(root *Root, entry TouchListener) {
	c.pages = append(c.pages, page{root: root, entry: entry})
	if c.active < 0 {
		c.active = 0
		root.Show(true)
	}
}

// ShowPage hides every other page with its sub-tree and shows name.
func (c *Controller) ShowPage(name string) error {
	idx := -1
	for i, p := range c.pages {
		if p.root.Name() == name {
			idx = i
			break
		}
	}
	if idx < 0 {
		return fmt.Errorf("%w: %q", ErrUnknownPage, name)
	}
	for i, p := range c.pages {
		if i != idx {
			p.root.Hide(true)
		}
	}
	c.pages[idx].root.Show(true)
	c.active = idx
	c.logger.Debug("page shown", "page", name)
	return nil
}

// ActivePage returns the active root, or nil if there are no pages.
func (c *Controller) ActivePage() *Root {
	if c.active < 0 {
		return nil
	}
	return c.pages[c.active].root
}

// Pages returns the roots in registration order.
func (c *Controller) Pages() []*Root {
	roots := make([]*Root, len(c.pages))
	for i, p := range c.pages {
		roots[i] = p.root
	}
	return roots
}

func (c *Controller) TouchPressed(pos geom.Vec2) {
	if l := c.activeEntry(); l != nil {
		l.TouchPressed(pos)
	}
}

func (c *Controller) TouchReleased(pos geom.Vec2) {
	if l := c.activeEntry(); l != nil {
		l.TouchReleased(pos)
	}
}

// UpdateWindowSize re-seeds every page from its display.
func (c *Controller) UpdateWindowSize() {
	for _, p := range c.pages {
		p.root.Refresh()
	}
}

func (c *Controller) activeEntry() TouchListener {
	if c.active < 0 {
		return nil
	}
	return c.pages[c.active].entry
}

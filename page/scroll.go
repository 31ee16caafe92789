package page

import (
	"encoding/json"
	"fmt"
	"html/template"
)

const (
	DefaultScrollButtonID  = "scrollToTopBtn"
	DefaultScrollThreshold = 200
)

// Viewport is the scroll state of a document. Browsers disagree on whether
// the body or the document element carries the offset, so both are kept.
type Viewport struct {
	BodyScrollTop     int
	DocumentScrollTop int
}

// ScrollToTop is the "back to top" button. It shows once the page has
// scrolled past Threshold pixels and a click scrolls back to the top.
// A nil *ScrollToTop is a page without the button: every method is a no-op.
type ScrollToTop struct {
	ID        string
	Threshold int

	visible bool
}

func NewScrollToTop() *ScrollToTop {
	return &ScrollToTop{ID: DefaultScrollButtonID, Threshold: DefaultScrollThreshold}
}

// OnScroll updates the button visibility for v.
func (s *ScrollToTop) OnScroll(v Viewport) {
	if s == nil {
		return
	}
	s.visible = v.BodyScrollTop > s.Threshold || v.DocumentScrollTop > s.Threshold
}

// OnClick scrolls v back to the top.
func (s *ScrollToTop) OnClick(v *Viewport) {
	if s == nil || v == nil {
		return
	}
	v.BodyScrollTop = 0
	v.DocumentScrollTop = 0
}

// Visible reports whether the button is currently shown.
func (s *ScrollToTop) Visible() bool {
	return s != nil && s.visible
}

// Script is the browser side of the widget. It does nothing on pages where
// the button element is missing.
func (s *ScrollToTop) Script() template.JS {
	if s == nil {
		return ""
	}
	id, _ := json.Marshal(s.ID)
	return template.JS(fmt.Sprintf(scrollScript, id, s.Threshold))
}

const scrollScript = `document.addEventListener('DOMContentLoaded', function() {
  const scrollBtn = document.getElementById(%s);
  if (!scrollBtn) return;
  const scrollThreshold = %d;
  window.addEventListener('scroll', function() {
    if (document.body.scrollTop > scrollThreshold || document.documentElement.scrollTop > scrollThreshold) {
      scrollBtn.style.display = 'block';
    } else {
      scrollBtn.style.display = 'none';
    }
  });
  scrollBtn.addEventListener('click', function() {
    document.body.scrollTop = 0;
    document.documentElement.scrollTop = 0;
  });
});`

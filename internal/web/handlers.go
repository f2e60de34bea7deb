package web

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/imdewan/mrdsa-dev/internal/ui"
)

// index renders the full page with every piece of UI state at its initial
// value.
func (s *Server) index(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", s.page(false))
}

// navFragment handles GET /fragments/nav?open=<bool>&action=<action>. The
// browser sends the menu state it is showing; the response is the header
// after the transition.
func (s *Server) navFragment(c *gin.Context) {
	nav := ui.NavToggle{Open: queryBool(c, "open")}
	action, _ := ui.ParseNavAction(c.Query("action"))
	nav.Apply(action)

	c.Header("Vary", "HX-Request")
	c.HTML(http.StatusOK, "header.html", s.header(nav, false))
}

// faqFragment handles GET /fragments/faq/:id?open=<bool>. It activates the
// item once and returns only that item.
func (s *Server) faqFragment(c *gin.Context) {
	id := c.Param("id")
	item, ok := s.site.FAQByID(id)
	if !ok {
		c.Status(http.StatusNotFound)
		return
	}

	faq := ui.NewDisclosure(s.site.FAQIDs()...)
	faq.Set(id, queryBool(c, "open"))
	open := faq.Activate(id)

	c.Header("Vary", "HX-Request")
	c.HTML(http.StatusOK, "faq_item.html", FAQView{Item: item, Open: open})
}

// siteJSON exposes the loaded content read-only.
func (s *Server) siteJSON(c *gin.Context) {
	c.JSON(http.StatusOK, s.site)
}

// queryBool reads a boolean query value. Anything unparsable is the initial
// state, false.
func queryBool(c *gin.Context, key string) bool {
	v, err := strconv.ParseBool(c.Query(key))
	return err == nil && v
}

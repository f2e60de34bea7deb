package web

import (
	"html/template"

	"github.com/imdewan/mrdsa-dev/internal/content"
	"github.com/imdewan/mrdsa-dev/internal/ui"
)

const (
	marqueeAnimation  = "marquee"
	parallaxAnimation = "hero-parallax"
	parallaxSelector  = ".hero-copy"
	parallaxSteps     = 10
)

// PageData is the view model of the full page.
type PageData struct {
	Site        *content.Site
	Static      bool
	Year        int
	Header      HeaderView
	FAQ         []FAQView
	Marquee     MarqueeView
	ParallaxCSS template.CSS
}

// HeaderView renders the site header and the mobile menu.
type HeaderView struct {
	Brand    string
	Nav      []content.NavItem
	MenuOpen bool
	Static   bool
}

// FAQView renders one disclosure item.
type FAQView struct {
	Item   content.FAQItem
	Open   bool
	Static bool
}

// MarqueeView renders the testimonial loop.
type MarqueeView struct {
	Track []content.Testimonial
	Len   int
	Style template.CSS
}

func (s *Server) page(static bool) PageData {
	var nav ui.NavToggle
	faq := ui.NewDisclosure(s.site.FAQIDs()...)
	marquee := ui.NewMarquee(s.site.Testimonials, s.opts.Marquee)

	return PageData{
		Site:   s.site,
		Static: static,
		Year:   s.opts.Now().Year(),
		Header: s.header(nav, static),
		FAQ:    s.faqViews(faq, static),
		Marquee: MarqueeView{
			Track: marquee.Track(),
			Len:   marquee.Len(),
			Style: template.CSS(marquee.AnimationCSS(marqueeAnimation)),
		},
		ParallaxCSS: template.CSS(s.opts.Parallax.KeyframesCSS(parallaxAnimation, parallaxSelector, parallaxSteps)),
	}
}

func (s *Server) header(nav ui.NavToggle, static bool) HeaderView {
	return HeaderView{
		Brand:    s.site.Profile.Brand,
		Nav:      s.site.Nav,
		MenuOpen: nav.Open,
		Static:   static,
	}
}

func (s *Server) faqViews(d *ui.Disclosure, static bool) []FAQView {
	views := make([]FAQView, 0, len(s.site.FAQ))
	for _, item := range s.site.FAQ {
		views = append(views, FAQView{Item: item, Open: d.IsOpen(item.ID), Static: static})
	}
	return views
}

// Package web serves the portfolio page with gin. The full page and the HTMX
// fragments share one template set; the same templates also produce the
// pre-rendered static page.
package web

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"net/http"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/imdewan/mrdsa-dev/internal/content"
	"github.com/imdewan/mrdsa-dev/internal/ui"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed assets
var assetFS embed.FS

// Assets returns the embedded stylesheet and script tree, rooted so that
// "css/site.css" resolves.
func Assets() fs.FS {
	sub, err := fs.Sub(assetFS, "assets")
	if err != nil {
		panic("web: embedded assets missing: " + err.Error())
	}
	return sub
}

// DefaultMarquee is one testimonial loop when Options leaves it unset.
const DefaultMarquee = 40 * time.Second

// Options tunes rendering and where user media lives.
type Options struct {
	StaticDir string
	Marquee   time.Duration
	Parallax  ui.Parallax
	Now       func() time.Time
	Logger    *zap.Logger
}

// Server renders the page for one loaded Site.
type Server struct {
	site   *content.Site
	opts   Options
	md     *content.Markdown
	tmpl   *template.Template
	assets fs.FS
	etags  map[string]string
}

// New parses the templates and prepares the asset ETags.
func New(site *content.Site, opts Options) (*Server, error) {
	if site == nil {
		return nil, fmt.Errorf("web: nil site")
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Marquee <= 0 {
		opts.Marquee = DefaultMarquee
	}
	if opts.Parallax.InputMax <= 0 {
		opts.Parallax = ui.DefaultParallax()
	}
	s := &Server{
		site:   site,
		opts:   opts,
		md:     content.NewMarkdown(),
		assets: Assets(),
	}
	tmpl, err := template.New("").Funcs(s.funcs()).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("web: parse templates: %w", err)
	}
	s.tmpl = tmpl
	if s.etags, err = computeETags(s.assets); err != nil {
		return nil, fmt.Errorf("web: hash assets: %w", err)
	}
	return s, nil
}

// Handler builds the gin engine with every route.
func (s *Server) Handler() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), requestID(), htmx(), requestLogger(s.opts.Logger))
	r.SetHTMLTemplate(s.tmpl)

	r.GET("/", s.index)

	fragments := r.Group("/fragments")
	fragments.GET("/nav", s.navFragment)
	fragments.GET("/faq/:id", s.faqFragment)

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/site.json", s.siteJSON)

	r.GET("/assets/*filepath", s.asset)
	if s.opts.StaticDir != "" {
		r.Static("/images", filepath.Join(s.opts.StaticDir, "images"))
		r.StaticFile("/resume.pdf", filepath.Join(s.opts.StaticDir, "resume.pdf"))
	}
	return r
}

// RenderPage writes the full page. Static pages carry no HTMX wiring: the
// menu and the FAQ fall back to native <details> elements.
func (s *Server) RenderPage(w io.Writer, static bool) error {
	if err := s.tmpl.ExecuteTemplate(w, "index.html", s.page(static)); err != nil {
		return fmt.Errorf("web: render page: %w", err)
	}
	return nil
}

// Package sqlstore keeps a portfolio Site in a SQLite snapshot file. The
// server opens snapshots read-only; only the export command writes them.
package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	_ "modernc.org/sqlite"

	"github.com/imdewan/mrdsa-dev/internal/content"
)

const driverName = "sqlite"

// IsSnapshot reports whether path names a SQLite snapshot rather than a YAML
// document.
func IsSnapshot(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".db", ".sqlite", ".sqlite3":
		return true
	}
	return false
}

// Store is a content.Source reading from a snapshot file.
type Store struct {
	Path string
}

// Load opens the snapshot read-only, reads the whole site and validates it.
func (s Store) Load(ctx context.Context) (*content.Site, error) {
	if _, err := os.Stat(s.Path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", content.ErrNotFound, s.Path)
		}
		return nil, fmt.Errorf("sqlstore: stat %s: %w", s.Path, err)
	}
	db, err := sql.Open(driverName, readOnlyDSN(s.Path))
	if err != nil {
		return nil, fmt.Errorf("sqlstore: open %s: %w", s.Path, err)
	}
	defer db.Close()

	site, err := readSite(ctx, db)
	if err != nil {
		return nil, fmt.Errorf("sqlstore: read %s: %w", s.Path, err)
	}
	if err := content.Validate(site); err != nil {
		return nil, fmt.Errorf("%s: %w", s.Path, err)
	}
	return site, nil
}

func readOnlyDSN(path string) string {
	u := url.URL{Scheme: "file", Opaque: filepath.ToSlash(path)}
	q := url.Values{}
	q.Set("mode", "ro")
	u.RawQuery = q.Encode()
	return u.String()
}

func readSite(ctx context.Context, db *sql.DB) (*content.Site, error) {
	site := &content.Site{}

	meta, err := readMeta(ctx, db)
	if err != nil {
		return nil, err
	}
	site.Profile = content.Profile{
		Brand:       meta[keyBrand],
		Name:        meta[keyName],
		Role:        meta[keyRole],
		Tagline:     meta[keyTagline],
		Email:       meta[keyEmail],
		PortraitRef: meta[keyPortrait],
		ResumeRef:   meta[keyResume],
		Since:       meta[keySince],
	}
	site.Contact = content.Contact{
		Heading: meta[keyContactHeading],
		Blurb:   meta[keyContactBlurb],
	}

	err = each(ctx, db, `SELECT body FROM about ORDER BY position`, func(rows *sql.Rows) error {
		var body string
		if err := rows.Scan(&body); err != nil {
			return err
		}
		site.Profile.About = append(site.Profile.About, body)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("about: %w", err)
	}

	err = each(ctx, db, `SELECT id, label FROM nav ORDER BY position`, func(rows *sql.Rows) error {
		var n content.NavItem
		if err := rows.Scan(&n.ID, &n.Label); err != nil {
			return err
		}
		site.Nav = append(site.Nav, n)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("nav: %w", err)
	}

	err = each(ctx, db, `SELECT label, url, icon, footer FROM socials ORDER BY position`, func(rows *sql.Rows) error {
		var l content.SocialLink
		if err := rows.Scan(&l.Label, &l.URL, &l.Icon, &l.Footer); err != nil {
			return err
		}
		site.Socials = append(site.Socials, l)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("socials: %w", err)
	}

	err = each(ctx, db, `SELECT company, role, description, link FROM experience ORDER BY position`, func(rows *sql.Rows) error {
		var e content.ExperienceEntry
		if err := rows.Scan(&e.Company, &e.Role, &e.Description, &e.Link); err != nil {
			return err
		}
		site.Experience = append(site.Experience, e)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("experience: %w", err)
	}

	err = each(ctx, db, `SELECT title, description, image, link FROM projects ORDER BY position`, func(rows *sql.Rows) error {
		var p content.Project
		if err := rows.Scan(&p.Title, &p.Description, &p.ImageRef, &p.Link); err != nil {
			return err
		}
		site.Projects = append(site.Projects, p)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("projects: %w", err)
	}

	err = each(ctx, db, `SELECT quote, author, affiliation, image FROM testimonials ORDER BY position`, func(rows *sql.Rows) error {
		var tm content.Testimonial
		if err := rows.Scan(&tm.Quote, &tm.AuthorName, &tm.AuthorAffiliation, &tm.ImageRef); err != nil {
			return err
		}
		site.Testimonials = append(site.Testimonials, tm)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("testimonials: %w", err)
	}

	err = each(ctx, db, `SELECT name, icon, invert FROM technologies ORDER BY position`, func(rows *sql.Rows) error {
		var tech content.Technology
		if err := rows.Scan(&tech.Name, &tech.IconURL, &tech.Invert); err != nil {
			return err
		}
		site.Technologies = append(site.Technologies, tech)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("technologies: %w", err)
	}

	err = each(ctx, db, `SELECT id, question, answer FROM faq ORDER BY position`, func(rows *sql.Rows) error {
		var f content.FAQItem
		if err := rows.Scan(&f.ID, &f.Question, &f.Answer); err != nil {
			return err
		}
		site.FAQ = append(site.FAQ, f)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("faq: %w", err)
	}

	return site, nil
}

func readMeta(ctx context.Context, db *sql.DB) (map[string]string, error) {
	meta := map[string]string{}
	err := each(ctx, db, `SELECT key, value FROM meta`, func(rows *sql.Rows) error {
		var k, v string
		if err := rows.Scan(&k, &v); err != nil {
			return err
		}
		meta[k] = v
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("meta: %w", err)
	}
	return meta, nil
}

func each(ctx context.Context, db *sql.DB, query string, fn func(*sql.Rows) error) error {
	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return err
	}
	defer rows.Close()
	for rows.Next() {
		if err := fn(rows); err != nil {
			return err
		}
	}
	return rows.Err()
}

package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/imdewan/mrdsa-dev/internal/content"
)

// ErrExists is returned when the export target is already present.
var ErrExists = errors.New("sqlstore: snapshot already exists")

// Export writes site into a new snapshot at path. The site is validated first
// and an existing file is never overwritten.
func Export(ctx context.Context, path string, site *content.Site) error {
	if err := content.Validate(site); err != nil {
		return err
	}
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%w: %s", ErrExists, path)
	} else if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("sqlstore: stat %s: %w", path, err)
	}

	db, err := sql.Open(driverName, path)
	if err != nil {
		return fmt.Errorf("sqlstore: create %s: %w", path, err)
	}
	defer db.Close()

	if err := write(ctx, db, site); err != nil {
		db.Close()
		_ = os.Remove(path)
		return fmt.Errorf("sqlstore: export %s: %w", path, err)
	}
	return nil
}

func write(ctx context.Context, db *sql.DB, site *content.Site) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("schema: %w", err)
	}

	meta := map[string]string{
		keyBrand:          site.Profile.Brand,
		keyName:           site.Profile.Name,
		keyRole:           site.Profile.Role,
		keyTagline:        site.Profile.Tagline,
		keyEmail:          site.Profile.Email,
		keyPortrait:       site.Profile.PortraitRef,
		keyResume:         site.Profile.ResumeRef,
		keySince:          site.Profile.Since,
		keyContactHeading: site.Contact.Heading,
		keyContactBlurb:   site.Contact.Blurb,
	}
	for k, v := range meta {
		if _, err := tx.ExecContext(ctx, `INSERT INTO meta (key, value) VALUES (?, ?)`, k, v); err != nil {
			return fmt.Errorf("meta %s: %w", k, err)
		}
	}
	for i, body := range site.Profile.About {
		if _, err := tx.ExecContext(ctx, `INSERT INTO about (position, body) VALUES (?, ?)`, i, body); err != nil {
			return fmt.Errorf("about: %w", err)
		}
	}
	for i, n := range site.Nav {
		if _, err := tx.ExecContext(ctx, `INSERT INTO nav (position, id, label) VALUES (?, ?, ?)`, i, n.ID, n.Label); err != nil {
			return fmt.Errorf("nav %s: %w", n.ID, err)
		}
	}
	for i, l := range site.Socials {
		if _, err := tx.ExecContext(ctx, `INSERT INTO socials (position, label, url, icon, footer) VALUES (?, ?, ?, ?, ?)`,
			i, l.Label, l.URL, l.Icon, l.Footer); err != nil {
			return fmt.Errorf("social %s: %w", l.Label, err)
		}
	}
	for i, e := range site.Experience {
		if _, err := tx.ExecContext(ctx, `INSERT INTO experience (position, company, role, description, link) VALUES (?, ?, ?, ?, ?)`,
			i, e.Company, e.Role, e.Description, e.Link); err != nil {
			return fmt.Errorf("experience %s: %w", e.Company, err)
		}
	}
	for i, p := range site.Projects {
		if _, err := tx.ExecContext(ctx, `INSERT INTO projects (position, title, description, image, link) VALUES (?, ?, ?, ?, ?)`,
			i, p.Title, p.Description, p.ImageRef, p.Link); err != nil {
			return fmt.Errorf("project %s: %w", p.Title, err)
		}
	}
	for i, tm := range site.Testimonials {
		if _, err := tx.ExecContext(ctx, `INSERT INTO testimonials (position, quote, author, affiliation, image) VALUES (?, ?, ?, ?, ?)`,
			i, tm.Quote, tm.AuthorName, tm.AuthorAffiliation, tm.ImageRef); err != nil {
			return fmt.Errorf("testimonial %s: %w", tm.AuthorName, err)
		}
	}
	for i, tech := range site.Technologies {
		if _, err := tx.ExecContext(ctx, `INSERT INTO technologies (position, name, icon, invert) VALUES (?, ?, ?, ?)`,
			i, tech.Name, tech.IconURL, tech.Invert); err != nil {
			return fmt.Errorf("technology %s: %w", tech.Name, err)
		}
	}
	for i, f := range site.FAQ {
		if _, err := tx.ExecContext(ctx, `INSERT INTO faq (position, id, question, answer) VALUES (?, ?, ?, ?)`,
			i, f.ID, f.Question, f.Answer); err != nil {
			return fmt.Errorf("faq %s: %w", f.ID, err)
		}
	}
	return tx.Commit()
}

package sqlstore

const schema = `
CREATE TABLE meta (
	key   TEXT PRIMARY KEY,
	value TEXT NOT NULL
);
CREATE TABLE about (
	position INTEGER PRIMARY KEY,
	body     TEXT NOT NULL
);
CREATE TABLE nav (
	position INTEGER PRIMARY KEY,
	id       TEXT NOT NULL UNIQUE,
	label    TEXT NOT NULL
);
CREATE TABLE socials (
	position INTEGER PRIMARY KEY,
	label    TEXT NOT NULL UNIQUE,
	url      TEXT NOT NULL,
	icon     TEXT NOT NULL DEFAULT '',
	footer   INTEGER NOT NULL DEFAULT 0
);
CREATE TABLE experience (
	position    INTEGER PRIMARY KEY,
	company     TEXT NOT NULL UNIQUE,
	role        TEXT NOT NULL,
	description TEXT NOT NULL DEFAULT '',
	link        TEXT NOT NULL DEFAULT ''
);
CREATE TABLE projects (
	position    INTEGER PRIMARY KEY,
	title       TEXT NOT NULL UNIQUE,
	description TEXT NOT NULL DEFAULT '',
	image       TEXT NOT NULL DEFAULT '',
	link        TEXT NOT NULL
);
CREATE TABLE testimonials (
	position    INTEGER PRIMARY KEY,
	quote       TEXT NOT NULL,
	author      TEXT NOT NULL UNIQUE,
	affiliation TEXT NOT NULL DEFAULT '',
	image       TEXT NOT NULL DEFAULT ''
);
CREATE TABLE technologies (
	position INTEGER PRIMARY KEY,
	name     TEXT NOT NULL UNIQUE,
	icon     TEXT NOT NULL,
	invert   INTEGER NOT NULL DEFAULT 0
);
CREATE TABLE faq (
	position INTEGER PRIMARY KEY,
	id       TEXT NOT NULL UNIQUE,
	question TEXT NOT NULL,
	answer   TEXT NOT NULL
);
`

// meta keys for the scalar fields of a site.
const (
	keyBrand          = "profile.brand"
	keyName           = "profile.name"
	keyRole           = "profile.role"
	keyTagline        = "profile.tagline"
	keyEmail          = "profile.email"
	keyPortrait       = "profile.portrait"
	keyResume         = "profile.resume"
	keySince          = "profile.since"
	keyContactHeading = "contact.heading"
	keyContactBlurb   = "contact.blurb"
)

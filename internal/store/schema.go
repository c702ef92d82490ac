package store

const Schema = `
CREATE TABLE IF NOT EXISTS artists (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	name TEXT NOT NULL,
	bio TEXT,
	genre TEXT,
	image_url TEXT,
	social_links TEXT,  -- JSON object
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS releases (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	bundle_id TEXT UNIQUE,
	title TEXT NOT NULL,
	artist TEXT NOT NULL,
	artist_id INTEGER,
	label_id TEXT,
	label TEXT DEFAULT 'Tinnie House Records',
	ean TEXT,
	bundle_type TEXT DEFAULT 'Maxi Single',
	music_style TEXT DEFAULT 'Melodic House & Techno',
	digital_release_date TEXT,
	published TEXT DEFAULT 'Y',
	cover_file_name TEXT,
	cover_image_url TEXT,
	img_url TEXT,
	internal_reference TEXT,
	cover_file_hash TEXT,
	track_count INTEGER DEFAULT 1,
	beatport_sale_url TEXT,
	purchase_link TEXT,
	share_link TEXT,
	audio_file_url TEXT,
	featured BOOLEAN DEFAULT 0,
	upcoming BOOLEAN DEFAULT 0,
	description TEXT,
	release_date DATETIME,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
	update_date DATETIME,

	FOREIGN KEY (artist_id) REFERENCES artists(id)
);

CREATE INDEX IF NOT EXISTS idx_releases_artist_id ON releases(artist_id);
CREATE INDEX IF NOT EXISTS idx_releases_featured ON releases(featured);

CREATE TABLE IF NOT EXISTS contact_submissions (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	name TEXT NOT NULL,
	email TEXT NOT NULL,
	subject TEXT NOT NULL,
	message TEXT NOT NULL,
	type TEXT DEFAULT 'general',
	status TEXT DEFAULT 'pending',
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS settings (
	key TEXT PRIMARY KEY,
	value TEXT NOT NULL,
	updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
);
`

// Package constants contains application-wide constants to avoid magic numbers and strings.
package constants

import "time"

// Application defaults
const (
	DefaultPort              = "5000"
	DefaultEnv               = "development"
	DefaultDBPath            = "tinnie.db"
	DefaultDataSource        = DataSourceSQLite
	DefaultAudioDir          = "attached_assets"
	DefaultSpotlightBundleID = "10341902"
	DefaultAPIVersion        = "1.0.0"
	DefaultReadTimeout       = 10 * time.Second
	DefaultWriteTimeout      = 15 * time.Second
	DefaultShutdownTimeout   = 10 * time.Second
	DefaultHTTPTimeout       = 15 * time.Second
	DefaultRetryCount        = 3
	DefaultRetryBase         = 1 * time.Second
	DefaultRequestInterval   = 50 * time.Millisecond
	DefaultExportConcurrency = 2
)

// Environments
const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

// Data sources
const (
	DataSourceSQLite   = "sqlite"
	DataSourceSupabase = "supabase"
	DataSourceStatic   = "static"
)

// Display fallbacks for records with missing names or titles
const (
	UntitledSlug    = "untitled"
	UnknownArtist   = "Unknown Artist"
	UntitledRelease = "Untitled Release"
)

// Release column defaults
const (
	DefaultLabel       = "Tinnie House Records"
	DefaultBundleType  = "Maxi Single"
	DefaultMusicStyle  = "Melodic House & Techno"
	DefaultTrackCount  = 1
	DefaultContactType = "general"
	ContactStatusNew   = "pending"
)

// Database
const (
	ArtistsTable  = "artists"
	ReleasesTable = "releases"
	ContactTable  = "contact_submissions"
)

// Settings keys
const (
	SettingSpotlightBundleID = "spotlight_bundle_id"
)

// Snapshot file names
const (
	ArtistsSnapshot  = "artists.json"
	ReleasesSnapshot = "releases.json"
)

// File Extensions
const (
	ExtMP3  = ".mp3"
	ExtWAV  = ".wav"
	ExtFLAC = ".flac"
	ExtM4A  = ".m4a"
	ExtOGG  = ".ogg"
	ExtAAC  = ".aac"
)

// AudioExtensions lists the file extensions treated as playable audio.
var AudioExtensions = []string{ExtMP3, ExtWAV, ExtFLAC, ExtM4A, ExtOGG, ExtAAC}

// MIME Types
const (
	MimeTypeJSON = "application/json"
)

// File Permissions
const (
	DirPermissions  = 0755
	FilePermissions = 0644
)

// CORS
const (
	CORSAllowOrigin  = "*"
	CORSAllowMethods = "GET, POST, PUT, DELETE, OPTIONS"
	CORSAllowHeaders = "Content-Type, Authorization"
	CORSMaxAge       = "86400"
)

// API
const (
	APIMessage = "Tinnie House Records API"
)

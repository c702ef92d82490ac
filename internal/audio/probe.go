// Package audio inspects the preview files served under /assets.
package audio

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/bogem/id3v2/v2"
	"github.com/go-flac/flacpicture"
	"github.com/go-flac/flacvorbis"
	"github.com/go-flac/go-flac"

	"github.com/LXMachado/tinnie-house-revamp/internal/constants"
)

var ErrUnsupportedFormat = errors.New("unsupported audio format")

// Info is what the tags of a preview file say about it.
type Info struct {
	Format     string        `json:"format"`
	Title      string        `json:"title,omitempty"`
	Artist     string        `json:"artist,omitempty"`
	Duration   time.Duration `json:"duration,omitempty"`
	HasArtwork bool          `json:"hasArtwork"`
}

// Probe reads tag metadata from an MP3 or FLAC file. Other formats that the
// site can still play return ErrUnsupportedFormat.
func Probe(path string) (*Info, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case constants.ExtMP3:
		return probeMP3(path)
	case constants.ExtFLAC:
		return probeFLAC(path)
	default:
		return nil, ErrUnsupportedFormat
	}
}

func probeMP3(path string) (*Info, error) {
	tag, err := id3v2.Open(path, id3v2.Options{Parse: true})
	if err != nil {
		return nil, fmt.Errorf("failed to read id3 tag: %w", err)
	}
	defer tag.Close()

	info := &Info{
		Format: "mp3",
		Title:  strings.TrimSpace(tag.Title()),
		Artist: strings.TrimSpace(tag.Artist()),
	}

	// TLEN holds the length in milliseconds.
	if tlen := tag.GetTextFrame("TLEN").Text; tlen != "" {
		if ms, err := strconv.ParseInt(strings.TrimSpace(tlen), 10, 64); err == nil && ms > 0 {
			info.Duration = time.Duration(ms) * time.Millisecond
		}
	}

	info.HasArtwork = len(tag.GetFrames(tag.CommonID("Attached picture"))) > 0
	return info, nil
}

func probeFLAC(path string) (*Info, error) {
	f, err := flac.ParseFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to parse flac: %w", err)
	}

	info := &Info{Format: "flac"}

	if si, err := f.GetStreamInfo(); err == nil && si.SampleRate > 0 {
		info.Duration = time.Duration(float64(si.SampleCount) / float64(si.SampleRate) * float64(time.Second))
	}

	for _, block := range f.Meta {
		switch block.Type {
		case flac.VorbisComment:
			cmt, err := flacvorbis.ParseFromMetaDataBlock(*block)
			if err != nil {
				continue
			}
			info.Title = firstComment(cmt, flacvorbis.FIELD_TITLE)
			info.Artist = firstComment(cmt, flacvorbis.FIELD_ARTIST)
		case flac.Picture:
			if _, err := flacpicture.ParseFromMetaDataBlock(*block); err == nil {
				info.HasArtwork = true
			}
		}
	}
	return info, nil
}

func firstComment(cmt *flacvorbis.MetaDataBlockVorbisComment, field string) string {
	values, err := cmt.Get(field)
	if err != nil || len(values) == 0 {
		return ""
	}
	return strings.TrimSpace(values[0])
}

// exists reports whether path is a regular file.
func exists(path string) bool {
	st, err := os.Stat(path)
	return err == nil && st.Mode().IsRegular()
}

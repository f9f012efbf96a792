// Package library holds the audiobook library the browser displays.
//
// A Library is loaded once, before the UI starts, and is shared read-only
// by every component for the lifetime of the run. Nothing mutates it after
// Load returns.
package library

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// ErrNoFile is returned when Load is called without a path.
var ErrNoFile = errors.New("no library file given")

// Library is the collection of audiobooks read from a library export.
type Library struct {
	Audiobooks []Audiobook `json:"Audiobooks"`

	// File is the path the library was read from; empty for built-in data.
	File string `json:"-"`
}

// Audiobook is one library entry.
type Audiobook struct {
	ID          int64   `json:"Id"`
	Source      Source  `json:"Source"`
	Artist      string  `json:"Artist"`
	Album       string  `json:"Album"`
	Title       *string `json:"Title"`
	Genre       *string `json:"Genre"`
	Duration    string  `json:"Duration"`
	HasPicture  bool    `json:"HasPicture"`
	State       string  `json:"State"`
	Rating      *Rating `json:"Rating"`
	AlbumArtist *string `json:"AlbumArtist"`
	Comment     *string `json:"Comment"`
}

// Source is where the audio of a book lives: a single file or a list of
// files.
type Source struct {
	SingleFile *string  `json:"SingleFile"`
	MultiFile  []string `json:"MultiFile"`
}

// Rating is a 0-5 star rating.
type Rating struct {
	Rating int64 `json:"Rating"`
}

// Symbol renders the rating as a single cell: blank for unrated, the digit
// for 1-5 and a skull for anything out of range.
func (r Rating) Symbol() string {
	switch {
	case r.Rating == 0:
		return " "
	case r.Rating >= 1 && r.Rating <= 5:
		return fmt.Sprintf("%d", r.Rating)
	default:
		return "☠"
	}
}

// DisplayTitle returns the title or a placeholder when it is missing.
func (b Audiobook) DisplayTitle() string {
	if b.Title == nil || *b.Title == "" {
		return "<unknown>"
	}
	return *b.Title
}

// DisplayGenre returns the genre or a placeholder when it is missing.
func (b Audiobook) DisplayGenre() string {
	if b.Genre == nil || *b.Genre == "" {
		return "<unk>"
	}
	return *b.Genre
}

// RatingSymbol renders the rating, treating a missing one as unrated.
func (b Audiobook) RatingSymbol() string {
	if b.Rating == nil {
		return Rating{}.Symbol()
	}
	return b.Rating.Symbol()
}

// Files lists the audio files of the book.
func (s Source) Files() []string {
	if s.SingleFile != nil && *s.SingleFile != "" {
		return []string{*s.SingleFile}
	}
	return s.MultiFile
}

// Len is the number of audiobooks.
func (l *Library) Len() int {
	if l == nil {
		return 0
	}
	return len(l.Audiobooks)
}

// Load reads and parses a library export from path.
func Load(path string) (*Library, error) {
	if path == "" {
		return nil, ErrNoFile
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading library %s: %w", path, err)
	}
	lib, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing library %s: %w", path, err)
	}
	lib.File = path
	return lib, nil
}

// Parse decodes a library export.
func Parse(data []byte) (*Library, error) {
	var lib Library
	if err := json.Unmarshal(data, &lib); err != nil {
		return nil, err
	}
	return &lib, nil
}

// Empty returns a library without books, used when no file is given.
func Empty() *Library {
	return &Library{Audiobooks: []Audiobook{}}
}

// Demo returns a small built-in library for trying the browser without an
// export file.
func Demo() *Library {
	str := func(s string) *string { return &s }
	return &Library{
		Audiobooks: []Audiobook{
			{
				ID:       1,
				Artist:   "Artisticus",
				Album:    "Albumicus",
				Title:    str("Titellicus"),
				Genre:    str("post progressive poem"),
				Duration: "01:00:00",
				State:    "Finished",
				Rating:   &Rating{Rating: 2},
			},
			{
				ID:       2,
				Artist:   "Artisticus",
				Album:    "Albumicus 2",
				Title:    str("Titellicus 2"),
				Genre:    str("progressive punk poem"),
				Duration: "01:00:00",
				State:    "Finished",
				Rating:   &Rating{Rating: 4},
			},
		},
	}
}

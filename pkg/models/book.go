package models

import "encoding/json"

// Book is a single catalog entry as loaded from the books dataset.
//
// Genre holds the raw genre strings exactly as they appear in the dataset;
// a single entry may encode several genres joined by a comma ("科幻,冒险").
// Tokenization happens at query time, never at load time.
type Book struct {
	ID          int       `json:"id"`
	Title       string    `json:"title"`
	Author      string    `json:"author"`
	Series      string    `json:"series,omitempty"`
	Genre       GenreList `json:"genre"`
	CoverURL    string    `json:"coverUrl,omitempty"`
	Description string    `json:"description,omitempty"`
	Publisher   string    `json:"publisher,omitempty"`
	ISBN        string    `json:"isbn,omitempty"`
	Year        int       `json:"year,omitempty"`
}

// GenreList is a list of raw genre strings that tolerates malformed data.
// Some catalog entries carry a bare string or a number where an array is
// expected; those decode to nil instead of failing the whole dataset load.
type GenreList []string

func (g *GenreList) UnmarshalJSON(data []byte) error {
	var raw []string
	if err := json.Unmarshal(data, &raw); err != nil {
		*g = nil
		return nil
	}
	*g = raw
	return nil
}

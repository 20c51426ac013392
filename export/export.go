// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


// Package export renders reasoning sessions to interchange formats.
//
// Formatters operate on plain transfer structs rather than core models so
// the persisted binary encoding and the export surface can evolve
// independently.
package export

import (
	"encoding/json"
	"errors"
	"io"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/poiesic/reasonit/core"
)

// ErrUnknownFormat is returned for an unrecognized format name.
var ErrUnknownFormat = errors.New("unknown export format")

// Formatter renders sessions to a writer.
type Formatter interface {
	Format(w io.Writer, sessions []*core.Session) error
}

// NewFormatter returns the formatter for a format name: "json", "yaml", or
// "markdown".
func NewFormatter(format string) (Formatter, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "json":
		return jsonFormatter{}, nil
	case "yaml", "yml":
		return yamlFormatter{}, nil
	case "markdown", "md":
		return markdownFormatter{}, nil
	default:
		return nil, ErrUnknownFormat
	}
}

// sessionDTO is the interchange shape shared by the JSON and YAML formatters.
type sessionDTO struct {
	Id        string       `json:"id" yaml:"id"`
	Title     string       `json:"title" yaml:"title"`
	Mode      string       `json:"mode" yaml:"mode"`
	Author    string       `json:"author,omitempty" yaml:"author,omitempty"`
	Domain    string       `json:"domain,omitempty" yaml:"domain,omitempty"`
	Thoughts  []thoughtDTO `json:"thoughts" yaml:"thoughts"`
	Tags      []string     `json:"tags,omitempty" yaml:"tags,omitempty"`
	Taxonomy  *taxonomyDTO `json:"taxonomy,omitempty" yaml:"taxonomy,omitempty"`
	CreatedAt time.Time    `json:"createdAt" yaml:"createdAt"`
	UpdatedAt time.Time    `json:"updatedAt" yaml:"updatedAt"`
}

type thoughtDTO struct {
	Number  int    `json:"number" yaml:"number"`
	Content string `json:"content" yaml:"content"`
}

type taxonomyDTO struct {
	Categories []string `json:"categories" yaml:"categories"`
	Types      []string `json:"types" yaml:"types"`
}

func toDTO(session *core.Session) sessionDTO {
	dto := sessionDTO{
		Id:        string(session.Id),
		Title:     session.Title,
		Mode:      session.Mode.String(),
		Author:    session.Author,
		Domain:    session.Domain,
		Tags:      session.Tags,
		CreatedAt: session.CreatedAt,
		UpdatedAt: session.UpdatedAt,
	}
	dto.Thoughts = make([]thoughtDTO, len(session.Thoughts))
	for i, thought := range session.Thoughts {
		dto.Thoughts[i] = thoughtDTO{Number: thought.Number, Content: thought.Content}
	}
	if session.Taxonomy != nil {
		dto.Taxonomy = &taxonomyDTO{
			Categories: session.Taxonomy.Categories,
			Types:      session.Taxonomy.Types,
		}
	}
	return dto
}

func toDTOs(sessions []*core.Session) []sessionDTO {
	dtos := make([]sessionDTO, len(sessions))
	for i, session := range sessions {
		dtos[i] = toDTO(session)
	}
	return dtos
}

type jsonFormatter struct{}

func (jsonFormatter) Format(w io.Writer, sessions []*core.Session) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(toDTOs(sessions))
}

type yamlFormatter struct{}

func (yamlFormatter) Format(w io.Writer, sessions []*core.Session) error {
	enc := yaml.NewEncoder(w)
	defer enc.Close()
	return enc.Encode(toDTOs(sessions))
}

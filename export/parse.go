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

package export

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/poiesic/reasonit/core"
)

// ParseSessions reads sessions from r in the named format ("json" or
// "yaml"). It accepts the same interchange shape the formatters produce.
func ParseSessions(r io.Reader, format string) ([]*core.Session, error) {
	var dtos []sessionDTO
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "json":
		if err := json.NewDecoder(r).Decode(&dtos); err != nil {
			return nil, fmt.Errorf("decoding sessions: %w", err)
		}
	case "yaml", "yml":
		if err := yaml.NewDecoder(r).Decode(&dtos); err != nil {
			return nil, fmt.Errorf("decoding sessions: %w", err)
		}
	default:
		return nil, ErrUnknownFormat
	}

	sessions := make([]*core.Session, len(dtos))
	for i, dto := range dtos {
		session, err := fromDTO(dto)
		if err != nil {
			return nil, fmt.Errorf("session %d: %w", i, err)
		}
		sessions[i] = session
	}
	return sessions, nil
}

func fromDTO(dto sessionDTO) (*core.Session, error) {
	mode, err := core.ParseMode(dto.Mode)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", err, dto.Mode)
	}
	session := &core.Session{
		Id:        core.ID(dto.Id),
		Title:     dto.Title,
		Mode:      mode,
		Author:    dto.Author,
		Domain:    dto.Domain,
		Tags:      dto.Tags,
		CreatedAt: dto.CreatedAt,
		UpdatedAt: dto.UpdatedAt,
	}
	session.Thoughts = make([]core.Thought, len(dto.Thoughts))
	for i, thought := range dto.Thoughts {
		number := thought.Number
		if number == 0 {
			number = i + 1
		}
		session.Thoughts[i] = core.Thought{Number: number, Content: thought.Content}
	}
	if dto.Taxonomy != nil {
		session.Taxonomy = &core.Taxonomy{
			Categories: dto.Taxonomy.Categories,
			Types:      dto.Taxonomy.Types,
		}
	}
	return session, nil
}

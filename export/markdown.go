package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/poiesic/reasonit/core"
)

type markdownFormatter struct{}

func (markdownFormatter) Format(w io.Writer, sessions []*core.Session) error {
	for i, session := range sessions {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		if err := writeSessionMarkdown(w, session); err != nil {
			return err
		}
	}
	return nil
}

func writeSessionMarkdown(w io.Writer, session *core.Session) error {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", session.Title)
	fmt.Fprintf(&b, "- **Id**: %s\n", session.Id)
	fmt.Fprintf(&b, "- **Mode**: %s\n", session.Mode)
	if session.Author != "" {
		fmt.Fprintf(&b, "- **Author**: %s\n", session.Author)
	}
	if session.Domain != "" {
		fmt.Fprintf(&b, "- **Domain**: %s\n", session.Domain)
	}
	if len(session.Tags) > 0 {
		fmt.Fprintf(&b, "- **Tags**: %s\n", strings.Join(session.Tags, ", "))
	}
	if session.Taxonomy != nil {
		if len(session.Taxonomy.Categories) > 0 {
			fmt.Fprintf(&b, "- **Categories**: %s\n", strings.Join(session.Taxonomy.Categories, ", "))
		}
		if len(session.Taxonomy.Types) > 0 {
			fmt.Fprintf(&b, "- **Types**: %s\n", strings.Join(session.Taxonomy.Types, ", "))
		}
	}
	fmt.Fprintf(&b, "- **Created**: %s\n", session.CreatedAt.Format("2006-01-02 15:04:05 MST"))

	if len(session.Thoughts) > 0 {
		b.WriteString("\n## Thoughts\n\n")
		for _, thought := range session.Thoughts {
			fmt.Fprintf(&b, "%d. %s\n", thought.Number, thought.Content)
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}

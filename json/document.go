package json

import (
	"encoding/json"
	"fmt"

	"github.com/fwojciec/brochure"
)

// paragraphDTO is the JSON representation of a Paragraph.
type paragraphDTO struct {
	Runs []runDTO `json:"runs"`
}

// runDTO is the JSON representation of a Run with a type discriminator.
type runDTO struct {
	Type    string  `json:"type"`
	Content *string `json:"content,omitempty"`
	Text    *string `json:"text,omitempty"`
	URL     *string `json:"url,omitempty"`
}

// MarshalDocument serializes a rendered document as an array of paragraphs,
// each holding its runs.
func MarshalDocument(doc brochure.Document) ([]byte, error) {
	dtos := make([]paragraphDTO, len(doc))
	for i, p := range doc {
		runs := make([]runDTO, len(p.Runs))
		for j, r := range p.Runs {
			dto, err := marshalRun(r)
			if err != nil {
				return nil, fmt.Errorf("paragraph %d: run %d: %w", i, j, err)
			}
			runs[j] = dto
		}
		dtos[i] = paragraphDTO{Runs: runs}
	}
	return json.MarshalIndent(dtos, "", "  ")
}

// UnmarshalDocument deserializes a document written by MarshalDocument.
func UnmarshalDocument(data []byte) (brochure.Document, error) {
	var dtos []paragraphDTO
	if err := json.Unmarshal(data, &dtos); err != nil {
		return nil, fmt.Errorf("unmarshal document: %w", err)
	}
	doc := make(brochure.Document, len(dtos))
	for i, dto := range dtos {
		runs := make([]brochure.Run, len(dto.Runs))
		for j, rd := range dto.Runs {
			r, err := unmarshalRun(rd)
			if err != nil {
				return nil, fmt.Errorf("paragraph %d: run %d: %w", i, j, err)
			}
			runs[j] = r
		}
		doc[i] = brochure.Paragraph{Runs: runs}
	}
	return doc, nil
}

func marshalRun(r brochure.Run) (runDTO, error) {
	switch v := r.(type) {
	case brochure.PlainText:
		return runDTO{Type: "text", Content: &v.Content}, nil
	case brochure.Bold:
		return runDTO{Type: "bold", Content: &v.Content}, nil
	case brochure.Link:
		return runDTO{Type: "link", Text: &v.Text, URL: &v.URL}, nil
	default:
		return runDTO{}, fmt.Errorf("unknown run type: %T", r)
	}
}

func unmarshalRun(dto runDTO) (brochure.Run, error) {
	switch dto.Type {
	case "text":
		return brochure.PlainText{Content: deref(dto.Content)}, nil
	case "bold":
		return brochure.Bold{Content: deref(dto.Content)}, nil
	case "link":
		return brochure.Link{Text: deref(dto.Text), URL: deref(dto.URL)}, nil
	default:
		return nil, fmt.Errorf("unknown run type: %q", dto.Type)
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

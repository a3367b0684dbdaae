// Package export renders a NotesRecord as a plain-text or docx document.
package export

import (
	"fmt"
	"os"

	"github.com/gomutex/godocx"

	"github.com/noteflowhq/noteflow/internal/model"
)

const (
	fontName  = "Times New Roman"
	fontSize  = 13
	titleSize = 16
)

// Text renders the record in the canonical export layout.
func Text(rec model.NotesRecord) string {
	return fmt.Sprintf("Transcription:\n%s\n\nSummary:\n%s", rec.Transcription, rec.Summary)
}

// WriteText writes the plain-text export to path.
func WriteText(rec model.NotesRecord, path string) error {
	if err := os.WriteFile(path, []byte(Text(rec)), 0644); err != nil {
		return fmt.Errorf("write text export: %w", err)
	}
	return nil
}

// WriteDocx writes a styled docx export to path.
func WriteDocx(rec model.NotesRecord, path string) error {
	doc, err := godocx.NewDocument()
	if err != nil {
		return fmt.Errorf("create document: %w", err)
	}

	title := doc.AddParagraph("").AddText(rec.AudioName).Font(fontName).Size(titleSize).Color("000000")
	title.Bold(true)

	for _, section := range []struct {
		heading string
		body    string
	}{
		{"Transcription:", rec.Transcription},
		{"Summary:", rec.Summary},
	} {
		doc.AddParagraph("")
		h := doc.AddParagraph("").AddText(section.heading).Font(fontName).Size(fontSize).Color("000000")
		h.Bold(true)
		doc.AddParagraph("").AddText(section.body).Font(fontName).Size(fontSize).Color("000000")
	}

	if err := doc.SaveTo(path); err != nil {
		return fmt.Errorf("save docx export: %w", err)
	}
	return nil
}
